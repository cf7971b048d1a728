/*
Package status tracks per-job outcomes and reports them for patchrc.

	            +-------------+
	            |   Status    |
	            | (Tracking)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	| Reporter  |           | Console |
	| (Records) |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Collects one record per job (fixed / unchanged / failed)
- Tracks batch progress
- Renders operator-facing console lines
- Mirrors every user-facing line into zerolog

🔄 Flow:
1. Driver starts a batch with the job count
2. Each finished job is tracked as a Record
3. Records are rendered per job as they finish
4. A summary tally closes the batch

🤝 Interfaces:
- Reporter: thread-safe record collection and progress
- Formatter: colored one-line-per-job rendering
- UserLogger: pterm-prefixed feedback with zerolog mirroring
*/
package status
