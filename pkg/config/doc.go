// Package config loads and validates patch batch declarations for patchrc.
//
// 	            +-------------+
// 	            |   Config    |
// 	            | (Job lists) |
// 	            +------+------+
// 	                   |
// 	      +-----------+-----------+
// 	      |           |           |
// 	+-----+---+  +----+----+  +---+-----+
// 	|   HCL   |  |  YAML   |  |  JSON   |
// 	| Parser  |  | Parser  |  | Parser  |
// 	+---------+  +---------+  +---------+
//
// 🎯 Purpose:
// - Loads job lists from HCL, YAML, or JSON files
// - Validates targets and rules before any file is touched
// - Expands glob targets into concrete per-file jobs
//
// 🔄 Flow:
// 1. Reads the config file and picks a parser by extension
// 2. Parses format-specific syntax into the shared model
// 3. Validates jobs (target present, rules well-formed, patterns compile)
// 4. Expands globs against the root, applying exclude patterns
//
// 🔍 Example (HCL):
//
// 	root = "src"
//
// 	job "unused-props" {
// 	  target  = "components/challenges/*.tsx"
// 	  exclude = ["**/ChallengeBase.tsx"]
//
// 	  replace {
// 	    pattern = "const { onComplete, timeLimit, } = props;"
// 	    with    = "const { onComplete, } = props;"
// 	  }
// 	}
package config
