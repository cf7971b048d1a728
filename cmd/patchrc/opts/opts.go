package opts

import (
	"github.com/walteh/patchrc/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// Root is the project directory targets are resolved against.
	Root string

	// Async runs batch jobs concurrently.
	Async bool

	// Workers bounds concurrency in async mode.
	Workers int

	// UserLogger renders operator-facing feedback.
	UserLogger *status.UserLogger
}
