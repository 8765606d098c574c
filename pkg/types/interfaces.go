package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for envperm operations
type FS interface {
	// OpenAppend opens a file in append mode. When create is false a
	// missing file is an open failure; when create is true the file is
	// made with perm. Written data is durable once Close returns.
	OpenAppend(name string, create bool, perm fs.FileMode) (io.WriteCloser, error)
}

// RunResult holds the outcome of a completed subprocess
type RunResult struct {
	// ExitCode is the process exit status
	ExitCode int

	// Stderr is the raw captured standard error output
	Stderr []byte
}

// Success reports whether the process exited with status zero
func (r RunResult) Success() bool {
	return r.ExitCode == 0
}

// Runner executes a one-shot external command and waits for it.
// A non-nil error means the process could not be spawned or waited on;
// a non-zero exit status is reported through RunResult, not the error.
type Runner interface {
	Run(name string, args ...string) (RunResult, error)
}

// Environment reads the calling process's environment
type Environment interface {
	// LookupEnv retrieves the value of the named variable.
	// The boolean is false when the variable is not present.
	LookupEnv(name string) (string, bool)
}
