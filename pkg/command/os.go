package command

import (
	"bytes"
	"errors"
	"os"
	"os/exec"

	"github.com/arthur-debert/envperm/pkg/types"
)

// osRunner implements types.Runner using os/exec
type osRunner struct{}

// NewOSRunner creates a Runner backed by os/exec
func NewOSRunner() types.Runner {
	return &osRunner{}
}

// Run executes the command and waits for it to finish. A non-zero exit
// status is not an error here; it is reported through the RunResult so
// the caller can build its own message from the code and stderr bytes.
func (r *osRunner) Run(name string, args ...string) (types.RunResult, error) {
	cmd := exec.Command(name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return types.RunResult{
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.Bytes(),
			}, nil
		}
		// Spawn or wait failure, no exit status to report
		return types.RunResult{}, err
	}

	return types.RunResult{ExitCode: 0, Stderr: stderr.Bytes()}, nil
}

// osEnvironment implements types.Environment using the process environment
type osEnvironment struct{}

// NewOSEnvironment creates an Environment backed by the process environment
func NewOSEnvironment() types.Environment {
	return &osEnvironment{}
}

func (e *osEnvironment) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}
