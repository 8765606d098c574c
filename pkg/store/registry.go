package store

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/envperm/pkg/errors"
	"github.com/arthur-debert/envperm/pkg/logging"
	"github.com/arthur-debert/envperm/pkg/types"
)

// setxCommand is the Windows persistent-variable-set command
const setxCommand = "setx"

// RegistryStore persists variables through the OS persistent store by
// invoking setx. Append reads the variable's current value from the
// process environment, not from the registry.
type RegistryStore struct {
	runner types.Runner
	env    types.Environment
}

// NewRegistry creates a registry store using the given runner and
// environment reader
func NewRegistry(runner types.Runner, env types.Environment) *RegistryStore {
	return &RegistryStore{
		runner: runner,
		env:    env,
	}
}

// Set invokes setx with the name and the double-quoted value
func (s *RegistryStore) Set(name, value string) error {
	logger := logging.GetLogger("store.registry")

	quoted := fmt.Sprintf("\"%s\"", value)
	logging.LogCommand(setxCommand, []string{name, quoted})

	result, err := s.runner.Run(setxCommand, name, quoted)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCommandStart, "failed to run %s", setxCommand)
	}

	if !result.Success() {
		return errors.New(errors.ErrCommandExit, exitMessage(result)).
			WithDetail("exitCode", result.ExitCode)
	}

	logger.Debug().Str("variable", name).Msg("Variable persisted via setx")
	return nil
}

// Append persists value prefixed ahead of the variable's current
// process-environment value, separated by "; ". A variable that is not
// present is treated as having an empty current value, so the result
// is "VALUE; " with nothing after the separator. This differs from the
// profile store, whose export line always references $NAME.
func (s *RegistryStore) Append(name, value string) error {
	current, ok := s.env.LookupEnv(name)
	if !ok {
		current = ""
	} else if !utf8.ValidString(current) {
		return errors.Newf(errors.ErrEnvDecode,
			"current value of %s is not valid UTF-8: %q", name, current)
	}

	return s.Set(name, fmt.Sprintf("%s; %s", value, current))
}

// exitMessage builds the failure message for a non-zero setx exit,
// carrying the exit code and any decodable stderr output
func exitMessage(result types.RunResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s exited with status code %d", setxCommand, result.ExitCode)

	if len(result.Stderr) > 0 {
		if utf8.Valid(result.Stderr) {
			fmt.Fprintf(&b, "; stderr: %s", strings.TrimSpace(string(result.Stderr)))
		} else {
			b.WriteString("; stderr content cannot be displayed because it is not valid UTF-8")
		}
	}

	return b.String()
}
