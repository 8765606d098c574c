package testutil

import (
	"github.com/arthur-debert/envperm/pkg/types"
)

// RunnerCall records a single invocation of the fake runner
type RunnerCall struct {
	Name string
	Args []string
}

// FakeRunner implements types.Runner and records every invocation
type FakeRunner struct {
	// Result is returned from Run when Err is nil
	Result types.RunResult

	// Err simulates a spawn failure
	Err error

	// Calls holds every invocation in order
	Calls []RunnerCall
}

// NewFakeRunner creates a fake runner that reports a clean exit
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{}
}

func (r *FakeRunner) Run(name string, args ...string) (types.RunResult, error) {
	r.Calls = append(r.Calls, RunnerCall{Name: name, Args: args})
	if r.Err != nil {
		return types.RunResult{}, r.Err
	}
	return r.Result, nil
}

// LastCall returns the most recent invocation, or nil if there was none
func (r *FakeRunner) LastCall() *RunnerCall {
	if len(r.Calls) == 0 {
		return nil
	}
	return &r.Calls[len(r.Calls)-1]
}

// FakeEnvironment implements types.Environment over a plain map
type FakeEnvironment struct {
	Vars map[string]string
}

// NewFakeEnvironment creates a fake environment with the given variables
func NewFakeEnvironment(vars map[string]string) *FakeEnvironment {
	if vars == nil {
		vars = make(map[string]string)
	}
	return &FakeEnvironment{Vars: vars}
}

func (e *FakeEnvironment) LookupEnv(name string) (string, bool) {
	value, ok := e.Vars[name]
	return value, ok
}
