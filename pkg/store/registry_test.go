// Test Type: Unit Test
// Description: Tests for the registry store - setx invocation and append semantics

package store_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/envperm/pkg/errors"
	"github.com/arthur-debert/envperm/pkg/store"
	"github.com/arthur-debert/envperm/pkg/testutil"
	"github.com/arthur-debert/envperm/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySetInvokesSetx(t *testing.T) {
	runner := testutil.NewFakeRunner()
	registryStore := store.NewRegistry(runner, testutil.NewFakeEnvironment(nil))

	require.NoError(t, registryStore.Set("DUMMY", "/something"))

	call := runner.LastCall()
	require.NotNil(t, call)
	assert.Equal(t, "setx", call.Name)
	assert.Equal(t, []string{"DUMMY", `"/something"`}, call.Args)
}

func TestRegistrySetSpawnFailure(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Err = stderrors.New("executable file not found in %PATH%")
	registryStore := store.NewRegistry(runner, testutil.NewFakeEnvironment(nil))

	err := registryStore.Set("DUMMY", "1")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandStart),
		"expected COMMAND_START, got %v", err)
}

func TestRegistrySetNonZeroExit(t *testing.T) {
	tests := []struct {
		name       string
		result     types.RunResult
		wantInMsg  []string
		notWantMsg string
	}{
		{
			name:      "exit_code_and_stderr_in_message",
			result:    types.RunResult{ExitCode: 1, Stderr: []byte("ERROR: Access to the registry path is denied.")},
			wantInMsg: []string{"status code 1", "Access to the registry path is denied"},
		},
		{
			name:       "non_utf8_stderr_notice",
			result:     types.RunResult{ExitCode: 2, Stderr: []byte{0xff, 0xfe, 0xfd}},
			wantInMsg:  []string{"status code 2", "not valid UTF-8"},
			notWantMsg: "\xff",
		},
		{
			name:      "empty_stderr",
			result:    types.RunResult{ExitCode: 3},
			wantInMsg: []string{"status code 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testutil.NewFakeRunner()
			runner.Result = tt.result
			registryStore := store.NewRegistry(runner, testutil.NewFakeEnvironment(nil))

			err := registryStore.Set("DUMMY", "1")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrCommandExit),
				"expected COMMAND_EXIT, got %v", err)

			for _, want := range tt.wantInMsg {
				assert.Contains(t, err.Error(), want)
			}
			if tt.notWantMsg != "" {
				assert.NotContains(t, err.Error(), tt.notWantMsg)
			}

			details := errors.GetErrorDetails(err)
			require.NotNil(t, details)
			assert.Equal(t, tt.result.ExitCode, details["exitCode"])
		})
	}
}

func TestRegistryAppendWithCurrentValue(t *testing.T) {
	runner := testutil.NewFakeRunner()
	env := testutil.NewFakeEnvironment(map[string]string{
		"PATH": `C:\Windows\system32`,
	})
	registryStore := store.NewRegistry(runner, env)

	require.NoError(t, registryStore.Append("PATH", `C:\tools`))

	call := runner.LastCall()
	require.NotNil(t, call)
	assert.Equal(t, []string{"PATH", `"C:\tools; C:\Windows\system32"`}, call.Args)
}

func TestRegistryAppendCurrentValueAbsent(t *testing.T) {
	runner := testutil.NewFakeRunner()
	registryStore := store.NewRegistry(runner, testutil.NewFakeEnvironment(nil))

	require.NoError(t, registryStore.Append("NEWVAR", "value"))

	// A missing variable appends against an empty current value: the
	// persisted string is "value; " with nothing after the separator.
	call := runner.LastCall()
	require.NotNil(t, call)
	assert.Equal(t, []string{"NEWVAR", `"value; "`}, call.Args)
}

func TestRegistryAppendCurrentValueNotDecodable(t *testing.T) {
	runner := testutil.NewFakeRunner()
	env := testutil.NewFakeEnvironment(map[string]string{
		"BROKEN": string([]byte{0xff, 0xfe}),
	})
	registryStore := store.NewRegistry(runner, env)

	err := registryStore.Append("BROKEN", "value")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvDecode),
		"expected ENV_DECODE, got %v", err)

	// The undecodable bytes are surfaced, quoted, in the message
	assert.Contains(t, err.Error(), `\xff`)

	// Nothing may be persisted on a decode failure
	assert.Empty(t, runner.Calls)
}
