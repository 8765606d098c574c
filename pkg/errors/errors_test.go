// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/envperm/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "home_not_found_error",
			code:    errors.ErrHomeNotFound,
			message: "no home directory",
			wantStr: "[HOME_NOT_FOUND] no home directory",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "empty variable name",
			wantStr: "[INVALID_INPUT] empty variable name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		format  string
		args    []interface{}
		wantMsg string
	}{
		{
			name:    "format_with_string",
			code:    errors.ErrProfileOpen,
			format:  "cannot open profile %s",
			args:    []interface{}{".bash_profile"},
			wantMsg: "cannot open profile .bash_profile",
		},
		{
			name:    "format_with_multiple_args",
			code:    errors.ErrCommandExit,
			format:  "setx exited with status code %d: %s",
			args:    []interface{}{1, "access denied"},
			wantMsg: "setx exited with status code 1: access denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.Newf(tt.code, tt.format, tt.args...)

			if err.Message != tt.wantMsg {
				t.Errorf("Newf() message = %q, want %q", err.Message, tt.wantMsg)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	err := errors.Wrap(base, errors.ErrProfileWrite, "cannot append export line")
	if err == nil {
		t.Fatal("Wrap() returned nil for non-nil error")
	}

	if err.Code != errors.ErrProfileWrite {
		t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrProfileWrite)
	}

	if !stderrors.Is(err, base) {
		t.Error("Wrap() should preserve the wrapped error for errors.Is")
	}

	want := "[PROFILE_WRITE] cannot append export line: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrProfileWrite, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	base := stderrors.New("disk full")

	err := errors.Wrapf(base, errors.ErrProfileWrite, "writing to %s", ".profile")
	if err == nil {
		t.Fatal("Wrapf() returned nil for non-nil error")
	}

	if err.Message != "writing to .profile" {
		t.Errorf("Wrapf() message = %q", err.Message)
	}

	if errors.Wrapf(nil, errors.ErrProfileWrite, "ignored") != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrHomeNotFound, "no home directory")

	if !errors.IsErrorCode(err, errors.ErrHomeNotFound) {
		t.Error("IsErrorCode() should match the error's code")
	}

	if errors.IsErrorCode(err, errors.ErrCommandExit) {
		t.Error("IsErrorCode() should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrHomeNotFound) {
		t.Error("IsErrorCode() should not match a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrEnvDecode, "value is not valid UTF-8")

	if got := errors.GetErrorCode(err); got != errors.ErrEnvDecode {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrEnvDecode)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrCommandExit, "setx failed").
		WithDetail("exitCode", 2).
		WithDetail("command", "setx")

	details := errors.GetErrorDetails(err)
	if details == nil {
		t.Fatal("GetErrorDetails() returned nil")
	}

	if details["exitCode"] != 2 {
		t.Errorf("detail exitCode = %v, want 2", details["exitCode"])
	}

	if details["command"] != "setx" {
		t.Errorf("detail command = %v, want setx", details["command"])
	}
}

func TestErrorIs(t *testing.T) {
	err := errors.New(errors.ErrProfileOpen, "all candidates exhausted")
	target := errors.New(errors.ErrProfileOpen, "different message, same code")

	if !stderrors.Is(err, target) {
		t.Error("errors.Is should match EnvpermErrors by code")
	}

	other := errors.New(errors.ErrProfileWrite, "different code")
	if stderrors.Is(err, other) {
		t.Error("errors.Is should not match a different code")
	}
}
