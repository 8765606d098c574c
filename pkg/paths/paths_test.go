// Test Type: Unit Test
// Description: Tests for the paths package - home and state path resolution

package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/envperm/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileCandidates(t *testing.T) {
	candidates := paths.ProfileCandidates()

	assert.Equal(t, []string{".bash_profile", ".bash_login", ".profile"}, candidates)
	assert.Equal(t, ".bash_profile", paths.CreateProfileName)
}

func TestHomeDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := paths.HomeDir()
	require.NoError(t, err)
	assert.Equal(t, home, got)
}

func TestStateDir(t *testing.T) {
	tests := []struct {
		name      string
		stateHome string
		want      func(home string) string
	}{
		{
			name:      "xdg_state_home_set",
			stateHome: "/custom/state",
			want: func(string) string {
				return filepath.Join("/custom/state", "envperm")
			},
		},
		{
			name:      "xdg_state_home_unset",
			stateHome: "",
			want: func(home string) string {
				return filepath.Join(home, ".local", "state", "envperm")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("HOME", home)
			t.Setenv("XDG_STATE_HOME", tt.stateHome)

			assert.Equal(t, tt.want(home), paths.StateDir())
		})
	}
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")

	assert.Equal(t, filepath.Join("/state", "envperm", "envperm.log"), paths.LogFilePath())
}
