package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/envperm/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvStateHome overrides the XDG state directory
	EnvStateHome = "XDG_STATE_HOME"
)

// Default directories and files
const (
	// EnvpermDirName is the directory name for envperm-specific files
	EnvpermDirName = "envperm"

	// LogFileName is the name of the log file
	LogFileName = "envperm.log"
)

// Profile file names tried by the profile store, in preference order.
// CreateProfileName is the file created when no candidate exists.
const (
	BashProfileName   = ".bash_profile"
	BashLoginName     = ".bash_login"
	ProfileName       = ".profile"
	CreateProfileName = BashProfileName
)

// ProfileCandidates returns the ordered list of profile file names the
// profile store tries before falling back to creating CreateProfileName.
func ProfileCandidates() []string {
	return []string{BashProfileName, BashLoginName, ProfileName}
}

// HomeDir returns the user's home directory with proper error handling
func HomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	// Try the HOME environment variable as a fallback
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	// xdg caches its own view of the home directory; last resort
	if xdg.Home != "" {
		return xdg.Home, nil
	}

	return "", homeNotFound(err)
}

// homeNotFound builds the error for an exhausted home lookup. A nil
// cause still yields a real error value.
func homeNotFound(err error) error {
	if err != nil {
		return errors.Wrapf(err, errors.ErrHomeNotFound, "failed to get home directory")
	}
	return errors.New(errors.ErrHomeNotFound, "home directory is not set")
}

// StateDir returns the XDG state directory for envperm
func StateDir() string {
	if stateDir := os.Getenv(EnvStateHome); stateDir != "" {
		return filepath.Join(stateDir, EnvpermDirName)
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "state", EnvpermDirName)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}
