package store

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/arthur-debert/envperm/pkg/errors"
	"github.com/arthur-debert/envperm/pkg/logging"
	"github.com/arthur-debert/envperm/pkg/paths"
	"github.com/arthur-debert/envperm/pkg/types"
	"github.com/rs/zerolog"
)

// profileFileMode is the mode used when the creating open has to make
// a new profile file
const profileFileMode = 0644

// ProfileStore persists variables by appending export lines to the
// user's shell profile. The profile is found by trying .bash_profile,
// .bash_login and .profile in append mode, in order, moving to the
// next candidate on any open failure; as a last resort .bash_profile
// is opened with create set.
type ProfileStore struct {
	fs      types.FS
	homeDir func() (string, error)
}

// NewProfile creates a profile store resolving the home directory
// through pkg/paths
func NewProfile(fs types.FS) *ProfileStore {
	return NewProfileWithHome(fs, paths.HomeDir)
}

// NewProfileAt creates a profile store rooted at a fixed home
// directory. Used by tests and embedders that manage their own home
// resolution.
func NewProfileAt(fs types.FS, home string) *ProfileStore {
	return NewProfileWithHome(fs, func() (string, error) { return home, nil })
}

// NewProfileWithHome creates a profile store with a custom home
// directory resolver
func NewProfileWithHome(fs types.FS, homeDir func() (string, error)) *ProfileStore {
	return &ProfileStore{
		fs:      fs,
		homeDir: homeDir,
	}
}

// Set appends an unconditional export line. No quoting is added beyond
// what the caller supplied, and nothing is deduplicated.
func (s *ProfileStore) Set(name, value string) error {
	line := fmt.Sprintf("\nexport %s=%s\n", name, value)
	return s.appendLine(name, line)
}

// Append writes an export line that prefixes value ahead of the
// variable's prior value. The $NAME reference is literal; the shell
// expands it at startup, not at write time.
func (s *ProfileStore) Append(name, value string) error {
	line := fmt.Sprintf("\nexport %s=\"%s:$%s\"\n", name, value, name)
	return s.appendLine(name, line)
}

func (s *ProfileStore) appendLine(name, line string) error {
	logger := logging.GetLogger("store.profile")

	home, err := s.homeDir()
	if err != nil {
		return err
	}

	profile, w, err := s.openProfile(home, logger)
	if err != nil {
		return err
	}

	if _, err := w.Write([]byte(line)); err != nil {
		_ = w.Close()
		return errors.Wrapf(err, errors.ErrProfileWrite,
			"failed to append export line to %s", profile)
	}
	if err := w.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrProfileWrite,
			"failed to flush %s", profile)
	}

	logger.Debug().
		Str("variable", name).
		Str("profile", profile).
		Msg("Appended export line")

	return nil
}

// openProfile tries each profile candidate under home in append mode,
// moving to the next candidate on any open failure (missing file or
// otherwise). When the whole chain fails, the fallback profile is
// opened with create set; only a failure of that creating open is an
// error.
func (s *ProfileStore) openProfile(home string, logger zerolog.Logger) (string, io.WriteCloser, error) {
	for _, candidate := range paths.ProfileCandidates() {
		path := filepath.Join(home, candidate)
		w, err := s.fs.OpenAppend(path, false, profileFileMode)
		if err == nil {
			return path, w, nil
		}
		logger.Debug().Str("profile", path).Err(err).Msg("Candidate not openable, trying next")
	}

	path := filepath.Join(home, paths.CreateProfileName)
	w, err := s.fs.OpenAppend(path, true, profileFileMode)
	if err != nil {
		return "", nil, errors.Wrapf(err, errors.ErrProfileOpen,
			"no profile candidate could be opened and creating %s failed", path)
	}

	logger.Debug().Str("profile", path).Msg("No profile found, creating")
	return path, w, nil
}
