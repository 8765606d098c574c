// Package envperm permanently sets or appends environment variables.
//
// On POSIX systems variables are persisted by appending export lines
// to the user's shell profile; on Windows they are persisted through
// setx. The package-level functions operate on the platform default
// store:
//
//	// Check if DUMMY is set, if not set it to 1
//	// export DUMMY=1
//	_ = envperm.CheckOrSet("DUMMY", 1)
//
//	// Prefix $HOME/some/cool/bin ahead of $PATH
//	// export PATH="$HOME/some/cool/bin:$PATH"
//	_ = envperm.Append("PATH", "$HOME/some/cool/bin")
//
//	// Set without checking; a second call adds a second assignment
//	// export DUMMY="/something"
//	_ = envperm.Set("DUMMY", `"/something"`)
package envperm

import (
	"fmt"
	"sync"

	"github.com/arthur-debert/envperm/pkg/command"
	"github.com/arthur-debert/envperm/pkg/logging"
	"github.com/arthur-debert/envperm/pkg/store"
	"github.com/arthur-debert/envperm/pkg/types"
)

// Persister persists environment variables through a Store
type Persister struct {
	store store.Store
	env   types.Environment
}

// New creates a Persister using the platform default store
func New() *Persister {
	return NewWithStore(defaultStore())
}

// NewWithStore creates a Persister using the given store. The process
// environment is still used for existence checks.
func NewWithStore(s store.Store) *Persister {
	return &Persister{
		store: s,
		env:   command.NewOSEnvironment(),
	}
}

// WithEnvironment replaces the environment reader used for existence
// checks. Used by tests.
func (p *Persister) WithEnvironment(env types.Environment) *Persister {
	p.env = env
	return p
}

// CheckOrSet persists value under name only when the variable is not
// already present in the process environment. A present variable is a
// no-op with no side effect.
func (p *Persister) CheckOrSet(name string, value any) error {
	if _, ok := p.env.LookupEnv(name); ok {
		logger := logging.GetLogger("envperm")
		logger.Debug().
			Str("variable", name).
			Msg("Variable already set, nothing to do")
		return nil
	}
	return p.Set(name, value)
}

// Set persists value under name without checking whether it exists.
// Calling it twice leaves two assignments in the profile or registry.
func (p *Persister) Set(name string, value any) error {
	return p.store.Set(name, render(value))
}

// Append persists value logically prefixed ahead of the variable's
// prior value, which is how PATH-like variables are extended.
func (p *Persister) Append(name string, value any) error {
	return p.store.Append(name, render(value))
}

// render is the text-conversion boundary: every value becomes text
// before it is embedded in an export line or subprocess argument
func render(value any) string {
	return fmt.Sprint(value)
}

var (
	defaultOnce      sync.Once
	defaultPersister *Persister
)

// Default returns the shared Persister backed by the platform default
// store
func Default() *Persister {
	defaultOnce.Do(func() {
		defaultPersister = New()
	})
	return defaultPersister
}

// CheckOrSet persists value under name on the platform default store
// only when the variable is not already set
func CheckOrSet(name string, value any) error {
	return Default().CheckOrSet(name, value)
}

// Set persists value under name on the platform default store
func Set(name string, value any) error {
	return Default().Set(name, value)
}

// Append persists value prefixed ahead of the variable's prior value
// on the platform default store
func Append(name string, value any) error {
	return Default().Append(name, value)
}
