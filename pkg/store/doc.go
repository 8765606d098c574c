// Package store implements the persistent environment-variable stores.
//
// Two strategies implement the Store interface with no shared state:
// the profile store appends export lines to the user's shell profile
// (POSIX), and the registry store shells out to setx (Windows). Both
// are buildable and testable on every platform; only the default
// selection in pkg/envperm is build-tagged.
package store
