//go:build !windows

package envperm

import (
	"github.com/arthur-debert/envperm/pkg/filesystem"
	"github.com/arthur-debert/envperm/pkg/store"
)

// defaultStore returns the profile store on POSIX systems
func defaultStore() store.Store {
	return store.NewProfile(filesystem.NewOS())
}
