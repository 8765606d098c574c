//go:build windows

package envperm

import (
	"github.com/arthur-debert/envperm/pkg/command"
	"github.com/arthur-debert/envperm/pkg/store"
)

// defaultStore returns the registry store on Windows
func defaultStore() store.Store {
	return store.NewRegistry(command.NewOSRunner(), command.NewOSEnvironment())
}
