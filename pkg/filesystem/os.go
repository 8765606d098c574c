package filesystem

import (
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/envperm/pkg/types"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) OpenAppend(name string, create bool, perm fs.FileMode) (io.WriteCloser, error) {
	flags := os.O_APPEND | os.O_WRONLY
	if create {
		flags |= os.O_CREATE
	}
	return os.OpenFile(name, flags, perm)
}
