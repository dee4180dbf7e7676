// package fs is the filesystem collaborator of the static file handlers.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
)

var ErrNotExist = iofs.ErrNotExist

// FS is what the file handlers need from a filesystem. names are relative to
// whatever root the implementation serves.
type FS interface {
	Exists(name string) bool
	// Read returns an error satisfying errors.Is(err, ErrNotExist) when
	// there is nothing under name.
	Read(name string) ([]byte, error)
	// Write creates or truncates name, there is no locking: concurrent
	// writers to the same name race and the last one wins.
	Write(name string, data []byte) error
}

// Dir serves files from an OS directory.
//
// names are joined onto the directory as is. "..", absolute-looking names and
// symlinks are NOT contained to the directory.
type Dir string

var _ FS = Dir("")

func (d Dir) resolve(name string) string {
	return filepath.Join(string(d), filepath.FromSlash(name))
}

func (d Dir) Exists(name string) bool {
	_, err := os.Stat(d.resolve(name))
	return err == nil
}

func (d Dir) Read(name string) ([]byte, error) {
	p := d.resolve(name)
	st, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return nil, &iofs.PathError{Op: "read", Path: p, Err: ErrNotExist}
	}
	return os.ReadFile(p)
}

func (d Dir) Write(name string, data []byte) error {
	return os.WriteFile(d.resolve(name), data, 0o644)
}

// IsNotExist is a shorthand for errors.Is(err, ErrNotExist)
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}
