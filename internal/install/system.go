package install

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// System abstracts the filesystem and privilege queries the installer needs.
// The interface is package-local; other packages define their own with the
// operations specific to their needs.
type System interface {
	Stat(name string) (os.FileInfo, error)
	Geteuid() int
	Writable(path string) bool
	MkdirAll(path string, perm os.FileMode) error
	CopyFile(src string, dest string, perm os.FileMode) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Geteuid returns the effective user id of the process.
func (RealSystem) Geteuid() int {
	return unix.Geteuid()
}

// Writable reports whether the process can write to path.
func (RealSystem) Writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CopyFile copies src to dest with the given mode, carrying over the source
// modification time.
func (RealSystem) CopyFile(src string, dest string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dest, info.ModTime(), info.ModTime())
}
