package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/dotfiles/pkg/types"
)

// FaultFS wraps a types.FS and returns configured errors for chosen paths,
// either for every operation or for a single one.
type FaultFS struct {
	types.FS

	mu     sync.Mutex
	errors map[string]error
}

// NewFaultFS wraps inner
func NewFaultFS(inner types.FS) *FaultFS {
	return &FaultFS{FS: inner, errors: make(map[string]error)}
}

// Operation names accepted by WithOpError
const (
	OpStat            = "stat"
	OpLstat           = "lstat"
	OpReadFile        = "readfile"
	OpWriteFile       = "writefile"
	OpWriteFileAtomic = "writefileatomic"
	OpReadDir         = "readdir"
	OpSymlink         = "symlink"
	OpReadlink        = "readlink"
	OpRemove          = "remove"
	OpRename          = "rename"
)

// WithError configures the filesystem to return err for a specific path
func (f *FaultFS) WithError(path string, err error) *FaultFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[filepath.Clean(path)] = err
	return f
}

// WithOpError configures err for one operation on a specific path
func (f *FaultFS) WithOpError(op, path string, err error) *FaultFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[op+":"+filepath.Clean(path)] = err
	return f
}

func (f *FaultFS) fault(op string, paths ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range paths {
		p = filepath.Clean(p)
		if err, ok := f.errors[op+":"+p]; ok {
			return err
		}
		if err, ok := f.errors[p]; ok {
			return err
		}
	}
	return nil
}

func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.fault(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.fault(OpLstat, name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FaultFS) ReadFile(name string) ([]byte, error) {
	if err := f.fault(OpReadFile, name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.fault(OpWriteFile, name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultFS) WriteFileAtomic(name string, data []byte, perm fs.FileMode) error {
	if err := f.fault(OpWriteFileAtomic, name); err != nil {
		return err
	}
	return f.FS.WriteFileAtomic(name, data, perm)
}

func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.fault(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultFS) Symlink(oldname, newname string) error {
	if err := f.fault(OpSymlink, newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultFS) Readlink(name string) (string, error) {
	if err := f.fault(OpReadlink, name); err != nil {
		return "", err
	}
	return f.FS.Readlink(name)
}

func (f *FaultFS) Remove(name string) error {
	if err := f.fault(OpRemove, name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FaultFS) Rename(oldpath, newpath string) error {
	if err := f.fault(OpRename, oldpath, newpath); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}
