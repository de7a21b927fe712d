package subst

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// FileManager is the read/list/write capability the walker and the
// rewriter run against.
type FileManager struct {
	fs afero.Fs
}

func NewFileManager(fs afero.Fs) *FileManager {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileManager{fs: fs}
}

func (m *FileManager) Read(path string) (string, error) {
	data, err := afero.ReadFile(m.fs, path)
	if err != nil {
		return "", errors.Wrap(err, "read")
	}
	return string(data), nil
}

// Write replaces the content of an existing file. perm is only used if the
// file has to be created.
func (m *FileManager) Write(path, content string, perm os.FileMode) error {
	if perm == 0 {
		perm = 0644
	}
	if err := afero.WriteFile(m.fs, path, []byte(content), perm); err != nil {
		return errors.Wrap(err, "write")
	}
	return nil
}

func (m *FileManager) List(dir string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(m.fs, dir)
	if err != nil {
		return nil, errors.Wrap(err, "list")
	}
	return entries, nil
}
