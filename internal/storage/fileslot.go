package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSlot stores the value as a single file, written atomically via a temp
// file and rename.
type FileSlot struct {
	path string
}

// NewFileSlot creates a slot backed by the file at path.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Path returns the backing file location.
func (f *FileSlot) Path() string { return f.path }

// Load reads the stored value. A missing file means nothing has been stored.
func (f *FileSlot) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read slot: %w", err)
	}
	return data, nil
}

// Save overwrites the stored value.
func (f *FileSlot) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write slot tmp: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("rename slot: %w", err)
	}
	return nil
}
