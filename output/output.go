// Package output persists generated images and reads prompt files through
// an afero filesystem.
package output

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	ai "github.com/spetersoncode/nanobanana"
)

// DirPerm and FilePerm are used for created directories and images.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// Store reads and writes files on an afero filesystem.
// Failures are reported as *ai.FileError.
type Store struct {
	fs afero.Fs
}

// New creates a Store on fs. A nil fs means the OS filesystem.
func New(fs afero.Fs) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs}
}

// Fs returns the underlying filesystem.
func (s *Store) Fs() afero.Fs { return s.fs }

// Write stores data at path, creating missing parent directories.
func (s *Store) Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, DirPerm); err != nil {
			return &ai.FileError{Op: "mkdir", Path: dir, Err: err}
		}
	}
	if err := afero.WriteFile(s.fs, path, data, FilePerm); err != nil {
		return &ai.FileError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Read returns the contents of path.
func (s *Store) Read(path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, &ai.FileError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// Exists reports whether path exists.
func (s *Store) Exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)
	return err == nil && ok
}

// ReadPrompt reads a prompt file named relative to dir and returns its
// trimmed text. Leading '.' and '/' characters are stripped from name and
// a name that still resolves outside dir is rejected with ErrOutsideDir.
// A missing, unreadable or blank file is a *ai.FileError.
func (s *Store) ReadPrompt(dir, name string) (string, error) {
	path := filepath.Join(dir, strings.TrimLeft(name, "./"))
	if rel, err := filepath.Rel(filepath.Clean(dir), path); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &ai.FileError{Op: "read", Path: path, Err: ErrOutsideDir}
	}
	if !s.Exists(path) {
		return "", &ai.FileError{Op: "read", Path: path, Err: os.ErrNotExist}
	}
	data, err := s.Read(path)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", &ai.FileError{Op: "read", Path: path, Err: ErrEmptyFile}
	}
	return text, nil
}
