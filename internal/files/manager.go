package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// ErrNilManager is returned when a nil Manager is asked to touch the disk.
var ErrNilManager = errors.New("files.Manager is nil")

// Manager centralizes where inputs and reports live on disk and how they are
// read and written.
type Manager struct {
	basePath  string
	normalize bool
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to KOSAKATA_HOME or the working directory (see
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the workspace root.
func (m *Manager) BasePath() string {
	return m.basePath
}

// SetNormalize toggles NFC normalization of text read through Open.
func (m *Manager) SetNormalize(enabled bool) {
	m.normalize = enabled
}

// Resolve maps name onto the workspace root. Absolute names are returned as is.
func (m *Manager) Resolve(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(m.basePath, name)
}

// Open returns a reader over the decoded UTF-8 contents of name.
func (m *Manager) Open(name string) (io.ReadCloser, error) {
	if m == nil {
		return nil, ErrNilManager
	}

	file, err := os.Open(m.Resolve(name))
	if err != nil {
		return nil, err
	}
	return &decodedFile{
		Reader: NewDecodingReader(file, m.normalize),
		file:   file,
	}, nil
}

// WriteLines replaces name with lines, each terminated by LF. Parent
// directories are created as needed.
func (m *Manager) WriteLines(name string, lines []string) (string, error) {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return m.WriteFile(name, []byte(b.String()))
}

// WriteFile atomically replaces name with data and returns the absolute path
// that was written.
func (m *Manager) WriteFile(name string, data []byte) (string, error) {
	if m == nil {
		return "", ErrNilManager
	}

	path := m.Resolve(name)
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}
	if err := writeAtomic(path, data); err != nil {
		return "", fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return path, nil
}

type decodedFile struct {
	io.Reader
	file *os.File
}

func (d *decodedFile) Close() error {
	return d.file.Close()
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "kosakata-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
