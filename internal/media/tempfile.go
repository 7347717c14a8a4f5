package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// TempManager spools incoming uploads to disk so ffprobe/ffmpeg can read
// them, and tracks the files so an abandoned attempt leaks nothing.
type TempManager struct {
	baseDir     string
	activeFiles map[string]bool
	logger      Logger
	mu          sync.RWMutex
	permissions os.FileMode
}

// NewTempManager creates a new temporary file manager
func NewTempManager(baseDir string, logger Logger) (*TempManager, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &TempManager{
		baseDir:     baseDir,
		activeFiles: make(map[string]bool),
		logger:      logger,
		permissions: 0o644,
	}, nil
}

// BaseDir returns the directory temporary files are spooled into
func (m *TempManager) BaseDir() string {
	return m.baseDir
}

// Spool copies the reader into a tracked temporary file and returns its path
func (m *TempManager) Spool(reader io.Reader, ext string) (string, error) {
	path := filepath.Join(m.baseDir, fmt.Sprintf("upload_%s%s", uuid.New().String(), ext))

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, m.permissions)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(file, reader); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to spool upload: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	m.mu.Lock()
	m.activeFiles[path] = true
	m.mu.Unlock()

	return path, nil
}

// Remove deletes a tracked temporary file
func (m *TempManager) Remove(path string) error {
	m.mu.Lock()
	delete(m.activeFiles, path)
	m.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove temp file: %w", err)
	}
	return nil
}

// Cleanup removes all tracked temporary files
func (m *TempManager) Cleanup() {
	m.mu.Lock()
	paths := make([]string, 0, len(m.activeFiles))
	for path := range m.activeFiles {
		paths = append(paths, path)
	}
	m.activeFiles = make(map[string]bool)
	m.mu.Unlock()

	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			m.logger.LogWarn("Failed to cleanup temp file", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
	}
}
