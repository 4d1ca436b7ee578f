package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"eventease/internal/domain"
)

// fileArtifactStore keeps ticket artifacts as PNG files under a base
// directory, one file per ticket code. The path is a pure function of the
// code so retrieval never needs a database lookup.
type fileArtifactStore struct {
	baseDir string
}

// NewFileArtifactStore returns an ArtifactStore rooted at baseDir, creating
// the directory if needed.
func NewFileArtifactStore(baseDir string) (domain.ArtifactStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &fileArtifactStore{baseDir: baseDir}, nil
}

func (s *fileArtifactStore) Write(code string, data []byte) error {
	path, err := s.path(code)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

func (s *fileArtifactStore) Path(code string) (string, error) {
	path, err := s.path(code)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("stat artifact: %w", err)
	}
	return path, nil
}

func (s *fileArtifactStore) Remove(code string) error {
	path, err := s.path(code)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("remove artifact: %w", err)
	}
	return nil
}

// path rejects codes that could escape the base directory. Ticket codes are
// UUIDs, so anything with a separator or dot is hostile input.
func (s *fileArtifactStore) path(code string) (string, error) {
	if code == "" || strings.ContainsAny(code, `/\.`) {
		return "", domain.ErrNotFound
	}
	return filepath.Join(s.baseDir, code+".png"), nil
}
