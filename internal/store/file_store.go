package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"everafter/internal/domain"
	"everafter/internal/signature"
)

// FileStore keeps signature recordings and exported artifacts under dir.
// Relative paths resolve against dir; absolute paths are used as given.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// Dir returns the store root.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

// LoadRecording reads a stroke recording.
func (s *FileStore) LoadRecording(name string) (signature.Recording, error) {
	var rec signature.Recording
	if err := readJSON(s.path(name), &rec); err != nil {
		return signature.Recording{}, fmt.Errorf("load recording %s: %w", name, err)
	}
	if len(rec.Strokes) == 0 {
		return signature.Recording{}, fmt.Errorf("load recording %s: no strokes", name)
	}
	return rec, nil
}

// SaveRecording writes rec as indented JSON.
func (s *FileStore) SaveRecording(name string, rec signature.Recording) error {
	return writeJSON(s.path(name), rec, 0o644)
}

// SaveArtifact writes the PNG bytes of a and returns the path written.
func (s *FileStore) SaveArtifact(name string, a domain.SignatureArtifact) (string, error) {
	if len(a.PNG) == 0 {
		return "", errors.New("save artifact: empty image")
	}
	if !strings.EqualFold(filepath.Ext(name), ".png") {
		name += ".png"
	}
	p := s.path(name)
	if err := writeFile(p, a.PNG, 0o644); err != nil {
		return "", fmt.Errorf("save artifact %s: %w", p, err)
	}
	return p, nil
}
