// Package storage persists uploaded files on local disk and hands back the
// stored filename as an opaque reference.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyFilename   = errors.New("empty filename")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// imageExtensions is the allow-list for product images. Payment proofs accept
// any extension.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Store saves an uploaded file and returns its reference.
type Store interface {
	Save(filename string, r io.Reader) (string, error)
}

// DiskStore writes files under one directory. A nil allow-list accepts every
// extension.
type DiskStore struct {
	dir     string
	allowed map[string]bool
}

// NewImageStore only accepts image extensions.
func NewImageStore(dir string) *DiskStore {
	return &DiskStore{dir: dir, allowed: imageExtensions}
}

// NewProofStore accepts any extension.
func NewProofStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

// Save sanitizes the client filename, prefixes it with a uuid so repeated
// uploads never collide, and writes it under the store directory.
func (s *DiskStore) Save(filename string, r io.Reader) (string, error) {
	name := sanitize(filename)
	if name == "" {
		return "", ErrEmptyFilename
	}

	ext := strings.ToLower(filepath.Ext(name))
	if s.allowed != nil && !s.allowed[ext] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	stored := uuid.NewString() + "_" + name
	f, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return stored, nil
}

// sanitize strips any path component and replaces everything outside a safe
// character set with underscores.
func sanitize(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}

	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)

	if strings.Trim(name, "._") == "" {
		return ""
	}
	return name
}
