package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedImageExts is the upload whitelist. Anything else is rejected
// before touching disk.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageStore writes uploaded blobs to a directory served as a public
// bucket. Keys are randomized so uploads never collide; the original
// extension is preserved so the URL stays type-hinted.
type ImageStore struct {
	dir     string
	baseURL string
}

// NewImageStore creates the bucket directory if needed.
func NewImageStore(dir, baseURL string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &ImageStore{dir: dir, baseURL: baseURL}, nil
}

// Save stores the blob and returns its publicly resolvable URL.
func (s *ImageStore) Save(data []byte, filenameHint string) (string, error) {
	if len(data) == 0 {
		return "", &UploadError{Reason: "empty file"}
	}

	ext := strings.ToLower(filepath.Ext(filenameHint))
	if !allowedImageExts[ext] {
		return "", &UploadError{Reason: fmt.Sprintf("unsupported file type %q", ext)}
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", &UploadError{Reason: "write blob", Err: err}
	}

	return s.baseURL + "/" + name, nil
}
