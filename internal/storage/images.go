package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Images persists uploaded movie posters under <staticDir>/images, naming
// each file after the record that owns it so the web layer can address them
// predictably.
type Images struct {
	dir string
}

func NewImages(staticDir string) (*Images, error) {
	dir := filepath.Join(staticDir, "images")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("storage: create image dir: %w", err)
	}
	return &Images{dir: dir}, nil
}

// Save writes the uploaded bytes as movie_<id><ext>, keeping the extension
// of the original upload, and returns the stored filename.
func (s *Images) Save(movieID int, originalName string, r io.Reader) (string, error) {
	ext := filepath.Ext(originalName)
	filename := fmt.Sprintf("movie_%d%s", movieID, ext)

	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("storage: create image: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("storage: write image: %w", err)
	}
	return filename, nil
}
