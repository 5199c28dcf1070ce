// Package export turns palettes into downloadable JSON files.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/balkashynov/swatch/internal/models"
)

// FileName is the name every exported palette is written under
const FileName = "color-palette.json"

// Marshal encodes a palette as a flat JSON array of hex strings
func Marshal(p models.Palette) ([]byte, error) {
	return json.Marshal(p.Strings())
}

// FileDownloader writes payloads into a directory
type FileDownloader struct {
	Dir string
}

// Download writes payload to Dir/filename and returns the full path
func (d FileDownloader) Download(payload []byte, filename string) (string, error) {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, nil
}
