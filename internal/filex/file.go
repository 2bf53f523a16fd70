// Package filex holds small helpers for local files picked for upload.
package filex

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

// DefaultContentType is used when nothing better can be determined.
const DefaultContentType = "application/octet-stream"

// ReadRegular reads the regular file at path. Directories and other
// non-regular files are rejected.
func ReadRegular(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: not a regular file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// ContentType guesses the media type from the extension of name and falls
// back to sniffing data.
func ContentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	if len(data) == 0 {
		return DefaultContentType
	}
	return http.DetectContentType(data)
}
