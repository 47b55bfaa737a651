package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindEnvFile searches the working directory and its parents for filename.
// An empty filename means .env; absolute paths are only checked for existence.
func FindEnvFile(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err != nil {
			return "", err
		}
		return filename, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: %w", filename, os.ErrNotExist)
		}
		dir = parent
	}
}
