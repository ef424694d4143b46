package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// PrepareOutput resolves relPath and creates its parent directory if needed.
func PrepareOutput(relPath string) (string, error) {
	fullPath, parentDir, err := GetPathInfo(relPath)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", relPath, err)
	}
	if err := os.MkdirAll(parentDir, 0o755); err != nil {
		return "", fmt.Errorf("create directory %q: %w", parentDir, err)
	}
	return fullPath, nil
}
