// Package validation checks store configuration before any file is touched.
package validation

import (
	"fmt"
	"os"
	"strings"

	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

// ValidateConfig verifies a store configuration is usable: the folder path
// must be non-blank, and when something already exists at that path it must
// be a directory.
func ValidateConfig(cfg types.Config) error {
	path := strings.TrimSpace(cfg.FolderPath)
	if path == "" {
		return fmt.Errorf("folder path must not be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Created lazily on first save.
			return nil
		}
		return fmt.Errorf("failed to inspect folder path %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("folder path %s exists but is not a directory", path)
	}
	return nil
}
