package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func(t *testing.T) types.Config
		wantErr bool
	}{
		{
			name:    "empty path",
			cfg:     func(t *testing.T) types.Config { return types.Config{} },
			wantErr: true,
		},
		{
			name:    "blank path",
			cfg:     func(t *testing.T) types.Config { return types.Config{FolderPath: "   "} },
			wantErr: true,
		},
		{
			name: "existing directory",
			cfg: func(t *testing.T) types.Config {
				return types.Config{FolderPath: t.TempDir()}
			},
		},
		{
			name: "missing path is created later",
			cfg: func(t *testing.T) types.Config {
				return types.Config{FolderPath: filepath.Join(t.TempDir(), "characters")}
			},
		},
		{
			name: "path is a regular file",
			cfg: func(t *testing.T) types.Config {
				path := filepath.Join(t.TempDir(), "occupied")
				if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
					t.Fatal(err)
				}
				return types.Config{FolderPath: path}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.cfg(t))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
