package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8501"

	// DefaultAssetsDir holds the page images, relative to the working directory.
	DefaultAssetsDir = "assets"

	// DefaultEnvFile is loaded if present; a missing file is not an error.
	DefaultEnvFile = ".env"

	// ShutdownTimeout bounds graceful server shutdown.
	ShutdownTimeout = 10 * time.Second
)

// LoadEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set.
// Missing files are skipped.
func LoadEnv(files ...string) error {
	for _, file := range files {
		if file == "" {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", file, err)
		}
	}
	return nil
}
