package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadDotEnvUp looks for a .env file in the working directory and up to
// maxDepth parents and loads the first one found. Variables that are already
// set in the environment are not overwritten. A missing file is not an error.
func LoadDotEnvUp(maxDepth int) {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for i := 0; i <= maxDepth; i++ {
		p := filepath.Join(dir, ".env")
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
