package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FindProjectRoot walks up from the working directory to the nearest go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// LoadEnv loads .env from the project root, or from the working directory
// when running outside a source checkout. Variables already set win.
func LoadEnv() error {
	root, err := FindProjectRoot()
	if err != nil {
		if root, err = os.Getwd(); err != nil {
			return err
		}
	}
	envPath := filepath.Join(root, ".env")
	if _, err := os.Stat(envPath); err != nil {
		return err
	}
	return godotenv.Load(envPath)
}
