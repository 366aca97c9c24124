package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func dataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return dataHome
}

// DefaultCartPath is the persistent slot holding the serialized cart.
func DefaultCartPath() string {
	return filepath.Join(dataHome(), "warung", "cart.yaml")
}

// DefaultCatalogPath points at an optional product catalog override. The
// built-in fixtures are used when no file exists there.
func DefaultCatalogPath() string {
	return filepath.Join(dataHome(), "warung", "products.yaml")
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = home
	}

	return filepath.Abs(path)
}
