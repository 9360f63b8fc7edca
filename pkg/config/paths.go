package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// globalConfigurationName is the name of the global configuration file
// within the user's home directory.
const globalConfigurationName = ".bisync.yml"

// ConfigurationPath returns the path of the YAML-based global configuration
// file. It does not verify that the file exists.
func ConfigurationPath() (string, error) {
	homeDirectoryPath, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to compute path to home directory: %w", err)
	}
	return filepath.Join(homeDirectoryPath, globalConfigurationName), nil
}
