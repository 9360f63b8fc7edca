// Package config loads bisync's global YAML configuration file: the
// defaults applied to every invocation unless overridden by a command line
// flag.
package config

import (
	"os"

	"github.com/nicolas-van/bisync/pkg/encoding"
	"github.com/nicolas-van/bisync/pkg/logging"
)

// Configuration is the global YAML configuration object type.
type Configuration struct {
	// Auto is the default value of the --auto flag: whether to skip
	// interactive confirmation of individual transfers.
	Auto bool `yaml:"auto"`
	// FullAuto is the default value of the --full-auto flag: Auto, plus
	// automatic conflict resolution instead of prompting.
	FullAuto bool `yaml:"fullAuto"`
	// NoTrash is the default value of the --no-trash flag: whether deleted
	// files are removed outright instead of moved into the trash folder.
	NoTrash bool `yaml:"noTrash"`
	// Exclude is the default list of doublestar glob patterns excluded from
	// every replica, in addition to any patterns given with --exclude.
	Exclude []string `yaml:"exclude"`
	// LogLevel is the default log level name (see logging.NameToLevel).
	LogLevel string `yaml:"logLevel"`
}

// LoadConfiguration attempts to load a YAML-based global configuration file
// from path. A missing file is not an error: it yields a zero-value
// Configuration, under which every default matches the original bisync
// tool's own defaults (confirm everything, use the trash folder, log at the
// info level).
func LoadConfiguration(path string) (*Configuration, error) {
	result := &Configuration{}
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, err
	}
	return result, nil
}

// SaveConfiguration writes config to path as YAML, creating or replacing it.
func SaveConfiguration(path string, config *Configuration, logger *logging.Logger) error {
	return encoding.MarshalAndSaveYAML(path, config, logger)
}
