package encoding

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/nicolas-van/bisync/pkg/logging"
)

// LoadAndUnmarshalYAML loads data from the specified path and decodes it
// into the specified structure. Unknown fields are rejected.
func LoadAndUnmarshalYAML(path string, value interface{}) error {
	return LoadAndUnmarshal(path, func(data []byte) error {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		return decoder.Decode(value)
	})
}

// MarshalAndSaveYAML encodes value as YAML and atomically writes it to path.
func MarshalAndSaveYAML(path string, value interface{}, logger *logging.Logger) error {
	return MarshalAndSave(path, func() ([]byte, error) {
		return yaml.Marshal(value)
	}, logger)
}
