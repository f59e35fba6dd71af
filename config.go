//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package chrono

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI's runtime configuration: the default zone name
// consulted when no --zone flag is given, the caller's preferred Clock
// backend name (best-effort hint; the backend with the highest
// available precision still wins if the preference isn't usable), and
// the logging verbosity.
type Config struct {
	DefaultZone      string `yaml:"default_zone"`
	PreferredBackend string `yaml:"preferred_clock_backend"`
	LogLevel         string `yaml:"log_level"`
}

// DefaultConfig is applied whenever no config file is present.
func DefaultConfig() Config {
	return Config{
		DefaultZone:      "UTC",
		PreferredBackend: "",
		LogLevel:         "info",
	}
}

// LoadConfig reads a YAML config file at path, falling back to
// DefaultConfig when path is empty or the file does not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, newError(ErrNotSupported, "Config.Load", "reading %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, newError(ErrNotSupported, "Config.Load", "parsing %s: %v", path, err)
	}
	return cfg, nil
}
