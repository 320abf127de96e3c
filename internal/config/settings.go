package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Settings is the optional YAML settings file
type Settings struct {
	Channels   []string `yaml:"channels"`
	DaysBefore *int     `yaml:"days_before"`
	SendDMUser string   `yaml:"send_dm_user"`
	OutputDir  string   `yaml:"output_dir"`
}

// LoadSettingsFromFile loads settings from a YAML file
func LoadSettingsFromFile(path string) (*Settings, error) {
	if path == "" {
		return nil, goerr.New("settings file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "settings file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read settings file",
			goerr.V("path", path))
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML settings",
			goerr.V("path", path))
	}

	return &settings, nil
}
