package models

import "time"

// Settings represents the tool configuration read from the config file and
// the environment.
type Settings struct {
	Server  string        `yaml:"server" mapstructure:"server"`
	Token   string        `yaml:"token" mapstructure:"token"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	Output  string        `yaml:"output" mapstructure:"output"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Timeout: 2 * time.Minute,
		Output:  "text",
	}
}
