/*
Package config defines the user-tunable settings of the shell.
*/
package config

/*
Config is decoded from the optional YAML settings file. Every field has a
usable zero-configuration default, see Default.
*/
type Config struct {
	Prompt    string   `yaml:"prompt"`
	Banner    bool     `yaml:"banner"`
	Color     bool     `yaml:"color"`
	Readline  bool     `yaml:"readline"`
	ExtraDirs []string `yaml:"extra_dirs"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Prompt: "dwimsh",
		Banner: true,
		Color:  true,
	}
}
