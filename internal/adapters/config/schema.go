package config

// File represents the structure of the hotglsl.yaml configuration file.
type File struct {
	Version  string   `yaml:"version"`
	Paths    []string `yaml:"paths"`
	Compiler string   `yaml:"compiler"`
	Settle   string   `yaml:"settle"`
	Out      string   `yaml:"out"`
	Output   string   `yaml:"output"`
}
