// Package config handles meshtool configuration loading and management.
package config

// Config holds all meshtool settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Clip    ClipConfig    `yaml:"clip"`
	Export  ExportConfig  `yaml:"export"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ClipConfig holds plane-clipping settings.
type ClipConfig struct {
	// Epsilon is the plane-distance tolerance for on-plane classification.
	Epsilon float32 `yaml:"epsilon"`
}

// ExportConfig holds OBJ export settings.
type ExportConfig struct {
	// ObjectName is the o-record name written to exported files.
	ObjectName string `yaml:"object_name"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Clip: ClipConfig{
			Epsilon: 1e-5,
		},
		Export: ExportConfig{
			ObjectName: "meshattr",
		},
	}
}
