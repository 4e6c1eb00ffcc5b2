// Package config loads the relaxviz YAML configuration and hot-reloads it.
package config

import (
	"time"

	"github.com/katalvlaran/relaxviz/generator"
)

// Config is the top-level YAML document. Every section is optional; missing
// keys keep their Default() values.
type Config struct {
	Generator generator.Params `yaml:"generator"`
	Engine    EngineConfig     `yaml:"engine"`
	Server    ServerConfig     `yaml:"server"`
	Log       LogConfig        `yaml:"log"`
}

// EngineConfig holds presentation pacing for runs.
type EngineConfig struct {
	// StepDelay is the pause before each edge examination ("500ms").
	StepDelay time.Duration `yaml:"step_delay"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Generator: generator.DefaultParams(),
		Engine:    EngineConfig{StepDelay: 1500 * time.Millisecond},
		Server:    ServerConfig{Addr: ":8080"},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}
