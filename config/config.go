package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Codec          CodecConfig `yaml:"codec"`
	ReadBufferSize int         `yaml:"read_buffer_size"` // Upstream read buffer capacity
}

// Holds codec-specific configuration
type CodecConfig struct {
	Level      int  `yaml:"level"`       // DEFLATE compression level (-2 to 9)
	ZlibHeader bool `yaml:"zlib_header"` // Minimal zlib container vs headerless raw
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		ReadBufferSize: 32 * 1024, // 32KB
		Codec: CodecConfig{
			Level:      6,
			ZlibHeader: true,
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Read the config file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Initialize a new Config struct
	var config Config

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Performs basic validation of configuration values.
func validateConfig(config *Config) error {
	if config.Codec.Level < -2 || config.Codec.Level > 9 {
		return fmt.Errorf("compression level must be between -2 and 9, got %d", config.Codec.Level)
	}

	if config.ReadBufferSize <= 0 {
		return fmt.Errorf("read buffer size must be positive, got %d", config.ReadBufferSize)
	}

	return nil
}
