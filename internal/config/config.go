package config

import (
	"errors"
	"os"
	"time"

	"github.com/imdario/mergo"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Scan represents the scan profile section of the user config
type Scan struct {
	MinPort          int  `yaml:"min-port"`
	MaxPort          int  `yaml:"max-port"`
	ConnectTimeoutMS int  `yaml:"connect-timeout-ms"`
	ShowClosed       bool `yaml:"show-closed"`
}

// Config represents the data structure of our user provided yaml
// configuration
type Config struct {
	Scan Scan `yaml:"scan"`
}

// ConnectTimeout returns the per-connection timeout as a duration
func (c *Config) ConnectTimeout() time.Duration {
	return time.Duration(c.Scan.ConnectTimeoutMS) * time.Millisecond
}

// Default returns the built-in scan profile
func Default() *Config {
	return &Config{
		Scan: Scan{
			MinPort:          1,
			MaxPort:          65535,
			ConnectTimeoutMS: 1000,
			ShowClosed:       false,
		},
	}
}

// New returns unmarshaled data structure of user provided config,
// merged over the defaults so partial configs are valid
func New(confPath string) (*Config, error) {
	var config Config

	raw, err := os.ReadFile(confPath)

	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, err
	}

	if err := mergo.Merge(&config, *Default()); err != nil {
		return nil, err
	}

	return &config, nil
}

// Write persists conf to the configured config file
func Write(conf Config) error {
	configFile, ok := viper.Get("config-file").(string)

	if !ok || configFile == "" {
		return errors.New("config file location not set")
	}

	file, err := os.Create(configFile)

	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	return encoder.Encode(conf)
}
