package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/BioBenchWorks/nanoqc-cli/internal/assay"
)

// Protocol is a named bundle of dilution targets, owned by
// configuration and read-only to the engine.
type Protocol struct {
	TargetConc float64 `mapstructure:"target_conc" yaml:"target_conc"`
	FinalVol   float64 `mapstructure:"final_vol" yaml:"final_vol"`
}

// Config is the tool configuration.
type Config struct {
	DefaultFactor  float64             `mapstructure:"default_factor" yaml:"default_factor"`
	Estimate260230 bool                `mapstructure:"estimate_260_230" yaml:"estimate_260_230"`
	LogLevel       string              `mapstructure:"log_level" yaml:"log_level"`
	LogFormat      string              `mapstructure:"log_format" yaml:"log_format"`
	Protocols      map[string]Protocol `mapstructure:"protocols" yaml:"protocols"`
}

// DefaultProtocols are always available, even with no config file.
func DefaultProtocols() map[string]Protocol {
	return map[string]Protocol{
		"PCR":    {TargetConc: 10, FinalVol: 20},
		"qPCR":   {TargetConc: 5, FinalVol: 10},
		"Sanger": {TargetConc: 15, FinalVol: 12},
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultFactor:  50.0,
		Estimate260230: true,
		LogLevel:       "info",
		LogFormat:      "console",
		Protocols:      DefaultProtocols(),
	}
}

// Load loads configuration from file, env, and defaults.
// Precedence: explicit cfgFile > env (NANOQC_*) > ~/.nanoqc/config.yaml > defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NANOQC")
	v.AutomaticEnv()

	v.SetDefault("default_factor", 50.0)
	v.SetDefault("estimate_260_230", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			// An explicitly named config file must be readable.
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".nanoqc"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// The built-in protocols back any names the file does not define.
	if c.Protocols == nil {
		c.Protocols = map[string]Protocol{}
	}
	for name, p := range DefaultProtocols() {
		if _, ok := lookup(c.Protocols, name); !ok {
			c.Protocols[name] = p
		}
	}
	return &c, nil
}

// Save writes the configuration as YAML. If path is empty it writes to
// ~/.nanoqc/config.yaml, creating the directory if necessary.
func Save(c *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".nanoqc")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Protocol resolves a protocol by name, case-insensitively (viper
// lowercases map keys read from files, so exact-case lookups would
// miss). Unknown names are request-level errors.
func (c *Config) Protocol(name string) (assay.Protocol, error) {
	if p, ok := lookup(c.Protocols, name); ok {
		return assay.Protocol{Name: name, TargetConc: p.TargetConc, FinalVol: p.FinalVol}, nil
	}
	return assay.Protocol{}, fmt.Errorf("unknown protocol %q (available: %s)", name, strings.Join(c.ProtocolNames(), ", "))
}

// ProtocolNames lists the configured protocol names, sorted.
func (c *Config) ProtocolNames() []string {
	names := make([]string, 0, len(c.Protocols))
	for name := range c.Protocols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookup(m map[string]Protocol, name string) (Protocol, bool) {
	for k, p := range m {
		if strings.EqualFold(k, name) {
			return p, true
		}
	}
	return Protocol{}, false
}
