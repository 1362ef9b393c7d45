package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const (
	configDir  = ".dbx"
	configFile = "config"
	configType = "yaml"

	// keyringService namespaces profile passwords in the OS keychain.
	keyringService = "dbx"
)

// DefaultProfileName is the fallback profile used when no profile name is
// given and no preference is configured.
const DefaultProfileName = "default"

// Load reads the configuration from ~/.dbx/config.yaml and attaches stored
// passwords from the OS keychain. Returns an empty config if the file does
// not exist.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, fmt.Errorf("config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFile)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)

	cfg := &Config{}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	for i := range cfg.Profiles {
		// Missing keychain entries are not an error; the profile
		// simply has no password.
		if pw, err := keyring.Get(keyringService, cfg.Profiles[i].Name); err == nil {
			cfg.Profiles[i].Password = pw
		}
	}

	return cfg, nil
}

// Save writes the configuration to ~/.dbx/config.yaml. Passwords go to the
// OS keychain, never the file.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return fmt.Errorf("config dir: %w", err)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	for _, p := range cfg.Profiles {
		if p.Password == "" {
			continue
		}
		if err := keyring.Set(keyringService, p.Name, p.Password); err != nil {
			return fmt.Errorf("store password for %q: %w", p.Name, err)
		}
	}

	v := viper.New()
	v.Set("profiles", cfg.Profiles)
	v.Set("preferences", cfg.Preferences)

	path := filepath.Join(dir, configFile+"."+configType)
	return v.WriteConfigAs(path)
}

// Resolve picks the profile to connect with: an explicit name wins, then
// the configured default_profile preference, then DefaultProfileName.
func (cfg *Config) Resolve(name string) (Profile, error) {
	if name == "" {
		name = cfg.Preferences.DefaultProfile
	}
	if name == "" {
		name = DefaultProfileName
	}
	p, ok := cfg.Lookup(name)
	if !ok {
		return Profile{}, fmt.Errorf("profile %q not found", name)
	}
	return p, nil
}

// Dir returns the configuration directory (~/.dbx).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir), nil
}
