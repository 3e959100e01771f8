// Package userconfig provides user configuration management for rigup.
// Configuration is stored in ~/.config/rigup/config.toml (RIGUP_CONFIG
// overrides the location) and can be modified via the `rigup config`
// command.
package userconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rigup-dev/rigup/internal/config"
)

// Config represents user-configurable settings.
type Config struct {
	// LLVMVersion overrides the pinned LLVM toolchain repository major.
	LLVMVersion int `toml:"llvm_version"`

	// NDKVersion overrides the pinned Android NDK release.
	NDKVersion string `toml:"ndk_version"`

	// Sudo controls whether package manager commands run under sudo.
	// Default is true; root-only containers set it to false.
	Sudo bool `toml:"sudo"`

	// AptOptions appends extra arguments to every apt-get invocation.
	AptOptions []string `toml:"apt_options"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LLVMVersion: config.DefaultLLVMVersion,
		NDKVersion:  config.DefaultNDKVersion,
		Sudo:        true,
	}
}

// DefaultPath returns the config file location: RIGUP_CONFIG when set,
// otherwise the rigup directory under the user config dir.
func DefaultPath() (string, error) {
	if p := os.Getenv(config.EnvConfigFile); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, "rigup", "config.toml"), nil
}

// Load reads the config file and returns the configuration.
// Returns default values if the file doesn't exist.
// Returns an error only for file parsing issues, not missing files.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return DefaultConfig(), nil // Silently use defaults
	}
	return loadFromPath(path)
}

// loadFromPath reads config from a specific file path (for testing).
func loadFromPath(path string) (*Config, error) {
	userCfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return userCfg, nil // File doesn't exist, use defaults
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), userCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return userCfg, nil
}

// Save writes the configuration to the config file.
func (c *Config) Save() error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	return c.saveToPath(path)
}

// saveToPath writes config to a specific file path (for testing).
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the value of a config key as a string.
// Returns empty string and false if the key doesn't exist.
func (c *Config) Get(key string) (string, bool) {
	switch strings.ToLower(key) {
	case "llvm_version":
		return strconv.Itoa(c.LLVMVersion), true
	case "ndk_version":
		return c.NDKVersion, true
	case "sudo":
		return strconv.FormatBool(c.Sudo), true
	case "apt_options":
		return strings.Join(c.AptOptions, ","), true
	default:
		return "", false
	}
}

// Set updates a config value from a string.
// Returns an error if the key doesn't exist or the value is invalid.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "llvm_version":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid value for llvm_version: must be a positive integer")
		}
		c.LLVMVersion = n
		return nil
	case "ndk_version":
		if value == "" {
			return fmt.Errorf("invalid value for ndk_version: must not be empty")
		}
		c.NDKVersion = value
		return nil
	case "sudo":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for sudo: must be true or false")
		}
		c.Sudo = b
		return nil
	case "apt_options":
		if value == "" {
			c.AptOptions = nil
			return nil
		}
		c.AptOptions = strings.Split(value, ",")
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}

// AvailableKeys returns a list of all configurable keys with descriptions.
func AvailableKeys() map[string]string {
	return map[string]string{
		"llvm_version": "LLVM toolchain repository major version (default 15)",
		"ndk_version":  "Android NDK release to install and patch",
		"sudo":         "Run package manager commands under sudo (true/false)",
		"apt_options":  "Extra apt-get arguments, comma separated",
	}
}
