package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/muurk/ultinotes/internal/netprobe"
)

const (
	appName    = "ultinotes"
	configFile = "config.yaml"
)

// Environment variables that override values from the settings file.
const (
	EnvMAC        = "ULTINOTES_MAC"
	EnvInterface  = "ULTINOTES_INTERFACE"
	EnvRemoteRoot = "ULTINOTES_REMOTE_ROOT"
	EnvBackend    = "ULTINOTES_BACKEND"
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/ultinotes or $HOME/.config/ultinotes
//   - macOS: $HOME/.config/ultinotes
//   - Windows: %LOCALAPPDATA%\ultinotes
func GetConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads settings from path. An empty path means the default location.
// A missing file is not an error: defaults are returned instead.
// Environment overrides are applied on top of whatever was loaded.
func Load(path string) (*Settings, error) {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	settings, err := loadFromDisk(path)
	if err != nil {
		return nil, err
	}

	settings.ApplyEnv(os.Getenv)
	return settings, nil
}

// loadFromDisk performs the actual file loading.
func loadFromDisk(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if settings.Version != 0 && settings.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", settings.Version, CurrentVersion)
	}

	settings.fillDefaults()
	return &settings, nil
}

// ApplyEnv overlays environment variables onto the settings.
// getenv is os.Getenv in production and a map lookup in tests.
func (s *Settings) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvMAC)); v != "" {
		s.Device.MAC = v
	}
	if v := strings.TrimSpace(getenv(EnvInterface)); v != "" {
		s.Device.Interface = v
	}
	if v := strings.TrimSpace(getenv(EnvRemoteRoot)); v != "" {
		s.Remote.Root = v
	}
	if v := strings.TrimSpace(getenv(EnvBackend)); v != "" {
		s.Remote.Backend = strings.ToLower(v)
	}
}

// Validate checks the settings for values the rest of the program cannot work with.
// Returns a slice of problems (empty if valid).
func (s *Settings) Validate() []error {
	var errs []error

	if _, err := netprobe.NormalizeMAC(s.Device.MAC); err != nil {
		errs = append(errs, fmt.Errorf("device.mac: %w", err))
	}
	if s.Device.Interface == "" {
		errs = append(errs, fmt.Errorf("device.interface: cannot be empty"))
	}
	if !strings.HasPrefix(s.Remote.Root, "/") {
		errs = append(errs, fmt.Errorf("remote.root: must be an absolute path, got %q", s.Remote.Root))
	}
	if s.Remote.Backend != BackendFTP && s.Remote.Backend != BackendLFTP {
		errs = append(errs, fmt.Errorf("remote.backend: must be %q or %q, got %q", BackendFTP, BackendLFTP, s.Remote.Backend))
	}
	if s.Remote.Port < 1 || s.Remote.Port > 65535 {
		errs = append(errs, fmt.Errorf("remote.port: must be 1-65535, got %d", s.Remote.Port))
	}
	if s.Remote.ConnectTimeout <= 0 || s.Remote.CommandTimeout <= 0 {
		errs = append(errs, fmt.Errorf("remote timeouts must be positive"))
	} else if s.Remote.ConnectTimeout > s.Remote.CommandTimeout {
		errs = append(errs, fmt.Errorf("remote.connect_timeout (%s) exceeds remote.command_timeout (%s)",
			s.Remote.ConnectTimeout, s.Remote.CommandTimeout))
	}
	if s.Format.MaxWidth < 10 {
		errs = append(errs, fmt.Errorf("format.max_width: must be at least 10, got %d", s.Format.MaxWidth))
	}
	if s.Format.MaxDirName < 1 {
		errs = append(errs, fmt.Errorf("format.max_dir_name: must be at least 1, got %d", s.Format.MaxDirName))
	}
	if strings.TrimSpace(s.Format.Sentinel) == "" {
		errs = append(errs, fmt.Errorf("format.sentinel: cannot be blank"))
	}

	return errs
}

// Save writes the settings to path (default location when empty).
// Performs an atomic write to prevent corruption on crash.
func (s *Settings) Save(path string) error {
	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# ultinotes configuration
# The device IP address is not stored here; it is rediscovered from
# device.mac on every run.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// String renders the settings as YAML for display.
func (s *Settings) String() string {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Sprintf("<unprintable settings: %v>", err)
	}
	return string(data)
}
