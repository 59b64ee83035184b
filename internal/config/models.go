package config

import (
	"os"
	"time"
)

// CurrentVersion is the settings file schema version.
const CurrentVersion = 1

// Backend names for the file-transfer client.
const (
	BackendFTP  = "ftp"
	BackendLFTP = "lftp"
)

// Settings represents the entire user configuration file.
// The device address is deliberately absent: it is rediscovered every run.
type Settings struct {
	Version int            `yaml:"version"`
	Device  DeviceSettings `yaml:"device"`
	Remote  RemoteSettings `yaml:"remote"`
	Format  FormatSettings `yaml:"format"`
	Tools   ToolSettings   `yaml:"tools"`
	WorkDir string         `yaml:"work_dir,omitempty"` // Where generated text files are written
}

// DeviceSettings identifies the target device on the local network.
type DeviceSettings struct {
	MAC       string `yaml:"mac"`       // Hardware address, e.g. "2:15:41:7e:44:32"
	Interface string `yaml:"interface"` // Local interface to scan, e.g. "en1"
}

// RemoteSettings controls the file-transfer session.
type RemoteSettings struct {
	Root           string        `yaml:"root"`    // Base path holding one directory per title
	Backend        string        `yaml:"backend"` // "ftp" (native) or "lftp"
	User           string        `yaml:"user"`
	Password       string        `yaml:"password,omitempty"`
	Port           int           `yaml:"port"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	CommandTimeout time.Duration `yaml:"command_timeout"`
}

// FormatSettings controls the text formatter.
type FormatSettings struct {
	MaxWidth   int    `yaml:"max_width"`    // Device display width in columns
	MaxDirName int    `yaml:"max_dir_name"` // Longest directory name the device lists cleanly
	Sentinel   string `yaml:"sentinel"`     // Line that ends text entry
}

// ToolSettings names the external programs used by the OS probe and lftp backend.
type ToolSettings struct {
	ARP          string        `yaml:"arp"`
	FPing        string        `yaml:"fping"`
	LFTP         string        `yaml:"lftp"`
	SweepTimeout time.Duration `yaml:"sweep_timeout"`
}

// Default values
const (
	DefaultMAC            = "2:15:41:7e:44:32"
	DefaultInterface      = "en1"
	DefaultRemoteRoot     = "/USB1/Favorite Games"
	DefaultUser           = "anonymous"
	DefaultPort           = 21
	DefaultConnectTimeout = 5 * time.Second
	DefaultCommandTimeout = 10 * time.Second
	DefaultSweepTimeout   = 10 * time.Second
	DefaultMaxWidth       = 37
	DefaultMaxDirName     = 27
	DefaultSentinel       = "-done-"
)

// NewSettings creates Settings populated with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: CurrentVersion,
		Device: DeviceSettings{
			MAC:       DefaultMAC,
			Interface: DefaultInterface,
		},
		Remote: RemoteSettings{
			Root:           DefaultRemoteRoot,
			Backend:        BackendFTP,
			User:           DefaultUser,
			Port:           DefaultPort,
			ConnectTimeout: DefaultConnectTimeout,
			CommandTimeout: DefaultCommandTimeout,
		},
		Format: FormatSettings{
			MaxWidth:   DefaultMaxWidth,
			MaxDirName: DefaultMaxDirName,
			Sentinel:   DefaultSentinel,
		},
		Tools: ToolSettings{
			ARP:          "arp",
			FPing:        "fping",
			LFTP:         "lftp",
			SweepTimeout: DefaultSweepTimeout,
		},
		WorkDir: os.TempDir(),
	}
}

// fillDefaults replaces zero values left by a partial settings file.
func (s *Settings) fillDefaults() {
	d := NewSettings()

	if s.Version == 0 {
		s.Version = d.Version
	}
	if s.Device.MAC == "" {
		s.Device.MAC = d.Device.MAC
	}
	if s.Device.Interface == "" {
		s.Device.Interface = d.Device.Interface
	}
	if s.Remote.Root == "" {
		s.Remote.Root = d.Remote.Root
	}
	if s.Remote.Backend == "" {
		s.Remote.Backend = d.Remote.Backend
	}
	if s.Remote.User == "" {
		s.Remote.User = d.Remote.User
	}
	if s.Remote.Port == 0 {
		s.Remote.Port = d.Remote.Port
	}
	if s.Remote.ConnectTimeout == 0 {
		s.Remote.ConnectTimeout = d.Remote.ConnectTimeout
	}
	if s.Remote.CommandTimeout == 0 {
		s.Remote.CommandTimeout = d.Remote.CommandTimeout
	}
	if s.Format.MaxWidth == 0 {
		s.Format.MaxWidth = d.Format.MaxWidth
	}
	if s.Format.MaxDirName == 0 {
		s.Format.MaxDirName = d.Format.MaxDirName
	}
	if s.Format.Sentinel == "" {
		s.Format.Sentinel = d.Format.Sentinel
	}
	if s.Tools.ARP == "" {
		s.Tools.ARP = d.Tools.ARP
	}
	if s.Tools.FPing == "" {
		s.Tools.FPing = d.Tools.FPing
	}
	if s.Tools.LFTP == "" {
		s.Tools.LFTP = d.Tools.LFTP
	}
	if s.Tools.SweepTimeout == 0 {
		s.Tools.SweepTimeout = d.Tools.SweepTimeout
	}
	if s.WorkDir == "" {
		s.WorkDir = d.WorkDir
	}
}
