// Package config provides user configuration management for ultinotes.
//
// Settings live in a YAML file stored in a platform-appropriate location:
//   - Linux: $XDG_CONFIG_HOME/ultinotes/config.yaml or $HOME/.config/ultinotes/config.yaml
//   - macOS: $HOME/.config/ultinotes/config.yaml
//   - Windows: %LOCALAPPDATA%\ultinotes\config.yaml
//
// # Precedence
//
// Defaults, then the settings file, then environment variables
// (ULTINOTES_MAC, ULTINOTES_INTERFACE, ULTINOTES_REMOTE_ROOT, ULTINOTES_BACKEND),
// then command-line flags applied by the caller.
//
// # Usage Example
//
//	settings, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if errs := settings.Validate(); len(errs) > 0 {
//	    log.Fatal(errs[0])
//	}
//
// The discovered device address is never written to disk.
package config
