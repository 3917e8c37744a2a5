// Package config provides client configuration for the Pali terminal tools.
//
// This package manages a YAML configuration file that stores the Pali
// server endpoint and the API key used to authenticate requests. The file
// follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/pali/config.yaml or $HOME/.config/pali/config.yaml
//   - macOS: $HOME/.config/pali/config.yaml
//   - Windows: %LOCALAPPDATA%\pali\config.yaml
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.APIKey = "pk_..."
//	if err := cfg.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Security
//
// The configuration file stores the API key, so the file is written with
// 0600 permissions and the directory with 0700.
//
// # Thread Safety
//
// File operations are protected by a mutex to ensure atomic writes.
package config
