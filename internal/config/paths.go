package config

import (
	"os"
	"path/filepath"
)

const appDirName = ".cleanchat"

// DataDir returns the base data directory for cleanchat.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the path to the settings file.
func ConfigPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "config.toml"), nil
}

// ChannelsPath returns the path to the file seeding the retained channel
// names.
func ChannelsPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "channels.toml"), nil
}

// PreviewLogPath returns the path the terminal preview logs to.
func PreviewLogPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "preview.log"), nil
}
