package main

import (
	"os"
	"path/filepath"
)

const appDir = ".imagesearch"

func appPath(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, appDir, name), nil
}

func defaultConfigPath() (string, error) {
	return appPath("config.yaml")
}

func defaultPreferencesPath() (string, error) {
	return appPath("preferences.json")
}

func defaultLogPath() (string, error) {
	return appPath("imagesearch.log")
}
