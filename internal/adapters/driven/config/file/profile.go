package file

import (
	"os"
	"path/filepath"
	"runtime"
)

// defaultProfileDir returns the platform-default location of Chrome's
// "Default" profile directory.
func defaultProfileDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Default")
	case "windows":
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, "Google", "Chrome", "User Data", "Default")
		}
		return filepath.Join(home, "AppData", "Local", "Google", "Chrome", "User Data", "Default")
	default:
		return filepath.Join(home, ".config", "google-chrome", "Default")
	}
}
