/**
 * CONTEXT:   XDG-style application directory resolution for config and data files
 * INPUT:     XDG_CONFIG_HOME / XDG_DATA_HOME environment variables, or the user's home directory
 * OUTPUT:    Absolute paths for the config directory, data directory, database file, and hook files
 * BUSINESS:  A single local user's Pomodoro state and config live under well-known
 *            OS-appropriate directories so the CLI needs no installation step
 * CHANGE:    Initial implementation
 * RISK:      Low - path computation only, no I/O beyond directory creation
 */

package appdir

import (
	"os"
	"path/filepath"
)

const appName = "pomodoro"

// Dirs holds the resolved paths this application reads and writes.
type Dirs struct {
	ConfigDir string
	DataDir   string
}

// Resolve computes the config and data directories following
// $XDG_CONFIG_HOME / $XDG_DATA_HOME, falling back to ~/.config and
// ~/.local/share.
func Resolve() (Dirs, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Dirs{}, err
	}

	configBase := os.Getenv("XDG_CONFIG_HOME")
	if configBase == "" {
		configBase = filepath.Join(home, ".config")
	}

	dataBase := os.Getenv("XDG_DATA_HOME")
	if dataBase == "" {
		dataBase = filepath.Join(home, ".local", "share")
	}

	return Dirs{
		ConfigDir: filepath.Join(configBase, appName),
		DataDir:   filepath.Join(dataBase, appName),
	}, nil
}

// ConfigPath returns the path to config.toml.
func (d Dirs) ConfigPath() string {
	return filepath.Join(d.ConfigDir, "config.toml")
}

// DatabasePath returns the path to the SQLite database file.
func (d Dirs) DatabasePath() string {
	return filepath.Join(d.DataDir, "pomodoro.db")
}

// HookPath returns the path to a named hook executable ("start" or "stop").
func (d Dirs) HookPath(name string) string {
	return filepath.Join(d.ConfigDir, "hooks", name)
}

// EnsureDataDir creates the data directory if it doesn't already exist.
func (d Dirs) EnsureDataDir() error {
	return os.MkdirAll(d.DataDir, 0o755)
}
