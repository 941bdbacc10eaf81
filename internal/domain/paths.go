package domain

import "path/filepath"

// Well-known file and directory names inside the data directory.
const (
	TasksFileName    = "tasks.json"
	SettingsFileName = "settings.json"
	ConfigFileName   = "config.toml"
	LogsDirName      = "logs"
	LogFileName      = "missionctl.log"
)

// TasksPath returns the path of the durable tasks record.
func TasksPath(dataDir string) string {
	return filepath.Join(dataDir, TasksFileName)
}

// SettingsPath returns the path of the durable settings record.
func SettingsPath(dataDir string) string {
	return filepath.Join(dataDir, SettingsFileName)
}

// LogPath returns the path of the application log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, LogsDirName, LogFileName)
}
