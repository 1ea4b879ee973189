package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Defaults preserved from the original desktop app.
const (
	DefaultAdminPassword = "admin123"
	DefaultPasswordSalt  = "s@lt123"
	DefaultQuestionsFile = "Quiz_data.json"
	backupSuffix         = "_backup"
)

// Config carries every tunable the application reads. It is built once at
// process start and passed down explicitly; nothing reads these as globals.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string

	// BackupPath is where an incompatible database is archived before a
	// fresh one is created. Always a sibling of DBPath.
	BackupPath string

	// QuestionsFile is the JSON question bank.
	QuestionsFile string

	// AdminPassword gates the administrator results view.
	AdminPassword string

	// PasswordSalt is appended to passwords before hashing. Fixed and
	// shared by all users, as in the original.
	PasswordSalt string
}

// Load builds a Config from the given database path and the environment.
// An empty dbPath falls back to QUIZDECK_DB, then the default XDG location.
func Load(dbPath string) (Config, error) {
	var err error
	if dbPath == "" {
		dbPath = os.Getenv("QUIZDECK_DB")
	}
	if dbPath == "" {
		dbPath, err = defaultDBPath()
		if err != nil {
			return Config{}, err
		}
	}
	if err := ensureDir(dbPath); err != nil {
		return Config{}, fmt.Errorf("create data dir: %w", err)
	}

	cfg := Config{
		DBPath:        dbPath,
		BackupPath:    BackupPathFor(dbPath),
		QuestionsFile: DefaultQuestionsFile,
		AdminPassword: DefaultAdminPassword,
		PasswordSalt:  DefaultPasswordSalt,
	}
	if f := os.Getenv("QUIZDECK_QUESTIONS"); f != "" {
		cfg.QuestionsFile = f
	}
	if p := os.Getenv("QUIZDECK_ADMIN_PASSWORD"); p != "" {
		cfg.AdminPassword = p
	}
	return cfg, nil
}

// BackupPathFor derives the archive path for a database file:
// quiz.db -> quiz_backup.db.
func BackupPathFor(dbPath string) string {
	ext := filepath.Ext(dbPath)
	return dbPath[:len(dbPath)-len(ext)] + backupSuffix + ext
}

// defaultDBPath resolves the database file path under
// $XDG_DATA_HOME/quizdeck, falling back to ~/.local/share/quizdeck.
func defaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "quizdeck", "quiz.db"), nil
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
