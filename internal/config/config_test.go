package config

import (
	"path/filepath"
	"testing"
)

func TestBackupPathFor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"quiz.db", "quiz_backup.db"},
		{"/data/quiz.db", "/data/quiz_backup.db"},
		{"store.sqlite", "store_backup.sqlite"},
	}
	for _, tt := range tests {
		if got := BackupPathFor(tt.in); got != tt.want {
			t.Errorf("BackupPathFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadUsesExplicitPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "quiz.db")
	cfg, err := Load(dbPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != dbPath {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, dbPath)
	}
	if cfg.BackupPath != BackupPathFor(dbPath) {
		t.Errorf("BackupPath = %q", cfg.BackupPath)
	}
	// The parent directory is created eagerly.
	if _, err := Load(dbPath); err != nil {
		t.Errorf("second load: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "quiz.db")
	t.Setenv("QUIZDECK_QUESTIONS", "other.json")
	t.Setenv("QUIZDECK_ADMIN_PASSWORD", "secret")

	cfg, err := Load(dbPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.QuestionsFile != "other.json" {
		t.Errorf("QuestionsFile = %q", cfg.QuestionsFile)
	}
	if cfg.AdminPassword != "secret" {
		t.Errorf("AdminPassword = %q", cfg.AdminPassword)
	}
	if cfg.PasswordSalt != DefaultPasswordSalt {
		t.Errorf("PasswordSalt = %q", cfg.PasswordSalt)
	}
}

func TestLoadEnvDBPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "env.db")
	t.Setenv("QUIZDECK_DB", dbPath)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != dbPath {
		t.Errorf("DBPath = %q, want env value %q", cfg.DBPath, dbPath)
	}
}
