package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	data := []byte(`
server:
  address: ":5001"
database:
  driver: "mysql"
  url: "user:pass@tcp(localhost:3306)/auction?parseTime=true"
redis:
  address: "localhost:6379"
  db: 2
auth:
  signing_key: "secret"
  access_ttl_minutes: 15
  refresh_ttl_hours: 24
storage:
  bucket: "images"
  region: "us-east-1"
fcm:
  credentials_file: "fcm.json"
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_PATH", path)

	cfg := LoadConfig()

	if cfg.Server.Address != ":5001" {
		t.Errorf("server address = %q, want :5001", cfg.Server.Address)
	}
	if cfg.Database.Driver != "mysql" {
		t.Errorf("database driver = %q, want mysql", cfg.Database.Driver)
	}
	if cfg.Redis.DB != 2 {
		t.Errorf("redis db = %d, want 2", cfg.Redis.DB)
	}
	if cfg.Auth.AccessTTLMin != 15 || cfg.Auth.RefreshTTLHours != 24 {
		t.Errorf("auth ttls = %d/%d, want 15/24", cfg.Auth.AccessTTLMin, cfg.Auth.RefreshTTLHours)
	}
	if cfg.Storage.Bucket != "images" {
		t.Errorf("storage bucket = %q, want images", cfg.Storage.Bucket)
	}
	if cfg.FCM.CredentialsFile != "fcm.json" {
		t.Errorf("fcm credentials file = %q, want fcm.json", cfg.FCM.CredentialsFile)
	}
}
