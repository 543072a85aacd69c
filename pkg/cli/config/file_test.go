package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/groupbuy/core/pkg/cli/config"
)

const sampleConfig = `
[server]
addr = "0.0.0.0:9000"
admin_secret = "file-secret"

[database]
dsn = "postgres://file/groupbuy"

[redis]
addr = "redis:6379"
db = 2

[notify]
slack_webhook_url = "https://hooks.slack.com/services/T00/B00/xyz"

[sentry]
dsn = "https://key@sentry.example.com/1"
environment = "staging"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("parses all sections", func(t *testing.T) {
		file, err := config.LoadFile(writeConfig(t, sampleConfig))
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}

		if file.Server.Addr != "0.0.0.0:9000" {
			t.Errorf("Server.Addr = %q", file.Server.Addr)
		}
		if file.Database.DSN != "postgres://file/groupbuy" {
			t.Errorf("Database.DSN = %q", file.Database.DSN)
		}
		if file.Redis.DB != 2 {
			t.Errorf("Redis.DB = %d", file.Redis.DB)
		}
		if file.Sentry.Environment != "staging" {
			t.Errorf("Sentry.Environment = %q", file.Sentry.Environment)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := config.LoadFile("/does/not/exist.toml"); err == nil {
			t.Error("LoadFile() expected error for missing file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		if _, err := config.LoadFile(writeConfig(t, "not [valid toml")); err == nil {
			t.Error("LoadFile() expected error for malformed file")
		}
	})
}

func TestFile_Apply(t *testing.T) {
	file, err := config.LoadFile(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	t.Run("fills empty fields", func(t *testing.T) {
		var (
			server config.Server
			db     config.Database
			redis  config.Redis
			notify config.Notify
			sentry config.Sentry
		)

		file.Apply(&server, &db, &redis, &notify, &sentry)

		if server.Addr != "0.0.0.0:9000" {
			t.Errorf("server.Addr = %q", server.Addr)
		}
		if db.DSN != "postgres://file/groupbuy" {
			t.Errorf("db.DSN = %q", db.DSN)
		}
		if redis.Addr != "redis:6379" || redis.DB != 2 {
			t.Errorf("redis = %+v", redis)
		}
		if sentry.Environment != "staging" {
			t.Errorf("sentry.Environment = %q", sentry.Environment)
		}
	})

	t.Run("flags win over the file", func(t *testing.T) {
		server := config.Server{Addr: "localhost:8080"}
		db := config.Database{DSN: "postgres://flag/groupbuy"}
		var (
			redis  config.Redis
			notify config.Notify
			sentry config.Sentry
		)

		file.Apply(&server, &db, &redis, &notify, &sentry)

		if server.Addr != "localhost:8080" {
			t.Errorf("server.Addr = %q, file overrode the flag", server.Addr)
		}
		if db.DSN != "postgres://flag/groupbuy" {
			t.Errorf("db.DSN = %q, file overrode the flag", db.DSN)
		}
	})
}
