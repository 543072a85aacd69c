package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// File mirrors the flag surface for deployments that ship a TOML config
// file instead of environment variables.
type File struct {
	Server struct {
		Addr        string `toml:"addr"`
		AdminSecret string `toml:"admin_secret"`
	} `toml:"server"`
	Database struct {
		DSN string `toml:"dsn"`
	} `toml:"database"`
	Redis struct {
		Addr     string `toml:"addr"`
		Password string `toml:"password"`
		DB       int64  `toml:"db"`
	} `toml:"redis"`
	Notify struct {
		SlackWebhookURL string `toml:"slack_webhook_url"`
	} `toml:"notify"`
	Sentry struct {
		DSN         string `toml:"dsn"`
		Environment string `toml:"environment"`
	} `toml:"sentry"`
}

// LoadFile reads and parses a TOML config file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}
	return &f, nil
}

// Apply fills configuration left empty by flags and environment
// variables. Flags and env always win over the file.
func (f *File) Apply(server *Server, db *Database, redis *Redis, notify *Notify, sentry *Sentry) {
	if server.Addr == "" {
		server.Addr = f.Server.Addr
	}
	if server.AdminSecret == "" {
		server.AdminSecret = f.Server.AdminSecret
	}
	if db.DSN == "" {
		db.DSN = f.Database.DSN
	}
	if redis.Addr == "" {
		redis.Addr = f.Redis.Addr
		redis.Password = f.Redis.Password
		redis.DB = f.Redis.DB
	}
	if notify.SlackWebhookURL == "" {
		notify.SlackWebhookURL = f.Notify.SlackWebhookURL
	}
	if sentry.DSN == "" {
		sentry.DSN = f.Sentry.DSN
		if f.Sentry.Environment != "" {
			sentry.Environment = f.Sentry.Environment
		}
	}
}
