package config_test

import (
	"testing"

	"github.com/groupbuy/core/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{
			name:    "Valid level: debug",
			level:   "debug",
			wantErr: false,
		},
		{
			name:    "Valid level: DEBUG (case insensitive)",
			level:   "DEBUG",
			wantErr: false,
		},
		{
			name:    "Valid level: info",
			level:   "info",
			wantErr: false,
		},
		{
			name:    "Valid level: warn",
			level:   "warn",
			wantErr: false,
		},
		{
			name:    "Valid level: error",
			level:   "error",
			wantErr: false,
		},
		{
			name:    "Empty level defaults to info",
			level:   "",
			wantErr: false,
		},
		{
			name:    "Invalid level",
			level:   "verbose",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Logger{Level: tt.level}

			logger, err := cfg.Configure()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Configure() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && logger == nil {
				t.Error("Configure() returned nil logger")
			}
		})
	}
}

func TestLogger_ConfigureJSON(t *testing.T) {
	cfg := config.Logger{Level: "info", JSON: true}

	logger, err := cfg.Configure()
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if logger == nil {
		t.Fatal("Configure() returned nil logger")
	}
}
