package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogFile != DefaultLogFile {
		t.Errorf("DefaultConfig() LogFile = %v, want %v", cfg.LogFile, DefaultLogFile)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("DefaultConfig() LogLevel = %v, want %v", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("DefaultConfig() MaxFileSize = %v, want %v", cfg.MaxFileSize, DefaultMaxFileSize)
	}
	if cfg.PageInterval != DefaultPageInterval {
		t.Errorf("DefaultConfig() PageInterval = %v, want %v", cfg.PageInterval, DefaultPageInterval)
	}
	if cfg.InputPath != "" || cfg.InputDir != "" {
		t.Errorf("DefaultConfig() should not preselect an input, got input=%q dir=%q", cfg.InputPath, cfg.InputDir)
	}
}

func TestConfigValidate(t *testing.T) {
	tempDir := t.TempDir()

	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.InputPath = filepath.Join(tempDir, "report.pdf")
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid single file config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "valid batch config",
			mutate: func(c *Config) {
				c.InputPath = ""
				c.InputDir = tempDir
			},
			wantErr: false,
		},
		{
			name: "no input at all",
			mutate: func(c *Config) {
				c.InputPath = ""
			},
			wantErr: true,
			errMsg:  "either --input or --dir",
		},
		{
			name: "both input and dir",
			mutate: func(c *Config) {
				c.InputDir = tempDir
			},
			wantErr: true,
			errMsg:  "mutually exclusive",
		},
		{
			name: "output combined with dir",
			mutate: func(c *Config) {
				c.InputPath = ""
				c.InputDir = tempDir
				c.OutputPath = "out.csv"
			},
			wantErr: true,
			errMsg:  "--output cannot be combined",
		},
		{
			name: "missing input directory",
			mutate: func(c *Config) {
				c.InputPath = ""
				c.InputDir = filepath.Join(tempDir, "does-not-exist")
			},
			wantErr: true,
			errMsg:  "cannot access input directory",
		},
		{
			name: "zero max file size",
			mutate: func(c *Config) {
				c.MaxFileSize = 0
			},
			wantErr: true,
			errMsg:  "maximum file size",
		},
		{
			name: "negative page interval",
			mutate: func(c *Config) {
				c.PageInterval = -1
			},
			wantErr: true,
			errMsg:  "page interval",
		},
		{
			name: "invalid log level",
			mutate: func(c *Config) {
				c.LogLevel = "verbose"
			},
			wantErr: true,
			errMsg:  "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Validate() expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Validate() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestConfigValidateLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := DefaultConfig()
		cfg.InputPath = filepath.Join(tempDir, "report.pdf")
		cfg.LogLevel = level

		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() unexpected error for log level %q: %v", level, err)
		}
	}
}

func TestConfigIsBatchMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputPath = "report.pdf"
	if cfg.IsBatchMode() {
		t.Error("IsBatchMode() = true for single-file config, want false")
	}

	cfg = DefaultConfig()
	cfg.InputDir = "/reports"
	if !cfg.IsBatchMode() {
		t.Error("IsBatchMode() = false for batch config, want true")
	}
}

func TestConfigIsDebug(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.IsDebug() {
		t.Error("IsDebug() = true for default config, want false")
	}

	cfg.LogLevel = "debug"
	if !cfg.IsDebug() {
		t.Error("IsDebug() = false with debug log level, want true")
	}
}

func TestConfigString(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputPath = "report.pdf"

	s := cfg.String()
	if !strings.Contains(s, "report.pdf") {
		t.Errorf("String() = %v, want it to contain the input path", s)
	}
	if !strings.Contains(s, DefaultLogFile) {
		t.Errorf("String() = %v, want it to contain the log file", s)
	}
}
