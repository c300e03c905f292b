package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultLogFile      = "pdf_to_csv.log"
	DefaultLogLevel     = "info"
	DefaultMaxFileSize  = 100 * 1024 * 1024 // 100MB
	DefaultPageInterval = 10
)

// Config holds all configuration for the voter PDF converter
type Config struct {
	// Input configuration: exactly one of InputPath (single file) or
	// InputDir (batch folder) must be set
	InputPath string
	InputDir  string

	// Output configuration
	OutputPath string // explicit output file, single-file mode only

	// Application configuration
	Version      string
	LogFile      string
	LogLevel     string
	MaxFileSize  int64 // Maximum PDF file size in bytes
	PageInterval int   // Pages between progress reports
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version:      "1.0.0",
		LogFile:      DefaultLogFile,
		LogLevel:     DefaultLogLevel,
		MaxFileSize:  DefaultMaxFileSize,
		PageInterval: DefaultPageInterval,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.InputPath != "" {
		if expandedPath, err := filepath.Abs(cfg.InputPath); err == nil {
			cfg.InputPath = expandedPath
		}
	}
	if cfg.InputDir != "" {
		if expandedPath, err := filepath.Abs(cfg.InputDir); err == nil {
			cfg.InputDir = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("VOTERCSV")
	viper.AutomaticEnv()

	viper.SetDefault("input", cfg.InputPath)
	viper.SetDefault("dir", cfg.InputDir)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("logfile", cfg.LogFile)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("pageinterval", cfg.PageInterval)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("input", cfg.InputPath, "Path to a single voter report PDF to convert")
	pflag.String("dir", cfg.InputDir, "Folder of PDFs to convert in bulk (one CSV per input)")
	pflag.String("output", cfg.OutputPath, "Output CSV path (single-file mode; default derives from the input name)")
	pflag.String("logfile", cfg.LogFile, "Append-only log file")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
	pflag.Int("pageinterval", cfg.PageInterval, "Pages between progress reports")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("input", pflag.Lookup("input"))
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("logfile", pflag.Lookup("logfile"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("pageinterval", pflag.Lookup("pageinterval"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nVoter Check-in PDF Converter - normalizes county voter report PDFs to CSV\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --input=report.pdf                      # convert one report\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --input=report.pdf --output=voters.csv  # explicit output name\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/reports                  # convert every PDF in a folder\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  VOTERCSV_INPUT        Input PDF path\n")
		fmt.Fprintf(os.Stderr, "  VOTERCSV_DIR          Input folder for bulk conversion\n")
		fmt.Fprintf(os.Stderr, "  VOTERCSV_OUTPUT       Output CSV path\n")
		fmt.Fprintf(os.Stderr, "  VOTERCSV_LOGFILE      Log file\n")
		fmt.Fprintf(os.Stderr, "  VOTERCSV_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  VOTERCSV_MAXFILESIZE  Maximum file size\n")
		fmt.Fprintf(os.Stderr, "  VOTERCSV_PAGEINTERVAL Pages between progress reports\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.InputPath = viper.GetString("input")
	cfg.InputDir = viper.GetString("dir")
	cfg.OutputPath = viper.GetString("output")
	cfg.LogFile = viper.GetString("logfile")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.PageInterval = viper.GetInt("pageinterval")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Exactly one input mode
	if c.InputPath == "" && c.InputDir == "" {
		return errors.New("either --input or --dir must be provided")
	}
	if c.InputPath != "" && c.InputDir != "" {
		return errors.New("--input and --dir are mutually exclusive")
	}

	// Explicit output only makes sense for a single file
	if c.OutputPath != "" && c.InputDir != "" {
		return errors.New("--output cannot be combined with --dir")
	}

	// Validate input directory for batch mode
	if c.InputDir != "" {
		info, err := os.Stat(c.InputDir)
		if err != nil {
			return fmt.Errorf("cannot access input directory %s: %w", c.InputDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("input directory is not a directory: %s", c.InputDir)
		}
	}

	// Validate max file size
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	// Validate page interval
	if c.PageInterval <= 0 {
		return errors.New("page interval must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsBatchMode returns true if a folder of PDFs is being converted
func (c *Config) IsBatchMode() bool {
	return c.InputDir != ""
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{InputPath: %s, InputDir: %s, OutputPath: %s, LogFile: %s, LogLevel: %s, MaxFileSize: %d, PageInterval: %d}",
		c.InputPath, c.InputDir, c.OutputPath, c.LogFile, c.LogLevel, c.MaxFileSize, c.PageInterval)
}
