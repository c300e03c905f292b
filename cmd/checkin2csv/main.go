package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/votertools/checkin2csv/internal/config"
	"github.com/votertools/checkin2csv/internal/convert"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging sends all output to both the console and the append-only log
// file, so a bulk run leaves a reviewable trail.
func setupLogging(cfg *config.Config) (*log.Logger, func(), error) {
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
	}

	logger := log.New(io.MultiWriter(os.Stdout, logFile), "", log.LstdFlags)
	return logger, func() { _ = logFile.Close() }, nil
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	logger, closeLog, err := setupLogging(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	if cfg.IsDebug() {
		logger.Printf("Starting with configuration: %s", cfg.String())
	}

	converter := convert.NewConverter(cfg.MaxFileSize, cfg.PageInterval, &convert.LogSink{Logger: logger})

	if cfg.IsBatchMode() {
		if err := runBatch(cfg, converter, logger); err != nil {
			logger.Printf("ERROR: %v", err)
			closeLog()
			os.Exit(1)
		}
		return
	}

	result, err := converter.ConvertFile(cfg.InputPath, cfg.OutputPath)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		closeLog()
		os.Exit(1)
	}
	logResult(logger, result)
}

// runBatch converts every PDF in the configured folder. Each document's
// conversion is fully independent; a bad file is logged and skipped so it
// never aborts the whole batch.
func runBatch(cfg *config.Config, converter *convert.Converter, logger *log.Logger) error {
	pdfs, err := findPDFs(cfg.InputDir)
	if err != nil {
		return err
	}
	if len(pdfs) == 0 {
		return fmt.Errorf("no PDF files found in %s", cfg.InputDir)
	}

	logger.Printf("Found %d PDF(s) in %s. Converting...", len(pdfs), cfg.InputDir)

	converted := 0
	totalRecords := 0
	for _, path := range pdfs {
		result, err := converter.ConvertFile(path, "")
		if err != nil {
			logger.Printf("ERROR: %s: %v", filepath.Base(path), err)
			continue
		}
		logResult(logger, result)
		if result.RecordsWritten > 0 {
			converted++
			totalRecords += result.RecordsWritten
		}
	}

	logger.Printf("Batch finished: %d/%d files converted, %d unique voter records",
		converted, len(pdfs), totalRecords)
	return nil
}

// findPDFs lists the PDF files in a directory, case-insensitive on the
// extension, in stable name order.
func findPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	var pdfs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			pdfs = append(pdfs, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(pdfs)

	return pdfs, nil
}

// logResult prints the per-document summary. The zero-record warning is
// already emitted through the progress sink.
func logResult(logger *log.Logger, result *convert.Result) {
	if result.RecordsWritten == 0 {
		return
	}
	if result.DuplicatesRemoved > 0 {
		logger.Printf("Removed %d duplicate State IDs", result.DuplicatesRemoved)
	}
	logger.Printf("Converted %s -> %s (%d records)",
		filepath.Base(result.InputPath), filepath.Base(result.OutputPath), result.RecordsWritten)
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("Voter Check-in PDF Converter\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
