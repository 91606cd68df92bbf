package testfields

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/fieldmap/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "test_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the field mapping test tool.
func ShowHelp() {
	os.Stdout.WriteString(`Field Mapping Test Tool
=======================

Generates noisy ATS-style field names from the canonical variant table and
maps them back through the engine, reporting the match rate.

Usage:
  go run cmd/test-fields/main.go [options]

Options:
  -fields int
        Number of field names to generate (default 1000)
  -workers int
        Number of mapping workers (default CPU cores * 2)
  -noise float
        Probability of each noise transform per name (default 0.5)
  -threshold float
        Fuzzy acceptance threshold (default 0.7)
  -output string
        Output file for generated fields (default: none)
  -log string
        Log file for test output (default: test_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Test with default settings
  go run cmd/test-fields/main.go

  # Heavier noise and more names
  go run cmd/test-fields/main.go -fields 10000 -noise 0.8

  # Keep the generated names for reproduction
  go run cmd/test-fields/main.go -output generated_fields.json
`)
}
