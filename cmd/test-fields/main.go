package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/fieldmap/internal/testfields"
)

// Default configuration constants.
const (
	defaultNumFields   = 1000
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultNoise       = 0.5
	defaultThreshold   = 0.7
	defaultTestTimeout = 10 * time.Minute
)

func main() {
	var (
		numFields  = flag.Int("fields", defaultNumFields, "Number of field names to generate")
		workers    = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of mapping workers")
		noise      = flag.Float64("noise", defaultNoise, "Probability of each noise transform per name")
		threshold  = flag.Float64("threshold", defaultThreshold, "Fuzzy acceptance threshold")
		outputFile = flag.String("output", "", "Output file for generated fields")
		logFile    = flag.String("log", "", "Log file for test output (default: test_log_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		testfields.ShowHelp()
		return
	}

	// Setup logging
	if err := testfields.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	// Create test configuration
	config := &testfields.Config{
		NumFields:  *numFields,
		Workers:    *workers,
		Noise:      *noise,
		Threshold:  *threshold,
		OutputFile: *outputFile,
		LogFile:    *logFile,
		Verbose:    *verbose,
	}

	// Run the test
	if err := testfields.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Test failed: " + err.Error() + "\n")
		return
	}
}
