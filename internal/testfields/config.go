package testfields

import "time"

// Config holds configuration for the field mapping test
type Config struct {
	NumFields  int     // Number of field names to generate
	Workers    int     // Number of mapping workers
	Noise      float64 // Probability of each noise transform being applied
	Threshold  float64 // Fuzzy acceptance threshold
	OutputFile string  // Output file for generated fields
	LogFile    string  // Log file for test output
	Verbose    bool    // Enable verbose logging
}

// GeneratedField pairs a noisy field name with the canonical field its
// clean form belongs to.
type GeneratedField struct {
	Name     string `json:"name"`
	Expected string `json:"expected_canonical_field"`
}

// Stats holds test statistics
type Stats struct {
	FieldsGenerated int
	FieldsMapped    int
	ExactMatches    int
	FuzzyMatches    int
	Ignored         int
	Unmatched       int
	Mismatched      int
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}
