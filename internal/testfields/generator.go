package testfields

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/okian/fieldmap/internal/domain/schema"
	"github.com/okian/fieldmap/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
)

// Noise vocabulary applied to clean variants.
var (
	noisePrefixes = []string{"Required: ", "Optional: ", "Please Enter ", "Enter ", "* "}
	noiseSuffixes = []string{" *", " (required)", " (optional)", ":", " - required"}
	separators    = []string{"-", "_", "."}
)

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// getRandomIndex returns a random index below n.
func getRandomIndex(n int) int {
	if n <= 1 {
		return 0
	}
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generateFields produces noisy field names drawn from the registry's
// variant table, each tagged with the canonical field it should map to.
func generateFields(ctx context.Context, registry *schema.Registry, config *Config, stats *Stats) []GeneratedField {
	logger.Get().Info(ctx, "generating noisy field names", logger.Int("numFields", config.NumFields))

	bindings := registry.VariantBindings()
	fields := make([]GeneratedField, config.NumFields)
	for i := range fields {
		b := bindings[getRandomIndex(len(bindings))]
		fields[i] = GeneratedField{
			Name:     addNoise(b.Variant, config.Noise),
			Expected: b.Field.String(),
		}
	}
	stats.FieldsGenerated = len(fields)
	return fields
}

// addNoise applies each transform with the configured probability. The
// result stays recognizable: casing, affixes, separators, and at most one
// character-level typo.
func addNoise(variant string, level float64) string {
	s := variant

	if getRandomFloat() < level {
		s = titleCase(s)
	}
	if getRandomFloat() < level {
		sep := separators[getRandomIndex(len(separators))]
		s = strings.ReplaceAll(s, " ", sep)
	}
	if getRandomFloat() < level {
		s = typo(s)
	}
	if getRandomFloat() < level {
		s = noisePrefixes[getRandomIndex(len(noisePrefixes))] + s
	}
	if getRandomFloat() < level {
		s += noiseSuffixes[getRandomIndex(len(noiseSuffixes))]
	}
	return s
}

// titleCase uppercases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// typo drops or doubles one character, never the first.
func typo(s string) string {
	runes := []rune(s)
	if len(runes) < 4 {
		return s
	}
	i := 1 + getRandomIndex(len(runes)-1)
	if getRandomFloat() < 0.5 {
		return string(runes[:i]) + string(runes[i+1:])
	}
	return string(runes[:i]) + string(runes[i-1]) + string(runes[i:])
}
