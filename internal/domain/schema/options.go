package schema

type registryConfig struct {
	weightOverrides map[string]float64
	extraVariants   map[string][]string
}

// Option customizes registry construction.
type Option func(*registryConfig)

// WithSensitivityOverrides replaces the built-in sensitivity weight for the
// named fields. Keys are canonical field names. Overridden weights are
// validated with the rest of the table.
func WithSensitivityOverrides(weights map[string]float64) Option {
	return func(c *registryConfig) {
		if c.weightOverrides == nil {
			c.weightOverrides = make(map[string]float64, len(weights))
		}
		for name, w := range weights {
			c.weightOverrides[name] = w
		}
	}
}

// WithExtraVariants registers additional variant strings for the named
// fields. Variants must already be in normalized form and must not collide
// with any existing variant.
func WithExtraVariants(variants map[string][]string) Option {
	return func(c *registryConfig) {
		if c.extraVariants == nil {
			c.extraVariants = make(map[string][]string, len(variants))
		}
		for name, list := range variants {
			c.extraVariants[name] = append(c.extraVariants[name], list...)
		}
	}
}
