package sdfgen

// Config holds the parameters for one atlas generation run.
type Config struct {
	// SDFSize is the per-tile SDF resolution in pixels (width = height).
	// Default: 64
	SDFSize int

	// AtlasSize is the sprite-sheet size in pixels (width = height).
	// Default: 1024
	AtlasSize int

	// Range is the distance field search radius in pixels.
	// Larger values give softer, more scalable edges.
	// Default: 4.0
	Range float64

	// Padding is the border left around each tile's content inside its
	// atlas cell, in pixels. Default: 2
	Padding int

	// MultiChannel selects the three-channel field format. See the
	// field.ComputeMSDF conformance note: channels are replicated, not
	// per-edge. Default: false
	MultiChannel bool

	// Characters is the set of characters to render. Duplicates and
	// canonically-equivalent sequences collapse to one tile each.
	// Default: a-z, A-Z, 0-9
	Characters string

	// IncludeShapes adds the analytic shapes (circle, triangle, square)
	// to the atlas. Default: false
	IncludeShapes bool
}

// DefaultConfig returns the default generation parameters.
func DefaultConfig() Config {
	return Config{
		SDFSize:    64,
		AtlasSize:  1024,
		Range:      4.0,
		Padding:    2,
		Characters: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789",
	}
}

// Validate checks the configuration and returns an error if it cannot
// produce a well-defined atlas.
func (c *Config) Validate() error {
	if c.SDFSize <= 0 {
		return &ConfigError{Field: "SDFSize", Reason: "must be positive"}
	}
	if c.AtlasSize <= 0 {
		return &ConfigError{Field: "AtlasSize", Reason: "must be positive"}
	}
	if c.Range <= 0 {
		return &ConfigError{Field: "Range", Reason: "must be positive"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "sdfgen: invalid config." + e.Field + ": " + e.Reason
}
