package concept

// Config holds the extraction policy knobs. The defaults are starting
// points; both values are exposed through the app configuration.
type Config struct {
	// LookBack is how many events back a file edit may reach to find
	// the prompt/response exchange that motivated it.
	LookBack int

	// MinContentSize is the minimum normalized text length, in bytes,
	// for a candidate to become a Concept. Filters out trivial
	// exchanges and bare tool chatter.
	MinContentSize int

	// MaxConcepts caps the number of concepts per session. 0 means
	// unlimited.
	MaxConcepts int
}

// DefaultConfig returns the standard extraction policy.
func DefaultConfig() Config {
	return Config{
		LookBack:       6,
		MinContentSize: 64,
		MaxConcepts:    0,
	}
}

func (c Config) withDefaults() Config {
	if c.LookBack <= 0 {
		c.LookBack = 6
	}
	if c.MinContentSize < 0 {
		c.MinContentSize = 0
	}
	return c
}
