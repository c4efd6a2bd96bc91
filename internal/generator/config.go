package generator

// Config drives the synthetic campus generator.
type Config struct {
	NumLocations int
	// ExtraEdgeChance is the probability, per location, of adding a shortcut
	// on top of the spanning tree that keeps the campus connected.
	ExtraEdgeChance float64
	MinDistance     float64
	MaxDistance     float64
	Seed            int64
}

// DefaultConfig returns baseline settings for a mid-sized campus.
func DefaultConfig() Config {
	return Config{
		NumLocations:    50,
		ExtraEdgeChance: 0.6,
		MinDistance:     20,
		MaxDistance:     800,
		Seed:            42,
	}
}
