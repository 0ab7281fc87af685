package bubblepop

import (
	"math/rand"
)

// Random is a uniform integer source over inclusive ranges.
type Random interface {
	IntRange(min, max int) int
}

type seededRandom struct {
	rng *rand.Rand
}

// NewRandom returns a Random backed by a seeded math/rand source.
func NewRandom(seed int64) Random {
	return &seededRandom{rng: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform integer in [min, max]. An empty range yields min.
func (r *seededRandom) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}

// PickColor draws a uniform entry from the palette.
func PickColor(r Random, palette []string) string {
	if len(palette) == 0 {
		return ""
	}
	return palette[r.IntRange(0, len(palette)-1)]
}
