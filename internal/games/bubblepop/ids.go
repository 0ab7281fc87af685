package bubblepop

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// IDGenerator produces bubble identifiers unique within a session.
type IDGenerator interface {
	NewID(now float64) ID
}

// UUIDGenerator issues random UUIDs.
type UUIDGenerator struct{}

// NewID returns a random UUID. If the system random source fails it falls
// back to the spawn time plus a random fraction.
func (UUIDGenerator) NewID(now float64) ID {
	id, err := uuid.NewRandom()
	if err != nil {
		return fallbackID(now)
	}
	return ID(id.String())
}

func fallbackID(now float64) ID {
	return ID(fmt.Sprintf("%.6f-%.16f", now, rand.Float64()))
}
