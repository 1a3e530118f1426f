package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads. The command layer
// never pulls full read models while deciding whether to act.

// AvailabilitySnapshot is the Capacity Gate's advisory answer: how many
// seats remained at the moment of the read. It narrows the race window but
// guarantees nothing; the booking recorder re-checks inside its transaction.
type AvailabilitySnapshot struct {
	ClassID    uuid.UUID
	Capacity   int32
	Remaining  int32
	PriceCents int64
	StartTime  time.Time
}

func (s *AvailabilitySnapshot) Available() bool {
	return s.Remaining > 0
}

type GymSnapshot struct {
	ID      uuid.UUID
	CoachID uuid.UUID
	Name    string
}
