package domain

import (
	"time"

	"github.com/google/uuid"
)

// Port is an immutable value: an identifier plus an IANA zone name such as "Asia/Shanghai".
type Port struct {
	ID       string
	Timezone string
}

type ArrivalEstimate struct {
	ID          uuid.UUID
	Origin      Port
	Destination Port
	Departure   time.Time
	Arrival     time.Time
	VoyageDays  int
}
