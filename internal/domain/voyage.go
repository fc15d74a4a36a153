package domain

import (
	"math"
	"time"
)

// MaxVoyageDays is the largest day count whose span fits in a time.Duration.
const MaxVoyageDays = int(math.MaxInt64 / int64(24*time.Hour))
