package eta

import (
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/cargoeta/internal/domain"
)

const day = 24 * time.Hour

// Calculator turns a departure instant into the arrival instant expressed in
// the destination port's local civil time.
type Calculator struct {
	estimator VoyageDurationEstimator
	zones     *ZoneResolver
}

func NewCalculator(estimator VoyageDurationEstimator, zones *ZoneResolver) *Calculator {
	if zones == nil {
		zones = NewZoneResolver()
	}
	return &Calculator{estimator: estimator, zones: zones}
}

type Result struct {
	Arrival    time.Time
	VoyageDays int
}

// Calculate adds the voyage duration to the absolute departure instant and
// returns the result in the destination zone. The addition is elapsed time,
// so a DST change at the destination shifts the wall clock, not the instant.
func (c *Calculator) Calculate(origin, destination domain.Port, departure time.Time) (time.Time, error) {
	res, err := c.Estimate(origin, destination, departure)
	if err != nil {
		return time.Time{}, err
	}
	return res.Arrival, nil
}

// Estimate is Calculate plus the voyage length that was applied.
func (c *Calculator) Estimate(origin, destination domain.Port, departure time.Time) (Result, error) {
	if departure.IsZero() {
		return Result{}, fmt.Errorf("%w: departure is not set", domain.ErrNaiveInstant)
	}
	if c.estimator == nil {
		return Result{}, errors.New("voyage duration estimator is not configured")
	}

	loc, err := c.zones.Resolve(destination.Timezone)
	if err != nil {
		return Result{}, err
	}

	days, err := c.estimator.EstimateDays(origin, destination)
	if err != nil {
		return Result{}, err
	}
	if days < 0 || days > domain.MaxVoyageDays {
		return Result{}, fmt.Errorf("estimator returned voyage days %d out of range [0, %d] for %s -> %s", days, domain.MaxVoyageDays, origin.ID, destination.ID)
	}

	raw := departure.Add(time.Duration(days) * day)
	return Result{Arrival: raw.In(loc), VoyageDays: days}, nil
}
