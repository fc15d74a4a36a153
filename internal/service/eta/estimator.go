package eta

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/cargoeta/internal/domain"
)

// DefaultVoyageDays is the fixed voyage length used until real routing exists.
const DefaultVoyageDays = 10

// VoyageDurationEstimator returns the whole number of days a voyage takes.
// Implementations must return days >= 0 and have no side effects.
type VoyageDurationEstimator interface {
	EstimateDays(origin, destination domain.Port) (int, error)
}

type ConstantEstimator struct {
	Days int
}

func NewConstantEstimator(days int) (*ConstantEstimator, error) {
	if err := checkDays(days); err != nil {
		return nil, err
	}
	return &ConstantEstimator{Days: days}, nil
}

func (e *ConstantEstimator) EstimateDays(_, _ domain.Port) (int, error) {
	return e.Days, nil
}

type Route struct {
	Origin      string
	Destination string
	Days        int
}

// RouteTableEstimator looks voyages up in a fixed origin|destination table.
// Missing pairs go to Fallback when set, otherwise fail with ErrRouteNotFound.
type RouteTableEstimator struct {
	routes   map[string]int
	fallback VoyageDurationEstimator
}

func NewRouteTableEstimator(routes []Route, fallback VoyageDurationEstimator) (*RouteTableEstimator, error) {
	table := make(map[string]int, len(routes))
	for _, r := range routes {
		if r.Origin == "" || r.Destination == "" {
			return nil, errors.New("route origin and destination are required")
		}
		if err := checkDays(r.Days); err != nil {
			return nil, fmt.Errorf("route %s -> %s: %w", r.Origin, r.Destination, err)
		}
		table[routeKey(r.Origin, r.Destination)] = r.Days
	}
	return &RouteTableEstimator{routes: table, fallback: fallback}, nil
}

func (e *RouteTableEstimator) EstimateDays(origin, destination domain.Port) (int, error) {
	if days, ok := e.routes[routeKey(origin.ID, destination.ID)]; ok {
		return days, nil
	}
	if e.fallback != nil {
		return e.fallback.EstimateDays(origin, destination)
	}
	return 0, fmt.Errorf("%w: %s -> %s", domain.ErrRouteNotFound, origin.ID, destination.ID)
}

func checkDays(days int) error {
	if days < 0 || days > domain.MaxVoyageDays {
		return fmt.Errorf("voyage days must be within [0, %d], got %d", domain.MaxVoyageDays, days)
	}
	return nil
}

func routeKey(origin, destination string) string {
	return origin + "|" + destination
}

var (
	_ VoyageDurationEstimator = (*ConstantEstimator)(nil)
	_ VoyageDurationEstimator = (*RouteTableEstimator)(nil)
)
