package eta

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/cargoeta/internal/domain"
)

// ZoneResolver loads IANA zones and keeps the parsed rule sets for reuse.
// The zero value is ready to use and safe for concurrent callers.
type ZoneResolver struct {
	zones sync.Map
}

func NewZoneResolver() *ZoneResolver {
	return &ZoneResolver{}
}

func (r *ZoneResolver) Resolve(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	// LoadLocation maps "" to UTC and "Local" to the host zone; neither names a port's zone.
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTimezone, name)
	}

	if loc, ok := r.zones.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrUnknownTimezone, name, err)
	}

	actual, _ := r.zones.LoadOrStore(name, loc)
	return actual.(*time.Location), nil
}
