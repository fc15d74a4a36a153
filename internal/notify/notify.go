package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/cargoeta/internal/kafka"
	"github.com/Domenick1991/cargoeta/internal/service/eta"
)

// Sender turns ETA events into arrival notices. Delivery is a log line for now.
type Sender struct {
	zones  *eta.ZoneResolver
	layout string
	logf   func(format string, args ...interface{})
}

func NewSender(zones *eta.ZoneResolver, layout string) *Sender {
	return &Sender{zones: zones, layout: layout, logf: log.Printf}
}

func (s *Sender) Send(ctx context.Context, event kafka.EtaEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	notice, err := s.Notice(event)
	if err != nil {
		return err
	}
	s.logf("%s", notice)
	return nil
}

// Notice renders the arrival in the destination's local time. The zone is
// re-resolved so events from older producers without an offset still render correctly.
func (s *Sender) Notice(event kafka.EtaEvent) (string, error) {
	loc, err := s.zones.Resolve(event.DestinationTimezone)
	if err != nil {
		return "", fmt.Errorf("notice for %s: %w", event.ID, err)
	}
	return fmt.Sprintf("arrival notice id=%s route=%s->%s voyage_days=%d eta=%q",
		event.ID,
		event.OriginPortID,
		event.DestinationPortID,
		event.VoyageDays,
		event.Arrival.In(loc).Format(s.layout),
	), nil
}
