package notify

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Domenick1991/cargoeta/internal/domain"
	"github.com/Domenick1991/cargoeta/internal/kafka"
	"github.com/Domenick1991/cargoeta/internal/service/eta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() kafka.EtaEvent {
	return kafka.EtaEvent{
		Type:                kafka.EventEtaCalculated,
		ID:                  "evt-1",
		OriginPortID:        "Shanghai",
		DestinationPortID:   "NewYork",
		DestinationTimezone: "America/New_York",
		Departure:           time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC),
		Arrival:             time.Date(2024, 3, 11, 4, 0, 0, 0, time.UTC),
		VoyageDays:          10,
	}
}

func TestSender_Notice(t *testing.T) {
	s := NewSender(eta.NewZoneResolver(), "2006-01-02 15:04 MST")

	notice, err := s.Notice(sampleEvent())
	require.NoError(t, err)
	assert.Equal(t, `arrival notice id=evt-1 route=Shanghai->NewYork voyage_days=10 eta="2024-03-11 00:00 EDT"`, notice)
}

func TestSender_Send(t *testing.T) {
	s := NewSender(eta.NewZoneResolver(), time.RFC3339)
	var logged []string
	s.logf = func(format string, args ...interface{}) {
		logged = append(logged, fmt.Sprintf(format, args...))
	}

	require.NoError(t, s.Send(context.Background(), sampleEvent()))
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], `eta="2024-03-11T00:00:00-04:00"`)
}

func TestSender_Send_UnknownZone(t *testing.T) {
	s := NewSender(eta.NewZoneResolver(), time.RFC3339)
	event := sampleEvent()
	event.DestinationTimezone = "Nowhere/Land"

	err := s.Send(context.Background(), event)
	assert.ErrorIs(t, err, domain.ErrUnknownTimezone)
}

func TestSender_Send_CanceledContext(t *testing.T) {
	s := NewSender(eta.NewZoneResolver(), time.RFC3339)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Send(ctx, sampleEvent()), context.Canceled)
}
