package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/cargoeta/internal/domain"
	"github.com/segmentio/kafka-go"
)

const EventEtaCalculated = "eta_calculated"

// EtaEvent is the wire form of one computed arrival estimate.
type EtaEvent struct {
	Type                string    `json:"type"`
	ID                  string    `json:"id"`
	OriginPortID        string    `json:"origin_port_id"`
	DestinationPortID   string    `json:"destination_port_id"`
	DestinationTimezone string    `json:"destination_timezone"`
	Departure           time.Time `json:"departure"`
	Arrival             time.Time `json:"arrival"`
	VoyageDays          int       `json:"voyage_days"`
}

func NewEtaEvent(estimate *domain.ArrivalEstimate) EtaEvent {
	return EtaEvent{
		Type:                EventEtaCalculated,
		ID:                  estimate.ID.String(),
		OriginPortID:        estimate.Origin.ID,
		DestinationPortID:   estimate.Destination.ID,
		DestinationTimezone: estimate.Destination.Timezone,
		Departure:           estimate.Departure,
		Arrival:             estimate.Arrival,
		VoyageDays:          estimate.VoyageDays,
	}
}

// Key routes all events for one destination port to the same partition.
func (e EtaEvent) Key() string {
	return e.DestinationPortID
}

// DecodeEtaEvent unmarshals a message produced by Producer.Publish.
func DecodeEtaEvent(msg kafka.Message) (EtaEvent, error) {
	var event EtaEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return EtaEvent{}, fmt.Errorf("decode eta event key=%s: %w", string(msg.Key), err)
	}
	if event.Type == "" {
		return EtaEvent{}, fmt.Errorf("decode eta event key=%s: missing type", string(msg.Key))
	}
	return event, nil
}
