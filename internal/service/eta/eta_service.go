package eta

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Domenick1991/cargoeta/internal/domain"
	"github.com/Domenick1991/cargoeta/internal/kafka"
	"github.com/Domenick1991/cargoeta/internal/repository"
	"github.com/google/uuid"
)

type EtaUseCase interface {
	EstimateArrival(ctx context.Context, input EstimateInput) (*domain.ArrivalEstimate, error)
}

type EstimateInput struct {
	OriginPortID      string
	DestinationPortID string
	Departure         string
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Recorder interface {
	RecordEtaCalculation(result string, took time.Duration)
}

type EtaService struct {
	ports       repository.PortRepository
	calculator  *Calculator
	producer    Producer
	eventsTopic string
	recorder    Recorder
	newID       func() uuid.UUID
}

type EtaServiceOption func(*EtaService)

func WithEvents(producer Producer, topic string) EtaServiceOption {
	return func(s *EtaService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func WithRecorder(recorder Recorder) EtaServiceOption {
	return func(s *EtaService) {
		s.recorder = recorder
	}
}

func NewEtaService(ports repository.PortRepository, calculator *Calculator, opts ...EtaServiceOption) *EtaService {
	service := &EtaService{
		ports:      ports,
		calculator: calculator,
		newID:      uuid.New,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *EtaService) EstimateArrival(ctx context.Context, input EstimateInput) (*domain.ArrivalEstimate, error) {
	start := time.Now()
	estimate, err := s.estimate(ctx, input)
	if s.recorder != nil {
		s.recorder.RecordEtaCalculation(resultLabel(err), time.Since(start))
	}
	if err != nil {
		return nil, err
	}

	if err := s.publish(ctx, estimate); err != nil {
		log.Printf("WARNING: failed to publish %s event id=%s: %v", kafka.EventEtaCalculated, estimate.ID, err)
	}
	return estimate, nil
}

func (s *EtaService) estimate(ctx context.Context, input EstimateInput) (*domain.ArrivalEstimate, error) {
	if strings.TrimSpace(input.OriginPortID) == "" {
		return nil, errors.New("origin port is required")
	}
	if strings.TrimSpace(input.DestinationPortID) == "" {
		return nil, errors.New("destination port is required")
	}

	departure, err := domain.ParseInstant(input.Departure)
	if err != nil {
		return nil, err
	}

	origin, err := s.ports.GetByID(ctx, input.OriginPortID)
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	destination, err := s.ports.GetByID(ctx, input.DestinationPortID)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	res, err := s.calculator.Estimate(*origin, *destination, departure)
	if err != nil {
		return nil, err
	}

	return &domain.ArrivalEstimate{
		ID:          s.newID(),
		Origin:      *origin,
		Destination: *destination,
		Departure:   departure,
		Arrival:     res.Arrival,
		VoyageDays:  res.VoyageDays,
	}, nil
}

func (s *EtaService) publish(ctx context.Context, estimate *domain.ArrivalEstimate) error {
	if s.producer == nil || s.eventsTopic == "" {
		return nil
	}
	event := kafka.NewEtaEvent(estimate)
	return s.producer.Publish(ctx, s.eventsTopic, event.Key(), event)
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUnknownTimezone):
		return "unknown_timezone"
	case errors.Is(err, domain.ErrNaiveInstant):
		return "naive_instant"
	case errors.Is(err, domain.ErrRouteNotFound):
		return "route_not_found"
	case errors.Is(err, domain.ErrUnknownPort):
		return "unknown_port"
	default:
		return "error"
	}
}

// CheckPorts verifies at startup that every port names a loadable zone.
func CheckPorts(zones *ZoneResolver, ports []domain.Port) error {
	for _, p := range ports {
		if _, err := zones.Resolve(p.Timezone); err != nil {
			return fmt.Errorf("port %s: %w", p.ID, err)
		}
	}
	return nil
}

var _ EtaUseCase = (*EtaService)(nil)
