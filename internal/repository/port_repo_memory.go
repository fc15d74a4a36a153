package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/Domenick1991/cargoeta/internal/domain"
)

type PortRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Port, error)
	List(ctx context.Context) ([]domain.Port, error)
}

// MemoryPortRepository is filled once at startup and only read afterwards.
type MemoryPortRepository struct {
	ports map[string]domain.Port
}

func NewMemoryPortRepository(ports []domain.Port) *MemoryPortRepository {
	m := make(map[string]domain.Port, len(ports))
	for _, p := range ports {
		m[p.ID] = p
	}
	return &MemoryPortRepository{ports: m}
}

func (r *MemoryPortRepository) GetByID(_ context.Context, id string) (*domain.Port, error) {
	p, ok := r.ports[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPort, id)
	}
	return &p, nil
}

func (r *MemoryPortRepository) List(_ context.Context) ([]domain.Port, error) {
	ports := make([]domain.Port, 0, len(r.ports))
	for _, p := range r.ports {
		ports = append(ports, p)
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i].ID < ports[j].ID })
	return ports, nil
}

var _ PortRepository = (*MemoryPortRepository)(nil)
