package repository

import (
	"context"

	"github.com/Domenick1991/cargoeta/internal/domain"
)

type ContainerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Container, error)
}

// MemoryContainerRepository holds the container table built at startup.
// There is no write path; lookups return copies.
type MemoryContainerRepository struct {
	containers map[string]domain.Container
}

func NewMemoryContainerRepository(containers []domain.Container) *MemoryContainerRepository {
	m := make(map[string]domain.Container, len(containers))
	for _, c := range containers {
		m[c.ID] = c
	}
	return &MemoryContainerRepository{containers: m}
}

func (r *MemoryContainerRepository) GetByID(_ context.Context, id string) (*domain.Container, error) {
	c, ok := r.containers[id]
	if !ok {
		return nil, domain.ErrContainerNotFound
	}
	return &c, nil
}

func (r *MemoryContainerRepository) Len() int {
	return len(r.containers)
}

var _ ContainerRepository = (*MemoryContainerRepository)(nil)
