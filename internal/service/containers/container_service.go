package containers

import (
	"context"
	"errors"
	"log"

	"github.com/Domenick1991/cargoeta/internal/domain"
	"github.com/Domenick1991/cargoeta/internal/repository"
)

type ContainerUseCase interface {
	GetByID(ctx context.Context, id string) (*domain.Container, error)
}

type ContainerCache interface {
	GetContainer(ctx context.Context, id string) (*domain.Container, error)
	SetContainer(ctx context.Context, container *domain.Container) error
}

type LookupRecorder interface {
	RecordContainerLookup(result, source string)
}

type ContainerService struct {
	repo     repository.ContainerRepository
	cache    ContainerCache
	recorder LookupRecorder
}

type ContainerServiceOption func(*ContainerService)

func WithCache(cache ContainerCache) ContainerServiceOption {
	return func(s *ContainerService) {
		s.cache = cache
	}
}

func WithRecorder(recorder LookupRecorder) ContainerServiceOption {
	return func(s *ContainerService) {
		s.recorder = recorder
	}
}

func NewContainerService(repo repository.ContainerRepository, opts ...ContainerServiceOption) *ContainerService {
	service := &ContainerService{repo: repo}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// GetByID reads through the cache when one is configured. Cache failures
// fall back to the repository.
func (s *ContainerService) GetByID(ctx context.Context, id string) (*domain.Container, error) {
	if s.cache != nil {
		cached, err := s.cache.GetContainer(ctx, id)
		if err != nil {
			log.Printf("container cache get failed id=%s: %v", id, err)
		} else if cached != nil {
			s.record("hit", "cache")
			return cached, nil
		}
	}

	container, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrContainerNotFound) {
			s.record("miss", "repository")
		} else {
			s.record("error", "repository")
		}
		return nil, err
	}
	s.record("hit", "repository")

	if s.cache != nil {
		if err := s.cache.SetContainer(ctx, container); err != nil {
			log.Printf("container cache set failed id=%s: %v", id, err)
		}
	}
	return container, nil
}

func (s *ContainerService) record(result, source string) {
	if s.recorder != nil {
		s.recorder.RecordContainerLookup(result, source)
	}
}

var _ ContainerUseCase = (*ContainerService)(nil)
