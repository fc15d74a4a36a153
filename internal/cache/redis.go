package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/cargoeta/config"
	"github.com/Domenick1991/cargoeta/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client       *redis.Client
	containerTTL time.Duration
}

type cachedContainer struct {
	ID               string  `json:"container_id"`
	Weight           float64 `json:"weight"`
	PortOfOrigin     string  `json:"port_of_origin"`
	IsDangerousGoods bool    `json:"is_dangerous_goods"`
}

func NewRedisCache(cfg config.RedisConfig, containerTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		containerTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, containerTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, containerTTL: containerTTL}
}

// GetContainer returns nil, nil on a cache miss.
func (c *RedisCache) GetContainer(ctx context.Context, id string) (*domain.Container, error) {
	data, err := c.client.Get(ctx, containerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var cached cachedContainer
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &domain.Container{
		ID:               cached.ID,
		Weight:           cached.Weight,
		PortOfOrigin:     cached.PortOfOrigin,
		IsDangerousGoods: cached.IsDangerousGoods,
	}, nil
}

func (c *RedisCache) SetContainer(ctx context.Context, container *domain.Container) error {
	payload, err := json.Marshal(cachedContainer{
		ID:               container.ID,
		Weight:           container.Weight,
		PortOfOrigin:     container.PortOfOrigin,
		IsDangerousGoods: container.IsDangerousGoods,
	})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, containerKey(container.ID), payload, c.containerTTL).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func containerKey(id string) string {
	return "cache:container:" + id
}
