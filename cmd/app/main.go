package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/Domenick1991/cargoeta/api"
	"github.com/Domenick1991/cargoeta/config"
	"github.com/Domenick1991/cargoeta/internal/bootstrap"
	"github.com/Domenick1991/cargoeta/internal/cache"
	"github.com/Domenick1991/cargoeta/internal/kafka"
	"github.com/Domenick1991/cargoeta/internal/metrics"
	"github.com/Domenick1991/cargoeta/internal/middleware"
	"github.com/Domenick1991/cargoeta/internal/repository"
	"github.com/Domenick1991/cargoeta/internal/service/containers"
	"github.com/Domenick1991/cargoeta/internal/service/eta"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collector := metrics.NewCollector()
	zones := eta.NewZoneResolver()

	ports := bootstrap.Ports(cfg.Ports)
	if err := eta.CheckPorts(zones, ports); err != nil {
		log.Fatalf("check ports: %v", err)
	}
	portRepo := repository.NewMemoryPortRepository(ports)

	estimator, err := bootstrap.Estimator(cfg.Voyage)
	if err != nil {
		log.Fatalf("build voyage estimator: %v", err)
	}

	etaOpts := []eta.EtaServiceOption{eta.WithRecorder(collector)}
	if cfg.Kafka.EtaTopic != "" {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: kafka unavailable, eta events may not be published: %v", err)
		}
		etaOpts = append(etaOpts, eta.WithEvents(producer, cfg.Kafka.EtaTopic))
	}
	etaService := eta.NewEtaService(portRepo, eta.NewCalculator(estimator, zones), etaOpts...)

	var containerRepo repository.ContainerRepository
	if cfg.Database.Enabled {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		containerRepo = repository.NewContainerRepository(pool)
	} else {
		containerRepo = repository.NewMemoryContainerRepository(bootstrap.Containers(cfg.Containers))
	}

	containerOpts := []containers.ContainerServiceOption{containers.WithRecorder(collector)}
	if cfg.Redis.Enabled {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.ContainerTTLSeconds)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("WARNING: redis unavailable, lookups fall through to the store: %v", err)
		}
		containerOpts = append(containerOpts, containers.WithCache(redisCache))
	}
	containerService := containers.NewContainerService(containerRepo, containerOpts...)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	go limiter.RunEviction(ctx, time.Minute, 10*time.Minute)

	routes := api.RouterConfig{
		Containers:  containerService,
		Eta:         etaService,
		Metrics:     collector,
		RateLimiter: limiter,
	}

	if err := bootstrap.Run(ctx, cfg, routes); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
