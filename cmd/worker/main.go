package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/Domenick1991/cargoeta/config"
	"github.com/Domenick1991/cargoeta/internal/kafka"
	"github.com/Domenick1991/cargoeta/internal/notify"
	"github.com/Domenick1991/cargoeta/internal/service/eta"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Kafka.EtaTopic == "" {
		log.Fatalf("kafka.eta_topic is not set, nothing to consume")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.EtaTopic)
	defer consumer.Close()

	sender := notify.NewSender(eta.NewZoneResolver(), cfg.Worker.NotifyLayout)

	log.Printf("worker consuming topic=%s group=%s", cfg.Kafka.EtaTopic, cfg.Kafka.GroupID)
	err = consumer.ConsumeEtaEvents(ctx, func(ctx context.Context, event kafka.EtaEvent) error {
		if err := sender.Send(ctx, event); err != nil {
			if ctx.Err() != nil {
				return err
			}
			log.Printf("notify error id=%s: %v", event.ID, err)
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("consumer stopped: %v", err)
	}
	log.Printf("worker shut down")
}
