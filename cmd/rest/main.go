package main

import (
	"context"
	"log"
	"time"

	"wa-bazaar-be/internal/bootstrap"
	"wa-bazaar-be/internal/config"
	"wa-bazaar-be/internal/server"
	"wa-bazaar-be/pkg/database"
)

func main() {
	// Tracing is opt-in via OTEL_ENABLED; see internal/tracer.
	// shutdownTracer := tracer.InitTracer()
	// defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Background workers: the reply consumer drains the outbound bus,
	// the expiry loop sweeps overdue listings.
	go func() {
		log.Println("Background: starting reply consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()
	container.ListingService.StartExpiryLoop(context.Background(), time.Hour)
	if err := container.NotifierService.Start(); err != nil {
		log.Printf("Notifier disabled: %v", err)
	}

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
