package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"wa-bazaar-be/internal/config"
	"wa-bazaar-be/internal/dto"
	"wa-bazaar-be/internal/pkg/logger"
	"wa-bazaar-be/internal/repository/cache"
	"wa-bazaar-be/internal/repository/memory"
	"wa-bazaar-be/internal/repository/unitofwork"
	"wa-bazaar-be/internal/service"
	"wa-bazaar-be/pkg/database"
	"wa-bazaar-be/pkg/nlp/assist"
	"wa-bazaar-be/pkg/transcribe"
	"wa-bazaar-be/pkg/transport/console"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

const simulatedUser = "919912345678"

func main() {
	fmt.Println("=== Bazaar Bot Simulation (console transport) ===")
	fmt.Printf("Connected as user %s\n", simulatedUser)

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		stdlog.Fatalf("Failed to connect to database: %v", err)
	}

	// Same wiring as the REST container, minus WhatsApp, NATS and Redis:
	// replies land on the terminal instead of the Graph API.
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	sessionRepo := memory.NewSessionRepository()
	listingCache := cache.NewListingCache(nil)

	pubSub := gochannel.NewGoChannel(
		gochannel.Config{BlockPublishUntilSubscriberAck: true},
		watermill.NewStdLogger(false, false),
	)
	messenger := console.NewMessenger(os.Stdout)

	replyService := service.NewReplyService(pubSub, service.ReplyTopicName)
	consumerService := service.NewConsumerService(pubSub, service.ReplyTopicName, messenger, sysLogger)

	resolver := assist.NewResolver(nil, stdlog.New(os.Stdout, "", stdlog.LstdFlags))
	postingService := service.NewPostingService(uowFactory, sessionRepo, listingCache, replyService, nil, sysLogger)
	searchService := service.NewSearchService(uowFactory, listingCache, cfg.Search.MaxResults, sysLogger)
	messageService := service.NewMessageService(
		sessionRepo, resolver, postingService, searchService, replyService,
		transcribe.NewNoop(), nil, sysLogger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := consumerService.Consume(ctx); err != nil {
			stdlog.Printf("Consumer error: %v", err)
		}
	}()

	script := []string{
		"I want to rent out my 2BHK flat in Kothrud, Pune",
		"14000 per month",
		"semi furnished",
		"yes",
		"looking for a plumber in Andheri",
		"1",
		"bye",
	}

	user := color.New(color.FgYellow, color.Bold)

	for _, text := range script {
		user.Printf("\nuser: %s\n", text)

		start := time.Now()
		msg := &dto.InboundMessage{
			From: simulatedUser,
			Id:   uuid.New().String(),
			Type: "text",
			Text: &dto.InboundText{Body: text},
		}
		if err := messageService.ProcessMessage(ctx, msg); err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		// Give the async reply consumer a beat to drain before the
		// next scripted line, so the transcript reads in order.
		time.Sleep(200 * time.Millisecond)
		fmt.Printf("(%.0fms)\n", float64(time.Since(start).Milliseconds()))
	}

	fmt.Println("\n=== Simulation complete ===")
}
