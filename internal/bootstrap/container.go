package bootstrap

import (
	"context"
	stdlog "log"
	"os"

	"wa-bazaar-be/internal/config"
	"wa-bazaar-be/internal/controller"
	"wa-bazaar-be/internal/pkg/logger"
	"wa-bazaar-be/internal/repository/cache"
	"wa-bazaar-be/internal/repository/memory"
	"wa-bazaar-be/internal/repository/unitofwork"
	"wa-bazaar-be/internal/service"
	"wa-bazaar-be/pkg/llm"
	"wa-bazaar-be/pkg/llm/factory"
	pktNats "wa-bazaar-be/pkg/nats"
	"wa-bazaar-be/pkg/nlp/assist"
	"wa-bazaar-be/pkg/transcribe"
	"wa-bazaar-be/pkg/transcribe/whisper"
	"wa-bazaar-be/pkg/transport"
	"wa-bazaar-be/pkg/transport/whatsapp"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WebhookController controller.IWebhookController
	ListingController controller.IListingController
	AdminController   controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	ListingService  service.IListingService
	NotifierService service.INotifierService

	// For the simulation CLI, which swaps the messenger.
	MessageService service.IMessageService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	// BlockPublishUntilSubscriberAck keeps replies of one turn in publish
	// order (session-expired notice before the next question).
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{BlockPublishUntilSubscriberAck: true},
		watermillLogger,
	)

	// 3. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		stdlog.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	var natsSub *pktNats.Subscriber
	if natsPub != nil {
		natsSub, err = pktNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			stdlog.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		}
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		stdlog.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		stdlog.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}
	listingCache := cache.NewListingCache(rdb)

	// LLM assist is optional: no provider means pure pattern classification.
	var llmProvider llm.LLMProvider
	if cfg.Ai.LLMProvider != "" {
		llmProvider, err = factory.NewLLMProvider(
			cfg.Ai.LLMProvider,
			cfg.Ai.LLMModel,
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.HuggingFaceKey,
		)
		if err != nil {
			stdlog.Printf("[WARN] LLM provider disabled: %v", err)
			llmProvider = nil
		} else {
			stdlog.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
		}
	}
	resolver := assist.NewResolver(llmProvider, stdlog.New(os.Stdout, "", stdlog.LstdFlags))

	// Transcription is optional too.
	var transcriber transcribe.Transcriber = transcribe.NewNoop()
	if cfg.Ai.WhisperBaseURL != "" {
		transcriber = whisper.NewWhisperTranscriber(cfg.Ai.WhisperBaseURL)
		stdlog.Printf("[INFO] Voice transcription enabled (%s)", cfg.Ai.WhisperBaseURL)
	}

	// WhatsApp transport
	waClient := whatsapp.NewClient(cfg.WhatsApp.PhoneNumberID, cfg.WhatsApp.AccessToken)
	var messenger transport.Messenger = waClient
	var mediaFetcher transport.MediaFetcher = waClient

	// Initialize In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 4. Services
	replyService := service.NewReplyService(pubSub, service.ReplyTopicName)
	consumerService := service.NewConsumerService(pubSub, service.ReplyTopicName, messenger, sysLogger)

	notifierService := service.NewNotifierService(natsSub, replyService, sysLogger)
	postingService := service.NewPostingService(uowFactory, sessionRepo, listingCache, replyService, natsPub, sysLogger)
	searchService := service.NewSearchService(uowFactory, listingCache, cfg.Search.MaxResults, sysLogger)
	listingService := service.NewListingService(uowFactory, listingCache, natsPub, sysLogger)
	messageService := service.NewMessageService(
		sessionRepo, resolver, postingService, searchService, replyService,
		transcriber, mediaFetcher, sysLogger,
	)

	// 5. Controllers
	webhookController := controller.NewWebhookController(messageService, cfg, sysLogger)
	listingController := controller.NewListingController(listingService)
	adminController := controller.NewAdminController(sysLogger)

	return &Container{
		WebhookController: webhookController,
		ListingController: listingController,
		AdminController:   adminController,
		ConsumerService:   consumerService,
		ListingService:    listingService,
		NotifierService:   notifierService,
		MessageService:    messageService,
		Logger:            sysLogger,
	}
}
