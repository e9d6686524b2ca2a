package bootstrap

import (
	"context"
	"log"
	"time"

	"banking-assistant-be/internal/config"
	"banking-assistant-be/internal/controller"
	"banking-assistant-be/internal/pkg/logger"
	"banking-assistant-be/internal/repository/contract"
	"banking-assistant-be/internal/repository/memory"
	"banking-assistant-be/internal/repository/redisstore"
	"banking-assistant-be/internal/service"
	"banking-assistant-be/pkg/classifier"
	"banking-assistant-be/pkg/knowledge"
	pktNats "banking-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController

	// Background Services (exposed for main.go to run)
	AnalyticsService service.IAnalyticsService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Intent Classifier provider
	var intentClassifier classifier.IntentClassifier
	if cfg.Classifier.Provider == "http" {
		intentClassifier = classifier.NewHTTPClassifier(
			cfg.Classifier.BaseURL,
			time.Duration(cfg.Classifier.TimeoutSeconds)*time.Second,
		)
		log.Printf("[INFO] Using Intent Classifier: HTTP (%s)", cfg.Classifier.BaseURL)
	} else {
		intentClassifier = classifier.NewKeywordClassifier()
		log.Printf("[INFO] Using Intent Classifier: KEYWORD")
	}

	// 3. Session Context Store
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	var sessionRepo contract.ISessionRepository
	if cfg.Session.Store == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory session store", err)
			sessionRepo = memory.NewSessionRepository(ttl)
		} else {
			sessionRepo = redisstore.NewSessionRepository(rdb, ttl)
			log.Printf("[INFO] Using Session Store: REDIS")
		}
	} else {
		sessionRepo = memory.NewSessionRepository(ttl)
	}

	// 4. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Optional external bus
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		p, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			natsPub = p
		}
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.ChatEventsTopic, pubSub, natsPub, sysLogger)
	analyticsService := service.NewAnalyticsService(pubSub, cfg.App.ChatEventsTopic, sysLogger)

	assistantService := service.NewAssistantService(
		intentClassifier,
		knowledge.NewBase(),
		sessionRepo,
		publisherService,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		AnalyticsService:    analyticsService,
		Logger:              sysLogger,
	}
}
