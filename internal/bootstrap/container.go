package bootstrap

import (
	"context"
	"log"

	"jukugi-bokujo-be/internal/config"
	"jukugi-bokujo-be/internal/controller"
	"jukugi-bokujo-be/internal/handler"
	"jukugi-bokujo-be/internal/pkg/logger"
	"jukugi-bokujo-be/internal/pkg/mailer"
	"jukugi-bokujo-be/internal/repository/memory"
	"jukugi-bokujo-be/internal/repository/unitofwork"
	"jukugi-bokujo-be/internal/service"
	"jukugi-bokujo-be/internal/websocket"
	"jukugi-bokujo-be/pkg/embedding"
	"jukugi-bokujo-be/pkg/embedding/jina"
	"jukugi-bokujo-be/pkg/llm/factory"

	pktNats "jukugi-bokujo-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	OAuthController     controller.IOAuthController
	AgentController     controller.IAgentController
	TopicController     controller.ITopicController
	ModeController      controller.IModeController
	SessionController   controller.ISessionController
	FeedbackController  controller.IFeedbackController
	KnowledgeController controller.IKnowledgeController

	// Background Services (Exposed for main.go to run)
	ConsumerService   service.IConsumerService
	DiscussionService service.IDiscussionService

	// WebSockets
	StreamHandler *handler.StreamHandler
	WebSocketHub  *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else if cfg.Ai.EmbeddingProvider == "jina" {
		embeddingProvider = jina.NewJinaProvider(cfg.Ai.JinaKey)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GoogleGeminiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.HuggingFaceKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// In-memory state for running sessions
	liveSessions := memory.NewLiveSessionRepository()

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Workers
	turnPublisher := service.NewPublisherService(cfg.Topics.ProcessTurn, pubSub)
	embedPublisher := service.NewPublisherService(cfg.Topics.EmbedKnowledge, pubSub)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Topics.EmbedKnowledge,
		uowFactory,
		embeddingProvider,
	)
	discussionService := service.NewDiscussionService(
		pubSub,
		cfg.Topics.ProcessTurn,
		uowFactory,
		llmProvider,
		embeddingProvider,
		wsHub,
		natsPub,
		liveSessions,
	)

	if natsSub != nil {
		eventRelay := service.NewEventRelayService(natsSub, wsHub, sysLogger)
		go eventRelay.Start()
	}

	// 5. Services
	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory)
	agentService := service.NewAgentService(uowFactory)
	topicService := service.NewTopicService(uowFactory)
	sessionService := service.NewSessionService(uowFactory, turnPublisher, natsPub, liveSessions)
	feedbackService := service.NewFeedbackService(uowFactory)
	knowledgeService := service.NewKnowledgeService(uowFactory, embedPublisher, embeddingProvider)

	// 6. Handlers & Controllers
	streamHandler := handler.NewStreamHandler(wsHub, wsLogger)

	return &Container{
		AuthController:      controller.NewAuthController(authService),
		OAuthController:     controller.NewOAuthController(oauthService),
		AgentController:     controller.NewAgentController(agentService),
		TopicController:     controller.NewTopicController(topicService),
		ModeController:      controller.NewModeController(),
		SessionController:   controller.NewSessionController(sessionService),
		FeedbackController:  controller.NewFeedbackController(feedbackService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService),

		ConsumerService:   consumerService,
		DiscussionService: discussionService,

		StreamHandler: streamHandler,
		WebSocketHub:  wsHub,
	}
}
