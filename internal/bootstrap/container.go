package bootstrap

import (
	"log"

	"motherlanka-be/internal/config"
	"motherlanka-be/internal/controller"
	"motherlanka-be/internal/handler"
	"motherlanka-be/internal/pkg/logger"
	"motherlanka-be/internal/pkg/serverutils"
	"motherlanka-be/internal/service"
	"motherlanka-be/pkg/rag/index"

	pktNats "motherlanka-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatbotController controller.IChatbotController
	RagController     controller.IRagController
	ContentController controller.IContentController
	HealthController  controller.IHealthController
	AdminController   controller.IAdminController

	// Admin routes: JWT first, then role
	AdminMiddlewares []fiber.Handler

	// Background Services (Exposed for main.go to run)
	ConsumerService     service.IConsumerService
	ContentEventHandler *handler.ContentEventHandler // nil without NATS
	Rag                 *Rag

	Logger    logger.ILogger
	RagLogger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	ragLogger := logger.NewIsolatedLogger(cfg.App.RagLogFilePath)

	c := &Container{Logger: sysLogger, RagLogger: ragLogger}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 16},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// NATS is optional; without it rebuilds are only triggered locally.
	var indexOpts []index.Option
	var natsSub *pktNats.Subscriber
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			indexOpts = append(indexOpts, index.WithNotifier(service.NewIndexEventNotifier(natsPub)))
			c.closers = append(c.closers, natsPub.Close)
		}

		natsSub, err = pktNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
			natsSub = nil
		} else {
			c.closers = append(c.closers, natsSub.Close)
		}
	}

	// 3. RAG pipeline
	rag, err := NewRag(db, cfg, ragLogger, indexOpts...)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize RAG pipeline: %v", err)
	}
	c.Rag = rag
	c.closers = append(c.closers, rag.Close)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Rag.RebuildTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Rag.RebuildTopic, rag.Indexer, sysLogger)

	chatbotService := service.NewChatbotService(
		rag.Indexer,
		rag.Retriever,
		rag.Generator,
		publisherService,
		rag.Embedder,
		sysLogger,
		service.ChatbotOptions{
			TopK:         cfg.Rag.TopK,
			ExposeErrors: !cfg.IsProduction(),
		},
	)
	contentService := service.NewContentService(rag.UowFactory)
	adminService := service.NewAdminService(sysLogger, ragLogger)

	if natsSub != nil {
		c.ContentEventHandler = handler.NewContentEventHandler(natsSub, cfg.Rag.ContentSubject, publisherService, sysLogger)
	}

	// 5. Controllers
	c.ChatbotController = controller.NewChatbotController(chatbotService)
	c.RagController = controller.NewRagController(chatbotService)
	c.ContentController = controller.NewContentController(contentService)
	c.HealthController = controller.NewHealthController()
	c.AdminController = controller.NewAdminController(adminService)

	if cfg.Auth.JwtSecret == "" {
		log.Printf("[WARN] JWT_SECRET is empty, admin routes will reject every token")
	}
	c.AdminMiddlewares = []fiber.Handler{
		serverutils.NewJwtMiddleware(cfg.Auth.JwtSecret, cfg.Auth.TokenIssuer),
		serverutils.RequireRole("admin"),
	}

	return c
}

// Close releases bus connections and flushes the loggers, newest first.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
	_ = c.RagLogger.Sync()
}
