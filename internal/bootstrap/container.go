package bootstrap

import (
	"context"
	"fmt"
	"log"

	"companion-learning-be/internal/config"
	"companion-learning-be/internal/controller"
	"companion-learning-be/internal/handler"
	"companion-learning-be/internal/identity"
	"companion-learning-be/internal/pkg/logger"
	"companion-learning-be/internal/repository/memory"
	"companion-learning-be/internal/repository/unitofwork"
	"companion-learning-be/internal/service"
	"companion-learning-be/internal/websocket"

	pktNats "companion-learning-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CompanionController controller.ICompanionController
	SessionController   controller.ISessionController
	BookmarkController  controller.IBookmarkController

	Gateway identity.Gateway

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Revalidation
	RevalidationHandler *handler.RevalidationHandler
	WebSocketHub        *websocket.Hub

	Logger logger.ILogger

	closers []func()
}

// NewContainer wires the application. A nil db selects the in-memory store.
func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger}

	// 1. Store
	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	} else {
		sysLogger.Warn("Bootstrap", "Using in-memory store; data is lost on restart", nil)
		uowFactory = unitofwork.NewMemoryRepositoryFactory(memory.NewStore())
	}

	// 2. Identity
	gateway, err := identity.NewJWTGateway(cfg.Identity.JwtSecret, cfg.Identity.PublicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("identity gateway: %w", err)
	}
	c.Gateway = gateway

	// 3. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { pubSub.Close() })

	// 4. Infrastructure
	// NATS is optional; without it invalidations still reach websocket clients.
	var eventPublisher service.EventPublisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// Redis relays revalidations between instances.
	rdb := newRedisClient(cfg.App.RedisURL)
	if rdb != nil {
		c.closers = append(c.closers, func() { rdb.Close() })
	}

	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	hubCtx, stopHub := context.WithCancel(context.Background())
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run(hubCtx)
	c.closers = append(c.closers, stopHub)
	c.WebSocketHub = wsHub

	// 5. Services
	revalidationService := service.NewRevalidationService(pubSub, cfg.Events.RevalidateTopic, sysLogger)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		cfg.Events.RevalidateTopic,
		wsHub,
		eventPublisher,
		wsLogger,
	)

	companionService := service.NewCompanionService(uowFactory, sysLogger)
	sessionService := service.NewSessionService(uowFactory)
	bookmarkService := service.NewBookmarkService(uowFactory, revalidationService, sysLogger)

	// 6. Controllers & Handlers
	c.CompanionController = controller.NewCompanionController(companionService)
	c.SessionController = controller.NewSessionController(sessionService)
	c.BookmarkController = controller.NewBookmarkController(bookmarkService)
	c.RevalidationHandler = handler.NewRevalidationHandler(gateway, wsHub, wsLogger)

	return c, nil
}

func newRedisClient(url string) *redis.Client {
	if url == "" {
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: url}
	}

	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v (running single-instance)", err)
		rdb.Close()
		return nil
	}
	return rdb
}

// Close releases infrastructure in reverse order of acquisition.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
