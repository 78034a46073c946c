package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grabshow/storefront/config"
	"github.com/grabshow/storefront/internal/gateway"
	"github.com/grabshow/storefront/internal/service"
	"github.com/grabshow/storefront/internal/session"
	"github.com/grabshow/storefront/internal/transport"
	"github.com/grabshow/storefront/internal/worker"

	"github.com/grabshow/storefront/pkg/rabbitmq"
	"github.com/grabshow/storefront/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Session persistence
	redisClient := redis.NewRedisClient(&cfg.Redis)
	defer redisClient.Close()

	sessionStore := session.NewStore(redisClient, cfg.Session.KeyPrefix, cfg.Session.TTL)
	sessionManager := session.NewManager(sessionStore)

	// Remote service clients
	gateways := gateway.NewGateways(&cfg.Services, &cfg.Client)

	// Notification queue (optional)
	var publisher rabbitmq.Publisher
	if cfg.Notify.Enabled && cfg.Notify.URL != "" {
		queue, err := rabbitmq.NewRabbitMQ(rabbitmq.RabbitMQConfig{
			URL:       cfg.Notify.URL,
			QueueName: cfg.Notify.QueueName,
		})
		if err != nil {
			logrus.Errorf("Failed to initialize notification queue: %v. Continuing without queue...", err)
		} else {
			logrus.Info("Notification queue initialized")
			publisher = queue
			defer queue.Close()
		}
	} else {
		logrus.Warn("Notification queue disabled")
	}

	notifier := service.NewNotifier(0)
	queueAdapter := service.NewQueueAdapter(publisher)

	// Drop the active notice together with its session
	sessionManager.OnEvict(notifier.Dismiss)

	// Initialize services
	authService := service.NewAuthService(gateways.Users, sessionManager, notifier)
	catalogService := service.NewCatalogService(gateways.Events)
	cartService := service.NewCartService(gateways.Cart, notifier)
	checkoutService := service.NewCheckoutService(
		gateways.Bookings, gateways.Cart, gateways.Events,
		notifier, queueAdapter, &cfg.Checkout,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Evict in-memory sessions whose identity record expired
	sweeper := worker.NewSessionSweeper(sessionManager, cfg.Session.SweepEvery)
	go sweeper.Start(ctx)

	// Initialize handlers
	authHandler := transport.NewAuthHandler(authService)
	eventHandler := transport.NewEventHandler(catalogService)
	cartHandler := transport.NewCartHandler(cartService)
	bookingHandler := transport.NewBookingHandler(checkoutService, notifier)

	if cfg.Server.Mode == "release" || cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(authService, authHandler, eventHandler, cartHandler, bookingHandler)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
