// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexDanDobrin/Plantech/api"
	"github.com/AlexDanDobrin/Plantech/internal/auth"
	"github.com/AlexDanDobrin/Plantech/internal/cache"
	"github.com/AlexDanDobrin/Plantech/internal/config"
	"github.com/AlexDanDobrin/Plantech/internal/database"
	"github.com/AlexDanDobrin/Plantech/internal/demo"
	"github.com/AlexDanDobrin/Plantech/internal/monitoring"
	"github.com/AlexDanDobrin/Plantech/internal/plantservice"
	"github.com/AlexDanDobrin/Plantech/internal/repository/postgres"
	"github.com/gorilla/handlers"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config       *config.Config
	srv          *http.Server
	plantservice *plantservice.PlantService
	monitoring   *monitoring.Service
	latch        *demo.Latch
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
		// The latch always starts idle; an armed state never survives a
		// process restart.
		latch: demo.NewLatch(),
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	s.monitoring = monitoring.NewService()
	s.plantservice = initializePlantService(s.config, s.monitoring)

	s.setupCleanupHandlers()

	router := api.NewRouter(s.plantservice, s.latch, s.monitoring)
	handler := handlers.RecoveryHandler()(handlers.CombinedLoggingHandler(os.Stdout, router))

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

func (s *Server) setupCleanupHandlers() {
	// Handle sensor deletion events
	s.plantservice.Cleanup.OnCleanup("sensor.deleted", func(id int64) {
		nuts.L.Infof("[Cleanup] Sensor %d and all associated measurements deleted", id)
		s.monitoring.RecordEvent("sensor.deleted")
	})
}

// initializePlantService creates and configures the plant service
func initializePlantService(cfg *config.Config, mon *monitoring.Service) *plantservice.PlantService {
	appDB := initAppDB(cfg.Database)

	// Initialize repositories
	users := postgres.NewUserRepository(appDB)
	sensors := postgres.NewSensorRepository(appDB)
	measurements := postgres.NewMeasurementRepository(appDB)

	return plantservice.New(
		users,
		sensors,
		measurements,
		auth.NewHasher(),
		initCache(cfg.Redis),
		cfg.Redis.TTL,
		mon,
	)
}

func initAppDB(cfg config.PostgresConfig) database.DB {
	wrappedDB, err := database.NewPostgresDB(cfg)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := wrappedDB.Ping(ctx); err != nil {
		nuts.L.Fatalf("[Server] Failed to ping database: %v", err)
	}

	if err := database.EnsureSchema(ctx, wrappedDB); err != nil {
		nuts.L.Fatalf("[Server] Failed to initialize schema: %v", err)
	}
	return wrappedDB
}

func initCache(cfg config.RedisConfig) cache.Cache {
	if !cfg.Enabled() {
		nuts.L.Infof("[Server] Redis not configured, device poll cache disabled")
		return cache.NewNoop()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		nuts.L.Fatalf("[Server] Failed to ping redis: %v", err)
	}

	nuts.L.Infof("[Server] Connected to redis at %s", cfg.Addr())
	return cache.NewRedisCache(client)
}
