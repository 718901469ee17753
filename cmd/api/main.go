package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"karigar-api/internal/advisor"
	"karigar-api/internal/cache"
	"karigar-api/internal/config"
	"karigar-api/internal/handler"
	"karigar-api/internal/images"
	"karigar-api/internal/repository"
	"karigar-api/internal/router"
	"karigar-api/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Karigar API...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize key-value repository based on config
	var kvRepo repository.KVRepository
	switch cfg.Store.Type {
	case "postgres", "postgresql":
		pgRepo, err := repository.NewPostgresKVRepository(cfg.Store.PostgresDSN())
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL: %v", err)
		}
		kvRepo = pgRepo
		log.Println("PostgreSQL repository initialized")
	case "mysql":
		mysqlRepo, err := repository.NewMySQLKVRepository(cfg.Store.MySQLDSN())
		if err != nil {
			log.Fatalf("Failed to initialize MySQL: %v", err)
		}
		kvRepo = mysqlRepo
		log.Println("MySQL repository initialized")
	case "mongodb", "mongo":
		mongoRepo, err := repository.NewMongoDBKVRepository(
			cfg.Store.MongoURI,
			cfg.Store.MongoDatabase,
			cfg.Store.MongoCollection,
		)
		if err != nil {
			log.Fatalf("Failed to initialize MongoDB: %v", err)
		}
		kvRepo = mongoRepo
		log.Println("MongoDB repository initialized")
	case "memory":
		kvRepo = repository.NewMemoryKVRepository()
		log.Println("Memory repository initialized (data will not survive restarts)")
	default: // sqlite
		if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		sqliteRepo, err := repository.NewSQLiteKVRepository(cfg.Store.Path)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite: %v", err)
		}
		kvRepo = sqliteRepo
		log.Println("SQLite repository initialized")
	}
	defer kvRepo.Close()

	// Initialize cache
	var storeCache cache.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cache.RedisCacheConfig{
			Addr:     cfg.Cache.RedisAddress(),
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err != nil {
			log.Printf("Warning: Redis connection failed, continuing without cache: %v", err)
		} else {
			storeCache = redisCache
			defer redisCache.Close()
			log.Println("Redis cache initialized")
		}
	case "none":
		// explicit opt-out
	default:
		memCache := cache.NewMemoryCache()
		storeCache = memCache
		defer memCache.Close()
		log.Println("Memory cache initialized")
	}

	// Initialize store
	var dataStore *store.Store
	if storeCache != nil {
		dataStore = store.NewWithCache(kvRepo, storeCache, cfg.Cache.TTL)
	} else {
		dataStore = store.New(kvRepo)
	}

	// Initialize image compressor
	compressor, err := images.NewCompressor(cfg.Image.MaxDimension, cfg.Image.Quality)
	if err != nil {
		log.Fatalf("Invalid image settings: %v", err)
	}

	// Initialize advisory client (optional)
	var advisorClient *advisor.Client
	if cfg.Gemini.APIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, advisory endpoints will be unavailable")
	} else {
		advisorClient, err = advisor.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Printf("Warning: advisory client initialization failed: %v", err)
		} else {
			log.Printf("Advisory client initialized (model: %s)", cfg.Gemini.Model)
		}
	}

	// Create router
	r := router.New(router.Config{
		Handler:          handler.New(cfg.App.Version),
		UserHandler:      handler.NewUserHandler(dataStore),
		ProductHandler:   handler.NewProductHandler(dataStore, compressor),
		ChatHandler:      handler.NewChatHandler(dataStore),
		AnalyticsHandler: handler.NewAnalyticsHandler(dataStore),
		SettingsHandler:  handler.NewSettingsHandler(dataStore),
		ExportHandler:    handler.NewExportHandler(dataStore),
		AdvisorHandler:   handler.NewAdvisorHandler(advisorClient, dataStore),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
	fmt.Println("Goodbye!")
}
