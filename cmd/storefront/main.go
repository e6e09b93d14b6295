package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shahruchi1212/Mobile-Ordering-App/internal/api"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/cart"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/cart/kv"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/catalog"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/checkout"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/delivery"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/notify"
	"github.com/shahruchi1212/Mobile-Ordering-App/internal/placing"
)

type Config struct {
	HTTPPort         string
	RedisAddr        string
	RedisPassword    string
	KafkaBrokers     []string
	CatalogBaseURL   string
	ProfileURL       string
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
	StageDelay       time.Duration
	PlacementLatency time.Duration
}

func loadConfig() *Config {
	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		CatalogBaseURL:   getEnv("CATALOG_BASE_URL", "https://fakestoreapi.com"),
		ProfileURL:       getEnv("PROFILE_URL", "https://jsonplaceholder.typicode.com/users/1"),
		RequestTimeout:   30 * time.Second,
		ShutdownTimeout:  10 * time.Second,
		StageDelay:       getEnvDuration("STAGE_DELAY", 3*time.Second),
		PlacementLatency: getEnvDuration("PLACEMENT_LATENCY", 1500*time.Millisecond),
	}
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = []string{brokers}
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("invalid duration %q for %s, using default %s", value, key, defaultValue)
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	// Cart persistence. Redis is best-effort: an unreachable server degrades
	// to in-process persistence instead of refusing to start, because the
	// in-memory cart is authoritative anyway.
	var persistence kv.KV
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s, cart will not survive restarts: %v", cfg.RedisAddr, err)
		redisClient.Close()
		persistence = kv.NewMemoryKV()
	} else {
		log.Printf("connected to redis at %s", cfg.RedisAddr)
		defer redisClient.Close()
		persistence = kv.NewRedisKV(redisClient)
	}

	store := cart.NewStore(persistence)
	store.Load(ctx)
	log.Printf("cart restored: %d items, total %.2f", len(store.Items()), store.TotalPrice())

	// Notifications. Without a broker, stage notifications go to the log.
	var notifier delivery.Notifier
	if len(cfg.KafkaBrokers) > 0 {
		kafkaNotifier := notify.NewKafkaNotifier(cfg.KafkaBrokers...)
		defer kafkaNotifier.Close()
		notifier = kafkaNotifier
		log.Printf("publishing status notifications to kafka at %v", cfg.KafkaBrokers)
	} else {
		notifier = notify.LogNotifier{}
	}

	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, cfg.ProfileURL)
	placer := placing.NewSimulated(cfg.PlacementLatency)
	flow := checkout.NewCoordinator(store, placer)

	sim := delivery.NewSimulator(delivery.NewTimerScheduler(), notifier, cfg.StageDelay)
	tracker := delivery.NewTracker(sim)
	defer tracker.Close()

	router := api.NewRouter(
		api.NewCartHandler(store),
		api.NewCatalogHandler(catalogClient),
		api.NewCheckoutHandler(flow, tracker),
		api.NewOrdersHandler(tracker),
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront API starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
