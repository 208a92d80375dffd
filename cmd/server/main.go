// Package main is the entry point for the bookstore backend.
// It wires together all modules and starts the HTTP server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Ron9508/bookstore-backend/internal/platform/eventbus"
	"github.com/Ron9508/bookstore-backend/internal/platform/httpserver"
	"github.com/Ron9508/bookstore-backend/internal/platform/kafka"
	"github.com/Ron9508/bookstore-backend/internal/platform/spanner"
	"github.com/Ron9508/bookstore-backend/internal/platform/token"
	"github.com/Ron9508/bookstore-backend/internal/platform/transaction"
	"github.com/Ron9508/bookstore-backend/modules/catalog"
	catalogpersistence "github.com/Ron9508/bookstore-backend/modules/catalog/infrastructure/persistence"
	"github.com/Ron9508/bookstore-backend/modules/notifications"
	"github.com/Ron9508/bookstore-backend/modules/orders"
	orderspersistence "github.com/Ron9508/bookstore-backend/modules/orders/infrastructure/persistence"
	"github.com/Ron9508/bookstore-backend/modules/users"
	userspersistence "github.com/Ron9508/bookstore-backend/modules/users/infrastructure/persistence"
)

func main() {
	// Initialize logger
	slogOptions := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, slogOptions))
	slog.SetDefault(logger)

	logger.Info("starting bookstore backend")

	// Initialize Spanner client
	ctx := context.Background()
	spannerCfg := spanner.Config{
		ProjectID:  getEnv("SPANNER_PROJECT_ID", "local-project"),
		InstanceID: getEnv("SPANNER_INSTANCE_ID", "local-instance"),
		DatabaseID: getEnv("SPANNER_DATABASE_ID", "bookstore-db"),
	}

	spannerClient, err := spanner.NewClient(ctx, spannerCfg)
	if err != nil {
		logger.Error("failed to create spanner client", slog.Any("error", err))
		os.Exit(1)
	}
	defer spannerClient.Close()

	logger.Info("connected to spanner", slog.String("dsn", spannerCfg.DSN()))

	// Token manager for login and bearer auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Error("JWT_SECRET is required")
		os.Exit(1)
	}
	tokenManager := token.NewManager([]byte(jwtSecret))

	// Transaction scopes bound the time any store call may take
	storeTimeout := getEnvDuration("STORE_TIMEOUT", 10*time.Second)
	writeScope := transaction.NewSpannerReadWriteScope(spannerClient, storeTimeout)
	readScope := transaction.NewSpannerReadOnlyScope(spannerClient, storeTimeout)

	// Initialize event bus (for inter-module communication)
	eventBus := eventbus.New(logger)

	// Initialize repositories
	usersRepo := userspersistence.NewSpannerRepository(spannerClient)
	booksRepo := catalogpersistence.NewSpannerRepository(spannerClient)
	ordersRepo := orderspersistence.NewSpannerRepository(spannerClient)

	// Initialize modules
	usersModule := users.New(users.Config{
		Repository:       usersRepo,
		CredentialIssuer: tokenManager,
		EventPublisher:   eventBus,
		Logger:           logger,
	})

	catalogModule := catalog.New(catalog.Config{
		Repository: booksRepo,
	})

	ordersModule := orders.New(orders.Config{
		Repository:   ordersRepo,
		Reader:       ordersRepo,
		PriceCatalog: catalogModule,
		TxScope:      writeScope,
		ReadScope:    readScope,
		Publisher:    eventBus,
		Logger:       logger,
	})

	// Notifications subscribe to events; Kafka forwarding is optional
	// and off when no brokers are configured.
	kafkaClient := kafka.NewClient(os.Getenv("KAFKA_BROKERS"))
	notificationsCfg := notifications.Config{Logger: logger}
	if kafkaClient.Enabled() {
		writer := kafkaClient.NewWriter(getEnv("KAFKA_ORDERS_TOPIC", "orders.placed"))
		defer writer.Close()
		notificationsCfg.OrderEventsWriter = writer
		logger.Info("kafka event forwarding enabled", slog.Any("brokers", kafkaClient.Brokers))
	}
	if err := notifications.Register(eventBus, notificationsCfg); err != nil {
		logger.Error("failed to register notification handlers", slog.Any("error", err))
		os.Exit(1)
	}

	// Build HTTP router
	requireAuth := httpserver.RequireAuth(tokenManager)
	metrics := httpserver.NewServerMetrics("api")
	router := buildRouter(usersModule, catalogModule, ordersModule, requireAuth)

	// Apply middleware
	// The request timeout gives every store read a deadline even on
	// paths that run outside an explicit transaction scope.
	handler := httpserver.Middleware(router,
		httpserver.Recovery(logger),
		httpserver.Logging(logger),
		httpserver.Metrics(metrics),
		httpserver.Timeout(getEnvDuration("REQUEST_TIMEOUT", 15*time.Second)),
		httpserver.CORS([]string{"*"}),
	)

	// Create and start server
	cfg := httpserver.DefaultConfig()
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	server := httpserver.New(cfg, handler, logger)

	// Run until interrupted, then drain in-flight requests.
	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return server.Start()
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildRouter creates the main HTTP router with all module handlers.
func buildRouter(
	usersModule users.Module,
	catalogModule catalog.Module,
	ordersModule orders.Module,
	requireAuth httpserver.MiddlewareFunc,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", httpserver.MetricsHandler())

	// Each module registers its own routes
	usersModule.RegisterRoutes(mux, requireAuth)
	catalogModule.RegisterRoutes(mux, requireAuth)
	ordersModule.RegisterRoutes(mux, requireAuth)

	return mux
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
