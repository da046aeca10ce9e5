package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	analyticsHttp "video-analytics-service/internal/analytics/adapters/http/fiber"
	analyticsRepoPg "video-analytics-service/internal/analytics/adapters/postgres"
	analyticsPorts "video-analytics-service/internal/analytics/core/ports"
	analyticsUsecase "video-analytics-service/internal/analytics/core/usecase"

	eventsHttp "video-analytics-service/internal/events/adapters/http/fiber"
	"video-analytics-service/internal/events/adapters/memory"
	eventsRepoPg "video-analytics-service/internal/events/adapters/postgres"
	eventsPorts "video-analytics-service/internal/events/core/ports"
	eventsUsecase "video-analytics-service/internal/events/core/usecase"

	gojson "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "video-analytics-service/docs"
)

func main() {
	// Config (.env is optional)
	_ = godotenv.Load()

	var (
		eventRepo   eventsPorts.EventRepositoryPort
		eventReader analyticsPorts.EventReaderPort
	)

	switch store := os.Getenv("EVENT_STORE"); store {
	case "", "memory":
		// The bounded in-memory log the aggregation core is designed
		// around; events live only for the process lifetime.
		eventLog := memory.NewEventLog()
		eventRepo = eventLog
		eventReader = eventLog

	case "postgres":
		dsn := os.Getenv("POSTGRES_DSN")
		if dsn == "" {
			log.Fatal("POSTGRES_DSN is not set")
		}

		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatalf("failed to open postgres: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(20)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err := db.Ping(); err != nil {
			log.Fatalf("failed to ping postgres: %v", err)
		}

		eventRepo = eventsRepoPg.NewEventRepository(eventsRepoPg.NewSQLDB(db))
		eventReader = analyticsRepoPg.NewEventReader(analyticsRepoPg.NewSQLDB(db))

	default:
		log.Fatalf("unknown EVENT_STORE %q (want memory or postgres)", store)
	}

	// Usecases
	storeEventUC := eventsUsecase.NewStoreEventUseCase(eventRepo)
	analyticsUC := analyticsUsecase.NewAnalyticsUseCase(eventReader)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		JSONEncoder: gojson.Marshal,
		JSONDecoder: gojson.Unmarshal,
	})

	// ingestion endpoints
	eventsHandler := eventsHttp.NewEventHandler(storeEventUC)
	app.Post("/events", eventsHandler.CreateEvent)
	app.Post("/events/bulk", eventsHandler.BulkCreateEvents)

	// analytics endpoints
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(analyticsUC)
	app.Get("/analytics/users/top", analyticsHandler.GetHighValueUsers)
	app.Get("/analytics/users/:userId/engagement", analyticsHandler.GetUserEngagement)
	app.Get("/analytics/products/:productId", analyticsHandler.GetProductPerformance)
	app.Get("/analytics/videos/:videoId", analyticsHandler.GetVideoAnalytics)
	app.Get("/analytics/sessions/:sessionId", analyticsHandler.GetSessionSummary)
	app.Get("/analytics/funnel", analyticsHandler.GetFunnel)
	app.Get("/analytics/hourly", analyticsHandler.GetHourlyMetrics)
	app.Get("/analytics/carts/abandoned", analyticsHandler.GetAbandonedCarts)
	app.Get("/analytics/cohorts", analyticsHandler.GetCohorts)
	app.Get("/analytics/realtime", analyticsHandler.GetSlidingWindow)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	addr := ":" + port()

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
