package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/auspost-shipping/internal/app"
	"github.com/SergeyBogomolovv/auspost-shipping/internal/carrier"
	"github.com/SergeyBogomolovv/auspost-shipping/internal/config"
	"github.com/SergeyBogomolovv/auspost-shipping/internal/events"
	"github.com/SergeyBogomolovv/auspost-shipping/internal/handler"
	"github.com/SergeyBogomolovv/auspost-shipping/internal/postgres"
	"github.com/SergeyBogomolovv/auspost-shipping/internal/repo"
	"github.com/SergeyBogomolovv/auspost-shipping/internal/service"
	"github.com/SergeyBogomolovv/auspost-shipping/pkg/cache"
	"github.com/SergeyBogomolovv/auspost-shipping/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Shipping Service API
// @version         1.0
// @description     Документация HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	handler.RegisterMetrics()

	shipmentRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db, trm.WithIsolation(sql.LevelReadCommitted))
	quoteCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL, cache.WithName("quotes"))

	carrierClient := carrier.New(logger, conf.Carrier)
	publisher := events.NewKafkaPublisher(logger, conf.Kafka)

	shippingService := service.NewShippingService(logger, txManager, carrierClient, shipmentRepo, quoteCache, publisher)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, shippingService)
	httpHandler := handler.NewHTTPHandler(logger, shippingService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(quoteCache)
	app.SetClosers(publisher)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
