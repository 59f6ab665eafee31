package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/vakit/internal/broadcast"
	"github.com/Nixie-Tech-LLC/vakit/internal/config"
	"github.com/Nixie-Tech-LLC/vakit/internal/db"
	"github.com/Nixie-Tech-LLC/vakit/internal/mqtt"
	"github.com/Nixie-Tech-LLC/vakit/internal/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg.Environment, cfg.LogLevel)
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tmpl, err := LoadTemplates(cfg.TemplatesGlob)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load templates")
	}

	var publisher mqtt.Publisher = mqtt.Discard{}
	if cfg.MQTTBrokerURL != "" {
		client, err := mqtt.Connect(cfg.MQTTBrokerURL, cfg.MQTTClientID)
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt connect")
		}
		defer client.Close()
		publisher = client
	} else {
		log.Warn().Msg("MQTT_BROKER_URL not set, athan broadcasts are disabled")
	}

	var svc Services
	if cfg.AdminEnabled() {
		// initialize PostgreSQL
		conn, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("db init")
		}
		defer conn.Close()

		// run pending migrations
		if err := db.RunMigrations(ctx, conn, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("db migrate")
		}

		rdb := redis.NewClient(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
		defer rdb.Close()
		pairing := redis.NewPairingCodes(rdb)
		if err := pairing.Ping(ctx); err != nil {
			log.Fatal().Err(err).Str("address", cfg.RedisAddress).Msg("redis ping")
		}

		store := db.NewStore(conn)
		broadcaster := broadcast.New(store, publisher, cfg.BroadcastInterval)
		go broadcaster.Run(ctx)

		svc = Services{Store: store, Pairing: pairing, Publisher: broadcaster, Exports: InitStorage(cfg)}
	} else {
		log.Warn().Msg("DATABASE_URL not set, screens and operator API are disabled")
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           NewRouter(cfg, svc, tmpl),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
