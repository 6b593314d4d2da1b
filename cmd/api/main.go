package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"

	"github.com/venha/invitations-api/internal/api"
	"github.com/venha/invitations-api/internal/api/handler"
	"github.com/venha/invitations-api/internal/core/domain"
	"github.com/venha/invitations-api/internal/core/service"
	"github.com/venha/invitations-api/internal/infrastructure/db/mongo"
	"github.com/venha/invitations-api/internal/infrastructure/db/redis"
	"github.com/venha/invitations-api/internal/infrastructure/email"
	"github.com/venha/invitations-api/internal/infrastructure/geocoding"
	"github.com/venha/invitations-api/internal/pkg/config"
	"github.com/venha/invitations-api/pkg/logger"
)

const (
	serviceName     = "invitations-api"
	shutdownTimeout = 10 * time.Second
)

// @title						Venha Invitations API
// @version					1.0
// @description				Event invitations with guest RSVPs, address geocoding and host email notifications.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, envconfig.OsLookuper()); err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("invitations-api exited")
	}
}

// run wires the service from configuration read through l and serves until
// ctx is cancelled.
func run(ctx context.Context, l envconfig.Lookuper) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	cfg, err := config.LoadFrom(ctx, l)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty || !cfg.IsProduction(),
		Service: serviceName,
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect error")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:       cfg.Redis.Addr,
		DB:         cfg.Redis.DB,
		ClientName: serviceName,
		Timeout:    cfg.Redis.Timeout,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	hosts := mongo.NewHostRepository(db)
	events := mongo.NewEventRepository(db)
	attendees := mongo.NewAttendeeRepository(db)
	if err := mongo.EnsureIndexes(ctx, hosts, events, attendees); err != nil {
		return err
	}

	clock := clockwork.NewRealClock()

	geoLog := logger.Component("geocoder")
	geocoder := service.NewAddressGeocoder(geoLog,
		service.GeocodeStrategy{
			Provider: geocoding.NewGoogle(cfg.Geocoding.GoogleAPIKey, cfg.Geocoding.GoogleURL, cfg.Geocoding.GoogleTimeout, geoLog),
		},
		service.GeocodeStrategy{
			Provider: geocoding.NewNominatim(cfg.Geocoding.NominatimURL, cfg.Geocoding.NominatimUserAgent, cfg.Geocoding.NominatimTimeout, geoLog),
			Prepare:  domain.SimplifyAddress,
		},
	)

	sender := email.NewSendGridSender(cfg.Email.SendGridAPIKey, cfg.Email.SendGridHost)
	if cfg.Email.SendGridAPIKey == "" {
		log.Warn().Msg("SENDGRID_API_KEY not set, host notifications will fail")
	}
	notifier := service.NewRSVPNotifier(sender, cfg.Email.SenderAddress, logger.Component("notifier"))

	e := api.NewRouter(api.Deps{
		Auth:        service.NewAuthService(hosts, cfg.JWTSecret, cfg.JWTTTL, clock),
		Events:      service.NewEventService(events, attendees, geocoder, clock, logger.Component("events")),
		RSVPs:       service.NewRSVPService(events, attendees, hosts, notifier, clock, logger.Component("rsvps")),
		JWTSecret:   cfg.JWTSecret,
		RSVPLimiter: redis.NewRateLimiter(rdb, cfg.RateLimit.RSVPLimit, cfg.RateLimit.RSVPWindow, clock),
		Checks: map[string]handler.HealthCheck{
			"mongodb": handler.MongoCheck(db),
			"redis":   handler.RedisCheck(rdb),
		},
		Log: log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server error")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}
	log.Info().Msg("shutdown complete")
	return nil
}
