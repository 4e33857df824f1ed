package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/beanmeet/beanmeet-api/internal/auth"
	"github.com/beanmeet/beanmeet-api/internal/messaging"
	"github.com/beanmeet/beanmeet-api/internal/metrics"
	"github.com/beanmeet/beanmeet-api/internal/middleware"
	"github.com/beanmeet/beanmeet-api/internal/notification"
	"github.com/beanmeet/beanmeet-api/internal/places"
	"github.com/beanmeet/beanmeet-api/internal/profile"
	"github.com/beanmeet/beanmeet-api/internal/ratelimit"
	"github.com/beanmeet/beanmeet-api/internal/storage"
	"github.com/caarlos0/env/v6"
	"github.com/cenkalti/backoff/v4"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/cockroachdb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	KafkaConfig
	DBConfig
	Port            int           `env:"PORT" envDefault:"8090"`
	JWTSecret       string        `env:"JWT_SECRET,required"`
	TokenExpiry     time.Duration `env:"TOKEN_EXPIRY" envDefault:"24h"`
	DefaultTimezone string        `env:"DEFAULT_TIMEZONE" envDefault:"UTC"`

	RedisAddr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RateLimitMax    int64         `env:"RATE_LIMIT_MAX" envDefault:"30"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`

	PlacesBaseURL string        `env:"PLACES_BASE_URL" envDefault:"https://maps.googleapis.com"`
	PlacesAPIKey  string        `env:"PLACES_API_KEY"`
	PlacesTimeout time.Duration `env:"PLACES_TIMEOUT" envDefault:"5s"`

	UpcomingLead      time.Duration `env:"UPCOMING_LEAD" envDefault:"3h"`
	UpcomingInterval  time.Duration `env:"UPCOMING_INTERVAL" envDefault:"30m"`
	DispatchInterval  time.Duration `env:"DISPATCH_INTERVAL" envDefault:"30s"`
	DispatchBatchSize int           `env:"DISPATCH_BATCH_SIZE" envDefault:"100"`
	DeliveryRoutines  int           `env:"DELIVERY_ROUTINES" envDefault:"10"`
}

type KafkaConfig struct {
	BootstrapServers string `env:"KAFKA_BOOTSTRAP_SERVERS"`
	DeliveryGroupID  string `env:"DELIVERY_GROUP_ID" envDefault:"beanmeet-delivery"`
	DeliveryTopic    string `env:"DELIVERY_TOPIC" envDefault:"scheduled-notifications"`
}

type DBConfig struct {
	DBConnectString string `env:"DB_CONNECT_STRING"`
}

func main() {
	ctx := context.Background()
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	metrics.Register()

	runMigrations(cfg.DBConnectString)

	var connPool *pgxpool.Pool
	err := backoff.Retry(func() error {
		var err error
		connPool, err = pgxpool.Connect(ctx, cfg.DBConnectString)
		if err != nil {
			return err
		}
		return nil
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 10))
	if err != nil {
		log.Panic().Err(err).Msg("cannot connect")
	}
	connPool.Config().MaxConns = 50
	connPool.Config().MaxConnLifetime = time.Second * 60
	connPool.Config().MinConns = 0

	fallbackZone, err := time.LoadLocation(cfg.DefaultTimezone)
	if err != nil {
		log.Panic().Err(err).Msg("cannot load default timezone")
	}

	pers := storage.NewCRDBPersistence(connPool)
	txCreator := storage.NewWrappedTransactionCreator(connPool)

	deliveryProducer, err := messaging.NewKafkaProducer(cfg.BootstrapServers, cfg.DeliveryTopic, "beanmeet-api", "1")
	if err != nil {
		log.Panic().Err(err).Msg("cannot create kafka delivery producer")
	}
	deliveryConsumer, err := messaging.NewKafkaConsumer(cfg.BootstrapServers, cfg.DeliveryGroupID, "earliest", "false", cfg.DeliveryTopic)
	if err != nil {
		log.Panic().Err(err).Msg("cannot create kafka delivery consumer")
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	limiter := ratelimit.NewLimiter(ratelimit.NewRedisCounter(redisClient), cfg.RateLimitMax, cfg.RateLimitWindow)

	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.TokenExpiry)
	authEndpoint := auth.NewEndpoint(auth.NewService(pers, tokenSvc))
	profileEndpoint := profile.NewEndpoint(profile.NewService(pers))
	placesEndpoint := places.NewEndpoint(places.NewClient(cfg.PlacesBaseURL, cfg.PlacesAPIKey, cfg.PlacesTimeout))

	scheduler := notification.NewSchedulerService(pers, txCreator, fallbackZone)
	notificationEndpoint := notification.NewEndpoint(scheduler)

	upcoming := notification.NewUpcomingService(pers, fallbackZone, cfg.UpcomingLead, cfg.UpcomingInterval)
	dispatcher := notification.NewDispatchService(pers, deliveryProducer, cfg.DispatchInterval, cfg.DispatchBatchSize)
	notifiers := &notification.DelegatingNotificator{
		Notificators: []notification.Notificator{&notification.PushNotificator{}, &notification.EmailNotificator{}},
	}
	delivery := notification.NewDeliveryService(deliveryConsumer, notifiers, cfg.DeliveryRoutines)

	router := httprouter.New()
	router.POST("/api/auth/register", middleware.Instrument("/api/auth/register", authEndpoint.Register))
	router.POST("/api/auth/login", middleware.Instrument("/api/auth/login", authEndpoint.Login))
	router.GET("/api/profile/:userId", middleware.Instrument("/api/profile/:userId", profileEndpoint.GetProfile))
	router.POST("/api/profile", middleware.Instrument("/api/profile",
		middleware.RequireAuth(tokenSvc, profileEndpoint.UpsertProfile)))
	router.GET("/api/places/autocomplete", middleware.Instrument("/api/places/autocomplete",
		middleware.RateLimit(limiter, placesEndpoint.Autocomplete)))
	router.POST("/notifications/schedule", middleware.Instrument("/notifications/schedule", notificationEndpoint.ScheduleReminders))
	router.POST("/notifications/cancel", middleware.Instrument("/notifications/cancel", notificationEndpoint.CancelMeeting))
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	srv := http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	wait := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		if err := srv.Shutdown(context.Background()); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
		upcoming.Stop()
		dispatcher.Stop()
		delivery.Stop()
		connPool.Close()
		if err := redisClient.Close(); err != nil {
			log.Err(err).Msg("error closing redis client")
		}
		close(wait)
	}()

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server ListenAndServe")
		}
	}()
	log.Info().Msg(fmt.Sprintf("beanmeet api started at port %d", cfg.Port))

	<-wait
}

func runMigrations(dbConnectString string) {
	crdbMigrationString := strings.Replace(dbConnectString, "postgres", "cockroachdb", 1)
	err := backoff.Retry(func() error {
		m, err := migrate.New(
			"file://./migrations",
			crdbMigrationString)
		if err != nil {
			return err
		}
		if err = m.Up(); err != nil {
			if err.Error() == "no change" {
				return nil
			}
			return err
		}
		log.Info().Msg("migrations ran successfully")
		return nil
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 10))
	if err != nil {
		log.Panic().Err(err).Msg("cannot run migrations")
	}
}
