package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/protomem/club-manager/internal/database"
	"github.com/protomem/club-manager/internal/env"
	"github.com/protomem/club-manager/internal/metrics"
	"github.com/protomem/club-manager/internal/service"
	"github.com/protomem/club-manager/internal/token"
)

var _cfgFile = flag.String("cfg", "", "path to config file")

func main() {
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := run(logger)
	if err != nil {
		trace := string(debug.Stack())
		logger.Error(err.Error(), "trace", trace)
		os.Exit(1)
	}
}

type config struct {
	httpHost string
	httpPort int
	db       struct {
		dsn         string
		automigrate bool
	}
	jwt struct {
		secret     string
		accessTTL  time.Duration
		refreshTTL time.Duration
	}
}

type application struct {
	config   config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	auth          *service.Auth
	clients       *service.Clients
	seasonTickets *service.SeasonTickets
	visits        *service.Visits

	wg sync.WaitGroup
}

func run(logger *slog.Logger) error {
	var cfg config

	if *_cfgFile != "" {
		err := env.Load(*_cfgFile)
		if err != nil {
			return err
		}
	}

	cfg.httpHost = env.GetString("HTTP_HOST", "localhost")
	cfg.httpPort = env.GetInt("HTTP_PORT", 8080)
	cfg.db.dsn = env.GetString("DB_DSN", "postgres:postgres@localhost:5432/postgres")
	cfg.db.automigrate = env.GetBool("DB_AUTOMIGRATE", true)
	cfg.jwt.secret = env.GetString("JWT_SECRET", "")
	cfg.jwt.accessTTL = env.GetDuration("JWT_ACCESS_TTL", 15*time.Minute)
	cfg.jwt.refreshTTL = env.GetDuration("JWT_REFRESH_TTL", 720*time.Hour)

	if cfg.jwt.secret == "" {
		return errors.New("JWT_SECRET is required")
	}

	db, err := database.New(cfg.db.dsn, cfg.db.automigrate)
	if err != nil {
		return err
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	tokens := token.NewManager(cfg.jwt.secret, cfg.jwt.accessTTL, cfg.jwt.refreshTTL)

	app := &application{
		config:   cfg,
		logger:   logger,
		registry: registry,
		metrics:  m,

		auth:          service.NewAuth(logger, database.NewUserDAO(logger, m, db), tokens),
		clients:       service.NewClients(logger, database.NewClientDAO(logger, m, db)),
		seasonTickets: service.NewSeasonTickets(logger, database.NewSeasonTicketDAO(logger, m, db)),
		visits:        service.NewVisits(logger, database.NewVisitDAO(logger, m, db)),
	}

	return app.serveHTTP()
}
