package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/match-ratings/internal/config"
	"github.com/riskibarqy/match-ratings/internal/domain/appearance"
	"github.com/riskibarqy/match-ratings/internal/domain/match"
	"github.com/riskibarqy/match-ratings/internal/domain/rating"
	"github.com/riskibarqy/match-ratings/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/match-ratings/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/match-ratings/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/match-ratings/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/match-ratings/internal/platform/cache"
	"github.com/riskibarqy/match-ratings/internal/platform/logging"
	"github.com/riskibarqy/match-ratings/internal/usecase"
)

// App holds the wired service graph plus the resources that need closing on
// shutdown.
type App struct {
	Server *http.Server
	db     *sqlx.DB
	logger *logging.Logger
}

type repositories struct {
	matches     match.Repository
	appearances appearance.Repository
	ratings     rating.Repository
}

// New wires repositories, services, and the HTTP router. With DB_URL set the
// service runs against Postgres; without it an in-memory store seeded with a
// small rating book is used, which keeps local runs dependency free.
func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, db, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.CacheEnabled {
		repos.ratings = cache.NewRatingRepository(repos.ratings, basecache.NewStore(cfg.CacheTTL))
	}

	matchSvc := usecase.NewMatchService(
		repos.matches,
		repos.appearances,
		repos.ratings,
		cfg.AliasExceptions,
		logger,
	)
	batchSvc := usecase.NewBatchService(matchSvc, cfg.BatchMaxWorkers, logger)
	ratingSvc := usecase.NewRatingService(repos.ratings, repos.appearances)

	handler := httpapi.NewHandler(matchSvc, batchSvc, ratingSvc, logger)
	router := httpapi.NewRouter(
		handler,
		logger,
		cfg.SwaggerEnabled,
		cfg.CORSAllowedOrigins,
		cfg.InternalJobToken,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db, logger: logger}, nil
}

// Close releases database resources. Safe to call on a partially built app.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	if cfg.DBURL == "" {
		logger.Info("storage backend selected", "backend", "memory")
		return repositories{
			matches:     memory.NewMatchRepository(),
			appearances: memory.NewAppearanceRepository(),
			ratings:     memory.NewRatingRepository(memory.SeedRatingProfiles()),
		}, nil, nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("storage backend selected", "backend", "postgres", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		matches:     postgres.NewMatchRepository(db),
		appearances: postgres.NewAppearanceRepository(db),
		ratings:     postgres.NewRatingRepository(db),
	}, db, nil
}
