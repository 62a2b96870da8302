package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/match-predictor/internal/config"
	"github.com/riskibarqy/match-predictor/internal/domain/match"
	"github.com/riskibarqy/match-predictor/internal/domain/prediction"
	"github.com/riskibarqy/match-predictor/internal/domain/teamname"
	"github.com/riskibarqy/match-predictor/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/match-predictor/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/match-predictor/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/match-predictor/internal/interfaces/httpapi"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
	"github.com/riskibarqy/match-predictor/internal/usecase"
)

// App owns the HTTP server and the resources behind it.
type App struct {
	Server *http.Server
	db     *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	aliases, err := config.LoadAliasTable(cfg.AliasTablePath)
	if err != nil {
		return nil, fmt.Errorf("load alias table: %w", err)
	}
	logger.Info("alias table loaded", "path", cfg.AliasTablePath, "classes", aliases.Len())

	repo, db, err := openDatasetRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("dataset source selected", "source", cfg.DatasetSource)

	matcher := teamname.NewMatcher(aliases)
	datasetSvc := usecase.NewDatasetService(repo, cfg.CacheTTL, logger.Named("dataset"))
	historySvc := usecase.NewHistoryService(datasetSvc, matcher, cfg.HistoryFormLength, logger.Named("history"))
	predictionSvc := usecase.NewPredictionService(
		datasetSvc,
		matcher,
		prediction.NewTimeSeededSource(),
		cfg.FormWindow,
		logger.Named("prediction"),
	)

	handler := httpapi.NewHandler(historySvc, predictionSvc, datasetSvc, logger.Named("http"))
	router := httpapi.NewRouter(handler, logger.Named("http"), cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		db: db,
	}, nil
}

// Shutdown drains the HTTP server and closes the database pool.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Server.Shutdown(ctx)
	if a.db != nil {
		err = errors.Join(err, a.db.Close())
	}
	return err
}

func openDatasetRepository(ctx context.Context, cfg config.Config) (match.Repository, *sqlx.DB, error) {
	switch cfg.DatasetSource {
	case config.DatasetSourcePostgres:
		db, err := OpenDB(ctx, cfg.DBURL, cfg.DBDisablePreparedBinary)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewMatchHistoryRepository(db), db, nil
	case config.DatasetSourceMemory:
		return memory.NewMatchHistoryRepository(memory.SeedMatches()), nil, nil
	case config.DatasetSourceCSV, "":
		return csvfile.NewRepository(cfg.DatasetPath), nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported dataset source %q", cfg.DatasetSource)
	}
}
