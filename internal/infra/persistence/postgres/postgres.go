package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"net"
	"net/url"
	"time"

	"inkwell/config"
	"inkwell/internal/domain/lifecycle"
	"inkwell/internal/errors"
	"inkwell/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary connection, registers read replicas and ties the
// pool to the fx lifecycle. A failed ping on start aborts the process.
func New(params Params) (*gorm.DB, error) {
	pgCfg := params.Config.Postgres

	db, err := gorm.Open(postgres.Open(buildDSN(pgCfg, pgCfg.Master)), newGormConfig(params.Logger, params.Config))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	if len(pgCfg.Replicas) > 0 {
		replicas := make([]gorm.Dialector, 0, len(pgCfg.Replicas))
		for _, replica := range pgCfg.Replicas {
			replicas = append(replicas, postgres.Open(buildDSN(pgCfg, replica)))
		}

		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			return nil, errors.Wrap(err, "failed to register PostgreSQL replicas")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	if pgCfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pgCfg.MaxIdleConns)
	}
	if pgCfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pgCfg.MaxOpenConns)
	}
	if pgCfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pgCfg.ConnMaxLifetime)
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if pgCfg.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the tables owned by this service.
func Migrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(&model.IdentityModel{}), "auto-migrate identities")
}

// newGormConfig translates driver errors so unique violations surface as gorm.ErrDuplicatedKey.
func newGormConfig(logger *slog.Logger, cfg *config.Config) *gorm.Config {
	return &gorm.Config{
		// Explicit transactions go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(logger, cfg),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func buildDSN(pgCfg *config.PostgresConfig, conn config.ConnectionConfig) string {
	sslMode := pgCfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	timeZone := pgCfg.TimeZone
	if timeZone == "" {
		timeZone = "UTC"
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)
	query.Set("TimeZone", timeZone)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(conn.UserName, conn.Password),
		Host:     net.JoinHostPort(conn.Host, conn.Port),
		Path:     "/" + pgCfg.Database,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				level := slog.LevelDebug
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					level = slog.LevelWarn
				}
				logger.LogAttrs(ctx, level, "Postgres pool wait detected", attrs...)
			}

			prev = cur
		}
	}
}
