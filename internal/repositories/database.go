package repository

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/nahidasmakeover/boutique/internal/config"
	"github.com/nahidasmakeover/boutique/internal/kv"
	"github.com/nahidasmakeover/boutique/internal/storage/postgres"
	redisStorage "github.com/nahidasmakeover/boutique/internal/storage/redis"
	"github.com/redis/go-redis/v9"
)

// Repository bundles the storage handles the server needs. Exactly one of DB
// and Redis is set, depending on the configured storage driver.
type Repository struct {
	DB       *sql.DB
	Redis    *redis.Client
	Store    kv.Store
	Overlay  OverlayRepository
	Sessions SessionRepository
}

func New(cfg *config.Config) (*Repository, error) {

	repo := &Repository{Sessions: NewSessionRepo()}

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := postgres.Open(&cfg.Database)
		if err != nil {
			return nil, err
		}

		repo.DB = db
		repo.Store = kv.NewPostgresStore(db)

	case config.StorageDriverRedis:
		client, err := redisStorage.NewClient(&cfg.RedisConnect)
		if err != nil {
			return nil, err
		}

		repo.Redis = client
		repo.Store = kv.NewRedisStore(client)

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	repo.Overlay = NewOverlayRepo(repo.Store, cfg.Storage.OverlayKey)

	slog.Info("storage initialized", slog.String("driver", cfg.Storage.Driver), slog.String("overlayKey", cfg.Storage.OverlayKey))

	return repo, nil
}

func (r *Repository) Close() error {
	return r.Store.Close()
}
