package health

import (
	"context"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/nahidasmakeover/boutique/internal/config"
)

// Probe is an extra named check, such as the session store.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// NewHealthHandler checks the backend that stores the review overlay plus any
// extra probes. Only the configured storage driver is checked.
func NewHealthHandler(cfg *config.Config, version string, probes ...Probe) (*health.Health, error) {

	checks := make([]health.Config, 0, len(probes)+1)

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	case config.StorageDriverRedis:
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(
				healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				},
			),
		})
	}

	for _, p := range probes {
		checks = append(checks, health.Config{
			Name:      p.Name,
			Timeout:   time.Second,
			SkipOnErr: true,
			Check:     p.Check,
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
