package httpapi

import (
	"context"
	"database/sql"
	"sync/atomic"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/events"
)

type Deps struct {
	DB     *sql.DB
	Hub    *events.Hub
	Schema domain.Schema

	// Pipeline entrypoint (injected for testability)
	Build func(ctx context.Context, url string) domain.JobRecord

	// Atomic store of config.Config
	CfgVal      *atomic.Value
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
