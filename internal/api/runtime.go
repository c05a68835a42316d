package api

import (
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
	"github.com/curiolabs/curio/internal/config"
	"github.com/curiolabs/curio/internal/infrastructure"
	"github.com/curiolabs/curio/internal/market"
	"github.com/curiolabs/curio/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration and the
// market client shared by domain systems.
type Runtime struct {
	*infrastructure.Infrastructure
	Agent      gaconfig.AgentConfig
	Market     market.System
	Pagination pagination.Config
	MaxUpload  int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	logger := infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Agent:      cfg.Agent,
		Market:     market.New(cfg.Market, logger),
		Pagination: cfg.API.Pagination,
		MaxUpload:  cfg.API.MaxUploadSizeBytes(),
	}
}
