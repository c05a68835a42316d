package workflow

import (
	"log/slog"

	"github.com/curiolabs/curio/internal/learning"
	"github.com/curiolabs/curio/internal/market"
)

// Runtime bundles the dependencies that pipeline nodes require.
// It is constructed by higher-level composition code from Infrastructure
// and Domain systems.
type Runtime struct {
	Vision   VisionClient
	Market   market.System
	Learning learning.System
	Logger   *slog.Logger
}
