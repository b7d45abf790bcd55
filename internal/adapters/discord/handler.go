package discord

import (
	"log/slog"
	"time"

	"tscatalog/internal/ports/input"
	"tscatalog/internal/ports/output"
)

const defaultMissLimit = 15

// Handler handles Discord interactions using use cases.
type Handler struct {
	catalog       input.CatalogUseCase
	t             output.T
	defaultLocale string
	missTracking  bool
	missLimit     int
	logger        *slog.Logger
	now           func() time.Time
}

// NewHandler creates a Handler. defaultLocale is used when neither the
// command nor the interaction names one; missTracking tells /misses whether
// misses are persisted at all.
func NewHandler(
	catalog input.CatalogUseCase,
	t output.T,
	defaultLocale string,
	missTracking bool,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		catalog:       catalog,
		t:             t,
		defaultLocale: defaultLocale,
		missTracking:  missTracking,
		missLimit:     defaultMissLimit,
		logger:        logger.With("module", "discord"),
		now:           time.Now,
	}
}
