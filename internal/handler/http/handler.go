package http

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// limiterTTL is how long an idle identity keeps its rate limiter bucket.
const limiterTTL = 10 * time.Minute

type Handler struct {
	services *service.Services
	limiter  *multiLimiter

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A non-positive cfg.RateLimit disables
// rate limiting.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	if cfg.RateLimit > 0 {
		h.limiter = newMultiLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst, limiterTTL)
	}

	logger.Info().Msg("http handler created")
	return h
}
