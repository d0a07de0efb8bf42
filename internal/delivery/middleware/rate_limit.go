package middleware

import (
	"log/slog"
	"strconv"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimitMiddleware limits requests per client IP with an in-memory counter.
type RateLimitMiddleware struct {
	limiter *limiter.Limiter
	logger  *slog.Logger
}

// NewSessionRateLimiter builds the limiter for the session endpoint from auth.sessionRateLimit.
// It returns nil when no limit is configured.
func NewSessionRateLimiter(cfg *config.Config, logger *slog.Logger) (*RateLimitMiddleware, error) {
	if cfg.Auth == nil || cfg.Auth.SessionRateLimit == "" {
		return nil, nil
	}

	return NewRateLimitMiddleware(cfg.Auth.SessionRateLimit, logger)
}

// NewRateLimitMiddleware parses rateFormatted ("100-M", "1000-H", "50-S").
func NewRateLimitMiddleware(rateFormatted string, logger *slog.Logger) (*RateLimitMiddleware, error) {
	rate, err := limiter.NewRateFromFormatted(rateFormatted)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid rate limit %q", rateFormatted)
	}

	return &RateLimitMiddleware{
		limiter: limiter.New(memory.NewStore(), rate),
		logger:  logger,
	}, nil
}

// Limit rejects requests over the rate with ErrTooManyRequests. Store failures let the request through.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		limitCtx, err := m.limiter.Increment(ctx, c.RealIP(), 1)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable", slog.Any("error", err))

			return next(c)
		}

		header := c.Response().Header()
		header.Set("X-RateLimit-Limit", strconv.FormatInt(limitCtx.Limit, 10))
		header.Set("X-RateLimit-Remaining", strconv.FormatInt(limitCtx.Remaining, 10))
		header.Set("X-RateLimit-Reset", strconv.FormatInt(limitCtx.Reset, 10))

		if limitCtx.Reached {
			return domainerrors.ErrTooManyRequests.WrapMessage("rate limit reached for " + c.RealIP())
		}

		return next(c)
	}
}
