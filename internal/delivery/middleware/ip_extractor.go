package middleware

import (
	"storefront/config"

	"github.com/labstack/echo/v4"
)

// NewIPExtractor decides where c.RealIP() reads the client address from. By default
// only the TCP peer counts, so forwarding headers cannot pick the rate limit key.
func NewIPExtractor(cfg *config.Config) echo.IPExtractor {
	if cfg.HTTP.TrustProxyHeaders {
		return echo.ExtractIPFromXFFHeader()
	}

	return echo.ExtractIPDirect()
}
