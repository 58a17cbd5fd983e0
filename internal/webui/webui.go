// Package webui serves the landing site: the marketing page, its static
// assets, a health endpoint and, outside production, a debug page.
package webui

import (
	"net/http"
	"time"

	"techexpo.dev/landing/internal/app"
)

type WebUI struct {
	*app.Application
	limiter *RateLimitMiddleware
}

// New creates a WebUI with its per-client rate limiter running.
func New(application *app.Application) *WebUI {
	return &WebUI{
		Application: application,
		limiter:     NewRateLimitMiddleware(application.Config.RateLimit, time.Second),
	}
}

// Handler returns the router wrapped in the middleware chain.
func (ui *WebUI) Handler() http.Handler {
	var handler http.Handler = ui.routes()
	handler = CompressionMiddleware(handler)
	handler = ui.limiter.Handler(handler)
	handler = securityHeaders(handler)
	handler = NewRequestLoggingMiddleware(ui.Logger)(handler)
	handler = withRequestID(handler)
	return handler
}

// Close releases background resources held by the middleware.
func (ui *WebUI) Close() {
	ui.limiter.Stop()
}
