package webui

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"techexpo.dev/landing/internal/landing"
	"techexpo.dev/landing/internal/logging"
)

func (ui *WebUI) landingHandler() http.Handler {
	page := landing.Page(landing.Options{SignUpPath: ui.Config.SignUpPath})
	return templ.Handler(page, templ.WithErrorHandler(renderErrorHandler))
}

func (ui *WebUI) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	templ.Handler(landing.NotFoundPage(),
		templ.WithStatus(http.StatusNotFound),
		templ.WithErrorHandler(renderErrorHandler),
	).ServeHTTP(w, r)
}

func renderErrorHandler(r *http.Request, err error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.LogError(logging.FromContext(r.Context()), "failed to render page", err,
			slog.String("path", r.URL.Path),
			slog.String("component", "landing"))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	})
}
