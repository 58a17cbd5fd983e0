package webui

import (
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"techexpo.dev/landing/internal/landing"
	"techexpo.dev/landing/internal/logging"
)

func (ui *WebUI) routes() *httprouter.Router {
	router := httprouter.New()
	router.NotFound = http.HandlerFunc(ui.notFoundHandler)
	router.PanicHandler = ui.panicHandler

	router.Handler(http.MethodGet, "/", ui.landingHandler())
	router.ServeFiles("/static/*filepath", fileOnlyFS{http.FS(landing.Assets())})
	router.HandlerFunc(http.MethodGet, "/healthz", ui.healthHandler)

	if ui.IsDevelopment() {
		router.HandlerFunc(http.MethodGet, "/debug/", ui.debugIndexHandler)
	}

	return router
}

func (ui *WebUI) panicHandler(w http.ResponseWriter, r *http.Request, rec interface{}) {
	logging.FromContext(r.Context()).Error("panic serving request",
		slog.Any("panic", rec),
		slog.String("path", r.URL.Path),
		slog.String("component", "http_server"))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
