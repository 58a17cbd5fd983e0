package webui

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"techexpo.dev/landing/internal/docstore"
	"techexpo.dev/landing/internal/logging"
	"techexpo.dev/landing/internal/models"
)

const healthPingTimeout = 2 * time.Second

func (ui *WebUI) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	status := models.DatabaseStatus{Name: ui.StoreName()}
	if err := ui.PingStore(ctx); err != nil {
		status.Error = err.Error()
		if !errors.Is(err, docstore.ErrNotConnected) {
			logging.LogError(logging.FromContext(r.Context()), "database ping failed", err,
				slog.String("component", "docstore"))
		}
	} else {
		status.Reachable = true
	}

	data := models.NewHealthData(ui.Config.Env().String(), status, time.Now())
	if status.Reachable {
		ui.sendResponse(w, r, http.StatusOK, models.NewOKResponse(data))
		return
	}
	ui.sendResponse(w, r, http.StatusServiceUnavailable,
		models.NewResponse(http.StatusServiceUnavailable, data, http.StatusText(http.StatusServiceUnavailable)))
}

func (ui *WebUI) sendResponse(w http.ResponseWriter, r *http.Request, status int, response models.ResponseModel) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to encode response", err,
			slog.String("component", "http_server"))
	}
}
