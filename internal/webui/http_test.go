package webui

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"techexpo.dev/landing/internal/app"
	"techexpo.dev/landing/internal/appconf"
	"techexpo.dev/landing/internal/logging"
)

// createTestWebUI builds a WebUI with no database handle, as after a failed
// startup connection.
func createTestWebUI(t *testing.T, mutate func(*appconf.Config)) (*WebUI, *bytes.Buffer) {
	t.Helper()

	cfg := appconf.Config{
		EnvName:    "test",
		RateLimit:  -1,
		SignUpPath: "/sign-up",
	}
	if mutate != nil {
		mutate(&cfg)
	}

	var buf bytes.Buffer
	ui := New(&app.Application{
		Config: cfg,
		Logger: logging.NewStructuredLogger(&buf, slog.LevelDebug),
	})
	t.Cleanup(ui.Close)
	return ui, &buf
}

func serve(t *testing.T, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
