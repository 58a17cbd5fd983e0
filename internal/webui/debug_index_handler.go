package webui

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"techexpo.dev/landing/internal/landing"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

type debugData struct {
	Title string
	Pre   string
}

type databaseDebug struct {
	Connected bool
	Database  string
	PingError string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	dataStruct := debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := debugTemplate.Execute(w, dataStruct); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (ui *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "categories":
		data = landing.Categories()
		title = "Landing - Tip Categories"
	case "colors":
		colors := map[landing.Color]string{}
		for _, c := range landing.Colors() {
			colors[c] = landing.ColorClasses(c)
		}
		data = colors
		title = "Landing - Color Classes"
	case "motion":
		data = map[string]interface{}{
			"heading": landing.HeadingMotion,
			"grid":    landing.GridMotion,
			"card":    landing.CardMotion,
			"cta":     landing.CTAMotion,
			"button":  landing.ButtonPress,
		}
		title = "Landing - Motion"
	case "database":
		data = ui.databaseDebug(r.Context())
		title = "Document Store"
	default:
		data = map[string]string{
			"error": "Please use one of the following: categories, colors, motion, database.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}

func (ui *WebUI) databaseDebug(ctx context.Context) databaseDebug {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	d := databaseDebug{Database: ui.StoreName()}
	if err := ui.PingStore(ctx); err != nil {
		d.PingError = err.Error()
		return d
	}
	d.Connected = true
	return d
}
