package landing

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Icon names a stroke glyph drawn as inline SVG.
type Icon string

const (
	IconServer      Icon = "server"
	IconActivity    Icon = "activity"
	IconShield      Icon = "shield"
	IconBell        Icon = "bell"
	IconCheckCircle Icon = "check-circle"
	IconStar        Icon = "star"
)

// 24x24 outline glyphs, stroke drawn with currentColor.
var iconShapes = map[Icon]string{
	IconServer: `<rect width="20" height="8" x="2" y="2" rx="2" ry="2"></rect>` +
		`<rect width="20" height="8" x="2" y="14" rx="2" ry="2"></rect>` +
		`<line x1="6" x2="6.01" y1="6" y2="6"></line>` +
		`<line x1="6" x2="6.01" y1="18" y2="18"></line>`,
	IconActivity: `<path d="M22 12h-4l-3 9L9 3l-3 9H2"></path>`,
	IconShield: `<path d="M20 13c0 5-3.5 7.5-7.66 8.95a1 1 0 0 1-.67-.01C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1` +
		`c2 0 4.5-1.2 6.24-2.72a1.17 1.17 0 0 1 1.52 0C14.51 3.81 17 5 19 5a1 1 0 0 1 1 1z"></path>`,
	IconBell: `<path d="M6 8a6 6 0 0 1 12 0c0 7 3 9 3 9H3s3-2 3-9"></path>` +
		`<path d="M10.3 21a1.94 1.94 0 0 0 3.4 0"></path>`,
	IconCheckCircle: `<path d="M22 11.08V12a10 10 0 1 1-5.93-9.14"></path>` +
		`<path d="m9 11 3 3L22 4"></path>`,
	IconStar: `<polygon points="12 2 15.09 8.26 22 9.27 17 14.14 18.18 21.02 12 17.77 5.82 21.02 7 14.14 2 9.27 8.91 8.26 12 2"></polygon>`,
}

// IconSVG renders the glyph with the given classes. Unknown icons render nothing.
func IconSVG(icon Icon, class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		shape, ok := iconShapes[icon]
		if !ok {
			return nil
		}
		hw := &htmlWriter{w: w}
		hw.raw(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor"`)
		hw.raw(` stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"`)
		hw.attr("class", class)
		hw.attr("data-icon", string(icon))
		hw.raw(">")
		hw.raw(shape)
		hw.raw("</svg>")
		return hw.err
	})
}
