package landing

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

const (
	DefaultSignUpPath = "/sign-up"
	DefaultTitle      = "Monitoring Best Practices"

	StylesheetPath = "/static/landing.css"
	ScriptPath     = "/static/motion.js"

	subtitle = "Expert recommendations to maximize your website monitoring effectiveness and minimize downtime."
	ctaText  = "Ready to implement decentralized monitoring for your critical infrastructure?"
	ctaLabel = "Get Started"
)

// Options controls the parts of the section that vary per deployment.
type Options struct {
	SignUpPath string
	Title      string
}

func (o Options) withDefaults() Options {
	if o.SignUpPath == "" {
		o.SignUpPath = DefaultSignUpPath
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	return o
}

// Section renders the heading, one card per tip category in table order, and
// the call to action.
func Section(opts Options) templ.Component {
	opts = opts.withDefaults()
	categories := Categories()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section class="mf-section" id="more-features"><div class="mf-container">`)
		hw.render(ctx, heading(opts.Title))
		hw.raw(`<div class="mf-grid motion"`)
		motionAttrs(hw, GridMotion)
		hw.raw(">")
		for i, category := range categories {
			hw.render(ctx, Card(category, i))
		}
		hw.raw(`</div>`)
		hw.render(ctx, callToAction(opts.SignUpPath))
		hw.raw(`</div></section>`)
		return hw.err
	})
}

func heading(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="mf-heading motion"`)
		motionAttrs(hw, HeadingMotion)
		hw.raw(`><h2 class="mf-title"><span class="mf-shine"><span class="mf-shine-glow" aria-hidden="true">`)
		hw.text(title)
		hw.raw(`</span><span class="mf-shine-text">`)
		hw.text(title)
		hw.raw(`</span></span></h2><p class="mf-subtitle">`)
		hw.text(subtitle)
		hw.raw(`</p></div>`)
		return hw.err
	})
}

// Card renders one tip category. Cards are not observed themselves: they
// enter when the grid does, index positioning the card in its stagger.
func Card(category TipCategory, index int) templ.Component {
	motion := CardMotion.Delayed(CardDelay(index))
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<article class="mf-card motion-child"`)
		hw.attr("data-category", category.Title)
		hw.attr("style", motion.Style())
		hw.raw(`><div class="mf-card-head"><div`)
		hw.attr("class", "mf-badge "+ColorClasses(category.Color))
		hw.raw(">")
		hw.render(ctx, IconSVG(category.Icon, "mf-icon"))
		hw.raw(`</div><h3 class="mf-card-title">`)
		hw.text(category.Title)
		hw.raw(`</h3></div><ul class="mf-tips">`)
		for i, tip := range category.Tips {
			hw.raw(`<li class="mf-tip motion"`)
			motionAttrs(hw, TipMotion(i))
			hw.raw(">")
			hw.render(ctx, IconSVG(IconCheckCircle, "mf-tip-icon"))
			hw.raw(`<span>`)
			hw.text(tip)
			hw.raw(`</span></li>`)
		}
		hw.raw(`</ul></article>`)
		return hw.err
	})
}

func callToAction(signUpPath string) templ.Component {
	href := string(templ.URL(signUpPath))
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="mf-cta motion"`)
		motionAttrs(hw, CTAMotion)
		hw.raw(`><p class="mf-cta-text">`)
		hw.text(ctaText)
		hw.raw(`</p><div class="mf-cta-row"><div class="mf-cta-frame"><span class="mf-cta-ring" aria-hidden="true"></span>`)
		hw.raw(`<span class="mf-cta-glow" aria-hidden="true"></span><a class="mf-button press"`)
		hw.attr("href", href)
		hw.attr("style", ButtonPress.Style())
		hw.raw(">")
		hw.text(ctaLabel)
		hw.raw(`</a></div></div></div>`)
		return hw.err
	})
}

func motionAttrs(hw *htmlWriter, v Variant) {
	hw.attr("style", v.Style())
	hw.attr("data-motion-once", strconv.FormatBool(v.Once))
}

// Layout wraps its children in a complete HTML document.
func Layout(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		hw.text(title)
		hw.raw(`</title><link rel="stylesheet"`)
		hw.attr("href", StylesheetPath)
		hw.raw(`><script defer`)
		hw.attr("src", ScriptPath)
		hw.raw(`></script></head><body class="site"><main>`)
		hw.render(ctx, templ.GetChildren(ctx))
		hw.raw(`</main></body></html>`)
		return hw.err
	})
}

// Page renders the section as a full document.
func Page(opts Options) templ.Component {
	opts = opts.withDefaults()
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(opts.Title).Render(templ.WithChildren(ctx, Section(opts)), w)
	})
}

// NotFoundPage is shown for unknown paths; it links back to the landing page.
func NotFoundPage() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<section class="mf-section mf-not-found"><div class="mf-container"><h2 class="mf-title">Page not found</h2>`)
		hw.raw(`<p class="mf-subtitle">The page you are looking for does not exist.</p>`)
		hw.raw(`<div class="mf-cta-row"><a class="mf-button press" href="/"`)
		hw.attr("style", ButtonPress.Style())
		hw.raw(`>Back home</a></div></div></section>`)
		return hw.err
	})
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout("Page not found").Render(templ.WithChildren(ctx, body), w)
	})
}
