package landing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Keyframe is one end state of an entrance animation.
type Keyframe struct {
	Opacity float64
	X       float64 // px
	Y       float64 // px
}

// Transition timing for an animated element.
type Transition struct {
	Duration        time.Duration
	Delay           time.Duration
	StaggerChildren time.Duration
	DelayChildren   time.Duration
}

// Variant pairs the hidden and visible keyframes of an element.
// Once means the element animates the first time it scrolls into view only.
type Variant struct {
	Hidden     Keyframe
	Visible    Keyframe
	Transition Transition
	Once       bool
}

// Press is the hover/tap scaling of an interactive element.
type Press struct {
	HoverScale float64
	TapScale   float64
	Duration   time.Duration
}

var (
	shown = Keyframe{Opacity: 1}

	// HeadingMotion fades the heading block up into place.
	HeadingMotion = Variant{
		Hidden:     Keyframe{Opacity: 0, Y: 10},
		Visible:    shown,
		Transition: Transition{Duration: 400 * time.Millisecond},
		Once:       true,
	}

	// GridMotion staggers the cards of the grid.
	GridMotion = Variant{
		Hidden:  Keyframe{Opacity: 0},
		Visible: shown,
		Transition: Transition{
			StaggerChildren: 100 * time.Millisecond,
			DelayChildren:   200 * time.Millisecond,
		},
		Once: true,
	}

	// CardMotion is the per-card variant driven by GridMotion.
	CardMotion = Variant{
		Hidden:     Keyframe{Opacity: 0, Y: 10},
		Visible:    shown,
		Transition: Transition{Duration: 300 * time.Millisecond},
		Once:       true,
	}

	// CTAMotion reveals the call to action after the grid.
	CTAMotion = Variant{
		Hidden:     Keyframe{Opacity: 0, Y: 10},
		Visible:    shown,
		Transition: Transition{Duration: 400 * time.Millisecond, Delay: 600 * time.Millisecond},
		Once:       true,
	}

	// ButtonPress scales the call-to-action button.
	ButtonPress = Press{
		HoverScale: 1.02,
		TapScale:   0.98,
		Duration:   200 * time.Millisecond,
	}
)

const tipStep = 100 * time.Millisecond

// TipMotion slides a tip in from the left, each row 0.1s after the previous.
// Tips replay whenever they scroll back into view.
func TipMotion(index int) Variant {
	return Variant{
		Hidden:     Keyframe{Opacity: 0, X: -10},
		Visible:    shown,
		Transition: Transition{Duration: 300 * time.Millisecond, Delay: time.Duration(index) * tipStep},
	}
}

// ChildDelay is the start delay of the index-th child of a staggering parent.
func (t Transition) ChildDelay(index int) time.Duration {
	if index < 0 {
		index = 0
	}
	return t.DelayChildren + time.Duration(index)*t.StaggerChildren
}

// CardDelay is the start delay of the index-th card in the grid.
func CardDelay(index int) time.Duration {
	return GridMotion.Transition.ChildDelay(index)
}

// Delayed returns a copy of v starting after d.
func (v Variant) Delayed(d time.Duration) Variant {
	v.Transition.Delay = d
	return v
}

// Style renders the variant as CSS custom properties for the stylesheet's
// entrance animation.
func (v Variant) Style() string {
	props := []string{
		"--motion-from-opacity:" + formatFloat(v.Hidden.Opacity),
		"--motion-from-x:" + formatFloat(v.Hidden.X) + "px",
		"--motion-from-y:" + formatFloat(v.Hidden.Y) + "px",
		"--motion-to-opacity:" + formatFloat(v.Visible.Opacity),
		"--motion-to-x:" + formatFloat(v.Visible.X) + "px",
		"--motion-to-y:" + formatFloat(v.Visible.Y) + "px",
		"--motion-duration:" + formatSeconds(v.Transition.Duration),
		"--motion-delay:" + formatSeconds(v.Transition.Delay),
	}
	return strings.Join(props, ";")
}

// Style renders the press scaling as CSS custom properties.
func (p Press) Style() string {
	return fmt.Sprintf("--press-hover-scale:%s;--press-tap-scale:%s;--press-duration:%s",
		formatFloat(p.HoverScale), formatFloat(p.TapScale), formatSeconds(p.Duration))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatSeconds(d time.Duration) string {
	return formatFloat(d.Seconds()) + "s"
}
