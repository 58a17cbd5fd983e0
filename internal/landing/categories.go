// Package landing renders the "Monitoring Best Practices" marketing section.
// Everything it draws comes from the static tip table below.
package landing

// Color is the accent tag of a tip category.
type Color string

const (
	Purple Color = "purple"
	Blue   Color = "blue"
	Green  Color = "green"
	Pink   Color = "pink"
)

// DefaultColor is used for any tag outside the known set.
const DefaultColor = Purple

var colorClasses = map[Color]string{
	Purple: "bg-purple-500/10 border-purple-500/20 text-purple-400",
	Blue:   "bg-blue-500/10 border-blue-500/20 text-blue-400",
	Green:  "bg-green-500/10 border-green-500/20 text-green-400",
	Pink:   "bg-pink-500/10 border-pink-500/20 text-pink-400",
}

// ColorClasses returns the badge classes for a color tag. Unknown tags get the
// default style.
func ColorClasses(c Color) string {
	if !c.Known() {
		c = DefaultColor
	}
	return colorClasses[c]
}

// Colors lists the enumerated color tags in display order.
func Colors() []Color {
	return []Color{Purple, Blue, Green, Pink}
}

// Known reports whether c is one of the enumerated colors.
func (c Color) Known() bool {
	_, ok := colorClasses[c]
	return ok
}

// TipCategory is one best-practice group shown as a card.
type TipCategory struct {
	Icon  Icon
	Title string
	Tips  []string
	Color Color
}

var tipCategories = []TipCategory{
	{
		Icon:  IconServer,
		Title: "Infrastructure Monitoring",
		Tips: []string{
			"Monitor from multiple global regions",
			"Track both availability and performance",
			"Set cascading alert thresholds",
			"Implement redundant checks",
		},
		Color: Purple,
	},
	{
		Icon:  IconActivity,
		Title: "Performance Optimization",
		Tips: []string{
			"Establish performance baselines",
			"Track page load waterfall charts",
			"Monitor third-party dependencies",
			"Set up synthetic user journeys",
		},
		Color: Blue,
	},
	{
		Icon:  IconShield,
		Title: "Security Best Practices",
		Tips: []string{
			"Enable SSL/TLS certificate monitoring",
			"Verify security headers regularly",
			"Set up continuous DNS monitoring",
			"Track for unauthorized changes",
		},
		Color: Green,
	},
	{
		Icon:  IconBell,
		Title: "Alert Management",
		Tips: []string{
			"Create escalation policies",
			"Use smart alert grouping",
			"Set up incident acknowledgment",
			"Implement root cause analysis",
		},
		Color: Pink,
	},
}

// Categories returns a copy of the tip table in display order.
func Categories() []TipCategory {
	out := make([]TipCategory, len(tipCategories))
	for i, c := range tipCategories {
		c.Tips = append([]string(nil), c.Tips...)
		out[i] = c
	}
	return out
}
