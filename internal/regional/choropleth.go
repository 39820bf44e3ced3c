package regional

import (
	"sort"
	"strings"

	"pricetrends/server/internal/models"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// NoDataColor fills states missing from the aggregate table
const NoDataColor = "hsl(var(--border))"

// ParseTheme falls back to light for anything other than "dark"
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

type palette struct {
	positive []string
	negative []string
}

var palettes = map[Theme]palette{
	ThemeLight: {
		positive: []string{"#dcfce7", "#4ade80", "#16a34a"},
		negative: []string{"#fee2e2", "#f87171", "#b91c1c"},
	},
	ThemeDark: {
		positive: []string{"#064e3b", "#16a34a", "#4ade80"},
		negative: []string{"#7f1d1d", "#ef4444", "#f87171"},
	},
}

// ColorScale is a quantile scale over the [min, max] growth of a state table.
// Only the two extremes form the domain, so buckets split that range evenly.
type ColorScale struct {
	Domain     [2]float64 `json:"domain"`
	Thresholds []float64  `json:"thresholds"`
	Range      []string   `json:"range"`
}

// NewColorScale builds the scale for the given table and theme. All-positive
// tables use the green ramp, all-negative ones the reversed red ramp, and
// mixed tables the red ramp followed by the green one.
func NewColorScale(aggregates map[string]models.StateAggregate, theme Theme) *ColorScale {
	if len(aggregates) == 0 {
		return nil
	}

	first := true
	var lo, hi float64
	for _, a := range aggregates {
		if first || a.Growth < lo {
			lo = a.Growth
		}
		if first || a.Growth > hi {
			hi = a.Growth
		}
		first = false
	}

	pal, ok := palettes[theme]
	if !ok {
		pal = palettes[ThemeLight]
	}
	var colors []string
	switch {
	case lo >= 0:
		colors = append(colors, pal.positive...)
	case hi <= 0:
		colors = reversed(pal.negative)
	default:
		colors = append(reversed(pal.negative), pal.positive...)
	}

	k := len(colors)
	thresholds := make([]float64, 0, k-1)
	for i := 1; i < k; i++ {
		p := float64(i) / float64(k)
		thresholds = append(thresholds, lo+p*(hi-lo))
	}

	return &ColorScale{
		Domain:     [2]float64{lo, hi},
		Thresholds: thresholds,
		Range:      colors,
	}
}

// Color maps a growth value to its bucket colour
func (s *ColorScale) Color(growth float64) string {
	if s == nil || len(s.Range) == 0 {
		return NoDataColor
	}
	idx := sort.Search(len(s.Thresholds), func(i int) bool {
		return s.Thresholds[i] > growth
	})
	return s.Range[idx]
}

// StateColors colours every state of the table
func StateColors(aggregates map[string]models.StateAggregate, theme Theme) map[string]string {
	scale := NewColorScale(aggregates, theme)
	out := make(map[string]string, len(aggregates))
	for state, a := range aggregates {
		out[state] = scale.Color(a.Growth)
	}
	return out
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, c := range in {
		out[len(in)-1-i] = c
	}
	return out
}
