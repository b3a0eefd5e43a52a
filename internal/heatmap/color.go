package heatmap

import (
	"fmt"
	"strings"
)

// Scheme selects a heatmap color ramp.
type Scheme string

const (
	SchemeBlue    Scheme = "blue"
	SchemeGreen   Scheme = "green"
	SchemePurple  Scheme = "purple"
	SchemeOrange  Scheme = "orange"
	SchemeRed     Scheme = "red"
	SchemeViridis Scheme = "viridis"
)

// Theme is the chart theme used for empty cells.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Buckets is the number of intensity buckets above the empty bucket 0.
const Buckets = 5

const (
	emptyColor    = "#f3f4f6"
	darkEmpty     = "#374151"
	fallbackColor = "#3b82f6"
)

// Palette is a scheme's colors indexed by bucket; index 0 is "no data".
type Palette [Buckets + 1]string

var palettes = map[Scheme]Palette{
	SchemeBlue:   {emptyColor, "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6"},
	SchemeGreen:  {emptyColor, "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399", "#10b981"},
	SchemePurple: {emptyColor, "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#8b5cf6"},
	SchemeOrange: {emptyColor, "#ffedd5", "#fed7aa", "#fdba74", "#fb923c", "#f97316"},
	SchemeRed:    {emptyColor, "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444"},
	// Five stops of the eight-step viridis ramp; the top three buckets
	// share one color.
	SchemeViridis: {emptyColor, "#440154", "#29788e", "#fde725", "#fde725", "#fde725"},
}

var schemeOrder = []Scheme{SchemeBlue, SchemeGreen, SchemePurple, SchemeOrange, SchemeRed, SchemeViridis}

// Schemes lists the known schemes in display order.
func Schemes() []Scheme {
	out := make([]Scheme, len(schemeOrder))
	copy(out, schemeOrder)
	return out
}

// ParseScheme resolves a scheme name (case-insensitive).
func ParseScheme(s string) (Scheme, error) {
	sc := Scheme(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := palettes[sc]; ok {
		return sc, nil
	}
	names := make([]string, len(schemeOrder))
	for i, known := range schemeOrder {
		names[i] = string(known)
	}
	return "", fmt.Errorf("unknown color scheme %q (use one of: %s)", s, strings.Join(names, ", "))
}

// Next cycles to the following scheme, wrapping around.
func (s Scheme) Next() Scheme {
	for i, known := range schemeOrder {
		if known == s {
			return schemeOrder[(i+1)%len(schemeOrder)]
		}
	}
	return schemeOrder[0]
}

// PaletteFor returns the ramp for scheme. Unknown schemes get a palette of
// the default color in every slot.
func PaletteFor(scheme Scheme) Palette {
	if p, ok := palettes[scheme]; ok {
		return p
	}
	var p Palette
	for i := range p {
		p[i] = fallbackColor
	}
	return p
}

// Bucket maps value into 0..5. Bucket 0 is reserved for a normalized value
// of exactly 0 or a non-positive maxValue; the upper buckets split at the
// "<" breakpoints 0.2, 0.4, 0.6 and 0.8, so a value landing exactly on a
// breakpoint belongs to the bucket above it.
func Bucket(value, maxValue float64) int {
	if maxValue <= 0 {
		return 0
	}
	n := value / maxValue
	if n < 0 || n != n {
		n = 0
	}
	if n > 1 {
		n = 1
	}
	switch {
	case n == 0:
		return 0
	case n < 0.2:
		return 1
	case n < 0.4:
		return 2
	case n < 0.6:
		return 3
	case n < 0.8:
		return 4
	default:
		return 5
	}
}

// ColorFor returns the hex color for value relative to maxValue.
func ColorFor(value, maxValue float64, scheme Scheme) string {
	return PaletteFor(scheme)[Bucket(value, maxValue)]
}

// EmptyColor returns the cell color for days without activity.
func EmptyColor(theme Theme) string {
	if theme == ThemeDark {
		return darkEmpty
	}
	return emptyColor
}

// CellColor is the color a rendered cell uses: inactive days take the
// theme's empty color, active days the scheme ramp.
func CellColor(value, maxValue int, scheme Scheme, theme Theme) string {
	if value <= 0 {
		return EmptyColor(theme)
	}
	return ColorFor(float64(value), float64(maxValue), scheme)
}

// LegendLevels returns the five "Less ... More" legend swatches for
// maxValue: level 0 is the theme's empty color, levels 1-4 sample the ramp
// at level*max/4.
func LegendLevels(maxValue int, scheme Scheme, theme Theme) []string {
	levels := make([]string, 5)
	for level := range levels {
		if level == 0 {
			levels[level] = EmptyColor(theme)
			continue
		}
		levels[level] = ColorFor(float64(level)*float64(maxValue)/4, float64(maxValue), scheme)
	}
	return levels
}
