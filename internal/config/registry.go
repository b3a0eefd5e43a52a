package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rnwolfe/deckstats/internal/activity"
	"github.com/rnwolfe/deckstats/internal/heatmap"
)

// KeyType represents the data type of a config key.
type KeyType string

const (
	KeyTypeString KeyType = "string"
	KeyTypeInt    KeyType = "int"
	KeyTypeBool   KeyType = "bool"
)

// KeyEntry describes a known, settable config key.
type KeyEntry struct {
	// Type is the value's data type (string, int, bool).
	Type KeyType
	// Desc is a human-readable description shown in `deckstats config list`.
	Desc string
	// DefaultStr is the string representation of the default value.
	DefaultStr string
	// Choices enumerates the accepted values, when the key has a fixed set.
	Choices []string

	get   func(*Config) string
	set   func(cfg *Config, value string) error
	unset func(cfg *Config)
}

// Get returns the current value of the key as a string.
func (e *KeyEntry) Get(cfg *Config) string { return e.get(cfg) }

// Set validates and sets the value, returning a descriptive error on type mismatch.
func (e *KeyEntry) Set(cfg *Config, value string) error { return e.set(cfg, value) }

// Unset resets the key to its schema default.
func (e *KeyEntry) Unset(cfg *Config) { e.unset(cfg) }

// boolKey builds an entry for a plain bool field.
func boolKey(desc string, def bool, field func(*Config) *bool) *KeyEntry {
	return &KeyEntry{
		Type:       KeyTypeBool,
		Desc:       desc,
		DefaultStr: strconv.FormatBool(def),
		Choices:    []string{"true", "false"},
		get:        func(cfg *Config) string { return strconv.FormatBool(*field(cfg)) },
		set: func(cfg *Config, v string) error {
			b, err := ParseBoolValue(v)
			if err != nil {
				return err
			}
			*field(cfg) = b
			return nil
		},
		unset: func(cfg *Config) { *field(cfg) = def },
	}
}

// SchemaKeys is the authoritative registry of all settable config keys.
// Keys use dot-notation matching the TOML section structure.
var SchemaKeys = map[string]*KeyEntry{
	"heatmap.scheme": {
		Type:       KeyTypeString,
		Desc:       "Heatmap color scheme (blue, green, purple, orange, red, viridis)",
		DefaultStr: DefaultScheme,
		Choices:    schemeNames(),
		get:        func(cfg *Config) string { return cfg.Heatmap.Scheme },
		set: func(cfg *Config, v string) error {
			sc, err := heatmap.ParseScheme(v)
			if err != nil {
				return err
			}
			cfg.Heatmap.Scheme = string(sc)
			return nil
		},
		unset: func(cfg *Config) { cfg.Heatmap.Scheme = DefaultScheme },
	},
	"heatmap.range": {
		Type:       KeyTypeString,
		Desc:       "Default heatmap time range (3m, 6m, 1y)",
		DefaultStr: DefaultRange,
		Choices:    rangeNames(),
		get:        func(cfg *Config) string { return cfg.Heatmap.Range },
		set: func(cfg *Config, v string) error {
			r, err := activity.ParseRange(v)
			if err != nil {
				return err
			}
			cfg.Heatmap.Range = string(r)
			return nil
		},
		unset: func(cfg *Config) { cfg.Heatmap.Range = DefaultRange },
	},
	"heatmap.value_label": {
		Type:       KeyTypeString,
		Desc:       "Unit shown next to heatmap values",
		DefaultStr: DefaultValueLabel,
		get:        func(cfg *Config) string { return cfg.Heatmap.ValueLabel },
		set:        func(cfg *Config, v string) error { cfg.Heatmap.ValueLabel = v; return nil },
		unset:      func(cfg *Config) { cfg.Heatmap.ValueLabel = DefaultValueLabel },
	},
	"heatmap.show_month_labels": boolKey("Show month labels above the heatmap", true,
		func(cfg *Config) *bool { return &cfg.Heatmap.ShowMonthLabels }),
	"heatmap.show_weekday_labels": boolKey("Show weekday labels beside the heatmap", true,
		func(cfg *Config) *bool { return &cfg.Heatmap.ShowWeekdayLabels }),
	"chart.theme": {
		Type:       KeyTypeString,
		Desc:       "Chart theme (light, dark)",
		DefaultStr: DefaultTheme,
		Choices:    []string{string(heatmap.ThemeLight), string(heatmap.ThemeDark)},
		get:        func(cfg *Config) string { return cfg.Chart.Theme },
		set: func(cfg *Config, v string) error {
			switch t := strings.ToLower(strings.TrimSpace(v)); t {
			case string(heatmap.ThemeLight), string(heatmap.ThemeDark):
				cfg.Chart.Theme = t
				return nil
			default:
				return fmt.Errorf("unknown theme %q (use light or dark)", v)
			}
		},
		unset: func(cfg *Config) { cfg.Chart.Theme = DefaultTheme },
	},
	"chart.grid_lines": boolKey("Draw grid lines on bar charts", true,
		func(cfg *Config) *bool { return &cfg.Chart.GridLines }),
	"chart.animations": boolKey("Animate dashboard panels", true,
		func(cfg *Config) *bool { return &cfg.Chart.Animations }),
	"chart.smooth_curves": boolKey("Smooth line charts", true,
		func(cfg *Config) *bool { return &cfg.Chart.SmoothCurves }),
	"chart.gradients": boolKey("Shade bars with gradients", true,
		func(cfg *Config) *bool { return &cfg.Chart.Gradients }),
	"source.collection": {
		Type:       KeyTypeString,
		Desc:       "Path to a flashcard collection file (opened read-only)",
		DefaultStr: "",
		get:        func(cfg *Config) string { return cfg.Source.Collection },
		set:        func(cfg *Config, v string) error { cfg.Source.Collection = v; return nil },
		unset:      func(cfg *Config) { cfg.Source.Collection = os.Getenv("DECKSTATS_COLLECTION") },
	},
	"source.mock": boolKey("Always use generated sample data", false,
		func(cfg *Config) *bool { return &cfg.Source.Mock }),
	"source.seed": {
		Type:       KeyTypeInt,
		Desc:       "Seed for generated sample data",
		DefaultStr: strconv.Itoa(DefaultSeed),
		get:        func(cfg *Config) string { return strconv.FormatInt(cfg.Source.Seed, 10) },
		set: func(cfg *Config, v string) error {
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value %q for source.seed: expected an integer", v)
			}
			cfg.Source.Seed = n
			return nil
		},
		unset: func(cfg *Config) { cfg.Source.Seed = DefaultSeed },
	},
}

func schemeNames() []string {
	var out []string
	for _, s := range heatmap.Schemes() {
		out = append(out, string(s))
	}
	return out
}

func rangeNames() []string {
	var out []string
	for _, r := range activity.Ranges() {
		out = append(out, string(r))
	}
	return out
}

// ValidKeyNames returns the sorted list of all known config key names.
func ValidKeyNames() []string {
	names := make([]string, 0, len(SchemaKeys))
	for k := range SchemaKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupKey returns the KeyEntry for a known config key.
func LookupKey(key string) (*KeyEntry, bool) {
	entry, ok := SchemaKeys[key]
	return entry, ok
}

// ParseBoolValue accepts common boolean string representations.
// Valid truthy values: true, 1, yes, on.
// Valid falsy values: false, 0, no, off.
func ParseBoolValue(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q (use one of: true/false, 1/0, yes/no, on/off)", s)
	}
}
