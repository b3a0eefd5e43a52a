package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Defaults for a fresh configuration.
const (
	DefaultScheme     = "blue"
	DefaultRange      = "6m"
	DefaultTheme      = "light"
	DefaultValueLabel = "cards studied"
	DefaultSeed       = 1
)

// Config holds the top-level deckstats configuration.
type Config struct {
	Heatmap HeatmapConfig `toml:"heatmap"`
	Chart   ChartConfig   `toml:"chart"`
	Source  SourceConfig  `toml:"source"`
}

// HeatmapConfig controls the activity heatmap.
type HeatmapConfig struct {
	Scheme            string `toml:"scheme"`
	Range             string `toml:"range"`
	ValueLabel        string `toml:"value_label"`
	ShowMonthLabels   bool   `toml:"show_month_labels"`
	ShowWeekdayLabels bool   `toml:"show_weekday_labels"`
}

// ChartConfig holds chart display preferences. Renderers receive these as
// plain values; nothing reads them from global state.
type ChartConfig struct {
	Theme        string `toml:"theme"` // light, dark
	GridLines    bool   `toml:"grid_lines"`
	Animations   bool   `toml:"animations"`
	SmoothCurves bool   `toml:"smooth_curves"`
	Gradients    bool   `toml:"gradients"`
}

// SourceConfig selects where statistics come from.
type SourceConfig struct {
	// Collection is the path of a flashcard collection file, read-only.
	Collection string `toml:"collection"`
	// Mock forces generated sample data even when a collection is set.
	Mock bool  `toml:"mock"`
	Seed int64 `toml:"seed"`
}

// UseMock reports whether generated data should be used.
func (s SourceConfig) UseMock() bool {
	return s.Mock || s.Collection == ""
}

// Paths holds the resolved XDG locations.
type Paths struct {
	ConfigDir  string
	ConfigFile string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	dir := filepath.Join(configDir, "deckstats")
	return Paths{
		ConfigDir:  dir,
		ConfigFile: filepath.Join(dir, "config.toml"),
	}
}

// EnsureDirs creates the config directory.
func (p Paths) EnsureDirs() error {
	return os.MkdirAll(p.ConfigDir, 0o755)
}

// Load reads config from disk, returning defaults if not found. Keys
// missing from the file keep their default values.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := defaultConfig()

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file has been written.
func Exists() bool {
	_, err := os.Stat(GetPaths().ConfigFile)
	return err == nil
}

func defaultConfig() *Config {
	return &Config{
		Heatmap: HeatmapConfig{
			Scheme:            DefaultScheme,
			Range:             DefaultRange,
			ValueLabel:        DefaultValueLabel,
			ShowMonthLabels:   true,
			ShowWeekdayLabels: true,
		},
		Chart: ChartConfig{
			Theme:        DefaultTheme,
			GridLines:    true,
			Animations:   true,
			SmoothCurves: true,
			Gradients:    true,
		},
		Source: SourceConfig{
			Collection: os.Getenv("DECKSTATS_COLLECTION"),
			Seed:       DefaultSeed,
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
