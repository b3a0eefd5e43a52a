package cmd

import (
	"fmt"
	"strings"

	"github.com/rnwolfe/deckstats/internal/config"
	"github.com/rnwolfe/deckstats/internal/heatmap"
	"github.com/rnwolfe/deckstats/internal/tui"
	"github.com/rnwolfe/deckstats/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and manage configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configUnsetCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	fmt.Println(config.GetPaths().ConfigFile)
	return nil
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Run 'deckstats config list' to see all keys.

Without a value, keys with a fixed set of values (heatmap.scheme,
heatmap.range, chart.theme, booleans) open an interactive picker.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration keys with their current values",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Reset a configuration value to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

// Swapped out in tests.
var (
	pickValue  = tui.Pick
	stdinIsTTY = tui.IsTTY
)

func lookupKey(key string) (*config.KeyEntry, error) {
	entry, ok := config.LookupKey(key)
	if !ok {
		return nil, fmt.Errorf("unknown config key %q (valid keys: %s)",
			key, strings.Join(config.ValidKeyNames(), ", "))
	}
	return entry, nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key := args[0]
	entry, err := lookupKey(key)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		if len(entry.Choices) == 0 || !stdinIsTTY() {
			return fmt.Errorf("missing value for %s (usage: deckstats config set %s <value>)", key, key)
		}
		picked, ok, err := pickValue(key, keyChoices(key, entry), entry.Get(cfg))
		if err != nil {
			return err
		}
		if !ok {
			ui.Inf("Unchanged.")
			return nil
		}
		value = picked
	}

	if err := entry.Set(cfg, value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	ui.Ok(fmt.Sprintf("%s = %s", key, entry.Get(cfg)))
	return nil
}

// keyChoices turns a key's accepted values into picker rows; schemes get a
// color swatch.
func keyChoices(key string, entry *config.KeyEntry) []tui.Choice {
	choices := make([]tui.Choice, len(entry.Choices))
	for i, v := range entry.Choices {
		choices[i] = tui.Choice{Value: v}
		if v == entry.DefaultStr {
			choices[i].Desc = "default"
		}
		if key == "heatmap.scheme" {
			choices[i].Swatch = tui.SchemeSwatch(heatmap.Scheme(v), ui.ColorEnabled())
		}
	}
	return choices
}

func runConfigGet(_ *cobra.Command, args []string) error {
	entry, err := lookupKey(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Println(entry.Get(cfg))
	return nil
}

func runConfigUnset(_ *cobra.Command, args []string) error {
	key := args[0]
	entry, err := lookupKey(key)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	entry.Unset(cfg)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	ui.Ok(fmt.Sprintf("%s reset to %s", key, entry.Get(cfg)))
	return nil
}

func runConfigList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ui.Puts("")
	for _, key := range config.ValidKeyNames() {
		entry, _ := config.LookupKey(key)
		value := entry.Get(cfg)
		line := fmt.Sprintf("  %-28s %-8s %s", key, entry.Type, value)
		if value != entry.DefaultStr {
			line += ui.Muted.Render(fmt.Sprintf("  (default %q)", entry.DefaultStr))
		}
		ui.Puts(line)
		ui.Puts(ui.Muted.Render("    " + entry.Desc))
	}
	ui.Puts("")
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	paths := config.GetPaths()
	src := resolveSource(cfg)
	source := src.Collection
	if src.UseMock() {
		source = fmt.Sprintf("sample data (seed %d)", src.Seed)
	}

	ui.Header("Configuration")
	fmt.Println()
	ui.Kv("Source", source)
	ui.Kv("Scheme", cfg.Heatmap.Scheme)
	ui.Kv("Range", cfg.Heatmap.Range)
	ui.Kv("Theme", cfg.Chart.Theme)
	ui.Kv("Value label", cfg.Heatmap.ValueLabel)
	fmt.Println()
	ui.Kv("Config", paths.ConfigFile)
	if !config.Exists() {
		ui.Kv("", ui.Muted.Render("(not written yet, using defaults)"))
	}
	fmt.Println()
	ui.Tip(fmt.Sprintf("Edit directly: %s", ui.Accent.Render("$EDITOR "+paths.ConfigFile)))
	fmt.Println()

	return nil
}
