// Package cli implements the viet-steno CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rcliao/viet-steno/internal/cache"
	"github.com/rcliao/viet-steno/internal/config"
	"github.com/rcliao/viet-steno/internal/dictionary"
	"github.com/rcliao/viet-steno/internal/store"
)

var (
	configPath string
	dbPath     string
	formatFlag string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "viet-steno",
	Short: "Vietnamese steno syllables and two-syllable chord dictionaries",
	Long: "Parse and spell single-stroke Vietnamese steno syllables, and build " +
		"chord dictionaries that write a two-syllable word in one stroke.",
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $VIET_STENO_CONFIG)")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $VIET_STENO_DB or ~/.viet-steno/steno.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: json or yaml (default: build.format)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// setup loads the config and applies flag overrides before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.DBPath = dbPath
	}
	if formatFlag != "" {
		c.Build.Format = formatFlag
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	cfg = c
	logger = config.NewLogger(cfg.Log)
	return nil
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.DBPath)
}

func loadCache() *cache.Cache {
	c, err := cache.New(logger)
	if err != nil {
		exitErr("build syllable cache", err)
	}
	return c
}

func newBuilder(c *cache.Cache) *dictionary.Builder {
	return dictionary.NewBuilder(c,
		dictionary.WithLogger(logger),
		dictionary.WithWorkers(cfg.Build.Workers))
}

// printResult writes v to stdout in the configured format.
func printResult(cmd *cobra.Command, v any) {
	out := cmd.OutOrStdout()
	switch cfg.Build.Format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			exitErr("encode", err)
		}
		enc.Close()
	default:
		b, _ := json.MarshalIndent(v, "", "  ")
		fmt.Fprintln(out, string(b))
	}
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
