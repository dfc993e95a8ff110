// Package cli implements the farebrand command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vnalla55/farebrand/pkg/buildinfo"
	"github.com/vnalla55/farebrand/pkg/cache"
	"github.com/vnalla55/farebrand/pkg/observability"
	"github.com/vnalla55/farebrand/pkg/pipeline"
	"github.com/vnalla55/farebrand/pkg/scenario"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "farebrand"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output. Logs and the spinner go to the
	// logger's writer.
	Out io.Writer
	Err io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Err:    w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Farebrand computes branded fare option spaces",
		Long:         `Farebrand builds the branded pricing options of air itineraries: it ranks each transaction's brands, generates the option spaces a pricing engine should price, and works out which brands are offered consistently across the journey.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := newLogHooks(c.Logger)
			observability.SetBrandingHooks(hooks)
			observability.SetCacheHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.runCommand())
	root.AddCommand(c.spacesCommand())
	root.AddCommand(c.parityCommand())
	root.AddCommand(c.precedenceCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped by
// build version.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	keyer := cacheKeyer()
	return pipeline.NewRunner(cache, keyer, c.Logger), nil
}

func cacheKeyer() cache.Keyer {
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/farebrand/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Scenario Helpers
// =============================================================================

// loadScenario reads a scenario file and merges the command-line overrides
// into its options.
func (c *CLI) loadScenario(cmd *cobra.Command, path string, flags *optionFlags) (*scenario.Scenario, pipeline.Options, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, pipeline.Options{}, err
	}
	if len(sc.Undecoded) > 0 {
		c.Logger.Warn("ignoring unknown scenario keys", "keys", sc.Undecoded)
	}
	opts := pipeline.FromScenario(sc.Options)
	flags.apply(cmd, &opts)
	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, pipeline.Options{}, fmt.Errorf("invalid options: %w", err)
	}
	return sc, opts, nil
}

// selectJobs returns the scenario's jobs, or only the one named id.
func selectJobs(sc *scenario.Scenario, id string) ([]pipeline.Job, error) {
	if id == "" {
		return pipeline.JobsFromScenario(sc), nil
	}
	it, ok := sc.Itinerary(id)
	if !ok {
		return nil, fmt.Errorf("itinerary %q not found", id)
	}
	return []pipeline.Job{{ID: it.ID, Geometry: it}}, nil
}
