package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-link-monitor/internal/core/model"
	"github.com/penwyp/go-link-monitor/internal/core/reconcile"
	"github.com/penwyp/go-link-monitor/internal/data/feeds"
	"github.com/penwyp/go-link-monitor/internal/presentation/formatter"
	"github.com/penwyp/go-link-monitor/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug bool

	// Data path
	feedsDir string

	// Output related
	outputFormat string
	timezone     string

	rootCmd = &cobra.Command{
		Use:   "go-link-monitor <connection-id>",
		Short: "Connection timeline reconciliation tool",
		Long: `go-link-monitor reconciles the up/down history of a network connection from
three independent feeds (accounting history, uptime monitoring, realtime
status) into a single ordered timeline with data-quality flags and a
confidence score.

Examples:
  go-link-monitor cpe-1042                         # Reconcile with default settings
  go-link-monitor cpe-1042 --feeds /var/lib/feeds  # Read snapshots from a custom directory
  go-link-monitor cpe-1042 --output json           # Emit the timeline as JSON
  go-link-monitor watch cpe-1042                   # Re-reconcile as snapshots change`,
		Args: cobra.ExactArgs(1),
		RunE: runReconcile,
	}
)

const (
	defaultLogFile  = "~/.go-link-monitor/logs/app.log"
	defaultFeedsDir = "~/.go-link-monitor/feeds"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&feedsDir, "feeds", defaultFeedsDir,
		"Feed snapshot directory")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")

	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json)")
}

func runReconcile(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	timeline := reconcileOnce(cmd.Context(), args[0])
	return render(timeline)
}

// setup initializes logging, the time provider, and path expansion shared by
// all commands.
func setup() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, logFile, debug)

	if err := util.InitializeTimeProvider(timezone); err != nil {
		return err
	}

	feedsDir = expandPath(feedsDir)
	return nil
}

// reconcileOnce fetches whatever feed snapshots are available and runs one
// reconciliation pass.
func reconcileOnce(ctx context.Context, connectionID string) model.Timeline {
	source := feeds.NewFileSource(feedsDir)
	fetcher := feeds.NewFetcher(source, source, source, feeds.DefaultTimeout)
	result := fetcher.FetchAll(ctx, connectionID)

	return reconcile.New().Reconcile(connectionID, result.History, result.Uptime, result.Realtime)
}

func render(timeline model.Timeline) error {
	switch outputFormat {
	case "json":
		return formatter.NewJSONFormatter(os.Stdout).Format(timeline)
	case "table", "":
		return formatter.NewTableFormatter(os.Stdout, util.GetTimeProvider()).Format(timeline)
	default:
		return fmt.Errorf("unknown output format: %s", outputFormat)
	}
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
