package commands

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/penwyp/go-link-monitor/internal/data/cache"
	"github.com/penwyp/go-link-monitor/internal/data/feeds"
	"github.com/penwyp/go-link-monitor/internal/util"
	"github.com/spf13/cobra"
)

var (
	watchRefreshRate int
)

var watchCmd = &cobra.Command{
	Use:   "watch <connection-id>",
	Short: "Re-reconcile as feed snapshots change",
	Long: `Watches the feed snapshot directory and re-runs reconciliation whenever a
snapshot file changes, with a periodic refresh as a fallback. Each pass is a
full recomputation over the current snapshots; a pass whose result matches
the previous one is not redrawn.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntVar(&watchRefreshRate, "refresh-rate", 30,
		"Fallback refresh interval in seconds")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	connectionID := args[0]

	watcher, err := feeds.NewWatcher(feedsDir)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", feedsDir, err)
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if watchRefreshRate < 1 {
		watchRefreshRate = 30
	}
	ticker := time.NewTicker(time.Duration(watchRefreshRate) * time.Second)
	defer ticker.Stop()

	results := cache.NewResultCache()
	refresh := func() {
		timeline := reconcileOnce(ctx, connectionID)
		if !results.Update(connectionID, timeline) {
			util.LogDebugf("Timeline for %s unchanged, skipping redraw", connectionID)
			return
		}
		if err := render(timeline); err != nil {
			util.LogErrorf("Failed to render timeline: %v", err)
		}
		fmt.Println()
	}

	refresh()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-watcher.Events():
			util.LogDebugf("Snapshot change detected: %s %s", event.Operation, event.Path)
			refresh()
		case <-ticker.C:
			refresh()
		}
	}
}
