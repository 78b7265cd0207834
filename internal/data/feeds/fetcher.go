package feeds

import (
	"context"
	"sync"
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/model"
	"github.com/penwyp/go-link-monitor/internal/util"
)

// DefaultTimeout bounds each individual feed fetch.
const DefaultTimeout = 10 * time.Second

// Result is whatever subset of the three feeds returned successfully. A nil
// slot means that feed was absent or failed; the engine runs on any subset,
// including none.
type Result struct {
	History  []model.RawSession
	Uptime   *model.UptimeData
	Realtime *model.RealtimeData
}

// Fetcher fans out the three feed fetches concurrently, each with its own
// timeout and independent failure handling. A failure or timeout on one feed
// never blocks or fails the others.
type Fetcher struct {
	history  HistorySource
	uptime   UptimeSource
	realtime RealtimeSource
	timeout  time.Duration
}

// NewFetcher creates a fetcher over the given sources. Any source may be
// nil, in which case its feed is simply absent.
func NewFetcher(history HistorySource, uptime UptimeSource, realtime RealtimeSource, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		history:  history,
		uptime:   uptime,
		realtime: realtime,
		timeout:  timeout,
	}
}

// FetchAll retrieves all three feeds concurrently and returns whatever came
// back. Fetch errors are logged and degrade to an absent feed; they are
// never propagated to the caller.
func (f *Fetcher) FetchAll(ctx context.Context, connectionID string) Result {
	var result Result
	var wg sync.WaitGroup

	if f.history != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
			defer cancel()
			sessions, err := f.history.FetchHistory(fetchCtx, connectionID)
			if err != nil {
				util.LogWarnf("History feed unavailable for %s: %v", connectionID, err)
				return
			}
			result.History = sessions
		}()
	}

	if f.uptime != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
			defer cancel()
			data, err := f.uptime.FetchUptime(fetchCtx, connectionID)
			if err != nil {
				util.LogWarnf("Uptime feed unavailable for %s: %v", connectionID, err)
				return
			}
			result.Uptime = data
		}()
	}

	if f.realtime != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
			defer cancel()
			data, err := f.realtime.FetchRealtime(fetchCtx, connectionID)
			if err != nil {
				util.LogWarnf("Realtime feed unavailable for %s: %v", connectionID, err)
				return
			}
			result.Realtime = data
		}()
	}

	wg.Wait()
	return result
}
