package feeds

import (
	"context"

	"github.com/penwyp/go-link-monitor/internal/core/model"
)

// The engine only consumes shapes; retrieval (transport, retries, auth)
// lives behind these contracts. Every source may legitimately return
// nothing: an absent feed contributes nothing to reconciliation.

// HistorySource returns the accounting session records for a connection.
type HistorySource interface {
	FetchHistory(ctx context.Context, connectionID string) ([]model.RawSession, error)
}

// UptimeSource returns the monitoring feed's status and recent events.
type UptimeSource interface {
	FetchUptime(ctx context.Context, connectionID string) (*model.UptimeData, error)
}

// RealtimeSource returns the router's status snapshot.
type RealtimeSource interface {
	FetchRealtime(ctx context.Context, connectionID string) (*model.RealtimeData, error)
}
