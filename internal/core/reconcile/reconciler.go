package reconcile

import (
	"time"

	"github.com/penwyp/go-link-monitor/internal/core/constants"
	"github.com/penwyp/go-link-monitor/internal/core/model"
	"github.com/penwyp/go-link-monitor/internal/core/reconcile/checks"
	"github.com/penwyp/go-link-monitor/internal/util"
)

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithNow overrides the clock, mainly for tests.
func WithNow(now func() time.Time) Option {
	return func(r *Reconciler) {
		r.now = now
	}
}

// WithSkewOffset overrides the clock-skew correction offset. The default is
// a hardcoded 5-minute heuristic; isolating it here keeps it tunable without
// changing behavior for existing callers.
func WithSkewOffset(d time.Duration) Option {
	return func(r *Reconciler) {
		r.skewOffset = d
	}
}

// WithDedupTolerance overrides the cross-feed deduplication window.
func WithDedupTolerance(d time.Duration) Option {
	return func(r *Reconciler) {
		r.dedupTolerance = d
	}
}

// WithGapThreshold overrides the minimum span reported as a gap.
func WithGapThreshold(d time.Duration) Option {
	return func(r *Reconciler) {
		r.gapThreshold = d
	}
}

// Reconciler produces a single ordered timeline from the three connection
// feeds. It is a pure, synchronous computation over already-fetched data:
// no locks, no background work, no shared mutable state, safe to invoke
// concurrently for different connections. Repeated calls with identical
// inputs (and an injected clock) yield identical output.
type Reconciler struct {
	now            func() time.Time
	skewOffset     time.Duration
	dedupTolerance time.Duration
	gapThreshold   time.Duration

	normalizer *Normalizer
	projector  *Projector
	merger     *Merger
	assembler  *Assembler
	resolver   *Resolver
	scorer     *Scorer
	registry   *checks.Registry
}

// New creates a reconciler with the default correction constants.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{
		now:            time.Now,
		skewOffset:     constants.ClockSkewOffset,
		dedupTolerance: constants.DedupTolerance,
		gapThreshold:   constants.GapThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}

	corrector := NewCorrector(r.skewOffset)
	r.normalizer = NewNormalizer(corrector)
	r.projector = NewProjector()
	r.merger = NewMerger(r.dedupTolerance)
	r.assembler = NewAssembler(r.gapThreshold)
	r.resolver = NewResolver()
	r.scorer = NewScorer()
	r.registry = checks.DefaultRegistry(r.skewOffset, r.dedupTolerance)

	return r
}

// Reconcile builds the timeline for one connection from whatever subset of
// the three feeds is available. It is total: absent feeds contribute
// nothing, malformed fields degrade to defaults, and zero usable feeds
// produce the empty timeline, which is an expected state for a brand-new
// connection rather than an error.
func (r *Reconciler) Reconcile(connectionID string, history []model.RawSession, uptime *model.UptimeData, realtime *model.RealtimeData) model.Timeline {
	now := r.now()

	if len(history) == 0 && uptime == nil && realtime == nil {
		util.LogDebugf("No feed data for connection %s, returning empty timeline", connectionID)
		return emptyTimeline(connectionID, now)
	}

	sessions := make([]model.Session, 0, len(history))
	for _, raw := range history {
		sessions = append(sessions, r.normalizer.Normalize(raw, now))
	}

	events := make([]model.Event, 0, len(sessions)*2)
	for _, s := range sessions {
		events = append(events, r.projector.Project(s)...)
	}

	events = r.merger.Merge(events, uptime)
	events, gaps := r.assembler.Assemble(events)

	inconsistencies := r.registry.Collect(checks.Input{
		Now:      now,
		Raw:      history,
		Sessions: sessions,
		Uptime:   uptime,
		Realtime: realtime,
		Events:   events,
	})

	status := r.resolver.Resolve(sessions, uptime, realtime, now)
	score := r.scorer.Score(events, inconsistencies)

	util.LogDebugf("Reconciled connection %s: %d events, %d inconsistencies, %d gaps, status %s, score %d",
		connectionID, len(events), len(inconsistencies), len(gaps), status.Status, score)

	return model.Timeline{
		ConnectionID:    connectionID,
		Events:          events,
		Inconsistencies: inconsistencies,
		Gaps:            gaps,
		CurrentStatus:   status,
		LastVerified:    now,
		ConfidenceScore: score,
	}
}

func emptyTimeline(connectionID string, now time.Time) model.Timeline {
	return model.Timeline{
		ConnectionID:    connectionID,
		Events:          make([]model.Event, 0),
		Inconsistencies: make([]model.Inconsistency, 0),
		Gaps:            make([]model.Gap, 0),
		CurrentStatus: model.CurrentStatus{
			Status:       model.StatusUnknown,
			Confidence:   model.ConfidenceLow,
			DeterminedAt: now,
			Sources:      make([]string, 0),
		},
		LastVerified:    now,
		ConfidenceScore: 0,
	}
}
