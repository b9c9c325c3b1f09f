// Package syncd drives periodic and on-demand reconciliation of the
// board against a published spreadsheet feed, and pushes newly claimed
// records to an outbound webhook.
package syncd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/section308/heartboard/internal/reconcile"
	"github.com/section308/heartboard/internal/sheet"
	"github.com/section308/heartboard/internal/store"
	"github.com/section308/heartboard/pkg/types"
)

// Fetcher retrieves the raw CSV text of a source address.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Scheduler performs fetch-and-reconcile steps, either once on demand
// or repeatedly on a fixed interval. Each step takes a snapshot of the
// store, computes the merge, and submits a single replace, so an
// overlapping manual sync can never leave a partially merged list.
type Scheduler struct {
	store     *store.Store
	fetcher   Fetcher
	sourceURL string
	interval  time.Duration
	log       zerolog.Logger

	now func() time.Time
}

// New returns a scheduler polling sourceURL every interval. A
// non-positive interval falls back to the default polling period.
func New(st *store.Store, fetcher Fetcher, sourceURL string, interval time.Duration, log zerolog.Logger) *Scheduler {
	if interval <= 0 {
		interval = types.DefaultPollInterval
	}
	return &Scheduler{
		store:     st,
		fetcher:   fetcher,
		sourceURL: sourceURL,
		interval:  interval,
		log:       log,
		now:       time.Now,
	}
}

// SyncOnce performs one fetch-and-reconcile step. It reports whether
// the store changed. An empty import (no usable rows) is surfaced as
// an error and leaves the store untouched.
func (s *Scheduler) SyncOnce(ctx context.Context) (bool, error) {
	if s.sourceURL == "" {
		return false, errors.New("no source address configured")
	}

	text, err := s.fetcher.Fetch(ctx, s.sourceURL)
	if err != nil {
		return false, fmt.Errorf("fetch source: %w", err)
	}

	batch, err := sheet.ParseRoster(text, s.now())
	if err != nil {
		return false, fmt.Errorf("parse roster: %w", err)
	}

	merged, changed := reconcile.Merge(s.store.Snapshot(), batch)
	if !changed {
		return false, nil
	}
	if err := s.store.Replace(merged); err != nil {
		return false, err
	}
	return true, nil
}

// Run syncs immediately, then on every tick until ctx is cancelled.
// Individual failures are logged and the next scheduled attempt
// proceeds normally.
func (s *Scheduler) Run(ctx context.Context) error {
	s.step(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.step(ctx)
		}
	}
}

func (s *Scheduler) step(ctx context.Context) {
	changed, err := s.SyncOnce(ctx)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Str("source", s.sourceURL).Msg("sync failed")
	case changed:
		s.log.Info().Int("records", s.store.Len()).Int("lit", s.store.LitCount()).Msg("board updated from source")
	default:
		s.log.Debug().Msg("board unchanged")
	}
}
