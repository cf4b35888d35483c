package cleaning

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/pokedex/internal/sqlite"
)

// Orchestrator runs the full cleaning sequence once at startup. It is
// single-threaded and run-to-completion; the caller must not serve requests
// until CleanAll returns.
type Orchestrator struct {
	store *sqlite.Store
	log   *logrus.Logger
}

// NewOrchestrator wires the orchestrator to an opened store.
func NewOrchestrator(store *sqlite.Store, log *logrus.Logger) *Orchestrator {
	return &Orchestrator{store: store, log: log}
}

// CleanAll cleans every table in dependency order inside one transaction,
// then applies the unique canonical-name indexes that hold the invariant
// from here on. Any failure rolls the whole pass back; the caller treats
// that as fatal rather than serving a partially cleaned store.
func (o *Orchestrator) CleanAll(ctx context.Context) error {
	tx, err := o.store.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin cleaning: %w", err)
	}

	stats := make([]TableStats, 0, len(cleaningOrder))
	for _, spec := range cleaningOrder {
		st, err := cleanTable(ctx, tx, spec)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("cleaning %s: %w", spec.table, err)
		}
		stats = append(stats, st)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cleaning: %w", err)
	}

	if err := o.store.EnsureNameIndexes(ctx); err != nil {
		return fmt.Errorf("enforce name uniqueness: %w", err)
	}

	for _, st := range stats {
		o.log.WithFields(logrus.Fields{
			"table":        st.Table,
			"junk_deleted": st.JunkDeleted,
			"renamed":      st.Renamed,
			"merged":       st.Merged,
		}).Debug("table cleaned")
	}
	o.log.WithFields(logrus.Fields{
		"junk_deleted": lo.SumBy(stats, func(s TableStats) int { return s.JunkDeleted }),
		"renamed":      lo.SumBy(stats, func(s TableStats) int { return s.Renamed }),
		"merged":       lo.SumBy(stats, func(s TableStats) int { return s.Merged }),
	}).Info("database cleaning finished")

	return nil
}
