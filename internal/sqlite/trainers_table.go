package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// TrainersTx lists all trainers inside tx, ordered by id. The creation
// service picks one at random from this set; an empty result means the
// operational precondition of seeded trainer data is not met.
func (s *Store) TrainersTx(ctx context.Context, tx *sql.Tx) ([]types.Trainer, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id, name FROM trainers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("fetching trainers: %w", err)
	}
	defer rows.Close()

	var trainers []types.Trainer
	for rows.Next() {
		var tr types.Trainer
		if err := rows.Scan(&tr.ID, &tr.Name); err != nil {
			return nil, fmt.Errorf("scanning trainer: %w", err)
		}
		trainers = append(trainers, tr)
	}
	return trainers, rows.Err()
}

// InsertTrainer adds a trainer row outside any transaction. Used by seeding.
func (s *Store) InsertTrainer(ctx context.Context, name string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "INSERT INTO trainers (name) VALUES (?)", name)
	if err != nil {
		return 0, mapInsertErr("inserting trainer", err)
	}
	return res.LastInsertId()
}
