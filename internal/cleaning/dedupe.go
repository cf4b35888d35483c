package cleaning

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// ref identifies one foreign-key column that points into a cleaned table.
type ref struct {
	table  string
	column string
}

// tableSpec drives one cleaning pass: the table to clean and every
// referencing column that must be rewritten when rows merge.
type tableSpec struct {
	table string
	refs  []ref
}

// cleaningOrder lists the passes in dependency direction: referenced tables
// before their referencers, so no pass ever reads a stale foreign key. The
// link table carries no name column of its own; its foreign keys are
// rewritten during the passes over the tables it references.
var cleaningOrder = []tableSpec{
	{table: types.TypesTable, refs: []ref{
		{types.PokemonTable, "type1_id"},
		{types.PokemonTable, "type2_id"},
	}},
	{table: types.AbilitiesTable, refs: []ref{
		{types.PokemonAbilityTable, "ability_id"},
	}},
	{table: types.TrainersTable, refs: []ref{
		{types.PokemonAbilityTable, "trainer_id"},
	}},
	{table: types.PokemonTable, refs: []ref{
		{types.PokemonAbilityTable, "pokemon_id"},
	}},
}

// TableStats reports what one cleaning pass changed.
type TableStats struct {
	Table       string
	JunkDeleted int
	Renamed     int
	Merged      int
}

// namedRow is one (id, name) pair loaded for cleaning.
type namedRow struct {
	id   int64
	name string
}

// cleanTable runs one pass over spec.table inside tx:
//
//  1. delete junk-named rows that nothing references; junk rows that are
//     referenced stay and are renamed like any other row, so no dependent
//     data is silently orphaned
//  2. rewrite every remaining name to DisplayForm(Correct(name))
//  3. group rows by canonical form; per group keep the lowest id, repoint
//     every referencing column from the superseded ids to the kept id, and
//     delete the superseded rows
//
// Running the pass twice yields the same row set as running it once.
func cleanTable(ctx context.Context, tx *sql.Tx, spec tableSpec) (TableStats, error) {
	stats := TableStats{Table: spec.table}

	rows, err := loadRows(ctx, tx, spec.table)
	if err != nil {
		return stats, err
	}

	kept := make([]namedRow, 0, len(rows))
	for _, r := range rows {
		if !IsJunk(r.name) {
			kept = append(kept, r)
			continue
		}
		referenced, err := isReferenced(ctx, tx, spec.refs, r.id)
		if err != nil {
			return stats, err
		}
		if referenced {
			kept = append(kept, r)
			continue
		}
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE id = ?", spec.table), r.id); err != nil {
			return stats, fmt.Errorf("deleting junk row in %s: %w", spec.table, err)
		}
		stats.JunkDeleted++
	}

	for i, r := range kept {
		want := DisplayForm(Correct(r.name))
		if want == r.name {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf("UPDATE %s SET name = ? WHERE id = ?", spec.table), want, r.id); err != nil {
			return stats, fmt.Errorf("renaming row in %s: %w", spec.table, err)
		}
		kept[i].name = want
		stats.Renamed++
	}

	// Rows were loaded in id order, so the first row of each group holds
	// the lowest id and becomes the canonical one.
	groups := make(map[string][]namedRow)
	order := []string{}
	for _, r := range kept {
		key := CanonicalForm(r.name)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r)
	}

	for _, key := range order {
		group := groups[key]
		if len(group) < 2 {
			continue
		}
		canonical := group[0]
		for _, superseded := range group[1:] {
			for _, fk := range spec.refs {
				if _, err := tx.ExecContext(ctx,
					fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", fk.table, fk.column, fk.column),
					canonical.id, superseded.id); err != nil {
					return stats, fmt.Errorf("remapping %s.%s: %w", fk.table, fk.column, err)
				}
			}
			if _, err := tx.ExecContext(ctx,
				fmt.Sprintf("DELETE FROM %s WHERE id = ?", spec.table), superseded.id); err != nil {
				return stats, fmt.Errorf("deleting superseded row in %s: %w", spec.table, err)
			}
			stats.Merged++
		}
	}

	return stats, nil
}

func loadRows(ctx context.Context, tx *sql.Tx, table string) ([]namedRow, error) {
	rows, err := tx.QueryContext(ctx,
		fmt.Sprintf("SELECT id, name FROM %s ORDER BY id", table))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", table, err)
	}
	defer rows.Close()

	var out []namedRow
	for rows.Next() {
		var r namedRow
		if err := rows.Scan(&r.id, &r.name); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// isReferenced reports whether any referencing column points at id.
func isReferenced(ctx context.Context, tx *sql.Tx, refs []ref, id int64) (bool, error) {
	for _, fk := range refs {
		var n int
		err := tx.QueryRowContext(ctx,
			fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", fk.table, fk.column),
			id).Scan(&n)
		if err != nil {
			return false, fmt.Errorf("counting %s.%s refs: %w", fk.table, fk.column, err)
		}
		if n > 0 {
			return true, nil
		}
	}
	return false, nil
}
