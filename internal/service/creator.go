// Package service implements the idempotent create-with-enrichment workflow.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/pokedex/internal/catalog"
	"github.com/mesh-intelligence/pokedex/internal/cleaning"
	"github.com/mesh-intelligence/pokedex/internal/sqlite"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// Catalog is the external lookup the creation flow consults. The production
// implementation is catalog.Client.
type Catalog interface {
	Lookup(ctx context.Context, name string) (*catalog.Record, error)
}

// Creator resolves an external name to a stored Pokemon exactly once:
// dependent type and ability rows, the Pokemon row, and one link row per
// ability all land in a single transaction or not at all.
type Creator struct {
	store   *sqlite.Store
	catalog Catalog
	picker  Picker
	log     *logrus.Logger
}

// NewCreator wires the creation service to its collaborators.
func NewCreator(store *sqlite.Store, cat Catalog, picker Picker, log *logrus.Logger) *Creator {
	return &Creator{store: store, catalog: cat, picker: picker, log: log}
}

// Create adds the named Pokemon from the catalog.
//
// Returns ErrInvalidName for an empty trimmed name, ErrAlreadyExists when a
// Pokemon with the same canonical name is stored (repeated attempts are a
// no-op), ErrCatalogNotFound / ErrCatalogUnavailable from the lookup, and
// ErrNoTrainers when the trainer table is empty. The catalog call happens
// before the transaction opens so a slow upstream never blocks the store.
func (c *Creator) Create(ctx context.Context, rawName string) (*types.CreationResult, error) {
	trimmed := strings.TrimSpace(rawName)
	if trimmed == "" {
		return nil, types.ErrInvalidName
	}

	// Cheap pre-check; the unique name index is what actually decides
	// concurrent races.
	if _, err := c.store.GetPokemonByName(ctx, trimmed); err == nil {
		return nil, types.ErrAlreadyExists
	} else if !errors.Is(err, types.ErrNotFound) {
		return nil, fmt.Errorf("checking existing pokemon: %w", err)
	}

	rec, err := c.catalog.Lookup(ctx, cleaning.CanonicalForm(trimmed))
	if err != nil {
		return nil, err
	}

	tx, err := c.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin creation: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	var type1ID, type2ID *int64
	for i, typeName := range rec.Types {
		id, err := c.store.FindOrCreateTypeTx(ctx, tx, cleaning.DisplayForm(cleaning.Correct(typeName)))
		if err != nil {
			return nil, err
		}
		switch i {
		case 0:
			type1ID = &id
		case 1:
			type2ID = &id
		}
	}

	abilityIDs := make([]int64, 0, len(rec.Abilities))
	for _, abilityName := range rec.Abilities {
		id, err := c.store.FindOrCreateAbilityTx(ctx, tx, cleaning.DisplayForm(cleaning.Correct(abilityName)))
		if err != nil {
			return nil, err
		}
		abilityIDs = append(abilityIDs, id)
	}

	trainers, err := c.store.TrainersTx(ctx, tx)
	if err != nil {
		return nil, err
	}
	if len(trainers) == 0 {
		return nil, types.ErrNoTrainers
	}
	trainer := trainers[c.picker.IntN(len(trainers))]

	displayName := cleaning.DisplayForm(cleaning.Correct(rec.Name))
	pokemonID, err := c.store.InsertPokemonTx(ctx, tx, displayName, type1ID, type2ID)
	if err != nil {
		// A concurrent create for the same name won the insert race.
		return nil, err
	}

	for _, abilityID := range abilityIDs {
		if _, err := c.store.InsertLinkTx(ctx, tx, pokemonID, trainer.ID, abilityID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit creation: %w", err)
	}
	committed = true

	c.log.WithFields(logrus.Fields{
		"pokemon": displayName,
		"trainer": trainer.Name,
	}).Info("pokemon created")

	return &types.CreationResult{Pokemon: displayName, Trainer: trainer.Name}, nil
}
