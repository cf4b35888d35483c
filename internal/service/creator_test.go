package service

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pokedex/internal/catalog"
	"github.com/mesh-intelligence/pokedex/internal/sqlite"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// stubCatalog returns a canned record or error and remembers the names it
// was asked for.
type stubCatalog struct {
	rec   *catalog.Record
	err   error
	calls []string
}

func (s *stubCatalog) Lookup(ctx context.Context, name string) (*catalog.Record, error) {
	s.calls = append(s.calls, name)
	if s.err != nil {
		return nil, s.err
	}
	return s.rec, nil
}

// fixedPicker always picks the same index, modulo the set size.
type fixedPicker int

func (p fixedPicker) IntN(n int) int { return int(p) % n }

func setupStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(t.TempDir(), "pokedex.db")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedTrainers(t *testing.T, store *sqlite.Store, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := store.InsertTrainer(context.Background(), name)
		require.NoError(t, err)
	}
}

func newCreator(store *sqlite.Store, cat Catalog, picker Picker) *Creator {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewCreator(store, cat, picker, log)
}

func bulbasaurRecord() *catalog.Record {
	return &catalog.Record{
		Name:      "bulbasaur",
		Types:     []string{"grass", "poison"},
		Abilities: []string{"overgrow", "chlorophyll"},
	}
}

func TestCreateEnrichesAndStores(t *testing.T) {
	store := setupStore(t)
	seedTrainers(t, store, "Ash", "Misty", "Brock")
	cat := &stubCatalog{rec: bulbasaurRecord()}
	creator := newCreator(store, cat, fixedPicker(0))
	ctx := context.Background()

	result, err := creator.Create(ctx, "  Bulbasaur ")
	require.NoError(t, err)
	assert.Equal(t, "Bulbasaur", result.Pokemon)
	assert.Equal(t, "Ash", result.Trainer)

	// The catalog is queried with the canonical form, not the raw input.
	require.Len(t, cat.calls, 1)
	assert.Equal(t, "bulbasaur", cat.calls[0])

	p, err := store.GetPokemonByName(ctx, "bulbasaur")
	require.NoError(t, err)
	assert.Equal(t, "Bulbasaur", p.Name)
	require.NotNil(t, p.Type1ID)
	require.NotNil(t, p.Type2ID)

	abilities, err := store.AbilitiesByPokemon(ctx, "Bulbasaur")
	require.NoError(t, err)
	assert.Equal(t, []string{"Chlorophyll", "Overgrow"}, abilities)

	trainers, err := store.TrainersByPokemon(ctx, "Bulbasaur")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ash"}, trainers)

	links, err := store.CountLinksByPokemon(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, links)
}

func TestCreateTwiceIsConflict(t *testing.T) {
	store := setupStore(t)
	seedTrainers(t, store, "Ash")
	cat := &stubCatalog{rec: bulbasaurRecord()}
	creator := newCreator(store, cat, fixedPicker(0))
	ctx := context.Background()

	_, err := creator.Create(ctx, "bulbasaur")
	require.NoError(t, err)

	_, err = creator.Create(ctx, "BULBASAUR")
	assert.ErrorIs(t, err, types.ErrAlreadyExists)
	// The pre-check fires before the catalog is consulted again.
	assert.Len(t, cat.calls, 1)
}

func TestCreateBlankNameIsInvalid(t *testing.T) {
	store := setupStore(t)
	cat := &stubCatalog{rec: bulbasaurRecord()}
	creator := newCreator(store, cat, fixedPicker(0))

	for _, name := range []string{"", "   ", "\t"} {
		_, err := creator.Create(context.Background(), name)
		assert.ErrorIs(t, err, types.ErrInvalidName, "name %q", name)
	}
	assert.Empty(t, cat.calls)
}

func TestCreateCatalogErrorsPropagate(t *testing.T) {
	for _, catErr := range []error{types.ErrCatalogNotFound, types.ErrCatalogUnavailable} {
		store := setupStore(t)
		seedTrainers(t, store, "Ash")
		creator := newCreator(store, &stubCatalog{err: catErr}, fixedPicker(0))

		_, err := creator.Create(context.Background(), "mewtwo")
		assert.ErrorIs(t, err, catErr)

		_, err = store.GetPokemonByName(context.Background(), "mewtwo")
		assert.ErrorIs(t, err, types.ErrNotFound)
	}
}

func TestCreateWithoutTrainersRollsBack(t *testing.T) {
	store := setupStore(t)
	cat := &stubCatalog{rec: bulbasaurRecord()}
	creator := newCreator(store, cat, fixedPicker(0))
	ctx := context.Background()

	_, err := creator.Create(ctx, "bulbasaur")
	assert.ErrorIs(t, err, types.ErrNoTrainers)

	// Nothing from the aborted transaction may remain, including the type
	// and ability rows created before the trainer check.
	_, err = store.GetPokemonByName(ctx, "bulbasaur")
	assert.ErrorIs(t, err, types.ErrNotFound)
	for _, table := range []string{"types", "abilities", "trainer_pokemon_abilities"} {
		var n int
		require.NoError(t, store.DB().QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
		assert.Zero(t, n, "table %s not rolled back", table)
	}
}

func TestCreatePickerSelectsTrainer(t *testing.T) {
	store := setupStore(t)
	seedTrainers(t, store, "Ash", "Misty", "Brock")
	creator := newCreator(store, &stubCatalog{rec: bulbasaurRecord()}, fixedPicker(1))

	result, err := creator.Create(context.Background(), "bulbasaur")
	require.NoError(t, err)
	assert.Equal(t, "Misty", result.Trainer)
}

func TestCreateReusesExistingTypesAndAbilities(t *testing.T) {
	store := setupStore(t)
	seedTrainers(t, store, "Ash")
	ctx := context.Background()

	_, err := store.DB().ExecContext(ctx, "INSERT INTO types (name) VALUES ('Grass')")
	require.NoError(t, err)
	_, err = store.DB().ExecContext(ctx, "INSERT INTO abilities (name) VALUES ('Overgrow')")
	require.NoError(t, err)

	creator := newCreator(store, &stubCatalog{rec: bulbasaurRecord()}, fixedPicker(0))
	_, err = creator.Create(ctx, "bulbasaur")
	require.NoError(t, err)

	var n int
	require.NoError(t, store.DB().QueryRow(
		"SELECT COUNT(*) FROM types WHERE LOWER(TRIM(name)) = 'grass'").Scan(&n))
	assert.Equal(t, 1, n)
	require.NoError(t, store.DB().QueryRow(
		"SELECT COUNT(*) FROM abilities WHERE LOWER(TRIM(name)) = 'overgrow'").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestCreateNormalizesCatalogNames(t *testing.T) {
	store := setupStore(t)
	seedTrainers(t, store, "Ash")
	rec := &catalog.Record{
		Name:      "charzard",
		Types:     []string{"fire"},
		Abilities: []string{"run away"},
	}
	creator := newCreator(store, &stubCatalog{rec: rec}, fixedPicker(0))
	ctx := context.Background()

	result, err := creator.Create(ctx, "charzard")
	require.NoError(t, err)
	assert.Equal(t, "Charizard", result.Pokemon)

	abilities, err := store.AbilitiesByPokemon(ctx, "Charizard")
	require.NoError(t, err)
	assert.Equal(t, []string{"Run-away"}, abilities)
}
