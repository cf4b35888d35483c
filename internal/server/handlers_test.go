package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pokedex/internal/catalog"
	"github.com/mesh-intelligence/pokedex/internal/service"
	"github.com/mesh-intelligence/pokedex/internal/sqlite"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// stubCatalog serves a fixed record for any name, or a fixed error.
type stubCatalog struct {
	rec *catalog.Record
	err error
}

func (s *stubCatalog) Lookup(ctx context.Context, name string) (*catalog.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rec, nil
}

type fixedPicker int

func (p fixedPicker) IntN(n int) int { return int(p) % n }

func setupServer(t *testing.T, cat service.Catalog) (*Server, *sqlite.Store) {
	t.Helper()
	store, err := sqlite.Open(t.TempDir(), "pokedex.db")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)
	creator := service.NewCreator(store, cat, fixedPicker(0), log)
	return New(types.Config{ListenAddr: ":0"}, store, creator, log), store
}

func doRequest(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestStatusEndpoint(t *testing.T) {
	s, _ := setupServer(t, &stubCatalog{})

	rec := doRequest(t, s, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "Status: Ready")
}

func TestReadEndpoints(t *testing.T) {
	s, store := setupServer(t, &stubCatalog{})
	ctx := context.Background()

	exec := func(query string) {
		_, err := store.DB().ExecContext(ctx, query)
		require.NoError(t, err)
	}
	exec("INSERT INTO types (id, name) VALUES (1, 'Electric')")
	exec("INSERT INTO abilities (id, name) VALUES (1, 'Static')")
	exec("INSERT INTO trainers (id, name) VALUES (1, 'Ash')")
	exec("INSERT INTO pokemon (id, name, type1_id) VALUES (1, 'Pikachu', 1)")
	exec("INSERT INTO trainer_pokemon_abilities (pokemon_id, trainer_id, ability_id) VALUES (1, 1, 1)")

	tests := []struct {
		path string
		want []string
	}{
		{"/pokemon/ability/static", []string{"Pikachu"}},
		{"/pokemon/type/Electric", []string{"Pikachu"}},
		{"/trainers/pokemon/pikachu", []string{"Ash"}},
		{"/abilities/pokemon/Pikachu", []string{"Static"}},
	}
	for _, tt := range tests {
		rec := doRequest(t, s, http.MethodGet, tt.path)
		require.Equal(t, http.StatusOK, rec.Code, "GET %s", tt.path)
		var names []string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
		assert.Equal(t, tt.want, names, "GET %s", tt.path)
	}
}

func TestReadEndpointsUnknownEntityIs404(t *testing.T) {
	s, _ := setupServer(t, &stubCatalog{})

	for _, path := range []string{
		"/pokemon/ability/moxie",
		"/pokemon/type/dragon",
		"/trainers/pokemon/mewtwo",
		"/abilities/pokemon/mewtwo",
	} {
		rec := doRequest(t, s, http.MethodGet, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, "GET %s", path)
	}
}

func TestCreateEndpoint(t *testing.T) {
	cat := &stubCatalog{rec: &catalog.Record{
		Name:      "pikachu",
		Types:     []string{"electric"},
		Abilities: []string{"static"},
	}}
	s, store := setupServer(t, cat)
	_, err := store.InsertTrainer(context.Background(), "Ash")
	require.NoError(t, err)

	rec := doRequest(t, s, http.MethodPost, "/pokemon/create/pikachu")
	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var result types.CreationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Pikachu", result.Pokemon)
	assert.Equal(t, "Ash", result.Trainer)

	// A repeat is a conflict, not a second row.
	rec = doRequest(t, s, http.MethodPost, "/pokemon/create/PIKACHU")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateEndpointErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		catErr     error
		trainers   bool
		path       string
		wantStatus int
	}{
		{"blank name", nil, true, "/pokemon/create/%20%20", http.StatusBadRequest},
		{"unknown in catalog", types.ErrCatalogNotFound, true, "/pokemon/create/notapokemon", http.StatusNotFound},
		{"catalog down", types.ErrCatalogUnavailable, true, "/pokemon/create/pikachu", http.StatusServiceUnavailable},
		{"no trainers", nil, false, "/pokemon/create/pikachu", http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := &stubCatalog{
				rec: &catalog.Record{Name: "pikachu", Types: []string{"electric"}},
				err: tt.catErr,
			}
			s, store := setupServer(t, cat)
			if tt.trainers {
				_, err := store.InsertTrainer(context.Background(), "Ash")
				require.NoError(t, err)
			}

			rec := doRequest(t, s, http.MethodPost, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code, "body: %s", rec.Body.String())
		})
	}
}
