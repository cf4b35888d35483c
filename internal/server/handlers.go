package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.handleStatus)
	s.engine.GET("/pokemon/ability/:name", s.handlePokemonByAbility)
	s.engine.GET("/pokemon/type/:name", s.handlePokemonByType)
	s.engine.GET("/trainers/pokemon/:name", s.handleTrainersByPokemon)
	s.engine.GET("/abilities/pokemon/:name", s.handleAbilitiesByPokemon)
	s.engine.POST("/pokemon/create/:name", s.handleCreate)
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Status: Ready. The time is %s", time.Now().Format("2006-01-02 15:04:05 MST")),
	})
}

func (s *Server) handlePokemonByAbility(c *gin.Context) {
	names, err := s.store.PokemonByAbility(c.Request.Context(), c.Param("name"))
	s.respondNames(c, "ability", names, err)
}

func (s *Server) handlePokemonByType(c *gin.Context) {
	names, err := s.store.PokemonByType(c.Request.Context(), c.Param("name"))
	s.respondNames(c, "type", names, err)
}

func (s *Server) handleTrainersByPokemon(c *gin.Context) {
	names, err := s.store.TrainersByPokemon(c.Request.Context(), c.Param("name"))
	s.respondNames(c, "pokemon", names, err)
}

func (s *Server) handleAbilitiesByPokemon(c *gin.Context) {
	names, err := s.store.AbilitiesByPokemon(c.Request.Context(), c.Param("name"))
	s.respondNames(c, "pokemon", names, err)
}

// respondNames writes a name-list result. An unknown entity is 404; a known
// entity with no relations is an empty 200 list, not an error.
func (s *Server) respondNames(c *gin.Context, kind string, names []string, err error) {
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("%s %q not found", kind, c.Param("name"))})
			return
		}
		s.log.WithError(err).Error("query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	c.JSON(http.StatusOK, names)
}

func (s *Server) handleCreate(c *gin.Context) {
	result, err := s.creator.Create(c.Request.Context(), c.Param("name"))
	if err != nil {
		status, detail := creationStatus(err, c.Param("name"))
		if status == http.StatusInternalServerError {
			s.log.WithError(err).Error("creation failed")
		}
		c.JSON(status, gin.H{"detail": detail})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// creationStatus maps the creation error taxonomy onto HTTP status codes.
func creationStatus(err error, name string) (int, string) {
	switch {
	case errors.Is(err, types.ErrInvalidName):
		return http.StatusBadRequest, "pokemon name must not be empty"
	case errors.Is(err, types.ErrAlreadyExists):
		return http.StatusConflict, fmt.Sprintf("pokemon %q already exists", name)
	case errors.Is(err, types.ErrCatalogNotFound):
		return http.StatusNotFound, fmt.Sprintf("pokemon %q not found in catalog", name)
	case errors.Is(err, types.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, "catalog is unreachable, retry later"
	case errors.Is(err, types.ErrNoTrainers):
		return http.StatusServiceUnavailable, "no trainers available, seed trainer data"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
