// Package handler exposes the HTTP handlers for the ticketing API.
// Every handler is stateless: it binds input, calls one or more stores
// through the generic data-access contract, and collapses any failure
// into the status code the route contract defines. This file covers
// the public catalog listings.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/grupyedi/cinema-webservice/internal/model"
	"github.com/grupyedi/cinema-webservice/internal/repository"
)

// dbTimeout bounds every store call issued from a handler.
const dbTimeout = 5 * time.Second

// BrowseHandler bundles the stores backing the catalog listings.
type BrowseHandler struct {
	Movies   repository.Store[model.Movie]
	Genres   repository.Store[model.Genre]
	Saloons  repository.Store[model.Saloon]
	Sessions repository.Store[model.MovieSession]
	Tickets  repository.Store[model.Ticket]
}

// NewBrowseHandler constructs a BrowseHandler with the provided stores.
func NewBrowseHandler(movies repository.Store[model.Movie], genres repository.Store[model.Genre], saloons repository.Store[model.Saloon], sessions repository.Store[model.MovieSession], tickets repository.Store[model.Ticket]) *BrowseHandler {
	return &BrowseHandler{Movies: movies, Genres: genres, Saloons: saloons, Sessions: sessions, Tickets: tickets}
}

// groupMoviesByGenre partitions movies into buckets keyed by genre
// name in a single pass, preserving input order inside each bucket.
// Two genres sharing a name land in the same bucket; the key is the
// name, not the genre id.
func groupMoviesByGenre(movies []model.Movie) map[string][]model.Movie {
	grouped := make(map[string][]model.Movie)
	for _, m := range movies {
		grouped[m.Genre.Name] = append(grouped[m.Genre.Name], m)
	}
	return grouped
}

// GetMovies handles GET /movies. The response maps each genre name to
// the movies in that genre.
func (h *BrowseHandler) GetMovies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	movies, err := h.Movies.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fetch movies failed"})
	}
	return c.JSON(http.StatusOK, groupMoviesByGenre(movies))
}

// GetMovieSessions handles GET /movie-sessions.
func (h *BrowseHandler) GetMovieSessions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	sessions, err := h.Sessions.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fetch sessions failed"})
	}
	return c.JSON(http.StatusOK, sessions)
}

// GetGenres handles GET /genres.
func (h *BrowseHandler) GetGenres(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	genres, err := h.Genres.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fetch genres failed"})
	}
	return c.JSON(http.StatusOK, genres)
}

// GetSaloons handles GET /saloons.
func (h *BrowseHandler) GetSaloons(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	saloons, err := h.Saloons.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fetch saloons failed"})
	}
	return c.JSON(http.StatusOK, saloons)
}

// GetTickets handles GET /tickets.
func (h *BrowseHandler) GetTickets(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	tickets, err := h.Tickets.GetAll(ctx)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fetch tickets failed"})
	}
	return c.JSON(http.StatusOK, tickets)
}
