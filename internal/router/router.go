// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/grupyedi/cinema-webservice/internal/handler"
)

// RegisterRoutes registers the full API surface on the provided Echo
// instance. The browse middleware (response cache) applies only to the
// GET catalog listings; mutating routes and user lookups always hit
// the store.
func RegisterRoutes(e *echo.Echo, b *handler.BrowseHandler, u *handler.UserHandler, p *handler.PurchaseHandler, browseMW ...echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	browse := e.Group("", browseMW...)
	browse.GET("/movies", b.GetMovies)
	browse.GET("/movie-sessions", b.GetMovieSessions)
	browse.GET("/genres", b.GetGenres)
	browse.GET("/saloons", b.GetSaloons)
	browse.GET("/tickets", b.GetTickets)

	e.POST("/users/register", u.Register)
	e.POST("/users/login", u.Login)
	e.GET("/users/:id", u.GetUser)
	e.GET("/users/:id/purchases", u.GetPurchaseHistory)

	e.POST("/tickets/purchase", p.PurchaseTicket)
}
