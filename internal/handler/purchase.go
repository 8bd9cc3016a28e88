package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/grupyedi/cinema-webservice/internal/model"
	"github.com/grupyedi/cinema-webservice/internal/queue"
	"github.com/grupyedi/cinema-webservice/internal/repository"
)

// PurchasePublisher emits a purchase event after a successful sale.
// Publishing is fire-and-forget: errors are logged by the publisher
// and never surfaced to the client.
type PurchasePublisher func(ctx context.Context, ev queue.TicketPurchasedEvent) error

// PurchaseHandler bundles the stores involved in the purchase flow.
type PurchaseHandler struct {
	Tickets   repository.Store[model.Ticket]
	Users     repository.Store[model.User]
	Sessions  repository.Store[model.MovieSession]
	Purchases repository.Store[model.Purchase]
	Publish   PurchasePublisher // optional
}

// NewPurchaseHandler constructs a PurchaseHandler with the provided
// stores and an optional event publisher.
func NewPurchaseHandler(tickets repository.Store[model.Ticket], users repository.Store[model.User], sessions repository.Store[model.MovieSession], purchases repository.Store[model.Purchase], publish PurchasePublisher) *PurchaseHandler {
	return &PurchaseHandler{Tickets: tickets, Users: users, Sessions: sessions, Purchases: purchases, Publish: publish}
}

type purchaseReq struct {
	TicketID       uint64 `json:"ticketId"`
	UserID         uint64 `json:"userId"`
	MovieSessionID uint64 `json:"movieSessionId"`
}

// PurchaseTicket handles POST /tickets/purchase. A malformed body
// (bad JSON, wrong types, missing ids) is 403. All three references
// must resolve to existing rows or the request fails with 400 and
// nothing is persisted; retrying the same bad input fails the same
// way. There is no availability check: the same ticket and session
// can be sold any number of times, including concurrently.
func (h *PurchaseHandler) PurchaseTicket(c echo.Context) error {
	var req purchaseReq
	if err := c.Bind(&req); err != nil {
		log.Printf("purchase: bad request body: %v", err)
		return c.JSON(http.StatusForbidden, echo.Map{"error": "invalid body"})
	}
	if req.TicketID == 0 || req.UserID == 0 || req.MovieSessionID == 0 {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "ticketId, userId and movieSessionId are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	ticket, err := h.Tickets.Get(ctx, req.TicketID)
	if err != nil {
		return purchaseLookupErr(c, err, "ticket")
	}
	user, err := h.Users.Get(ctx, req.UserID)
	if err != nil {
		return purchaseLookupErr(c, err, "user")
	}
	session, err := h.Sessions.Get(ctx, req.MovieSessionID)
	if err != nil {
		return purchaseLookupErr(c, err, "session")
	}

	p := model.Purchase{Ticket: *ticket, User: *user, Session: *session}
	if err := h.Purchases.Save(ctx, &p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "save purchase failed"})
	}

	if h.Publish != nil {
		ev := queue.TicketPurchasedEvent{
			PurchaseID:  p.ID,
			TicketID:    ticket.ID,
			UserID:      user.ID,
			SessionID:   session.ID,
			PriceCents:  ticket.PriceCents,
			PurchasedAt: time.Now().UTC().Format(time.RFC3339),
		}
		_ = h.Publish(context.Background(), ev)
	}

	return c.JSON(http.StatusOK, p)
}

// purchaseLookupErr maps a reference lookup failure onto the purchase
// route's single failure code. Missing rows and store errors both
// answer 400; the message names the reference that failed.
func purchaseLookupErr(c echo.Context, err error, what string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": what + " not found"})
	}
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "fetch " + what + " failed"})
}
