// Package queue defines message payloads exchanged over the message
// broker and the background consumer that drains them.
package queue

// TicketPurchasedEvent is published after a purchase is persisted. It
// carries enough for downstream consumers to log or notify without
// querying the primary database.
type TicketPurchasedEvent struct {
	PurchaseID  uint64 `json:"purchase_id"`
	TicketID    uint64 `json:"ticket_id"`
	UserID      uint64 `json:"user_id"`
	SessionID   uint64 `json:"session_id"`
	PriceCents  uint32 `json:"price_cents"`
	PurchasedAt string `json:"purchased_at"`
}
