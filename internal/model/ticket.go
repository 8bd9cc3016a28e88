package model

// Ticket describes a purchasable seat/slot.  Nothing prevents the same
// ticket from being sold more than once; there is no availability or
// capacity check anywhere in the purchase flow.
type Ticket struct {
	ID         uint64 `json:"id"`          // tickets.id
	RowLabel   string `json:"row_label"`   // tickets.row_label
	SeatNumber uint32 `json:"seat_number"` // tickets.seat_number
	PriceCents uint32 `json:"price_cents"` // tickets.price_cents
}
