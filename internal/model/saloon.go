package model

// Saloon is a screening hall.  Sessions reference the saloon they play
// in.  Corresponds to a row in the `saloons` table.
type Saloon struct {
	ID       uint64 `json:"id"`        // saloons.id
	Name     string `json:"name"`      // saloons.name
	SeatRows uint32 `json:"seat_rows"` // saloons.seat_rows
	SeatCols uint32 `json:"seat_cols"` // saloons.seat_cols
}
