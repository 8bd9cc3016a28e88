package model

// Purchase records a completed ticket sale.  It links one ticket, one
// user and one movie session.  Referential existence is checked by the
// handler before saving (lookups, not a transaction), so a purchase
// row always pointed at live rows at creation time.
//
// Fields:
//  ID      – primary key identifier.
//  Ticket  – the ticket that was sold (purchases.ticket_id, resolved).
//  User    – the buyer (purchases.user_id, resolved).
//  Session – the session the ticket is for (purchases.movie_session_id,
//            resolved).  The original schema named this column for the
//            movie even though it holds a session reference.
type Purchase struct {
	ID      uint64       `json:"id"`      // purchases.id
	Ticket  Ticket       `json:"ticket"`  // purchases.ticket_id -> tickets row
	User    User         `json:"user"`    // purchases.user_id -> users row
	Session MovieSession `json:"session"` // purchases.movie_session_id -> movie_sessions row
}
