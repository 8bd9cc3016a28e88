package model

import "time"

// MovieSession is a scheduled screening of a movie in a saloon.
// Corresponds to a row in the `movie_sessions` table.
//
// Fields:
//  ID       – primary key identifier.
//  MovieID  – movie being screened.
//  SaloonID – saloon the session takes place in.
//  StartsAt – scheduled start time (stored UTC).
type MovieSession struct {
	ID       uint64    `json:"id"`        // movie_sessions.id
	MovieID  uint64    `json:"movie_id"`  // movie_sessions.movie_id
	SaloonID uint64    `json:"saloon_id"` // movie_sessions.saloon_id
	StartsAt time.Time `json:"starts_at"` // movie_sessions.starts_at
}
