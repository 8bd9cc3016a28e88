package model

// Movie represents a film that can be screened in one or more sessions.
// Each movie belongs to exactly one genre; the repository resolves the
// genre row when reading so handlers never chase the foreign key
// themselves.
//
// Fields:
//  ID    – primary key identifier.
//  Title – movie title.
//  Genre – the owning genre (movies.genre_id, resolved by join).
type Movie struct {
	ID    uint64 `json:"id"`    // movies.id
	Title string `json:"title"` // movies.title
	Genre Genre  `json:"genre"` // movies.genre_id -> genres row
}
