package model

// Genre is a movie category used as the grouping key for the public
// movie listing.  Corresponds to a row in the `genres` table.
//
// Fields:
//  ID   – primary key identifier.
//  Name – genre name (e.g. "Drama").  Not unique at the DB level, so
//         two genres may carry the same name; the listing merges them
//         into one bucket.
type Genre struct {
	ID   uint64 `json:"id"`   // genres.id
	Name string `json:"name"` // genres.name
}
