package model

// User represents an application user as stored in the `users` table.
// The GSM (phone) number is the login key.  No uniqueness is enforced
// on it, so duplicate users with the same gsm are possible; login
// resolves on the first match.
//
// The password is stored and compared as plain text.  That is the
// documented contract of this service, not an accident; it is excluded
// from JSON so reads of a user never echo it back.
//
// Fields:
//  ID        – primary key identifier.
//  Gsm       – phone number used as the login key.
//  Email     – contact email address.
//  Password  – plain-text password (never serialized).
//  FirstName – given name.
//  LastName  – family name.
//  Age       – age in years.
type User struct {
	ID        uint64 `json:"id"`         // users.id
	Gsm       string `json:"gsm"`        // users.gsm
	Email     string `json:"email"`      // users.email
	Password  string `json:"-"`          // users.password (plain text)
	FirstName string `json:"first_name"` // users.first_name
	LastName  string `json:"last_name"`  // users.last_name
	Age       int    `json:"age"`        // users.age
}
