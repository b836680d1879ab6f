package domain

import "time"

// Player represents a participant registered under a client,
// e.g. a child enrolled in the swimming school.
type Player struct {
	ID        string
	ClientID  string
	Name      string
	BirthDate time.Time
	CreatedAt time.Time
}
