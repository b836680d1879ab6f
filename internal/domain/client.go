package domain

import "time"

// Client represents a customer of the facility.
type Client struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
}
