package domain

import "time"

// Coach represents a staff member who runs coached activities.
type Coach struct {
	ID        string
	Name      string
	Phone     string
	Specialty ActivityType
	Active    bool
	CreatedAt time.Time
}
