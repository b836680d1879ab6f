package domain

import "time"

// FacilityKind categorizes a physical facility.
type FacilityKind string

const (
	FacilityKindPool  FacilityKind = "POOL"
	FacilityKindField FacilityKind = "FIELD"
	FacilityKindCourt FacilityKind = "COURT"
)

// Facility represents a bookable physical facility.
type Facility struct {
	ID        string
	Name      string
	Kind      FacilityKind
	Capacity  int
	Active    bool
	CreatedAt time.Time
}
