package entity

import (
	"time"
)

// Patient is the aggregate root for the patient domain.
// The ID is assigned by the database on insert and never changes afterwards.
type Patient struct {
	ID             string
	Name           string
	Email          string
	Address        string
	DateOfBirth    time.Time
	RegisteredDate time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
