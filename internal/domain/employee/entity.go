package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        string
	FullName  string
	Phone     *string
	Email     *string
	Position  *string
	WageRate  decimal.Decimal
	StartDate time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	UserID   *string
	Username *string
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}
