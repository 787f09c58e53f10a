package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

// Overtime is keyed by (EmployeeCode, StartTime); StartTime is the end of the scheduled shift.
type Overtime struct {
	ID           string
	EmployeeCode string
	StartTime    time.Time
	Hours        decimal.Decimal
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
