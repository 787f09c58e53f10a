package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type JobScheme string

const (
	SchemeFiveDays JobScheme = "5"
	SchemeSixDays  JobScheme = "6"
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Shift is a scheduled working window, "HH:MM" local time.
type Shift struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Schedule maps lowercase weekday names to a shift; a nil shift is a rest day.
type Schedule map[string]*Shift

// ShiftFor returns the shift for weekday, or nil on rest days.
func (s Schedule) ShiftFor(weekday time.Weekday) *Shift {
	if s == nil {
		return nil
	}
	return s[strings.ToLower(weekday.String())]
}

type Employee struct {
	ID             string
	Code           string
	Name           string
	LastName       string
	SecondLastName string
	JobName        string
	DepartmentName string
	DailySalary    decimal.Decimal
	JobScheme      JobScheme
	Schedule       Schedule
	Status         Status
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (e Employee) FullName() string {
	parts := []string{e.Name}
	for _, p := range []string{e.LastName, e.SecondLastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
