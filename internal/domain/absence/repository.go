package absence

import (
	"context"
	"time"
)

type AbsenceRepository interface {
	Create(ctx context.Context, a Absence) (Absence, error)
	ExistsOnDate(ctx context.Context, employeeCode string, date time.Time) (bool, error)
	// ListUnjustifiedInRange and ListPaidInRange return active absences dated in [start, end).
	ListUnjustifiedInRange(ctx context.Context, start, end time.Time) ([]Absence, error)
	ListPaidInRange(ctx context.Context, start, end time.Time) ([]Absence, error)
	List(ctx context.Context, filter Filter) ([]Absence, error)
	SoftDelete(ctx context.Context, id string) error
}

type Filter struct {
	EmployeeCode *string
	From         *time.Time
	To           *time.Time
}
