package overtime

import (
	"context"
	"time"
)

type OvertimeRepository interface {
	Create(ctx context.Context, o Overtime) (Overtime, error)
	Exists(ctx context.Context, employeeCode string, startTime time.Time) (bool, error)
	// ListInRange returns active overtime records starting in [start, end).
	ListInRange(ctx context.Context, start, end time.Time) ([]Overtime, error)
	List(ctx context.Context, filter Filter) ([]Overtime, error)
	SoftDelete(ctx context.Context, id string) error
}

type Filter struct {
	EmployeeCode *string
	From         *time.Time
	To           *time.Time
}
