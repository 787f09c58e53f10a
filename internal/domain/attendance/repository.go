package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	ExistsOnDate(ctx context.Context, employeeCode string, date time.Time) (bool, error)
	// ListInRange returns active attendances with check-in in [start, end).
	ListInRange(ctx context.Context, start, end time.Time) ([]Attendance, error)
	List(ctx context.Context, filter Filter) ([]Attendance, error)
	SoftDelete(ctx context.Context, id string) error
}

// Filter is the resolved form of AttendanceFilter.
type Filter struct {
	EmployeeCode *string
	From         *time.Time
	To           *time.Time
}
