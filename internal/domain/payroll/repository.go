package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	GetByID(ctx context.Context, id string) (Payroll, error)
	// GetActiveByStartDate locks the row when ctx carries a transaction.
	GetActiveByStartDate(ctx context.Context, startDate time.Time) (Payroll, error)
	Create(ctx context.Context, p Payroll) (Payroll, error)
	// UpdateRun overwrites the lines, name and cutoff of an existing payroll.
	UpdateRun(ctx context.Context, p Payroll) (Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]Summary, int64, error)
	SoftDelete(ctx context.Context, id string) error
}
