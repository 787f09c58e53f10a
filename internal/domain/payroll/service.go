package payroll

import "context"

type PayrollService interface {
	// Execute runs the weekly payroll. Commit mode persists on the transaction carried by ctx
	// and never commits or rolls it back.
	Execute(ctx context.Context, req ExecutePayrollRequest) (PayrollResponse, error)
	GetPayroll(ctx context.Context, id string) (PayrollResponse, error)
	ListPayrolls(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)
	DeletePayroll(ctx context.Context, id string) error
	Export(ctx context.Context, id string) (ExportFile, error)
	// CloseLastWeek commits the most recent closed week when it has no payroll yet.
	// It reports whether a payroll was created.
	CloseLastWeek(ctx context.Context) (bool, error)
}
