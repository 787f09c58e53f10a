package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	SoftDelete(ctx context.Context, id string) error
	// ListActive returns active employees with status ACTIVE ordered by code.
	ListActive(ctx context.Context) ([]Employee, error)
}
