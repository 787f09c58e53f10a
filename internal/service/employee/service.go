package employee

import (
	"context"
	"log/slog"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Code:           req.Code,
		Name:           req.Name,
		LastName:       req.LastName,
		SecondLastName: req.SecondLastName,
		JobName:        req.JobName,
		DepartmentName: req.DepartmentName,
		DailySalary:    req.DailySalary,
		JobScheme:      req.JobScheme,
		Schedule:       req.Schedule,
		Status:         employee.StatusActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.InfoContext(ctx, "employee created", "employee_id", created.ID, "code", created.Code)
	return employee.NewEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, employee.NewEmployeeResponse(emp))
	}
	return result, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.SecondLastName != nil {
		emp.SecondLastName = *req.SecondLastName
	}
	if req.JobName != nil {
		emp.JobName = *req.JobName
	}
	if req.DepartmentName != nil {
		emp.DepartmentName = *req.DepartmentName
	}
	if req.DailySalary != nil {
		emp.DailySalary = *req.DailySalary
	}
	if req.JobScheme != nil {
		emp.JobScheme = *req.JobScheme
	}
	if req.Schedule != nil {
		emp.Schedule = req.Schedule
	}
	if req.Status != nil {
		emp.Status = *req.Status
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "employee deleted", "employee_id", id)
	return nil
}
