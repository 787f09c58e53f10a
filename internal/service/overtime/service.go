package overtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/employee"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/overtime"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/validator"
)

type OvertimeServiceImpl struct {
	overtimeRepo overtime.OvertimeRepository
	employeeRepo employee.EmployeeRepository
	loc          *time.Location
}

func NewOvertimeService(overtimeRepo overtime.OvertimeRepository, employeeRepo employee.EmployeeRepository, loc *time.Location) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		overtimeRepo: overtimeRepo,
		employeeRepo: employeeRepo,
		loc:          loc,
	}
}

// CreateOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) CreateOvertime(ctx context.Context, req overtime.CreateOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}
	startTime, _ := validator.IsValidDateTime(req.StartTime, s.loc)

	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	exists, err := s.overtimeRepo.Exists(ctx, emp.Code, startTime)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to check overtime: %w", err)
	}
	if exists {
		return overtime.OvertimeResponse{}, overtime.ErrOvertimeExists
	}

	created, err := s.overtimeRepo.Create(ctx, overtime.Overtime{
		EmployeeCode: emp.Code,
		StartTime:    startTime,
		Hours:        req.Hours,
	})
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	slog.InfoContext(ctx, "overtime registered", "employee_code", created.EmployeeCode, "hours", created.Hours.String())
	return s.response(created), nil
}

// ListOvertimes implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListOvertimes(ctx context.Context, filter overtime.OvertimeFilter) ([]overtime.OvertimeResponse, error) {
	from, to, err := validator.DateRange(filter.From, filter.To, s.loc)
	if err != nil {
		return nil, err
	}
	// start_time is a timestamp; the repository bound is exclusive.
	if to != nil {
		next := to.AddDate(0, 0, 1)
		to = &next
	}

	overtimes, err := s.overtimeRepo.List(ctx, overtime.Filter{
		EmployeeCode: filter.EmployeeCode,
		From:         from,
		To:           to,
	})
	if err != nil {
		return nil, err
	}

	result := make([]overtime.OvertimeResponse, 0, len(overtimes))
	for _, o := range overtimes {
		result = append(result, s.response(o))
	}
	return result, nil
}

// DeleteOvertime implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) DeleteOvertime(ctx context.Context, id string) error {
	return s.overtimeRepo.SoftDelete(ctx, id)
}

func (s *OvertimeServiceImpl) response(o overtime.Overtime) overtime.OvertimeResponse {
	o.StartTime = o.StartTime.In(s.loc)
	return overtime.NewOvertimeResponse(o)
}
