package absence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/absence"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/attendance"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/employee"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/timeutil"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/validator"
)

type AbsenceServiceImpl struct {
	absenceRepo    absence.AbsenceRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	loc            *time.Location
}

func NewAbsenceService(
	absenceRepo absence.AbsenceRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	loc *time.Location,
) absence.AbsenceService {
	return &AbsenceServiceImpl{
		absenceRepo:    absenceRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		loc:            loc,
	}
}

// CreateAbsence implements absence.AbsenceService.
func (s *AbsenceServiceImpl) CreateAbsence(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}
	date, _ := validator.IsValidDate(req.Date, s.loc)

	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	exists, err := s.absenceRepo.ExistsOnDate(ctx, emp.Code, date)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to check absence for day: %w", err)
	}
	if exists {
		return absence.AbsenceResponse{}, absence.ErrAbsenceExists
	}

	attended, err := s.attendanceRepo.ExistsOnDate(ctx, emp.Code, date)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to check attendance for day: %w", err)
	}
	if attended {
		return absence.AbsenceResponse{}, absence.ErrAttendanceSameDay
	}

	created, err := s.absenceRepo.Create(ctx, absence.Absence{
		EmployeeCode: emp.Code,
		Date:         date,
		IsJustified:  req.IsJustified,
		Reason:       req.Reason,
		IsPaid:       req.IsPaid,
	})
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	slog.InfoContext(ctx, "absence registered",
		"employee_code", created.EmployeeCode,
		"date", req.Date,
		"is_justified", created.IsJustified,
		"is_paid", created.IsPaid,
	)
	return s.response(created), nil
}

// ListAbsences implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListAbsences(ctx context.Context, filter absence.AbsenceFilter) ([]absence.AbsenceResponse, error) {
	from, to, err := validator.DateRange(filter.From, filter.To, s.loc)
	if err != nil {
		return nil, err
	}

	absences, err := s.absenceRepo.List(ctx, absence.Filter{
		EmployeeCode: filter.EmployeeCode,
		From:         from,
		To:           to,
	})
	if err != nil {
		return nil, err
	}

	result := make([]absence.AbsenceResponse, 0, len(absences))
	for _, a := range absences {
		result = append(result, s.response(a))
	}
	return result, nil
}

// DeleteAbsence implements absence.AbsenceService.
func (s *AbsenceServiceImpl) DeleteAbsence(ctx context.Context, id string) error {
	return s.absenceRepo.SoftDelete(ctx, id)
}

func (s *AbsenceServiceImpl) response(a absence.Absence) absence.AbsenceResponse {
	a.Date = timeutil.DateIn(a.Date, s.loc)
	return absence.NewAbsenceResponse(a)
}
