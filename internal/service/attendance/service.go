package attendance

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

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	absenceRepo    absence.AbsenceRepository
	loc            *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	absenceRepo absence.AbsenceRepository,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		absenceRepo:    absenceRepo,
		loc:            loc,
	}
}

// CreateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	checkIn, _ := validator.IsValidDateTime(req.CheckInTime, s.loc)
	checkInDate := timeutil.StartOfDay(checkIn, s.loc)

	emp, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	exists, err := s.attendanceRepo.ExistsOnDate(ctx, emp.Code, checkInDate)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check attendance for day: %w", err)
	}
	if exists {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	absent, err := s.absenceRepo.ExistsOnDate(ctx, emp.Code, checkInDate)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check absence for day: %w", err)
	}
	if absent {
		return attendance.AttendanceResponse{}, attendance.ErrAbsenceSameDay
	}

	isLate := lateForSchedule(emp.Schedule, checkIn, s.loc)
	if req.IsLate != nil {
		isLate = *req.IsLate
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeCode: emp.Code,
		CheckInTime:  checkIn,
		CheckInDate:  checkInDate,
		IsLate:       isLate,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slog.InfoContext(ctx, "attendance registered",
		"employee_code", created.EmployeeCode,
		"check_in_date", checkInDate.Format(timeutil.DateLayout),
		"is_late", created.IsLate,
	)
	return s.response(created), nil
}

// lateForSchedule reports whether checkIn is after the start of the scheduled shift.
// Check-ins on rest days or without a schedule are never late.
func lateForSchedule(schedule employee.Schedule, checkIn time.Time, loc *time.Location) bool {
	local := checkIn.In(loc)
	shift := schedule.ShiftFor(local.Weekday())
	if shift == nil {
		return false
	}
	start, err := time.ParseInLocation("15:04", shift.Start, loc)
	if err != nil {
		return false
	}
	shiftStart := time.Date(local.Year(), local.Month(), local.Day(), start.Hour(), start.Minute(), 0, 0, loc)
	return local.After(shiftStart)
}

// ListAttendances implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendances(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	from, to, err := validator.DateRange(filter.From, filter.To, s.loc)
	if err != nil {
		return nil, err
	}

	attendances, err := s.attendanceRepo.List(ctx, attendance.Filter{
		EmployeeCode: filter.EmployeeCode,
		From:         from,
		To:           to,
	})
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, a := range attendances {
		result = append(result, s.response(a))
	}
	return result, nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	return s.attendanceRepo.SoftDelete(ctx, id)
}

func (s *AttendanceServiceImpl) response(a attendance.Attendance) attendance.AttendanceResponse {
	a.CheckInTime = a.CheckInTime.In(s.loc)
	a.CheckInDate = timeutil.DateIn(a.CheckInDate, s.loc)
	return attendance.NewAttendanceResponse(a)
}
