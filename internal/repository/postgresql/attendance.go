package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/attendance"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_code, check_in_time, check_in_date, is_late, active, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(&a.ID, &a.EmployeeCode, &a.CheckInTime, &a.CheckInDate, &a.IsLate, &a.Active, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *attendanceRepositoryImpl) queryAttendances(ctx context.Context, query string, args ...any) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_code, check_in_time, check_in_date, is_late)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query, newID(), a.EmployeeCode, a.CheckInTime, a.CheckInDate, a.IsLate))
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx, `SELECT `+attendanceColumns+` FROM attendances WHERE id = $1 AND active`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance %s: %w", id, err)
	}
	return a, nil
}

// ExistsOnDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ExistsOnDate(ctx context.Context, employeeCode string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendances WHERE employee_code = $1 AND check_in_date = $2 AND active)`,
		employeeCode, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check attendance: %w", err)
	}
	return exists, nil
}

// ListInRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListInRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances
		WHERE active AND check_in_time >= $1 AND check_in_time < $2
		ORDER BY employee_code, check_in_time`
	return r.queryAttendances(ctx, query, start, end)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	w := newWhere("active")
	addIf(w, "employee_code = %s", filter.EmployeeCode)
	addIf(w, "check_in_date >= %s", filter.From)
	addIf(w, "check_in_date <= %s", filter.To)

	query := `SELECT ` + attendanceColumns + ` FROM attendances` + w.sql() + ` ORDER BY check_in_time DESC, employee_code`
	return r.queryAttendances(ctx, query, w.args...)
}

// SoftDelete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE attendances SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
