package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/overtime"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overtimeRepositoryImpl struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepositoryImpl{db: db}
}

const overtimeColumns = `id, employee_code, start_time, hours, active, created_at, updated_at`

func scanOvertime(row pgx.Row) (overtime.Overtime, error) {
	var o overtime.Overtime
	err := row.Scan(&o.ID, &o.EmployeeCode, &o.StartTime, &o.Hours, &o.Active, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func (r *overtimeRepositoryImpl) queryOvertimes(ctx context.Context, query string, args ...any) ([]overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtimes: %w", err)
	}
	defer rows.Close()

	var result []overtime.Overtime
	for rows.Next() {
		o, err := scanOvertime(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) Create(ctx context.Context, o overtime.Overtime) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtimes (id, employee_code, start_time, hours)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + overtimeColumns

	created, err := scanOvertime(q.QueryRow(ctx, query, newID(), o.EmployeeCode, o.StartTime, o.Hours))
	if err != nil {
		if isUniqueViolation(err) {
			return overtime.Overtime{}, overtime.ErrOvertimeExists
		}
		return overtime.Overtime{}, fmt.Errorf("failed to create overtime: %w", err)
	}
	return created, nil
}

// Exists implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) Exists(ctx context.Context, employeeCode string, startTime time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM overtimes WHERE employee_code = $1 AND start_time = $2 AND active)`,
		employeeCode, startTime,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check overtime: %w", err)
	}
	return exists, nil
}

// ListInRange implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) ListInRange(ctx context.Context, start, end time.Time) ([]overtime.Overtime, error) {
	query := `SELECT ` + overtimeColumns + ` FROM overtimes
		WHERE active AND start_time >= $1 AND start_time < $2
		ORDER BY employee_code, start_time`
	return r.queryOvertimes(ctx, query, start, end)
}

// List implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) List(ctx context.Context, filter overtime.Filter) ([]overtime.Overtime, error) {
	w := newWhere("active")
	addIf(w, "employee_code = %s", filter.EmployeeCode)
	addIf(w, "start_time >= %s", filter.From)
	addIf(w, "start_time < %s", filter.To)

	query := `SELECT ` + overtimeColumns + ` FROM overtimes` + w.sql() + ` ORDER BY start_time DESC, employee_code`
	return r.queryOvertimes(ctx, query, w.args...)
}

// SoftDelete implements overtime.OvertimeRepository.
func (r *overtimeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE overtimes SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("failed to delete overtime %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}
	return nil
}
