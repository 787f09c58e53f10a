package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/absence"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

const absenceColumns = `id, employee_code, date, is_justified, reason, is_paid, active, created_at, updated_at`

func scanAbsence(row pgx.Row) (absence.Absence, error) {
	var a absence.Absence
	err := row.Scan(&a.ID, &a.EmployeeCode, &a.Date, &a.IsJustified, &a.Reason, &a.IsPaid, &a.Active, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *absenceRepositoryImpl) queryAbsences(ctx context.Context, query string, args ...any) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query absences: %w", err)
	}
	defer rows.Close()

	var result []absence.Absence
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// Create implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absences (id, employee_code, date, is_justified, reason, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + absenceColumns

	created, err := scanAbsence(q.QueryRow(ctx, query, newID(), a.EmployeeCode, a.Date, a.IsJustified, a.Reason, a.IsPaid))
	if err != nil {
		if isUniqueViolation(err) {
			return absence.Absence{}, absence.ErrAbsenceExists
		}
		return absence.Absence{}, fmt.Errorf("failed to create absence: %w", err)
	}
	return created, nil
}

// ExistsOnDate implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) ExistsOnDate(ctx context.Context, employeeCode string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM absences WHERE employee_code = $1 AND date = $2 AND active)`,
		employeeCode, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check absence: %w", err)
	}
	return exists, nil
}

// ListUnjustifiedInRange implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) ListUnjustifiedInRange(ctx context.Context, start, end time.Time) ([]absence.Absence, error) {
	query := `SELECT ` + absenceColumns + ` FROM absences
		WHERE active AND NOT is_justified AND date >= $1 AND date < $2
		ORDER BY employee_code, date`
	return r.queryAbsences(ctx, query, start, end)
}

// ListPaidInRange implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) ListPaidInRange(ctx context.Context, start, end time.Time) ([]absence.Absence, error) {
	query := `SELECT ` + absenceColumns + ` FROM absences
		WHERE active AND is_paid AND date >= $1 AND date < $2
		ORDER BY employee_code, date`
	return r.queryAbsences(ctx, query, start, end)
}

// List implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) List(ctx context.Context, filter absence.Filter) ([]absence.Absence, error) {
	w := newWhere("active")
	addIf(w, "employee_code = %s", filter.EmployeeCode)
	addIf(w, "date >= %s", filter.From)
	addIf(w, "date <= %s", filter.To)

	query := `SELECT ` + absenceColumns + ` FROM absences` + w.sql() + ` ORDER BY date DESC, employee_code`
	return r.queryAbsences(ctx, query, w.args...)
}

// SoftDelete implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE absences SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("failed to delete absence %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}
