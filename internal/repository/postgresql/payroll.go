package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/payroll"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `id, name, start_date, cutoff_date, lines, active, created_at, updated_at`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(&p.ID, &p.Name, &p.StartDate, &p.CutoffDate, &p.Lines, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func marshalLines(lines []payroll.Line) ([]byte, error) {
	if lines == nil {
		lines = []payroll.Line{}
	}
	return json.Marshal(lines)
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPayroll(q.QueryRow(ctx, `SELECT `+payrollColumns+` FROM payrolls WHERE id = $1 AND active`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll %s: %w", id, err)
	}
	return p, nil
}

// GetActiveByStartDate implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetActiveByStartDate(ctx context.Context, startDate time.Time) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls WHERE start_date = $1 AND active FOR UPDATE`

	p, err := scanPayroll(q.QueryRow(ctx, query, startDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll for %s: %w", startDate.Format("2006-01-02"), err)
	}
	return p, nil
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	lines, err := marshalLines(p.Lines)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to encode payroll lines: %w", err)
	}

	query := `
		INSERT INTO payrolls (id, name, start_date, cutoff_date, lines)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + payrollColumns

	created, err := scanPayroll(q.QueryRow(ctx, query, p.ID, p.Name, p.StartDate, p.CutoffDate, lines))
	if err != nil {
		if isUniqueViolation(err) {
			return payroll.Payroll{}, payroll.ErrPayrollExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}
	return created, nil
}

// UpdateRun implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateRun(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	lines, err := marshalLines(p.Lines)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to encode payroll lines: %w", err)
	}

	query := `
		UPDATE payrolls SET name = $2, cutoff_date = $3, lines = $4, updated_at = NOW()
		WHERE id = $1 AND active
		RETURNING ` + payrollColumns

	updated, err := scanPayroll(q.QueryRow(ctx, query, p.ID, p.Name, p.CutoffDate, lines))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to update payroll %s: %w", p.ID, err)
	}
	return updated, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Summary, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payrolls WHERE active`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	query := `
		SELECT id, name, start_date, cutoff_date, jsonb_array_length(lines),
			COALESCE((SELECT SUM((l->>'netPay')::numeric) FROM jsonb_array_elements(lines) l), 0),
			created_at, updated_at
		FROM payrolls
		WHERE active
		ORDER BY start_date DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, filter.Limit, (filter.Page-1)*filter.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var result []payroll.Summary
	for rows.Next() {
		var s payroll.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.StartDate, &s.CutoffDate, &s.EmployeeCount, &s.TotalNetPay, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// SoftDelete implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE payrolls SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}
