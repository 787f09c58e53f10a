package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/shed"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shedRepositoryImpl struct {
	db *database.DB
}

func NewShedRepository(db *database.DB) shed.ShedRepository {
	return &shedRepositoryImpl{db: db}
}

const shedColumns = `id, farm_id, shed_number, name, description, status, initial_chicken, mortality,
	food_consumed, water_consumed, egg_production, age_weeks, generation_id, active, created_at, updated_at`

func scanShed(row pgx.Row) (shed.Shed, error) {
	var s shed.Shed
	err := row.Scan(
		&s.ID, &s.FarmID, &s.ShedNumber, &s.Name, &s.Description, &s.Status, &s.InitialChicken, &s.Mortality,
		&s.FoodConsumed, &s.WaterConsumed, &s.EggProduction, &s.AgeWeeks, &s.GenerationID, &s.Active,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements shed.ShedRepository. Inside a transaction the insert runs under a savepoint
// so a number collision leaves the outer transaction usable for the next attempt.
func (r *shedRepositoryImpl) Create(ctx context.Context, s shed.Shed) (shed.Shed, error) {
	query := `
		INSERT INTO sheds (id, farm_id, shed_number, name, description, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + shedColumns
	args := []any{newID(), s.FarmID, s.ShedNumber, s.Name, s.Description, s.Status}

	var (
		created shed.Shed
		err     error
	)
	if tx, ok := database.TxFromContext(ctx); ok {
		var sp pgx.Tx
		sp, err = tx.Begin(ctx)
		if err != nil {
			return shed.Shed{}, fmt.Errorf("failed to open savepoint: %w", err)
		}
		created, err = scanShed(sp.QueryRow(ctx, query, args...))
		if err != nil {
			_ = sp.Rollback(ctx)
		} else if err = sp.Commit(ctx); err != nil {
			return shed.Shed{}, fmt.Errorf("failed to release savepoint: %w", err)
		}
	} else {
		created, err = scanShed(r.db.Pool.QueryRow(ctx, query, args...))
	}

	if err != nil {
		if isUniqueViolation(err) {
			return shed.Shed{}, shed.ErrShedNumberTaken
		}
		return shed.Shed{}, fmt.Errorf("failed to create shed: %w", err)
	}
	return created, nil
}

// NextShedNumber implements shed.ShedRepository.
func (r *shedRepositoryImpl) NextShedNumber(ctx context.Context, farmID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, `SELECT COALESCE(MAX(shed_number), 0) + 1 FROM sheds WHERE farm_id = $1`, farmID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to compute next shed number: %w", err)
	}
	return n, nil
}

// GetByID implements shed.ShedRepository.
func (r *shedRepositoryImpl) GetByID(ctx context.Context, id string) (shed.Shed, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shedColumns + ` FROM sheds WHERE id = $1 AND active`
	if _, ok := database.TxFromContext(ctx); ok {
		query += ` FOR UPDATE`
	}

	s, err := scanShed(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shed.Shed{}, shed.ErrShedNotFound
		}
		return shed.Shed{}, fmt.Errorf("failed to get shed %s: %w", id, err)
	}
	return s, nil
}

// ListByFarm implements shed.ShedRepository.
func (r *shedRepositoryImpl) ListByFarm(ctx context.Context, farmID string) ([]shed.Shed, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+shedColumns+` FROM sheds WHERE farm_id = $1 AND active ORDER BY shed_number`, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheds: %w", err)
	}
	defer rows.Close()

	var result []shed.Shed
	for rows.Next() {
		s, err := scanShed(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Update implements shed.ShedRepository.
func (r *shedRepositoryImpl) Update(ctx context.Context, s shed.Shed) (shed.Shed, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sheds SET name = $2, description = $3, status = $4, initial_chicken = $5, mortality = $6,
			food_consumed = $7, water_consumed = $8, egg_production = $9, age_weeks = $10, generation_id = $11,
			updated_at = NOW()
		WHERE id = $1 AND active
		RETURNING ` + shedColumns

	updated, err := scanShed(q.QueryRow(ctx, query,
		s.ID, s.Name, s.Description, s.Status, s.InitialChicken, s.Mortality,
		s.FoodConsumed, s.WaterConsumed, s.EggProduction, s.AgeWeeks, s.GenerationID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shed.Shed{}, shed.ErrShedNotFound
		}
		return shed.Shed{}, fmt.Errorf("failed to update shed %s: %w", s.ID, err)
	}
	return updated, nil
}

type shedHistoryRepositoryImpl struct {
	db *database.DB
}

func NewShedHistoryRepository(db *database.DB) shed.HistoryRepository {
	return &shedHistoryRepositoryImpl{db: db}
}

// Create implements shed.HistoryRepository.
func (r *shedHistoryRepositoryImpl) Create(ctx context.Context, h shed.History) (shed.History, error) {
	q := GetQuerier(ctx, r.db)

	snapshot, err := json.Marshal(h.Snapshot)
	if err != nil {
		return shed.History{}, fmt.Errorf("failed to encode shed snapshot: %w", err)
	}

	created := h
	err = q.QueryRow(ctx, `
		INSERT INTO shed_histories (id, shed_id, generation_id, reason, snapshot)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		newID(), h.ShedID, h.GenerationID, h.Reason, snapshot,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return shed.History{}, fmt.Errorf("failed to create shed history: %w", err)
	}
	return created, nil
}

// ListByShed implements shed.HistoryRepository.
func (r *shedHistoryRepositoryImpl) ListByShed(ctx context.Context, shedID string) ([]shed.History, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, shed_id, generation_id, reason, snapshot, created_at
		FROM shed_histories WHERE shed_id = $1 ORDER BY created_at, id`, shedID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shed history: %w", err)
	}
	defer rows.Close()

	var result []shed.History
	for rows.Next() {
		var h shed.History
		if err := rows.Scan(&h.ID, &h.ShedID, &h.GenerationID, &h.Reason, &h.Snapshot, &h.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, rows.Err()
}
