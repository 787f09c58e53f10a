package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/farm"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type farmRepositoryImpl struct {
	db *database.DB
}

func NewFarmRepository(db *database.DB) farm.FarmRepository {
	return &farmRepositoryImpl{db: db}
}

func (r *farmRepositoryImpl) Create(ctx context.Context, f farm.Farm) (farm.Farm, error) {
	q := GetQuerier(ctx, r.db)

	var created farm.Farm
	err := q.QueryRow(ctx, `
		INSERT INTO farms (id, name) VALUES ($1, $2)
		RETURNING id, name, active, created_at, updated_at`,
		newID(), f.Name,
	).Scan(&created.ID, &created.Name, &created.Active, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return farm.Farm{}, fmt.Errorf("failed to create farm: %w", err)
	}
	return created, nil
}

func (r *farmRepositoryImpl) GetByID(ctx context.Context, id string) (farm.Farm, error) {
	q := GetQuerier(ctx, r.db)

	var f farm.Farm
	err := q.QueryRow(ctx, `SELECT id, name, active, created_at, updated_at FROM farms WHERE id = $1 AND active`, id).
		Scan(&f.ID, &f.Name, &f.Active, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return farm.Farm{}, farm.ErrFarmNotFound
		}
		return farm.Farm{}, fmt.Errorf("failed to get farm %s: %w", id, err)
	}
	return f, nil
}

func (r *farmRepositoryImpl) ListActive(ctx context.Context) ([]farm.Farm, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, active, created_at, updated_at FROM farms WHERE active ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	defer rows.Close()

	var result []farm.Farm
	for rows.Next() {
		var f farm.Farm
		if err := rows.Scan(&f.ID, &f.Name, &f.Active, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	return result, rows.Err()
}
