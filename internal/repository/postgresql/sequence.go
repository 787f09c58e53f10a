package postgresql

import (
	"context"
	"fmt"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/sequence"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
)

type sequenceRepositoryImpl struct {
	db *database.DB
}

func NewSequenceRepository(db *database.DB) sequence.SequenceRepository {
	return &sequenceRepositoryImpl{db: db}
}

// Consume implements sequence.SequenceRepository.
func (r *sequenceRepositoryImpl) Consume(ctx context.Context, name string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sequences (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE
		SET value = sequences.value + 1, active = TRUE, updated_at = NOW()
		RETURNING value
	`

	var value int64
	if err := q.QueryRow(ctx, query, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to consume sequence %s: %w", name, err)
	}
	return value, nil
}
