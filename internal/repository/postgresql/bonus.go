package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/bonus"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// ========== GENERAL BONUSES ==========

type bonusRepositoryImpl struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) bonus.BonusRepository {
	return &bonusRepositoryImpl{db: db}
}

const bonusColumns = `id, key, name, type, value, enabled, active, created_at, updated_at`

func scanBonus(row pgx.Row) (bonus.Bonus, error) {
	var b bonus.Bonus
	err := row.Scan(&b.ID, &b.Key, &b.Name, &b.Type, &b.Value, &b.Enabled, &b.Active, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *bonusRepositoryImpl) Create(ctx context.Context, b bonus.Bonus) (bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonuses (id, key, name, type, value, enabled)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + bonusColumns

	created, err := scanBonus(q.QueryRow(ctx, query, newID(), b.Key, b.Name, b.Type, b.Value, b.Enabled))
	if err != nil {
		if isUniqueViolation(err) {
			return bonus.Bonus{}, bonus.ErrBonusKeyExists
		}
		return bonus.Bonus{}, fmt.Errorf("failed to create bonus: %w", err)
	}
	return created, nil
}

func (r *bonusRepositoryImpl) GetByID(ctx context.Context, id string) (bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanBonus(q.QueryRow(ctx, `SELECT `+bonusColumns+` FROM bonuses WHERE id = $1 AND active`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bonus.Bonus{}, bonus.ErrBonusNotFound
		}
		return bonus.Bonus{}, fmt.Errorf("failed to get bonus %s: %w", id, err)
	}
	return b, nil
}

func (r *bonusRepositoryImpl) ListActive(ctx context.Context, enabledOnly bool) ([]bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + bonusColumns + ` FROM bonuses WHERE active`
	if enabledOnly {
		query += ` AND enabled`
	}
	query += ` ORDER BY key`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonuses: %w", err)
	}
	defer rows.Close()

	var result []bonus.Bonus
	for rows.Next() {
		b, err := scanBonus(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func (r *bonusRepositoryImpl) Update(ctx context.Context, b bonus.Bonus) (bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bonuses SET name = $2, type = $3, value = $4, enabled = $5, updated_at = NOW()
		WHERE id = $1 AND active
		RETURNING ` + bonusColumns

	updated, err := scanBonus(q.QueryRow(ctx, query, b.ID, b.Name, b.Type, b.Value, b.Enabled))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bonus.Bonus{}, bonus.ErrBonusNotFound
		}
		return bonus.Bonus{}, fmt.Errorf("failed to update bonus %s: %w", b.ID, err)
	}
	return updated, nil
}

func (r *bonusRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE bonuses SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bonus %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return bonus.ErrBonusNotFound
	}
	return nil
}

// ========== CATALOG ==========

type catalogBonusRepositoryImpl struct {
	db *database.DB
}

func NewCatalogBonusRepository(db *database.DB) bonus.CatalogBonusRepository {
	return &catalogBonusRepositoryImpl{db: db}
}

const catalogBonusColumns = `id, name, description, taxable, active, created_at, updated_at`

func scanCatalogBonus(row pgx.Row) (bonus.CatalogBonus, error) {
	var c bonus.CatalogBonus
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Taxable, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *catalogBonusRepositoryImpl) Create(ctx context.Context, c bonus.CatalogBonus) (bonus.CatalogBonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO catalog_bonuses (id, name, description, taxable)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + catalogBonusColumns

	created, err := scanCatalogBonus(q.QueryRow(ctx, query, newID(), c.Name, c.Description, c.Taxable))
	if err != nil {
		return bonus.CatalogBonus{}, fmt.Errorf("failed to create catalog bonus: %w", err)
	}
	return created, nil
}

func (r *catalogBonusRepositoryImpl) GetByID(ctx context.Context, id string) (bonus.CatalogBonus, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCatalogBonus(q.QueryRow(ctx, `SELECT `+catalogBonusColumns+` FROM catalog_bonuses WHERE id = $1 AND active`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bonus.CatalogBonus{}, bonus.ErrCatalogBonusNotFound
		}
		return bonus.CatalogBonus{}, fmt.Errorf("failed to get catalog bonus %s: %w", id, err)
	}
	return c, nil
}

func (r *catalogBonusRepositoryImpl) ListActive(ctx context.Context) ([]bonus.CatalogBonus, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+catalogBonusColumns+` FROM catalog_bonuses WHERE active ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog bonuses: %w", err)
	}
	defer rows.Close()

	var result []bonus.CatalogBonus
	for rows.Next() {
		c, err := scanCatalogBonus(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// ========== PERSONAL BONUSES ==========

type personalBonusRepositoryImpl struct {
	db *database.DB
}

func NewPersonalBonusRepository(db *database.DB) bonus.PersonalBonusRepository {
	return &personalBonusRepositoryImpl{db: db}
}

// The catalog join fills Name and Taxable; both are empty for plain bonus overrides.
const personalBonusSelect = `
	SELECT pb.id, pb.employee_code, pb.entity_type, pb.entity_id, pb.type, pb.value, pb.enabled, pb.active,
		pb.created_at, pb.updated_at, COALESCE(cb.name, b.name, ''), COALESCE(cb.taxable, FALSE)
	FROM personal_bonuses pb
	LEFT JOIN catalog_bonuses cb ON pb.entity_type = 'catalog-personal-bonus' AND cb.id = pb.entity_id
	LEFT JOIN bonuses b ON pb.entity_type = 'bonus' AND b.id = pb.entity_id`

func scanPersonalBonus(row pgx.Row) (bonus.PersonalBonus, error) {
	var p bonus.PersonalBonus
	err := row.Scan(
		&p.ID, &p.EmployeeCode, &p.EntityType, &p.EntityID, &p.Type, &p.Value, &p.Enabled, &p.Active,
		&p.CreatedAt, &p.UpdatedAt, &p.Name, &p.Taxable,
	)
	return p, err
}

func (r *personalBonusRepositoryImpl) queryPersonal(ctx context.Context, query string, args ...any) ([]bonus.PersonalBonus, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query personal bonuses: %w", err)
	}
	defer rows.Close()

	var result []bonus.PersonalBonus
	for rows.Next() {
		p, err := scanPersonalBonus(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *personalBonusRepositoryImpl) Create(ctx context.Context, p bonus.PersonalBonus) (bonus.PersonalBonus, error) {
	q := GetQuerier(ctx, r.db)

	id := newID()
	_, err := q.Exec(ctx, `
		INSERT INTO personal_bonuses (id, employee_code, entity_type, entity_id, type, value, enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, p.EmployeeCode, p.EntityType, p.EntityID, p.Type, p.Value, p.Enabled,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return bonus.PersonalBonus{}, bonus.ErrPersonalBonusExists
		}
		return bonus.PersonalBonus{}, fmt.Errorf("failed to create personal bonus: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *personalBonusRepositoryImpl) GetByID(ctx context.Context, id string) (bonus.PersonalBonus, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPersonalBonus(q.QueryRow(ctx, personalBonusSelect+` WHERE pb.id = $1 AND pb.active`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bonus.PersonalBonus{}, bonus.ErrPersonalBonusNotFound
		}
		return bonus.PersonalBonus{}, fmt.Errorf("failed to get personal bonus %s: %w", id, err)
	}
	return p, nil
}

func (r *personalBonusRepositoryImpl) List(ctx context.Context, filter bonus.PersonalBonusFilter) ([]bonus.PersonalBonus, error) {
	w := newWhere("pb.active")
	addIf(w, "pb.employee_code = %s", filter.EmployeeCode)
	addIf(w, "pb.entity_type = %s", filter.EntityType)

	return r.queryPersonal(ctx, personalBonusSelect+w.sql()+` ORDER BY pb.employee_code, pb.created_at`, w.args...)
}

func (r *personalBonusRepositoryImpl) ListEnabled(ctx context.Context, entityType bonus.EntityType) ([]bonus.PersonalBonus, error) {
	query := personalBonusSelect + `
		WHERE pb.active AND pb.enabled AND pb.entity_type = $1
			AND (pb.entity_type <> 'catalog-personal-bonus' OR cb.active)
		ORDER BY pb.employee_code, pb.created_at`
	return r.queryPersonal(ctx, query, entityType)
}

func (r *personalBonusRepositoryImpl) Update(ctx context.Context, p bonus.PersonalBonus) (bonus.PersonalBonus, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE personal_bonuses SET type = $2, value = $3, enabled = $4, updated_at = NOW()
		WHERE id = $1 AND active`,
		p.ID, p.Type, p.Value, p.Enabled,
	)
	if err != nil {
		return bonus.PersonalBonus{}, fmt.Errorf("failed to update personal bonus %s: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return bonus.PersonalBonus{}, bonus.ErrPersonalBonusNotFound
	}
	return r.GetByID(ctx, p.ID)
}

func (r *personalBonusRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE personal_bonuses SET active = FALSE, updated_at = NOW() WHERE id = $1 AND active`, id)
	if err != nil {
		return fmt.Errorf("failed to delete personal bonus %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return bonus.ErrPersonalBonusNotFound
	}
	return nil
}
