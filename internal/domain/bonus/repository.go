package bonus

import "context"

type BonusRepository interface {
	Create(ctx context.Context, b Bonus) (Bonus, error)
	GetByID(ctx context.Context, id string) (Bonus, error)
	// ListActive returns active bonuses; enabledOnly drops disabled ones.
	ListActive(ctx context.Context, enabledOnly bool) ([]Bonus, error)
	Update(ctx context.Context, b Bonus) (Bonus, error)
	SoftDelete(ctx context.Context, id string) error
}

type CatalogBonusRepository interface {
	Create(ctx context.Context, c CatalogBonus) (CatalogBonus, error)
	GetByID(ctx context.Context, id string) (CatalogBonus, error)
	ListActive(ctx context.Context) ([]CatalogBonus, error)
}

type PersonalBonusRepository interface {
	Create(ctx context.Context, p PersonalBonus) (PersonalBonus, error)
	GetByID(ctx context.Context, id string) (PersonalBonus, error)
	List(ctx context.Context, filter PersonalBonusFilter) ([]PersonalBonus, error)
	// ListEnabled returns active, enabled personal bonuses of entityType with catalog data joined.
	ListEnabled(ctx context.Context, entityType EntityType) ([]PersonalBonus, error)
	Update(ctx context.Context, p PersonalBonus) (PersonalBonus, error)
	SoftDelete(ctx context.Context, id string) error
}
