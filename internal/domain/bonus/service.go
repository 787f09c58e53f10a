package bonus

import "context"

type BonusService interface {
	CreateBonus(ctx context.Context, req CreateBonusRequest) (BonusResponse, error)
	ListBonuses(ctx context.Context) ([]BonusResponse, error)
	UpdateBonus(ctx context.Context, req UpdateBonusRequest) (BonusResponse, error)
	DeleteBonus(ctx context.Context, id string) error

	CreateCatalogBonus(ctx context.Context, req CreateCatalogBonusRequest) (CatalogBonusResponse, error)
	ListCatalogBonuses(ctx context.Context) ([]CatalogBonusResponse, error)

	CreatePersonalBonus(ctx context.Context, req CreatePersonalBonusRequest) (PersonalBonusResponse, error)
	ListPersonalBonuses(ctx context.Context, filter PersonalBonusFilter) ([]PersonalBonusResponse, error)
	UpdatePersonalBonus(ctx context.Context, req UpdatePersonalBonusRequest) (PersonalBonusResponse, error)
	DeletePersonalBonus(ctx context.Context, id string) error
}
