package shed

import "context"

type ShedRepository interface {
	// Create returns ErrShedNumberTaken when the farm already has s.ShedNumber.
	Create(ctx context.Context, s Shed) (Shed, error)
	NextShedNumber(ctx context.Context, farmID string) (int, error)
	// GetByID locks the row when ctx carries a transaction.
	GetByID(ctx context.Context, id string) (Shed, error)
	ListByFarm(ctx context.Context, farmID string) ([]Shed, error)
	Update(ctx context.Context, s Shed) (Shed, error)
}

type HistoryRepository interface {
	Create(ctx context.Context, h History) (History, error)
	ListByShed(ctx context.Context, shedID string) ([]History, error)
}
