package shed

import "context"

// ShedService runs on the transaction carried by ctx in every mutating operation.
type ShedService interface {
	CreateShed(ctx context.Context, req CreateShedRequest) (Shed, error)
	GetShed(ctx context.Context, id string) (Shed, error)
	ListSheds(ctx context.Context, farmID string) ([]Shed, error)
	// InitializeShed is the only way into production; it starts a new generation.
	InitializeShed(ctx context.Context, req InitializeShedRequest) (Shed, error)
	ChangeStatus(ctx context.Context, req ChangeStatusRequest) (Shed, error)
	UpdateShed(ctx context.Context, req UpdateShedRequest) (Shed, error)
	GetHistory(ctx context.Context, id string) ([]HistoryResponse, error)
}
