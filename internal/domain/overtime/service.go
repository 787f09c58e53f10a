package overtime

import "context"

type OvertimeService interface {
	CreateOvertime(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)
	ListOvertimes(ctx context.Context, filter OvertimeFilter) ([]OvertimeResponse, error)
	DeleteOvertime(ctx context.Context, id string) error
}
