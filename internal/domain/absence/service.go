package absence

import "context"

type AbsenceService interface {
	CreateAbsence(ctx context.Context, req CreateAbsenceRequest) (AbsenceResponse, error)
	ListAbsences(ctx context.Context, filter AbsenceFilter) ([]AbsenceResponse, error)
	DeleteAbsence(ctx context.Context, id string) error
}
