package attendance

import "context"

type AttendanceService interface {
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	ListAttendances(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id string) error
}
