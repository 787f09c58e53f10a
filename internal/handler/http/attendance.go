package http

import (
	"context"
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/attendance"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/handler/http/response"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
)

type AttendanceHandler interface {
	CreateAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendances(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	txm               database.Transactor
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, txm database.Transactor) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService, txm: txm}
}

// CreateAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := inTx(r.Context(), h.txm, func(ctx context.Context) (attendance.AttendanceResponse, error) {
		return h.attendanceService.CreateAttendance(ctx, req)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance created successfully", result)
}

// ListAttendances filters by employeeCode and an inclusive from/to date range.
func (h *attendanceHandlerImpl) ListAttendances(w http.ResponseWriter, r *http.Request) {
	filter := attendance.AttendanceFilter{
		EmployeeCode: queryPtr(r, "employeeCode"),
		From:         queryPtr(r, "from"),
		To:           queryPtr(r, "to"),
	}

	result, err := h.attendanceService.ListAttendances(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	err = h.txm.WithinTx(r.Context(), func(ctx context.Context) error {
		return h.attendanceService.DeleteAttendance(ctx, id)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted successfully", nil)
}
