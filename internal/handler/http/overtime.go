package http

import (
	"context"
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/overtime"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/handler/http/response"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
)

type OvertimeHandler interface {
	CreateOvertime(w http.ResponseWriter, r *http.Request)
	ListOvertimes(w http.ResponseWriter, r *http.Request)
	DeleteOvertime(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
	txm             database.Transactor
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService, txm database.Transactor) OvertimeHandler {
	return &overtimeHandlerImpl{overtimeService: overtimeService, txm: txm}
}

// CreateOvertime implements OvertimeHandler
func (h *overtimeHandlerImpl) CreateOvertime(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOvertimeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := inTx(r.Context(), h.txm, func(ctx context.Context) (overtime.OvertimeResponse, error) {
		return h.overtimeService.CreateOvertime(ctx, req)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime created successfully", result)
}

// ListOvertimes filters by employeeCode and an inclusive from/to date range.
func (h *overtimeHandlerImpl) ListOvertimes(w http.ResponseWriter, r *http.Request) {
	filter := overtime.OvertimeFilter{
		EmployeeCode: queryPtr(r, "employeeCode"),
		From:         queryPtr(r, "from"),
		To:           queryPtr(r, "to"),
	}

	result, err := h.overtimeService.ListOvertimes(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteOvertime implements OvertimeHandler
func (h *overtimeHandlerImpl) DeleteOvertime(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	err = h.txm.WithinTx(r.Context(), func(ctx context.Context) error {
		return h.overtimeService.DeleteOvertime(ctx, id)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime deleted successfully", nil)
}
