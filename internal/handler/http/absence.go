package http

import (
	"context"
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/absence"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/handler/http/response"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
)

type AbsenceHandler interface {
	CreateAbsence(w http.ResponseWriter, r *http.Request)
	ListAbsences(w http.ResponseWriter, r *http.Request)
	DeleteAbsence(w http.ResponseWriter, r *http.Request)
}

type absenceHandlerImpl struct {
	absenceService absence.AbsenceService
	txm            database.Transactor
}

func NewAbsenceHandler(absenceService absence.AbsenceService, txm database.Transactor) AbsenceHandler {
	return &absenceHandlerImpl{absenceService: absenceService, txm: txm}
}

// CreateAbsence implements AbsenceHandler
func (h *absenceHandlerImpl) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateAbsenceRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := inTx(r.Context(), h.txm, func(ctx context.Context) (absence.AbsenceResponse, error) {
		return h.absenceService.CreateAbsence(ctx, req)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence created successfully", result)
}

// ListAbsences filters by employeeCode and an inclusive from/to date range.
func (h *absenceHandlerImpl) ListAbsences(w http.ResponseWriter, r *http.Request) {
	filter := absence.AbsenceFilter{
		EmployeeCode: queryPtr(r, "employeeCode"),
		From:         queryPtr(r, "from"),
		To:           queryPtr(r, "to"),
	}

	result, err := h.absenceService.ListAbsences(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteAbsence implements AbsenceHandler
func (h *absenceHandlerImpl) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	err = h.txm.WithinTx(r.Context(), func(ctx context.Context) error {
		return h.absenceService.DeleteAbsence(ctx, id)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence deleted successfully", nil)
}
