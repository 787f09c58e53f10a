package http

import (
	"context"
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/shed"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/handler/http/response"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/validator"
)

type ShedHandler interface {
	CreateShed(w http.ResponseWriter, r *http.Request)
	ListSheds(w http.ResponseWriter, r *http.Request)
	GetShed(w http.ResponseWriter, r *http.Request)
	InitializeShed(w http.ResponseWriter, r *http.Request)
	ChangeStatus(w http.ResponseWriter, r *http.Request)
	UpdateShed(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type shedHandlerImpl struct {
	shedService shed.ShedService
	txm         database.Transactor
}

func NewShedHandler(shedService shed.ShedService, txm database.Transactor) ShedHandler {
	return &shedHandlerImpl{shedService: shedService, txm: txm}
}

// CreateShed implements ShedHandler
func (h *shedHandlerImpl) CreateShed(w http.ResponseWriter, r *http.Request) {
	var req shed.CreateShedRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := inTx(r.Context(), h.txm, func(ctx context.Context) (shed.Shed, error) {
		return h.shedService.CreateShed(ctx, req)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shed created successfully", result)
}

// ListSheds requires the farmId query parameter.
func (h *shedHandlerImpl) ListSheds(w http.ResponseWriter, r *http.Request) {
	farmID := r.URL.Query().Get("farmId")
	if !validator.IsValidUUID(farmID) {
		response.HandleError(w, apperror.Withf(apperror.ErrInvalidID, "Invalid farmId %q", farmID))
		return
	}

	result, err := h.shedService.ListSheds(r.Context(), farmID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetShed implements ShedHandler
func (h *shedHandlerImpl) GetShed(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.shedService.GetShed(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// InitializeShed implements ShedHandler
func (h *shedHandlerImpl) InitializeShed(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shed.InitializeShedRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.ID = id

	result, err := inTx(r.Context(), h.txm, func(ctx context.Context) (shed.Shed, error) {
		return h.shedService.InitializeShed(ctx, req)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shed initialized successfully", result)
}

// ChangeStatus implements ShedHandler
func (h *shedHandlerImpl) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shed.ChangeStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.ID = id

	result, err := inTx(r.Context(), h.txm, func(ctx context.Context) (shed.Shed, error) {
		return h.shedService.ChangeStatus(ctx, req)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shed status updated successfully", result)
}

// UpdateShed implements ShedHandler
func (h *shedHandlerImpl) UpdateShed(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req shed.UpdateShedRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.ID = id

	result, err := inTx(r.Context(), h.txm, func(ctx context.Context) (shed.Shed, error) {
		return h.shedService.UpdateShed(ctx, req)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shed updated successfully", result)
}

// GetHistory implements ShedHandler
func (h *shedHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.shedService.GetHistory(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
