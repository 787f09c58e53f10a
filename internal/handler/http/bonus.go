package http

import (
	"context"
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/bonus"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/handler/http/response"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
)

// BonusHandler serves general bonuses, the catalog and personal overrides.
type BonusHandler interface {
	CreateBonus(w http.ResponseWriter, r *http.Request)
	ListBonuses(w http.ResponseWriter, r *http.Request)
	UpdateBonus(w http.ResponseWriter, r *http.Request)
	DeleteBonus(w http.ResponseWriter, r *http.Request)

	CreateCatalogBonus(w http.ResponseWriter, r *http.Request)
	ListCatalogBonuses(w http.ResponseWriter, r *http.Request)

	CreatePersonalBonus(w http.ResponseWriter, r *http.Request)
	ListPersonalBonuses(w http.ResponseWriter, r *http.Request)
	UpdatePersonalBonus(w http.ResponseWriter, r *http.Request)
	DeletePersonalBonus(w http.ResponseWriter, r *http.Request)
}

type bonusHandlerImpl struct {
	bonusService bonus.BonusService
	txm          database.Transactor
}

func NewBonusHandler(bonusService bonus.BonusService, txm database.Transactor) BonusHandler {
	return &bonusHandlerImpl{bonusService: bonusService, txm: txm}
}

func (h *bonusHandlerImpl) CreateBonus(w http.ResponseWriter, r *http.Request) {
	var req bonus.CreateBonusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := inTx(r.Context(), h.txm, func(ctx context.Context) (bonus.BonusResponse, error) {
		return h.bonusService.CreateBonus(ctx, req)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus created successfully", result)
}

func (h *bonusHandlerImpl) ListBonuses(w http.ResponseWriter, r *http.Request) {
	result, err := h.bonusService.ListBonuses(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *bonusHandlerImpl) UpdateBonus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req bonus.UpdateBonusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.ID = id

	result, err := inTx(r.Context(), h.txm, func(ctx context.Context) (bonus.BonusResponse, error) {
		return h.bonusService.UpdateBonus(ctx, req)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus updated successfully", result)
}

func (h *bonusHandlerImpl) DeleteBonus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	err = h.txm.WithinTx(r.Context(), func(ctx context.Context) error {
		return h.bonusService.DeleteBonus(ctx, id)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus deleted successfully", nil)
}

func (h *bonusHandlerImpl) CreateCatalogBonus(w http.ResponseWriter, r *http.Request) {
	var req bonus.CreateCatalogBonusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := inTx(r.Context(), h.txm, func(ctx context.Context) (bonus.CatalogBonusResponse, error) {
		return h.bonusService.CreateCatalogBonus(ctx, req)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Catalog bonus created successfully", result)
}

func (h *bonusHandlerImpl) ListCatalogBonuses(w http.ResponseWriter, r *http.Request) {
	result, err := h.bonusService.ListCatalogBonuses(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *bonusHandlerImpl) CreatePersonalBonus(w http.ResponseWriter, r *http.Request) {
	var req bonus.CreatePersonalBonusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := inTx(r.Context(), h.txm, func(ctx context.Context) (bonus.PersonalBonusResponse, error) {
		return h.bonusService.CreatePersonalBonus(ctx, req)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Personal bonus created successfully", result)
}

// ListPersonalBonuses accepts employeeCode and entityType filters.
func (h *bonusHandlerImpl) ListPersonalBonuses(w http.ResponseWriter, r *http.Request) {
	filter := bonus.PersonalBonusFilter{EmployeeCode: queryPtr(r, "employeeCode")}
	if entityType := queryPtr(r, "entityType"); entityType != nil {
		t := bonus.EntityType(*entityType)
		filter.EntityType = &t
	}

	result, err := h.bonusService.ListPersonalBonuses(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *bonusHandlerImpl) UpdatePersonalBonus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req bonus.UpdatePersonalBonusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.ID = id

	result, err := inTx(r.Context(), h.txm, func(ctx context.Context) (bonus.PersonalBonusResponse, error) {
		return h.bonusService.UpdatePersonalBonus(ctx, req)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personal bonus updated successfully", result)
}

func (h *bonusHandlerImpl) DeletePersonalBonus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	err = h.txm.WithinTx(r.Context(), func(ctx context.Context) error {
		return h.bonusService.DeletePersonalBonus(ctx, id)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personal bonus deleted successfully", nil)
}
