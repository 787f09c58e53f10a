package http

import (
	"context"
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/farm"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/handler/http/response"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
)

type FarmHandler interface {
	CreateFarm(w http.ResponseWriter, r *http.Request)
	GetFarm(w http.ResponseWriter, r *http.Request)
	ListFarms(w http.ResponseWriter, r *http.Request)
}

type farmHandlerImpl struct {
	farmService farm.FarmService
	txm         database.Transactor
}

func NewFarmHandler(farmService farm.FarmService, txm database.Transactor) FarmHandler {
	return &farmHandlerImpl{farmService: farmService, txm: txm}
}

func (h *farmHandlerImpl) CreateFarm(w http.ResponseWriter, r *http.Request) {
	var req farm.CreateFarmRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := inTx(r.Context(), h.txm, func(ctx context.Context) (farm.FarmResponse, error) {
		return h.farmService.CreateFarm(ctx, req)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Farm created successfully", result)
}

func (h *farmHandlerImpl) GetFarm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.farmService.GetFarm(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *farmHandlerImpl) ListFarms(w http.ResponseWriter, r *http.Request) {
	result, err := h.farmService.ListFarms(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
