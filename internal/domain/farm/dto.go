package farm

import "github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/validator"

type CreateFarmRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (r *CreateFarmRequest) Validate() error {
	return validator.Struct(r)
}

type FarmResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewFarmResponse(f Farm) FarmResponse {
	return FarmResponse{ID: f.ID, Name: f.Name}
}
