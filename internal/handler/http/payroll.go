package http

import (
	"context"
	"net/http"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/payroll"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/handler/http/response"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PayrollHandler interface {
	Execute(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	ListPayrolls(w http.ResponseWriter, r *http.Request)
	GetPayroll(w http.ResponseWriter, r *http.Request)
	DeletePayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
	txm            database.Transactor
}

func NewPayrollHandler(payrollService payroll.PayrollService, txm database.Transactor) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService, txm: txm}
}

func payrollIDParam(id string) (string, error) {
	if !validator.IsValidPayrollID(id) {
		return "", apperror.Withf(apperror.ErrInvalidID, "Invalid payroll id %q", id)
	}
	return id, nil
}

// Execute implements PayrollHandler. Previews run without a transaction.
func (h *payrollHandlerImpl) Execute(w http.ResponseWriter, r *http.Request) {
	var req payroll.ExecutePayrollRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	if req.Preview {
		result, err := h.payrollService.Execute(r.Context(), req)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := inTx(r.Context(), h.txm, func(ctx context.Context) (payroll.PayrollResponse, error) {
		return h.payrollService.Execute(ctx, req)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll saved successfully", result)
}

// Export implements PayrollHandler
func (h *payrollHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	id, err := payrollIDParam(r.URL.Query().Get("id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.payrollService.Export(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, xlsxContentType, file.FileName, file.Content)
}

// ListPayrolls implements PayrollHandler
func (h *payrollHandlerImpl) ListPayrolls(w http.ResponseWriter, r *http.Request) {
	filter := payroll.PayrollFilter{
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	}

	result, err := h.payrollService.ListPayrolls(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, response.NewMeta(result.Page, result.Limit, result.TotalCount))
}

// GetPayroll implements PayrollHandler
func (h *payrollHandlerImpl) GetPayroll(w http.ResponseWriter, r *http.Request) {
	id, err := payrollIDParam(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.GetPayroll(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeletePayroll implements PayrollHandler
func (h *payrollHandlerImpl) DeletePayroll(w http.ResponseWriter, r *http.Request) {
	id, err := payrollIDParam(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	err = h.txm.WithinTx(r.Context(), func(ctx context.Context) error {
		return h.payrollService.DeletePayroll(ctx, id)
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll deleted successfully", nil)
}
