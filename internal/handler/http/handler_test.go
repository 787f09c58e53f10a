package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/payroll"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/shed"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/handler/http/response"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShedID = "0190a5a0-0000-7000-8000-000000000002"

type countingTx struct {
	calls int
}

func (c *countingTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	c.calls++
	return fn(ctx)
}

type fakePayrollService struct {
	payroll.PayrollService
	executed []payroll.ExecutePayrollRequest
	filter   payroll.PayrollFilter
	deleted  string
	validate bool
}

func (f *fakePayrollService) Execute(_ context.Context, req payroll.ExecutePayrollRequest) (payroll.PayrollResponse, error) {
	if f.validate {
		if err := req.Validate(); err != nil {
			return payroll.PayrollResponse{}, err
		}
	}
	f.executed = append(f.executed, req)
	if req.WeekStartDate == "2024-12-19" {
		return payroll.PayrollResponse{}, payroll.ErrInvalidWeekday
	}
	return payroll.PayrollResponse{
		ID:         "PR00000001",
		Name:       "Nómina del 2024-12-18 al 2024-12-24",
		StartDate:  req.WeekStartDate,
		CutoffDate: "2024-12-24 23:59:59",
		Preview:    req.Preview,
		Lines:      []payroll.Line{{EmployeeCode: "E-001", JobScheme: "5"}},
	}, nil
}

func (f *fakePayrollService) ListPayrolls(_ context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	f.filter = filter
	return payroll.ListPayrollResponse{
		Data:       []payroll.PayrollSummaryResponse{{ID: "PR00000001"}},
		TotalCount: 41,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (f *fakePayrollService) GetPayroll(_ context.Context, id string) (payroll.PayrollResponse, error) {
	if id != "PR00000001" {
		return payroll.PayrollResponse{}, payroll.ErrPayrollNotFound
	}
	return payroll.PayrollResponse{ID: id}, nil
}

func (f *fakePayrollService) DeletePayroll(_ context.Context, id string) error {
	f.deleted = id
	return nil
}

func (f *fakePayrollService) Export(_ context.Context, id string) (payroll.ExportFile, error) {
	return payroll.ExportFile{Content: []byte("xlsx"), FileName: "nomina_" + id + ".xlsx"}, nil
}

type fakeShedService struct {
	shed.ShedService
	changed []shed.ChangeStatusRequest
}

func (f *fakeShedService) ChangeStatus(_ context.Context, req shed.ChangeStatusRequest) (shed.Shed, error) {
	f.changed = append(f.changed, req)
	if req.Status == shed.StatusProduction {
		return shed.Shed{}, shed.ErrInvalidStatusChange
	}
	return shed.Shed{ID: req.ID, Status: req.Status}, nil
}

func (f *fakeShedService) ListSheds(_ context.Context, farmID string) ([]shed.Shed, error) {
	return []shed.Shed{{ID: testShedID, FarmID: farmID}}, nil
}

type routerFixture struct {
	router   http.Handler
	tx       *countingTx
	payrolls *fakePayrollService
	sheds    *fakeShedService
}

func newRouterFixture(jwtService jwt.Service) *routerFixture {
	f := &routerFixture{
		tx:       &countingTx{},
		payrolls: &fakePayrollService{},
		sheds:    &fakeShedService{},
	}
	h := Handlers{
		Payroll:    NewPayrollHandler(f.payrolls, f.tx),
		Employee:   NewEmployeeHandler(nil, f.tx),
		Attendance: NewAttendanceHandler(nil, f.tx),
		Absence:    NewAbsenceHandler(nil, f.tx),
		Overtime:   NewOvertimeHandler(nil, f.tx),
		Bonus:      NewBonusHandler(nil, f.tx),
		Farm:       NewFarmHandler(nil, f.tx),
		Shed:       NewShedHandler(f.sheds, f.tx),
	}
	cfg := RouterConfig{
		Env:                "test",
		LogLevel:           slog.LevelError,
		AllowedOrigins:     []string{"http://localhost:3000"},
		RateLimitPerMinute: 1000,
	}
	if jwtService != nil {
		cfg.JWTService = jwtService
	}
	f.router = NewRouter(cfg, h)
	return f
}

func (f *routerFixture) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var envelope response.Response
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func TestPayrollHandler_Execute(t *testing.T) {
	t.Run("preview skips the transaction", func(t *testing.T) {
		f := newRouterFixture(nil)
		rec, body := f.do(t, http.MethodPost, "/api/v1/payrolls/execute", `{"weekStartDate":"2024-12-18","preview":true}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, body.Success)
		assert.Equal(t, 0, f.tx.calls)
		require.Len(t, f.payrolls.executed, 1)
		assert.True(t, f.payrolls.executed[0].Preview)
	})

	t.Run("commit runs in a transaction", func(t *testing.T) {
		f := newRouterFixture(nil)
		rec, body := f.do(t, http.MethodPost, "/api/v1/payrolls/execute", `{"weekStartDate":"2024-12-18"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Payroll saved successfully", body.Message)
		assert.Equal(t, 1, f.tx.calls)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newRouterFixture(nil)
		rec, body := f.do(t, http.MethodPost, "/api/v1/payrolls/execute", `{`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "INVALID_INPUT", body.Error.Code)
		assert.Empty(t, f.payrolls.executed)
	})

	t.Run("service error keeps its status", func(t *testing.T) {
		f := newRouterFixture(nil)
		rec, _ := f.do(t, http.MethodPost, "/api/v1/payrolls/execute", `{"weekStartDate":"2024-12-19"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPayrollHandler_ExecuteWireFormat(t *testing.T) {
	f := newRouterFixture(nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payrolls/execute", strings.NewReader(`{"weekStartDate":"2024-12-18","preview":true}`))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, f.payrolls.executed, 1)
	assert.Equal(t, "2024-12-18", f.payrolls.executed[0].WeekStartDate)

	var envelope struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	for _, key := range []string{"id", "name", "startDate", "cutoffDate", "lines"} {
		assert.Contains(t, envelope.Data, key)
	}

	var lines []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(envelope.Data["lines"], &lines))
	require.Len(t, lines, 1)
	for _, key := range []string{
		"employeeCode", "dailySalary", "daysWorked", "paidRestDays", "totalDays", "salary",
		"extraHours", "extraHoursPayment", "punctualityBonus", "attendanceBonus", "groceryBonus",
		"holidayBonus", "customBonusesTotal", "tardies", "taxPay", "netPay", "jobScheme",
	} {
		assert.Contains(t, lines[0], key)
	}
	assert.NotContains(t, lines[0], "net_pay")
}

func TestPayrollHandler_ExecuteRequiresWeekStartDate(t *testing.T) {
	f := newRouterFixture(nil)
	f.payrolls.validate = true

	rec, body := f.do(t, http.MethodPost, "/api/v1/payrolls/execute", `{"week_start_date":"2024-12-18"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Details, "weekStartDate")
}

func TestPayrollHandler_Export(t *testing.T) {
	f := newRouterFixture(nil)

	rec, _ := f.do(t, http.MethodGet, "/api/v1/payrolls/export?id=PR00000001", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="nomina_PR00000001.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx", rec.Body.String())

	rec, _ = f.do(t, http.MethodGet, "/api/v1/payrolls/export?id=42", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayrollHandler_ListGetDelete(t *testing.T) {
	f := newRouterFixture(nil)

	rec, body := f.do(t, http.MethodGet, "/api/v1/payrolls?page=2&limit=20", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payroll.PayrollFilter{Page: 2, Limit: 20}, f.payrolls.filter)
	require.NotNil(t, body.Meta)
	assert.Equal(t, int64(41), body.Meta.TotalItems)
	assert.Equal(t, 3, body.Meta.TotalPages)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/payrolls/PR00000001", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/payrolls/PR00000009", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/payrolls/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = f.do(t, http.MethodDelete, "/api/v1/payrolls/PR00000001", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "PR00000001", f.payrolls.deleted)
	assert.Equal(t, 1, f.tx.calls)
}

func TestShedHandler_ChangeStatus(t *testing.T) {
	f := newRouterFixture(nil)

	rec, body := f.do(t, http.MethodPost, "/api/v1/sheds/"+testShedID+"/status", `{"status":"cleaning"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	require.Len(t, f.sheds.changed, 1)
	assert.Equal(t, testShedID, f.sheds.changed[0].ID)

	rec, body = f.do(t, http.MethodPost, "/api/v1/sheds/"+testShedID+"/status", `{"status":"production"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_STATE", body.Error.Code)

	rec, _ = f.do(t, http.MethodPost, "/api/v1/sheds/123/status", `{"status":"cleaning"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, f.sheds.changed, 2)
}

func TestShedHandler_ListRequiresFarm(t *testing.T) {
	f := newRouterFixture(nil)

	rec, _ := f.do(t, http.MethodGet, "/api/v1/sheds", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/sheds?farmId=0190a5a0-0000-7000-8000-000000000001", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_JWTProtectsAPI(t *testing.T) {
	svc := jwt.NewJWTService("secret")
	f := newRouterFixture(svc)

	rec, body := f.do(t, http.MethodGet, "/api/v1/payrolls", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, apperror.CodeUnauthorized, body.Error.Code)
	assert.Equal(t, "invalid or missing access token", body.Error.Message)

	token, _, err := svc.GenerateAccessToken("admin", time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/payrolls", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	f := newRouterFixture(nil)

	rec, body := f.do(t, http.MethodGet, "/api/v1/hatcheries", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, apperror.CodeNotFound, body.Error.Code)
	assert.Equal(t, "Resource not found", body.Error.Message)
}
