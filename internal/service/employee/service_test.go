package employee

import (
	"context"
	"testing"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	byID map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[string]employee.Employee{}}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = "emp-" + e.Code
	e.Active = true
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok || !e.Active {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	for _, e := range f.byID {
		if e.Code == code && e.Active {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := f.GetByCode(ctx, code)
	return err == nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) SoftDelete(_ context.Context, id string) error {
	e, ok := f.byID[id]
	if !ok || !e.Active {
		return employee.ErrEmployeeNotFound
	}
	e.Active = false
	f.byID[id] = e
	return nil
}

func (f *fakeEmployeeRepo) ListActive(context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, e := range f.byID {
		if e.Active && e.Status == employee.StatusActive {
			result = append(result, e)
		}
	}
	return result, nil
}

func validCreateRequest(code string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Code:        code,
		Name:        "Ana",
		LastName:    "López",
		DailySalary: decimal.NewFromInt(500),
		JobScheme:   employee.SchemeFiveDays,
		Schedule: employee.Schedule{
			"monday": {Start: "08:00", End: "16:00"},
			"sunday": nil,
		},
	}
}

func TestEmployeeService_Create(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, validCreateRequest("E-001"))
	require.NoError(t, err)
	assert.Equal(t, "E-001", created.Code)

	_, err = svc.CreateEmployee(ctx, validCreateRequest("E-001"))
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestEmployeeService_CreateValidation(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo())

	tests := map[string]func(r *employee.CreateEmployeeRequest){
		"bad code":       func(r *employee.CreateEmployeeRequest) { r.Code = "E 001" },
		"zero salary":    func(r *employee.CreateEmployeeRequest) { r.DailySalary = decimal.Zero },
		"unknown scheme": func(r *employee.CreateEmployeeRequest) { r.JobScheme = "7" },
		"bad weekday":    func(r *employee.CreateEmployeeRequest) { r.Schedule["funday"] = nil },
		"bad clock":      func(r *employee.CreateEmployeeRequest) { r.Schedule["monday"] = &employee.Shift{Start: "8am", End: "16:00"} },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			req := validCreateRequest("E-002")
			mutate(&req)
			_, err := svc.CreateEmployee(context.Background(), req)
			assert.Error(t, err)
		})
	}
}

func TestEmployeeService_UpdateAndDelete(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, validCreateRequest("E-003"))
	require.NoError(t, err)

	salary := decimal.NewFromInt(650)
	inactive := employee.StatusInactive
	updated, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: created.ID, DailySalary: &salary, Status: &inactive})
	require.NoError(t, err)
	assert.True(t, salary.Equal(updated.DailySalary))
	assert.Equal(t, "Ana", updated.Name)

	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, svc.DeleteEmployee(ctx, created.ID))
	_, err = svc.GetEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
