package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/absence"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/bonus"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/employee"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/overtime"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/payroll"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/sequence"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/lock"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payrollFixture struct {
	svc         payroll.PayrollService
	employees   *fakeEmployeeRepo
	attendances *fakeAttendanceRepo
	absences    *fakeAbsenceRepo
	overtimes   *fakeOvertimeRepo
	bonuses     *fakeBonusRepo
	personal    *fakePersonalRepo
	payrolls    *fakePayrollRepo
	sequences   *fakeSequenceRepo
	locker      lock.Locker
}

func newPayrollFixture(now time.Time) *payrollFixture {
	f := &payrollFixture{
		employees:   &fakeEmployeeRepo{},
		attendances: &fakeAttendanceRepo{},
		absences:    &fakeAbsenceRepo{},
		overtimes:   &fakeOvertimeRepo{},
		bonuses:     &fakeBonusRepo{},
		personal:    &fakePersonalRepo{},
		payrolls:    newFakePayrollRepo(),
		sequences:   &fakeSequenceRepo{},
		locker:      lock.NewLocalLocker(),
	}
	aggregator := NewAggregator(f.attendances, f.absences, f.overtimes, f.bonuses, f.personal)
	f.svc = NewPayrollService(
		f.payrolls,
		f.sequences,
		f.employees,
		aggregator,
		f.locker,
		nil,
		NewHolidays(nil),
		testLoc,
		timeutil.FixedClock(now),
	)
	return f
}

// seedWeek registers two employees with a week of activity starting 2024-12-18.
func (f *payrollFixture) seedWeek() {
	f.employees.employees = []employee.Employee{
		{ID: "e-2", Code: "EMP-002", Name: "Luis", DailySalary: dec("250"), JobScheme: employee.SchemeSixDays},
		{ID: "e-1", Code: "EMP-001", Name: "Ana", DailySalary: dec("300"), JobScheme: employee.SchemeFiveDays},
	}
	f.attendances.items = append(f.attendances.items,
		checkIns("EMP-001", nil, "2024-12-18", "2024-12-19", "2024-12-20", "2024-12-23", "2024-12-24")...)
	f.attendances.items = append(f.attendances.items, checkIns("EMP-002", nil, "2024-12-18", "2024-12-19")...)
	// Outside the window on both sides.
	f.attendances.items = append(f.attendances.items, checkIns("EMP-001", nil, "2024-12-17", "2024-12-25")...)

	f.absences.items = []absence.Absence{
		{EmployeeCode: "EMP-002", Date: day("2024-12-20"), IsJustified: true, IsPaid: true, Active: true},
		{EmployeeCode: "EMP-002", Date: day("2024-12-21"), Active: true},
	}
	f.overtimes.items = []overtime.Overtime{
		{EmployeeCode: "EMP-001", StartTime: day("2024-12-18").Add(15 * time.Hour), Hours: dec("2"), Active: true},
		{EmployeeCode: "EMP-001", StartTime: day("2024-12-19").Add(15 * time.Hour), Hours: dec("1"), Active: false},
	}
	for _, b := range generalBonuses() {
		b.Active = true
		f.bonuses.items = append(f.bonuses.items, *b)
	}
	f.personal.items = []bonus.PersonalBonus{
		{EmployeeCode: "EMP-001", EntityType: bonus.EntityCatalogPersonalBonus, Type: bonus.TypeAmount, Value: dec("50"), Enabled: true, Active: true, Name: "Vales"},
		{EmployeeCode: "EMP-002", EntityType: bonus.EntityBonus, EntityID: "b-grocery", Type: bonus.TypeAmount, Value: dec("300"), Enabled: true, Active: true},
	}
}

func TestPayrollService_Execute_Validation(t *testing.T) {
	f := newPayrollFixture(time.Now())
	ctx := context.Background()

	_, err := f.svc.Execute(ctx, payroll.ExecutePayrollRequest{WeekStartDate: "2024-13-40"})
	assert.ErrorIs(t, err, payroll.ErrInvalidDate)

	_, err = f.svc.Execute(ctx, payroll.ExecutePayrollRequest{WeekStartDate: "2024-12-19"})
	require.ErrorIs(t, err, payroll.ErrInvalidWeekday)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Contains(t, appErr.Message, "Wednesday")

	_, err = f.svc.Execute(ctx, payroll.ExecutePayrollRequest{})
	assert.Error(t, err)
}

func TestPayrollService_Execute_Preview(t *testing.T) {
	f := newPayrollFixture(time.Now())
	f.seedWeek()

	resp, err := f.svc.Execute(context.Background(), payroll.ExecutePayrollRequest{WeekStartDate: "2024-12-18", Preview: true})
	require.NoError(t, err)

	assert.True(t, resp.Preview)
	assert.Empty(t, resp.ID)
	assert.Equal(t, "2024-12-18", resp.StartDate)
	assert.Equal(t, "2024-12-24 23:59:59", resp.CutoffDate)
	assert.Empty(t, f.payrolls.payrolls)
	assert.Zero(t, f.sequences.values[sequence.Payroll])

	require.Len(t, resp.Lines, 2)
	assert.Equal(t, "EMP-001", resp.Lines[0].EmployeeCode)
	assert.Equal(t, "EMP-002", resp.Lines[1].EmployeeCode)

	ana := resp.Lines[0]
	assert.Equal(t, 5, ana.DaysWorked)
	assertDecimal(t, "2", ana.ExtraHours, "inactive overtime excluded")
	assertDecimal(t, "50", ana.NetPay.Sub(ana.TaxPay), "non-taxable custom bonus")

	luis := resp.Lines[1]
	assert.Equal(t, 3, luis.DaysWorked, "two attendances and one paid absence")
	assert.True(t, luis.AttendanceBonus.IsZero(), "unjustified absence")
	assertDecimal(t, "300", luis.GroceryBonus, "personal grocery override")
}

func TestPayrollService_Execute_CommitIsIdempotent(t *testing.T) {
	f := newPayrollFixture(time.Now())
	f.seedWeek()
	ctx := context.Background()

	first, err := f.svc.Execute(ctx, payroll.ExecutePayrollRequest{WeekStartDate: "2024-12-18"})
	require.NoError(t, err)
	assert.Equal(t, "PR00000001", first.ID)
	assert.Equal(t, "Nómina del 2024-12-18 al 2024-12-24", first.Name)
	assert.False(t, first.Preview)
	require.Len(t, first.Lines, 2)

	// A late check-in arrives and the week is recomputed.
	f.attendances.items = append(f.attendances.items, checkIns("EMP-002", nil, "2024-12-23")...)

	second, err := f.svc.Execute(ctx, payroll.ExecutePayrollRequest{WeekStartDate: "2024-12-18"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 4, second.Lines[1].DaysWorked)

	assert.Len(t, f.payrolls.payrolls, 1)
	assert.Equal(t, 1, f.payrolls.updates)
	assert.Equal(t, int64(1), f.sequences.values[sequence.Payroll])

	next, err := f.svc.Execute(ctx, payroll.ExecutePayrollRequest{WeekStartDate: "2024-12-25"})
	require.NoError(t, err)
	assert.Equal(t, "PR00000002", next.ID)
}

func TestPayrollService_Execute_WeekLocked(t *testing.T) {
	f := newPayrollFixture(time.Now())
	f.seedWeek()
	ctx := context.Background()

	release, err := f.locker.Acquire(ctx, lock.PayrollWeekKey("2024-12-18"), time.Minute)
	require.NoError(t, err)

	_, err = f.svc.Execute(ctx, payroll.ExecutePayrollRequest{WeekStartDate: "2024-12-18"})
	assert.ErrorIs(t, err, payroll.ErrPayrollInProgress)

	// Previews never take the lock.
	_, err = f.svc.Execute(ctx, payroll.ExecutePayrollRequest{WeekStartDate: "2024-12-18", Preview: true})
	assert.NoError(t, err)

	require.NoError(t, release(ctx))
	_, err = f.svc.Execute(ctx, payroll.ExecutePayrollRequest{WeekStartDate: "2024-12-18"})
	assert.NoError(t, err)
}

func TestPayrollService_GetListDelete(t *testing.T) {
	f := newPayrollFixture(time.Now())
	f.seedWeek()
	ctx := context.Background()

	created, err := f.svc.Execute(ctx, payroll.ExecutePayrollRequest{WeekStartDate: "2024-12-18"})
	require.NoError(t, err)

	got, err := f.svc.GetPayroll(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Lines, got.Lines)

	list, err := f.svc.ListPayrolls(ctx, payroll.PayrollFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 20, list.Limit)
	require.Len(t, list.Data, 1)
	assert.Equal(t, 2, list.Data[0].EmployeeCount)
	assert.True(t, list.Data[0].TotalNetPay.Equal(created.Lines[0].NetPay.Add(created.Lines[1].NetPay)))

	require.NoError(t, f.svc.DeletePayroll(ctx, created.ID))
	_, err = f.svc.GetPayroll(ctx, created.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
	assert.ErrorIs(t, f.svc.DeletePayroll(ctx, created.ID), payroll.ErrPayrollNotFound)
}

func TestPayrollService_CloseLastWeek(t *testing.T) {
	// Thursday after the 2024-12-18 week closed.
	f := newPayrollFixture(time.Date(2024, 12, 26, 9, 0, 0, 0, testLoc))
	f.seedWeek()
	ctx := context.Background()

	created, err := f.svc.CloseLastWeek(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	p, err := f.payrolls.GetActiveByStartDate(ctx, day("2024-12-18"))
	require.NoError(t, err)
	assert.Len(t, p.Lines, 2)

	created, err = f.svc.CloseLastWeek(ctx)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, f.payrolls.payrolls, 1)
}

func TestPayrollService_Export_NotFound(t *testing.T) {
	f := newPayrollFixture(time.Now())
	_, err := f.svc.Export(context.Background(), "PR00000099")
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestAggregator_Collect(t *testing.T) {
	f := newPayrollFixture(time.Now())
	f.seedWeek()

	window := timeutil.WeekWindow(day("2024-12-18"), testLoc)
	data, err := NewAggregator(f.attendances, f.absences, f.overtimes, f.bonuses, f.personal).Collect(context.Background(), window)
	require.NoError(t, err)

	assert.Len(t, data.Attendances["EMP-001"], 5)
	assert.Len(t, data.Attendances["EMP-002"], 2)
	assert.Len(t, data.PaidAbsences["EMP-002"], 1)
	assert.Len(t, data.UnjustifiedAbsences["EMP-002"], 1)
	assert.Len(t, data.Overtimes["EMP-001"], 1)
	assert.Len(t, data.Bonuses, 4)
	assert.Len(t, data.CustomBonuses["EMP-001"], 1)

	_, ok := data.Overrides.Lookup("EMP-002", "b-grocery")
	assert.True(t, ok)
	for _, attendances := range data.Attendances {
		for _, a := range attendances {
			assert.True(t, window.Contains(a.CheckInTime))
		}
	}
}
