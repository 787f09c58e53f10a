package payroll

import (
	"context"
	"sort"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/absence"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/attendance"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/bonus"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/employee"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/overtime"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees = append(r.employees, e)
	return e, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.Code == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := r.GetByCode(ctx, code)
	return err == nil, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (r *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string) error { return nil }

// ListActive returns employees in insertion order so callers must sort.
func (r *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return append([]employee.Employee(nil), r.employees...), nil
}

type fakeAttendanceRepo struct {
	items []attendance.Attendance
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.items = append(r.items, a)
	return a, nil
}

func (r *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) ExistsOnDate(ctx context.Context, code string, date time.Time) (bool, error) {
	return false, nil
}

func (r *fakeAttendanceRepo) ListInRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, a := range r.items {
		if a.Active && inRange(a.CheckInTime, start, end) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeAttendanceRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	return r.items, nil
}

func (r *fakeAttendanceRepo) SoftDelete(ctx context.Context, id string) error { return nil }

type fakeAbsenceRepo struct {
	items []absence.Absence
}

func (r *fakeAbsenceRepo) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	r.items = append(r.items, a)
	return a, nil
}

func (r *fakeAbsenceRepo) ExistsOnDate(ctx context.Context, code string, date time.Time) (bool, error) {
	return false, nil
}

func (r *fakeAbsenceRepo) ListUnjustifiedInRange(ctx context.Context, start, end time.Time) ([]absence.Absence, error) {
	var result []absence.Absence
	for _, a := range r.items {
		if a.Active && !a.IsJustified && inRange(a.Date, start, end) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeAbsenceRepo) ListPaidInRange(ctx context.Context, start, end time.Time) ([]absence.Absence, error) {
	var result []absence.Absence
	for _, a := range r.items {
		if a.Active && a.IsPaid && inRange(a.Date, start, end) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeAbsenceRepo) List(ctx context.Context, filter absence.Filter) ([]absence.Absence, error) {
	return r.items, nil
}

func (r *fakeAbsenceRepo) SoftDelete(ctx context.Context, id string) error { return nil }

type fakeOvertimeRepo struct {
	items []overtime.Overtime
}

func (r *fakeOvertimeRepo) Create(ctx context.Context, o overtime.Overtime) (overtime.Overtime, error) {
	r.items = append(r.items, o)
	return o, nil
}

func (r *fakeOvertimeRepo) Exists(ctx context.Context, code string, startTime time.Time) (bool, error) {
	return false, nil
}

func (r *fakeOvertimeRepo) ListInRange(ctx context.Context, start, end time.Time) ([]overtime.Overtime, error) {
	var result []overtime.Overtime
	for _, o := range r.items {
		if o.Active && inRange(o.StartTime, start, end) {
			result = append(result, o)
		}
	}
	return result, nil
}

func (r *fakeOvertimeRepo) List(ctx context.Context, filter overtime.Filter) ([]overtime.Overtime, error) {
	return r.items, nil
}

func (r *fakeOvertimeRepo) SoftDelete(ctx context.Context, id string) error { return nil }

type fakeBonusRepo struct {
	items []bonus.Bonus
}

func (r *fakeBonusRepo) Create(ctx context.Context, b bonus.Bonus) (bonus.Bonus, error) {
	r.items = append(r.items, b)
	return b, nil
}

func (r *fakeBonusRepo) GetByID(ctx context.Context, id string) (bonus.Bonus, error) {
	for _, b := range r.items {
		if b.ID == id {
			return b, nil
		}
	}
	return bonus.Bonus{}, bonus.ErrBonusNotFound
}

func (r *fakeBonusRepo) ListActive(ctx context.Context, enabledOnly bool) ([]bonus.Bonus, error) {
	var result []bonus.Bonus
	for _, b := range r.items {
		if b.Active && (!enabledOnly || b.Enabled) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeBonusRepo) Update(ctx context.Context, b bonus.Bonus) (bonus.Bonus, error) { return b, nil }

func (r *fakeBonusRepo) SoftDelete(ctx context.Context, id string) error { return nil }

type fakePersonalRepo struct {
	items []bonus.PersonalBonus
}

func (r *fakePersonalRepo) Create(ctx context.Context, p bonus.PersonalBonus) (bonus.PersonalBonus, error) {
	r.items = append(r.items, p)
	return p, nil
}

func (r *fakePersonalRepo) GetByID(ctx context.Context, id string) (bonus.PersonalBonus, error) {
	return bonus.PersonalBonus{}, bonus.ErrPersonalBonusNotFound
}

func (r *fakePersonalRepo) List(ctx context.Context, filter bonus.PersonalBonusFilter) ([]bonus.PersonalBonus, error) {
	return r.items, nil
}

func (r *fakePersonalRepo) ListEnabled(ctx context.Context, entityType bonus.EntityType) ([]bonus.PersonalBonus, error) {
	var result []bonus.PersonalBonus
	for _, p := range r.items {
		if p.Active && p.Enabled && p.EntityType == entityType {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePersonalRepo) Update(ctx context.Context, p bonus.PersonalBonus) (bonus.PersonalBonus, error) {
	return p, nil
}

func (r *fakePersonalRepo) SoftDelete(ctx context.Context, id string) error { return nil }

type fakePayrollRepo struct {
	payrolls map[string]payroll.Payroll
	updates  int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{payrolls: map[string]payroll.Payroll{}}
}

func (r *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	p, ok := r.payrolls[id]
	if !ok || !p.Active {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return p, nil
}

func (r *fakePayrollRepo) GetActiveByStartDate(ctx context.Context, startDate time.Time) (payroll.Payroll, error) {
	for _, p := range r.payrolls {
		if p.Active && p.StartDate.Equal(startDate) {
			return p, nil
		}
	}
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}

func (r *fakePayrollRepo) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	if _, err := r.GetActiveByStartDate(ctx, p.StartDate); err == nil {
		return payroll.Payroll{}, payroll.ErrPayrollExists
	}
	p.Active = true
	r.payrolls[p.ID] = p
	return p, nil
}

func (r *fakePayrollRepo) UpdateRun(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	r.updates++
	r.payrolls[p.ID] = p
	return p, nil
}

func (r *fakePayrollRepo) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Summary, int64, error) {
	var result []payroll.Summary
	for _, p := range r.payrolls {
		if !p.Active {
			continue
		}
		total := decimal.Zero
		for _, l := range p.Lines {
			total = total.Add(l.NetPay)
		}
		result = append(result, payroll.Summary{
			ID:            p.ID,
			Name:          p.Name,
			StartDate:     p.StartDate,
			CutoffDate:    p.CutoffDate,
			EmployeeCount: len(p.Lines),
			TotalNetPay:   total,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDate.After(result[j].StartDate) })
	return result, int64(len(result)), nil
}

func (r *fakePayrollRepo) SoftDelete(ctx context.Context, id string) error {
	p, ok := r.payrolls[id]
	if !ok || !p.Active {
		return payroll.ErrPayrollNotFound
	}
	p.Active = false
	r.payrolls[id] = p
	return nil
}

type fakeSequenceRepo struct {
	values map[string]int64
}

func (r *fakeSequenceRepo) Consume(ctx context.Context, name string) (int64, error) {
	if r.values == nil {
		r.values = map[string]int64{}
	}
	r.values[name]++
	return r.values[name], nil
}
