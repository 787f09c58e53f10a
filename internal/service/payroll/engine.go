package payroll

import (
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/bonus"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/employee"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/payroll"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

// DefaultHolidays is used when no holiday list is configured.
var DefaultHolidays = []string{"2024-12-25"}

// punctualityTardyLimit is the number of late check-ins that cancels the punctuality bonus.
const punctualityTardyLimit = 2

var holidayMultiplier = decimal.NewFromInt(2)

// Holidays is a set of "YYYY-MM-DD" dates paid at triple rate.
type Holidays map[string]struct{}

func NewHolidays(dates []string) Holidays {
	if len(dates) == 0 {
		dates = DefaultHolidays
	}
	h := make(Holidays, len(dates))
	for _, d := range dates {
		h[d] = struct{}{}
	}
	return h
}

func (h Holidays) Contains(date string) bool {
	_, ok := h[date]
	return ok
}

// restDayDivisor is the number of working days that earn seven days of pay.
func restDayDivisor(scheme employee.JobScheme) int64 {
	if scheme == employee.SchemeFiveDays {
		return 5
	}
	return 6
}

func cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ComputeLine calculates one employee's pay for the week in data. It has no side effects.
func ComputeLine(emp employee.Employee, data payroll.WindowData, holidays Holidays) payroll.Line {
	code := emp.Code
	attendances := data.Attendances[code]
	paidAbsences := data.PaidAbsences[code]
	unjustified := data.UnjustifiedAbsences[code]
	overtimes := data.Overtimes[code]

	daysWorked := len(attendances) + len(paidAbsences)
	paidRestDays := decimal.NewFromInt(int64(daysWorked * 7)).Div(decimal.NewFromInt(restDayDivisor(emp.JobScheme))).Round(2)
	totalDays := decimal.NewFromInt(int64(daysWorked)).Add(paidRestDays)
	salary := cents(emp.DailySalary.Mul(totalDays))

	extraHours := decimal.Zero
	for _, o := range overtimes {
		extraHours = extraHours.Add(o.Hours)
	}
	extraHours = extraHours.Round(2)

	// The overtime bonus is an hourly rate, not a flat or percentage bonus.
	hourlyRate := decimal.Zero
	if rule := bonus.Resolve(data.Bonuses[bonus.KeyOvertime], data.Overrides, code); rule != nil && rule.Value.Valid {
		hourlyRate = rule.Value.Decimal
	}
	extraHoursPayment := cents(extraHours.Mul(hourlyRate))

	tardies := 0
	holidayDays := 0
	for _, a := range attendances {
		if a.IsLate {
			tardies++
		}
		if holidays.Contains(a.CheckInDate.Format(timeutil.DateLayout)) {
			holidayDays++
		}
	}

	evaluate := func(key bonus.Key) decimal.Decimal {
		return cents(bonus.Evaluate(bonus.Resolve(data.Bonuses[key], data.Overrides, code), salary))
	}

	attendanceBonus := decimal.Zero
	if len(unjustified) == 0 {
		attendanceBonus = evaluate(bonus.KeyAttendance)
	}
	punctualityBonus := decimal.Zero
	if tardies < punctualityTardyLimit {
		punctualityBonus = evaluate(bonus.KeyPunctuality)
	}
	groceryBonus := evaluate(bonus.KeyGrocery)
	holidayBonus := cents(decimal.NewFromInt(int64(holidayDays)).Mul(emp.DailySalary).Mul(holidayMultiplier))

	custom := make([]payroll.CustomBonus, 0, len(data.CustomBonuses[code]))
	customTotal, taxableCustomTotal := decimal.Zero, decimal.Zero
	for _, p := range data.CustomBonuses[code] {
		amount := cents(bonus.Evaluate(p.Rule(), salary))
		custom = append(custom, payroll.CustomBonus{Name: p.Name, Taxable: p.Taxable, Amount: amount})
		customTotal = customTotal.Add(amount)
		if p.Taxable {
			taxableCustomTotal = taxableCustomTotal.Add(amount)
		}
	}

	// Grocery is neither taxable nor part of net pay.
	base := salary.Add(extraHoursPayment).Add(attendanceBonus).Add(punctualityBonus).Add(holidayBonus)

	return payroll.Line{
		EmployeeID:     emp.ID,
		EmployeeCode:   code,
		EmployeeName:   emp.FullName(),
		JobName:        emp.JobName,
		DepartmentName: emp.DepartmentName,
		JobScheme:      emp.JobScheme,

		DailySalary:  emp.DailySalary,
		DaysWorked:   daysWorked,
		PaidRestDays: paidRestDays,
		TotalDays:    totalDays,
		Salary:       salary,

		ExtraHours:        extraHours,
		ExtraHoursPayment: extraHoursPayment,

		PunctualityBonus: punctualityBonus,
		AttendanceBonus:  attendanceBonus,
		GroceryBonus:     groceryBonus,
		HolidayBonus:     holidayBonus,

		CustomBonuses:             custom,
		CustomBonusesTotal:        customTotal,
		TaxableCustomBonusesTotal: taxableCustomTotal,

		Tardies: tardies,
		TaxPay:  base.Add(taxableCustomTotal),
		NetPay:  base.Add(customTotal),
	}
}
