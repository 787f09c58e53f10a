package payroll

import (
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/absence"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/attendance"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/bonus"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/employee"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/overtime"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

// Payroll is one persisted weekly run. There is at most one active payroll per StartDate.
type Payroll struct {
	ID         string
	Name       string
	StartDate  time.Time
	CutoffDate time.Time
	Lines      []Line
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Line is a denormalized snapshot of one employee's pay for the week.
type Line struct {
	EmployeeID     string             `json:"employeeId"`
	EmployeeCode   string             `json:"employeeCode"`
	EmployeeName   string             `json:"employeeName"`
	JobName        string             `json:"jobName"`
	DepartmentName string             `json:"departmentName"`
	JobScheme      employee.JobScheme `json:"jobScheme"`

	DailySalary  decimal.Decimal `json:"dailySalary"`
	DaysWorked   int             `json:"daysWorked"`
	PaidRestDays decimal.Decimal `json:"paidRestDays"`
	TotalDays    decimal.Decimal `json:"totalDays"`
	Salary       decimal.Decimal `json:"salary"`

	ExtraHours        decimal.Decimal `json:"extraHours"`
	ExtraHoursPayment decimal.Decimal `json:"extraHoursPayment"`

	PunctualityBonus decimal.Decimal `json:"punctualityBonus"`
	AttendanceBonus  decimal.Decimal `json:"attendanceBonus"`
	GroceryBonus     decimal.Decimal `json:"groceryBonus"`
	HolidayBonus     decimal.Decimal `json:"holidayBonus"`

	CustomBonuses             []CustomBonus   `json:"customBonuses"`
	CustomBonusesTotal        decimal.Decimal `json:"customBonusesTotal"`
	TaxableCustomBonusesTotal decimal.Decimal `json:"taxableCustomBonusesTotal"`

	Tardies int             `json:"tardies"`
	TaxPay  decimal.Decimal `json:"taxPay"`
	NetPay  decimal.Decimal `json:"netPay"`
}

type CustomBonus struct {
	Name    string          `json:"name"`
	Taxable bool            `json:"taxable"`
	Amount  decimal.Decimal `json:"amount"`
}

// Summary is a list row for a persisted payroll.
type Summary struct {
	ID            string
	Name          string
	StartDate     time.Time
	CutoffDate    time.Time
	EmployeeCount int
	TotalNetPay   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WindowData holds every record the engine needs for one week, grouped by employee code.
type WindowData struct {
	Window              timeutil.Window
	Attendances         map[string][]attendance.Attendance
	PaidAbsences        map[string][]absence.Absence
	UnjustifiedAbsences map[string][]absence.Absence
	Overtimes           map[string][]overtime.Overtime
	// Bonuses holds the active, enabled general bonus per slot.
	Bonuses   map[bonus.Key]*bonus.Bonus
	Overrides bonus.Overrides
	// CustomBonuses holds enabled catalog-personal-bonus grants per employee.
	CustomBonuses map[string][]bonus.PersonalBonus
}

// ExportFile is a rendered spreadsheet ready to download.
type ExportFile struct {
	Content  []byte
	FileName string
}
