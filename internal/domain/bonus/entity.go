package bonus

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeAmount     Type = "amount"
	TypePercentage Type = "percentage"
)

// Key names the four general bonus slots used by payroll.
type Key string

const (
	KeyOvertime    Key = "overtime"
	KeyAttendance  Key = "attendance"
	KeyPunctuality Key = "punctuality"
	KeyGrocery     Key = "grocery"
)

var Keys = []Key{KeyOvertime, KeyAttendance, KeyPunctuality, KeyGrocery}

// EntityType is the kind of parent a PersonalBonus overrides or instantiates.
type EntityType string

const (
	EntityBonus                EntityType = "bonus"
	EntityCatalogPersonalBonus EntityType = "catalog-personal-bonus"
)

// Rule is the {type, value} pair evaluated against a salary. An invalid Value evaluates to zero.
type Rule struct {
	Type  Type
	Value decimal.NullDecimal
}

// Bonus is a general bonus applied to every employee unless overridden.
type Bonus struct {
	ID        string
	Key       Key
	Name      string
	Type      Type
	Value     decimal.Decimal
	Enabled   bool
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b Bonus) Rule() *Rule {
	return &Rule{Type: b.Type, Value: decimal.NewNullDecimal(b.Value)}
}

// CatalogBonus is a named custom bonus that is granted per employee.
type CatalogBonus struct {
	ID          string
	Name        string
	Description string
	Taxable     bool
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PersonalBonus struct {
	ID           string
	EmployeeCode string
	EntityType   EntityType
	EntityID     string
	Type         Type
	Value        decimal.Decimal
	Enabled      bool
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined from the catalog entry for catalog-personal-bonus rows
	Name    string
	Taxable bool
}

func (p PersonalBonus) Rule() *Rule {
	return &Rule{Type: p.Type, Value: decimal.NewNullDecimal(p.Value)}
}
