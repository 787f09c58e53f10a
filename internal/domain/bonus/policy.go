package bonus

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Evaluate returns the monetary amount of rule for salary: the flat value for amount rules,
// value percent of salary for percentage rules and zero otherwise.
func Evaluate(rule *Rule, salary decimal.Decimal) decimal.Decimal {
	if rule == nil || !rule.Value.Valid {
		return decimal.Zero
	}
	switch rule.Type {
	case TypeAmount:
		return rule.Value.Decimal
	case TypePercentage:
		return rule.Value.Decimal.Div(hundred).Mul(salary)
	default:
		return decimal.Zero
	}
}

type overrideKey struct {
	employeeCode string
	entityID     string
}

// Overrides indexes personal bonuses by (employee, parent entity).
type Overrides map[overrideKey]PersonalBonus

func NewOverrides(personal []PersonalBonus) Overrides {
	o := make(Overrides, len(personal))
	for _, p := range personal {
		o[overrideKey{employeeCode: p.EmployeeCode, entityID: p.EntityID}] = p
	}
	return o
}

func (o Overrides) Lookup(employeeCode, entityID string) (PersonalBonus, bool) {
	p, ok := o[overrideKey{employeeCode: employeeCode, entityID: entityID}]
	return p, ok
}

// Resolve picks the rule that applies to employeeCode for a general bonus slot.
// A personal override replaces the general bonus entirely; a nil general bonus yields nil.
func Resolve(general *Bonus, overrides Overrides, employeeCode string) *Rule {
	if general == nil {
		return nil
	}
	if p, ok := overrides.Lookup(employeeCode, general.ID); ok {
		return p.Rule()
	}
	return general.Rule()
}
