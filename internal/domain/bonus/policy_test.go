package bonus

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestEvaluate(t *testing.T) {
	salary := d("1680")
	tests := []struct {
		name string
		rule *Rule
		want string
	}{
		{"nil rule", nil, "0"},
		{"null value", &Rule{Type: TypeAmount}, "0"},
		{"amount", &Rule{Type: TypeAmount, Value: decimal.NewNullDecimal(d("145"))}, "145"},
		{"percentage", &Rule{Type: TypePercentage, Value: decimal.NewNullDecimal(d("10"))}, "168"},
		{"fractional percentage", &Rule{Type: TypePercentage, Value: decimal.NewNullDecimal(d("2.5"))}, "42"},
		{"unknown type", &Rule{Type: Type("bogus"), Value: decimal.NewNullDecimal(d("99"))}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.rule, salary)
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestResolve_PersonalOverrideReplacesGeneral(t *testing.T) {
	general := &Bonus{ID: "b-punctuality", Key: KeyPunctuality, Type: TypePercentage, Value: d("10")}
	overrides := NewOverrides([]PersonalBonus{
		{EmployeeCode: "E1", EntityType: EntityBonus, EntityID: "b-punctuality", Type: TypeAmount, Value: d("300")},
		{EmployeeCode: "E2", EntityType: EntityBonus, EntityID: "b-other", Type: TypeAmount, Value: d("999")},
	})
	salary := d("1000")

	e1 := Resolve(general, overrides, "E1")
	assert.Equal(t, TypeAmount, e1.Type)
	assert.True(t, Evaluate(e1, salary).Equal(d("300")))

	// Others keep the general definition, including those with overrides for other bonuses.
	for _, code := range []string{"E2", "E3"} {
		r := Resolve(general, overrides, code)
		assert.Equal(t, TypePercentage, r.Type, code)
		assert.True(t, Evaluate(r, salary).Equal(d("100")), code)
	}
}

func TestResolve_NoGeneralBonus(t *testing.T) {
	overrides := NewOverrides([]PersonalBonus{{EmployeeCode: "E1", EntityID: "x", Type: TypeAmount, Value: d("5")}})
	assert.Nil(t, Resolve(nil, overrides, "E1"))
	assert.True(t, Evaluate(Resolve(nil, overrides, "E1"), d("100")).IsZero())
}

func TestCreateBonusRequest_Validate(t *testing.T) {
	valid := CreateBonusRequest{Key: KeyGrocery, Name: "Despensa", Type: TypeAmount, Value: d("145")}
	assert.NoError(t, valid.Validate())

	overtimePct := CreateBonusRequest{Key: KeyOvertime, Name: "Horas extra", Type: TypePercentage, Value: d("10")}
	assert.Error(t, overtimePct.Validate())

	tooHigh := CreateBonusRequest{Key: KeyAttendance, Name: "Asistencia", Type: TypePercentage, Value: d("101")}
	assert.Error(t, tooHigh.Validate())

	unknown := CreateBonusRequest{Key: Key("vacation"), Name: "x", Type: TypeAmount, Value: d("1")}
	assert.Error(t, unknown.Validate())
}
