package postgresql

import (
	"fmt"
	"strings"
)

// whereBuilder accumulates AND-ed conditions with numbered placeholders.
// Conditions use a single %s for the placeholder, e.g. "employee_code = %s".
type whereBuilder struct {
	conds []string
	args  []any
}

func newWhere(base ...string) *whereBuilder {
	return &whereBuilder{conds: append([]string(nil), base...)}
}

func (w *whereBuilder) add(cond string, arg any) *whereBuilder {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, fmt.Sprintf("$%d", len(w.args))))
	return w
}

// addIf adds cond only when arg is a non-nil pointer.
func addIf[T any](w *whereBuilder, cond string, arg *T) *whereBuilder {
	if arg == nil {
		return w
	}
	return w.add(cond, *arg)
}

func (w *whereBuilder) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
