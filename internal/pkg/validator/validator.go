package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/timeutil"
	playground "github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

var (
	engine     *playground.Validate
	engineOnce sync.Once
)

// Engine returns the shared struct validator. Field names come from json tags.
func Engine() *playground.Validate {
	engineOnce.Do(func() {
		engine = playground.New()
		engine.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return engine
}

// Struct validates `validate` tags on s and converts failures into ValidationErrors.
func Struct(s any) error {
	err := Engine().Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	result := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result = append(result, ValidationError{Field: fe.Field(), Message: describe(fe)})
	}
	return result
}

var titleCaser = cases.Title(language.English)

var wordBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// humanize turns "dailySalary" into "Daily Salary".
func humanize(field string) string {
	return titleCaser.String(wordBoundary.ReplaceAllString(field, "$1 $2"))
}

func describe(fe playground.FieldError) string {
	name := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "oneof":
		return name + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return name + " must be greater than " + fe.Param()
	case "gte":
		return name + " must be at least " + fe.Param()
	case "lte":
		return name + " must be at most " + fe.Param()
	case "max":
		return name + " must be at most " + fe.Param() + " characters"
	default:
		return name + " is invalid"
	}
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

var payrollIDRegex = regexp.MustCompile(`^PR\d{8}$`)

func IsValidPayrollID(id string) bool {
	return payrollIDRegex.MatchString(id)
}

var employeeCodeRegex = regexp.MustCompile(`^[A-Za-z0-9-]{1,20}$`)

func IsValidEmployeeCode(code string) bool {
	return employeeCodeRegex.MatchString(code)
}

// Date validation in the given location; a nil loc checks the format only.
func IsValidDate(dateStr string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	date, err := time.ParseInLocation(timeutil.DateLayout, dateStr, loc)
	return date, err == nil
}

// IsValidDateTime parses "YYYY-MM-DD HH:mm:ss" wall-clock values in loc.
func IsValidDateTime(dateTimeStr string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(timeutil.DateTimeLayout, dateTimeStr, loc)
	return t, err == nil
}

var clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// IsValidClock checks a "HH:MM" time of day.
func IsValidClock(s string) bool {
	return clockRegex.MatchString(s)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// DateRange resolves optional "YYYY-MM-DD" bounds into midnights in loc.
// Both bounds are inclusive calendar days; To must not precede From.
func DateRange(from, to *string, loc *time.Location) (*time.Time, *time.Time, error) {
	var errs ValidationErrors
	parse := func(field string, s *string) *time.Time {
		if s == nil || *s == "" {
			return nil
		}
		d, ok := IsValidDate(*s, loc)
		if !ok {
			errs = append(errs, ValidationError{Field: field, Message: field + " must use YYYY-MM-DD"})
			return nil
		}
		return &d
	}

	start := parse("from", from)
	end := parse("to", to)
	if start != nil && end != nil && end.Before(*start) {
		errs = append(errs, ValidationError{Field: "to", Message: "to must not be before from"})
	}
	if len(errs) > 0 {
		return nil, nil, errs
	}
	return start, end, nil
}
