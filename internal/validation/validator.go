package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/etwmath/internal/domain"
)

// Tag applied to every formula argument
const positiveTag = "finite,gt=0"

// Validator checks formula arguments and tagged structs
type Validator interface {
	Positive(values ...float64) error
	Struct(s interface{}) error
}

type numericValidator struct {
	validate *validator.Validate
}

var (
	defaultValidator Validator
	initOnce         sync.Once
)

// New creates a validator with the custom numeric tags registered
func New() Validator {
	v := validator.New()

	// Register custom validation rejecting NaN and ±Inf
	_ = v.RegisterValidation("finite", validateFinite)

	return &numericValidator{validate: v}
}

// Default returns the shared validator instance. validator.Validate is safe for concurrent use.
func Default() Validator {
	initOnce.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// Positive reports ErrInvalidInput unless at least one value is supplied and
// every value is a finite number strictly greater than zero
func Positive(values ...float64) error {
	return Default().Positive(values...)
}

// Struct validates a struct using its `validate` tags
func Struct(s interface{}) error {
	return Default().Struct(s)
}

func (v *numericValidator) Positive(values ...float64) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: no arguments supplied", domain.ErrInvalidInput)
	}
	for i, value := range values {
		if err := v.validate.Var(value, positiveTag); err != nil {
			return fmt.Errorf("%w: argument %d (%v) %s", domain.ErrInvalidInput, i+1, value, describe(err))
		}
	}
	return nil
}

func (v *numericValidator) Struct(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, describe(err))
	}
	return nil
}

// Commas are only accepted as thousands separators: 7,000,000.5
var groupedNumber = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d*)?$`)

// ParseNumber converts a textual argument; text that is not a number is invalid input
func ParseNumber(s string) (float64, error) {
	text := strings.TrimSpace(s)
	if strings.Contains(text, ",") {
		if !groupedNumber.MatchString(text) {
			return 0, fmt.Errorf("%w: %q has misplaced thousands separators", domain.ErrInvalidInput, s)
		}
		text = strings.ReplaceAll(text, ",", "")
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, s)
	}
	return value, nil
}

// describe turns validator errors into short human readable reasons
func describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	reasons := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		var reason string
		switch e.Tag() {
		case "finite":
			reason = "must be a finite number"
		case "gt":
			reason = fmt.Sprintf("must be greater than %s", e.Param())
		case "required":
			reason = "is required"
		case "oneof":
			reason = fmt.Sprintf("must be one of [%s]", e.Param())
		default:
			reason = "is invalid"
		}
		if field != "" {
			reason = field + " " + reason
		}
		reasons = append(reasons, reason)
	}
	return strings.Join(reasons, "; ")
}

// Custom validation function for finite floats
func validateFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}
