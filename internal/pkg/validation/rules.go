package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/memitrading/memi/internal/app/models"
	"github.com/memitrading/memi/internal/pkg/apperrors"
	"github.com/memitrading/memi/internal/pkg/logger"
)

// Validation rule patterns
var (
	// Decimal money/rating values exchanged as strings, e.g. "499.00"
	DecimalPattern = `^-?\d{1,8}(\.\d{1,2})?$`

	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Decimal *regexp.Regexp
}{
	Decimal: regexp.MustCompile(DecimalPattern),
}

var registerOnce sync.Once

// Register installs the custom rules and json field naming on gin's validator engine.
// It is safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			logger.Error().Msg("Gin validator engine is not go-playground/validator, custom rules not installed")
			return
		}
		if err := registerOn(v); err != nil {
			logger.Error().Err(err).Msg("Failed to register custom validation rules")
		}
	})
}

type rule struct {
	tag string
	fn  validator.Func
}

func registerOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(fieldName)
	return registerRules(v, []rule{
		{"decimal", isDecimal},
		{"enrollmentstatus", isEnrollmentStatus},
		// Admin forms send blank optional fields as ""
		{"optionalemail", func(fl validator.FieldLevel) bool {
			s := strings.TrimSpace(fl.Field().String())
			return s == "" || v.Var(s, "email") == nil
		}},
	})
}

func registerRules(v *validator.Validate, rules []rule) error {
	var errs []error
	for _, r := range rules {
		if err := v.RegisterValidation(r.tag, r.fn); err != nil {
			errs = append(errs, fmt.Errorf("rule %q: %w", r.tag, err))
		}
	}
	return errors.Join(errs...)
}

// fieldName reports fields by their json name, falling back to the form name
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func isDecimal(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return CompiledPatterns.Decimal.MatchString(value)
}

// IsEnrollmentStatus reports whether s is a known enrollment status
func IsEnrollmentStatus(s string) bool {
	switch s {
	case models.EnrollmentStatusPending, models.EnrollmentStatusApproved, models.EnrollmentStatusRejected:
		return true
	}
	return false
}

func isEnrollmentStatus(fl validator.FieldLevel) bool {
	return IsEnrollmentStatus(fl.Field().String())
}

// Struct validates obj with gin's engine and returns a *apperrors.ValidationError on failure
func Struct(obj interface{}) error {
	Register()
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return FromBindingError(err)
	}
	return nil
}

// FromBindingError converts a gin binding or validator error into field-level errors
func FromBindingError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &apperrors.ValidationError{}
		for _, fe := range verrs {
			out.Add(fieldPath(fe), message(fe))
		}
		return out
	}

	// Slices of structs are validated element by element
	var sliceErrs binding.SliceValidationError
	if errors.As(err, &sliceErrs) {
		out := &apperrors.ValidationError{}
		for _, elemErr := range sliceErrs {
			var fields *apperrors.ValidationError
			if errors.As(FromBindingError(elemErr), &fields) {
				out.Fields = append(out.Fields, fields.Fields...)
			}
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return apperrors.NewValidationError(field, fmt.Sprintf("must be of type %s", typeErr.Type))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperrors.NewValidationError("body", "malformed JSON")
	}

	return apperrors.NewValidationError("body", err.Error())
}

// fieldPath drops the root struct name from the namespace: "EnrollmentRequest.email" -> "email"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "email", "optionalemail":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "decimal":
		return "must be a decimal number with at most two fraction digits"
	case "enrollmentstatus":
		return fmt.Sprintf("must be one of: %s, %s, %s", models.EnrollmentStatusPending, models.EnrollmentStatusApproved, models.EnrollmentStatusRejected)
	default:
		return "failed validation: " + fe.Tag()
	}
}
