package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/daily-wisdom/internal/domain"
)

var (
	// ErrValidation wraps struct tag failures from Validate.
	ErrValidation = errors.New("validation failed")

	// ErrBinding wraps malformed JSON bodies and query strings.
	ErrBinding = errors.New("binding failed")
)

var validate = newValidator()

// newValidator reports fields by their JSON names, so error details match
// what the client sent, and registers the project's custom tags:
//
//	notempty  string is not blank after trimming
//	quoteid   integer is a positive quote id
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "notempty", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "quoteid", func(fl validator.FieldLevel) bool {
		return fl.Field().CanInt() && fl.Field().Int() > 0
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %q validation: %v", tag, err))
	}
}

// Validator returns the shared validator.
func Validator() *validator.Validate {
	return validate
}

// Validate checks struct tags. Failures wrap ErrValidation.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

// BindAndValidate decodes the JSON body into v and validates it.
func BindAndValidate(c *gin.Context, v any) error {
	return bindThenValidate(c.ShouldBindJSON(v), v)
}

// BindQueryAndValidate decodes the query string into v and validates it.
func BindQueryAndValidate(c *gin.Context, v any) error {
	return bindThenValidate(c.ShouldBindQuery(v), v)
}

func bindThenValidate(bindErr error, v any) error {
	if bindErr != nil {
		return fmt.Errorf("%w: %w", ErrBinding, bindErr)
	}
	return Validate(v)
}

// ValidationErrors maps each failing field's JSON name to a message for the
// error envelope's details. Errors that did not come from the validator
// yield an empty map.
func ValidationErrors(err error) map[string]string {
	fields := make(map[string]string)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fields
	}

	for _, fe := range fieldErrs {
		fields[fe.Field()] = fieldMessage(fe)
	}

	return fields
}

// IsValidationError reports whether err carries validator field errors.
func IsValidationError(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

func fieldMessage(fe validator.FieldError) string {
	param := fe.Param()

	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "notempty":
		return "must not be empty"
	case "quoteid":
		return "must be a positive quote id"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + param
	case "min":
		return "must be at least " + param + unit
	case "max":
		return "must be at most " + param + unit
	case "gt":
		return "must be greater than " + param
	case "gte":
		return "must be greater than or equal to " + param
	case "lt":
		return "must be less than " + param
	case "lte":
		return "must be less than or equal to " + param
	default:
		return "failed validation: " + fe.Tag()
	}
}

// ParseQuoteID parses a quote id path parameter.
func ParseQuoteID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationErrorWithValue("id", "must be an integer", raw)
	}

	if id <= 0 {
		return 0, domain.NewValidationErrorWithValue("id", "must be positive", id)
	}

	return id, nil
}
