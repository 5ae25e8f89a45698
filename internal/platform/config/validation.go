package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their koanf keys, so messages name the same
// key an operator sets in YAML or as an APP_ variable.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("koanf")
	})
	return v
}()

// Validate checks every field and cross-field rule and reports all
// failures at once. The service must not start with an invalid config.
func (c *Config) Validate() error {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			problems = append(problems, describe(fe))
		}
	}

	// Every quote the random endpoint can return must be reachable by a scan.
	if c.Resolver.PageSize*c.Resolver.MaxPages < c.Quotes.PageLimit*c.Quotes.RandomPageMax {
		problems = append(problems,
			"resolver.max_pages * resolver.page_size must cover quotes.random_page_max * quotes.page_limit")
	}

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(problems, "\n  "))
}

func describe(fe validator.FieldError) string {
	key := keyPath(fe.Namespace())
	param := strings.ToLower(fe.Param())

	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", key, param)
	case "required_with":
		return fmt.Sprintf("%s is required when %s is set", key, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", key, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", key, fe.Param())
	case "url":
		return key + " must be a valid URL"
	default:
		return fmt.Sprintf("%s failed validation: %s", key, fe.Tag())
	}
}

// keyPath drops the root struct name: "Config.server.read_timeout" becomes
// "server.read_timeout".
func keyPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
