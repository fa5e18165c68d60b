package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	slidererrors "github.com/alexisbeaulieu97/rangeslider/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML keys.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		// Rejects NaN and infinities, which YAML spells .nan and .inf.
		_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			f := fl.Field()
			if !f.CanFloat() {
				return true
			}
			x := f.Float()
			return !math.IsNaN(x) && !math.IsInf(x, 0)
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return slidererrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Range.Lower != nil && cfg.Range.Upper != nil && *cfg.Range.Lower > *cfg.Range.Upper {
		return slidererrors.NewValidationError("range.lower", fmt.Sprintf("must not exceed range.upper (%g > %g)", *cfg.Range.Lower, *cfg.Range.Upper), nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return slidererrors.NewValidationError(field, describe(ve), err)
	}

	return slidererrors.NewValidationError("config", err.Error(), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gtfield":
		return fmt.Sprintf("must be greater than %s", strings.ToLower(fe.Param()))
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "finite":
		return "must be a finite number"
	case "hexcolor":
		return fmt.Sprintf("%q is not a hex color", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

// yamlishFieldName drops the root struct name from the namespace, so
// "Config.range.maximum" becomes "range.maximum".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
