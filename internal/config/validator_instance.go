package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	searcherrors "github.com/alexisbeaulieu97/imagesearch/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their file keys, e.g. api.base_url.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("base_url", func(fl validator.FieldLevel) bool {
			return isBaseURL(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// isBaseURL accepts absolute http or https URLs with a non-empty host.
func isBaseURL(raw string) bool {
	if strings.TrimSpace(raw) != raw || raw == "" {
		return false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}

	return parsed.Host != ""
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return searcherrors.NewValidationError("config", "configuration is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

// convertValidationError normalizes validator errors into ValidationError values.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return searcherrors.NewValidationError(field, msg, err)
	}

	return searcherrors.NewValidationError("config", err.Error(), err)
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return ns
}
