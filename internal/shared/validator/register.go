package validator

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator engine is not available")
	}
	return v, nil
}

// RegisterAll registers all common validators defined in this package
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("get validator engine: %w", err)
	}

	// report json field names in validation errors
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("mediatype", ValidateMediaType); err != nil {
		return fmt.Errorf("register mediatype validator: %w", err)
	}

	slog.Info("validators registered", "validators", "mediatype")
	return nil
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
