package httpv1

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Egor213/LogHandler/internal/service"
	"github.com/go-playground/validator/v10"
)

// RequestValidator checks the shape of bound path and query parameters.
// Semantic checks stay in the service layer.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"param", "query"} {
			if name := strings.Split(f.Tag.Get(tag), ",")[0]; name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", service.ErrInvalidPayload, err)
	}

	fe := verrs[0]
	return fmt.Errorf("%w: %s", kindForField(fe.Field(), fe.Tag()), describe(fe))
}

func kindForField(field, tag string) error {
	switch field {
	case "app_id":
		return service.ErrUnknownApplication
	case "limit":
		return service.ErrInvalidLimit
	case "offset":
		return service.ErrInvalidOffset
	case "since", "until":
		if tag == "required" {
			return service.ErrInvalidTimeRange
		}
		return service.ErrInvalidTimestamp
	}
	return service.ErrInvalidPayload
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "number":
		return fmt.Sprintf("%s must be a non-negative integer, got %q", fe.Field(), fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %q check", fe.Field(), fe.Tag())
}
