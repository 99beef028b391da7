package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"inventory-rest-api/pkg/apierror"
)

// maxBodyBytes bounds request bodies read by Validate.
const maxBodyBytes = 1 << 20

// Normalizer is implemented by bodies that clean up their fields (trimming,
// case folding) before validation.
type Normalizer interface {
	Normalize()
}

// Validator checks decoded bodies against their `validate` struct tags and
// reports violations by JSON field name.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that names fields by their json tag.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s and returns a 400 listing every violated constraint.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	details := make([]apierror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apierror.FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return apierror.ValidationError("Invalid request body", details...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return "failed the " + fe.Tag() + " check"
}

// Validate decodes the JSON body into a T, normalizes it when T implements
// Normalizer, and validates it. The decoded *T is stored in Request.Body.
func Validate[T any](v *Validator) Gate {
	return func(req *Request) error {
		body := new(T)

		dec := json.NewDecoder(http.MaxBytesReader(nil, req.Request.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(body); err != nil {
			return decodeError(err)
		}
		if dec.More() {
			return apierror.BadRequest("Request body must contain a single JSON object")
		}

		if n, ok := any(body).(Normalizer); ok {
			n.Normalize()
		}

		if err := v.Struct(body); err != nil {
			return err
		}

		req.Body = body
		return nil
	}
}

func decodeError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError

	switch {
	case errors.Is(err, io.EOF):
		return apierror.BadRequest("Request body is required")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apierror.BadRequest("Request body is not valid JSON")
	case errors.As(err, &typeErr):
		return apierror.ValidationError("Invalid request body", apierror.FieldError{
			Field:   typeErr.Field,
			Message: "must be " + kindName(typeErr.Type.Kind()),
		})
	case errors.As(err, &maxErr):
		return apierror.BadRequest("Request body is too large")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return apierror.ValidationError("Invalid request body", apierror.FieldError{
			Field:   field,
			Message: "is not allowed",
		})
	}
	return apierror.BadRequest("Invalid request body")
}

func kindName(k reflect.Kind) string {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	}
	return "a " + k.String()
}
