package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/crud_services/pkg/apperr"
)

// Validator adapts go-playground/validator to echo.Validator and reports
// failures as *apperr.ValidationError keyed by JSON field name.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return &Validator{v: v}
}

var std = New()

// Struct checks v against its validate tags outside an echo request.
func Struct(v any) error {
	return std.Validate(v)
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func (cv *Validator) Validate(i any) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fieldError(fe))
	}
	return apperr.Invalid(fields...)
}

func fieldError(fe validator.FieldError) apperr.FieldError {
	loc := []string{"body", fe.Field()}
	switch fe.Tag() {
	case "required":
		return apperr.Missing(loc...)
	default:
		return apperr.FieldError{Loc: loc, Msg: "failed on the '" + fe.Tag() + "' rule", Type: "value_error." + fe.Tag()}
	}
}

// BindBody decodes the JSON request body into dst and validates it. Decode
// failures come back as *apperr.ValidationError too.
func BindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return bindError(err)
	}
	return c.Validate(dst)
}

func bindError(err error) error {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		loc := []string{"body"}
		if ute.Field != "" {
			loc = append(loc, strings.Split(ute.Field, ".")...)
		}
		return apperr.Invalid(apperr.FieldError{
			Loc:  loc,
			Msg:  "value is not a valid " + typeName(ute.Type),
			Type: "type_error." + typeName(ute.Type),
		})
	}

	var se *json.SyntaxError
	if errors.As(err, &se) {
		return apperr.Invalid(apperr.FieldError{Loc: []string{"body"}, Msg: "JSON decode error", Type: "value_error.jsondecode"})
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == 400 {
		return apperr.Invalid(apperr.FieldError{Loc: []string{"body"}, Msg: "invalid body", Type: "value_error"})
	}
	return err
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.String:
		return "str"
	case reflect.Bool:
		return "bool"
	}
	return t.Kind().String()
}
