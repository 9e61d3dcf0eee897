package pagination

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/crud_services/pkg/apperr"
)

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

type Window struct {
	Offset int
	Limit  int
}

// FromQuery reads offset and limit from the query string. Both must be
// integers, offset >= 0 and 0 <= limit <= MaxLimit.
func FromQuery(c echo.Context) (Window, error) {
	w := Window{Offset: 0, Limit: DefaultLimit}

	var fields []apperr.FieldError
	errs := echo.QueryParamsBinder(c).
		Int("offset", &w.Offset).
		Int("limit", &w.Limit).
		BindErrors()
	for _, err := range errs {
		var be *echo.BindingError
		if errors.As(err, &be) {
			fields = append(fields, apperr.FieldError{
				Loc:  []string{"query", be.Field},
				Msg:  "value is not a valid integer",
				Type: "type_error.integer",
			})
		}
	}
	if len(errs) > 0 && len(fields) == 0 {
		return Window{}, errs[0]
	}

	fields = append(fields, w.check()...)
	if len(fields) > 0 {
		return Window{}, apperr.Invalid(fields...)
	}
	return w, nil
}

func (w Window) Validate() error {
	if fields := w.check(); len(fields) > 0 {
		return apperr.Invalid(fields...)
	}
	return nil
}

func (w Window) check() []apperr.FieldError {
	var fields []apperr.FieldError
	if w.Offset < 0 {
		fields = append(fields, notGE("offset", 0))
	}
	if w.Limit < 0 {
		fields = append(fields, notGE("limit", 0))
	}
	if w.Limit > MaxLimit {
		fields = append(fields, apperr.FieldError{
			Loc:  []string{"query", "limit"},
			Msg:  "ensure this value is less than or equal to " + strconv.Itoa(MaxLimit),
			Type: "value_error.number.not_le",
		})
	}
	return fields
}

func notGE(field string, limit int) apperr.FieldError {
	return apperr.FieldError{
		Loc:  []string{"query", field},
		Msg:  "ensure this value is greater than or equal to " + strconv.Itoa(limit),
		Type: "value_error.number.not_ge",
	}
}
