package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/hsbooks/internal/errs"
)

const maxBodyBytes = 10 << 20

// newValidator checks records against their validate tags. Money and dates
// are compared as float64 and "YYYY-MM-DD" strings.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(civil.Date); ok && d.IsValid() {
			return d.String()
		}
		return ""
	}, civil.Date{})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeRecord reads a JSON body into T and validates it.
func decodeRecord[T any](w http.ResponseWriter, r *http.Request, v *validator.Validate) (T, error) {
	var rec T
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&rec); err != nil {
		return rec, errs.NewValidationError("invalid request body: " + err.Error())
	}
	if err := v.Struct(rec); err != nil {
		return rec, validationError(err)
	}
	return rec, nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.NewValidationError(err.Error())
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
	}
	return errs.NewValidationError(strings.Join(msgs, "; "))
}
