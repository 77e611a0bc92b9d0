// Package bind decodes request bodies and validates them with translated messages
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	perr "bulletpoints/internal/platform/errors"
	"bulletpoints/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// MaxBody caps every request body the api and the form accept
const MaxBody int64 = 1 << 20

// Validator pairs the validate engine with its english translator
type Validator struct {
	v     *validator.Validate
	trans ut.Translator
}

var shared = sync.OnceValue(func() *Validator {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())

	// messages name the json key, not the go field
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = en_translations.RegisterDefaultTranslations(v, trans)
	registerUTF8(v, trans)

	return &Validator{v: v, trans: trans}
})

// Get returns the process wide validator
func Get() *Validator { return shared() }

// Struct validates s and returns the first failure as a validation error naming its field
func (x *Validator) Struct(s any) error {
	err := x.v.Struct(s)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.JSONErrf("validation error")
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return perr.WithField(perr.Validationf("%s", fe.Translate(x.trans)), fe.Field())
	}
	return perr.Validationf("%s", err.Error())
}

// Field validates a single value against tag, reporting failures under field
func (x *Validator) Field(field string, value any, tag string) error {
	err := x.v.Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		// Var leaves the field name empty, so the message starts with a space
		msg := field + verrs[0].Translate(x.trans)
		return perr.WithField(perr.Validationf("%s", msg), field)
	}
	return perr.WithField(perr.Validationf("%s", err.Error()), field)
}

// ParseJSON decodes exactly one JSON document of at most MaxBody bytes into T and validates it.
// Unknown keys are rejected
func ParseJSON[T any](r *http.Request) (T, error) {
	var zero T
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("closing request body")
		}
	}()

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBody))
	dec.DisallowUnknownFields()

	var dst T
	if err := dec.Decode(&dst); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return zero, perr.JSONErrf("empty body")
		case errors.As(err, &tooBig):
			return zero, perr.TooLargef("request body exceeds %d bytes", tooBig.Limit)
		default:
			return zero, perr.JSONErrf("invalid JSON: %v", err)
		}
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Get().Struct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

func registerUTF8(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("utf8", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		return ok && utf8.ValidString(s)
	})
	_ = v.RegisterTranslation("utf8", trans,
		func(t ut.Translator) error {
			return t.Add("utf8", "{0} must be valid UTF-8 text", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("utf8", fe.Field())
			return msg
		},
	)
}
