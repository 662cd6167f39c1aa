package payload

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/jellydator/validation"
)

const BlankFieldsMessage = "one or more required fields are blank"

type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError carries one entry per rejected field of a request.
type ValidationError struct {
	Detail []FieldError
	err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", BlankFieldsMessage, e.err)
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

type DecodeValidator struct{}

// DecodeJSONPayload decodes the body of r into object and validates it.
// Every failure is returned as a *ValidationError.
func (dv DecodeValidator) DecodeJSONPayload(r *http.Request, object any) error {
	if err := DecodePayload(r, object); err != nil {
		return &ValidationError{
			Detail: []FieldError{decodeDetail(err)},
			err:    err,
		}
	}

	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	err := t.Validate()
	if err == nil {
		return nil
	}

	return &ValidationError{
		Detail: validationDetail(err),
		err:    fmt.Errorf("validating payload: %w", err),
	}
}

func validationDetail(err error) []FieldError {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []FieldError{{Loc: []string{"body"}, Msg: err.Error(), Type: errorType(err)}}
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	detail := make([]FieldError, 0, len(fields))
	for _, field := range fields {
		detail = append(detail, FieldError{
			Loc:  []string{"body", field},
			Msg:  fieldErrs[field].Error(),
			Type: errorType(fieldErrs[field]),
		})
	}

	return detail
}

func errorType(err error) string {
	var vErr validation.Error
	if errors.As(err, &vErr) {
		return vErr.Code()
	}
	return "value_error"
}
