package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DecodePayload strictly decodes the JSON body of r into object.
func DecodePayload(r *http.Request, object any) error {
	var err error

	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	err = decoder.Decode(object)
	if err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}

// decodeDetail describes a decoding failure as a single field error.
func decodeDetail(err error) FieldError {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.Is(err, io.EOF):
		return FieldError{Loc: []string{"body"}, Msg: "request body is empty", Type: "missing"}
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return FieldError{Loc: loc, Msg: "expected " + typeErr.Type.String() + ", got " + typeErr.Value, Type: "type_error"}
	case errors.As(err, &syntaxErr):
		return FieldError{Loc: []string{"body"}, Msg: syntaxErr.Error(), Type: "json_invalid"}
	}

	// json reports unknown fields only as text: `json: unknown field "x"`
	if _, field, ok := strings.Cut(err.Error(), "unknown field "); ok {
		return FieldError{Loc: []string{"body", strings.Trim(field, `"`)}, Msg: "extra fields not permitted", Type: "extra_forbidden"}
	}

	return FieldError{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}
}
