package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance for request structs.
var Validate = validator.New()

// ErrEmptyBody is returned by DecodeJSON when the request carries no
// usable body: absent, empty, or a literal JSON null.
var ErrEmptyBody = errors.New("request body is empty")

// jsonNull is the literal null payload, which decodes into a struct as
// a silent no-op and therefore has to be caught explicitly.
var jsonNull = []byte("null")

// DecodeJSON decodes the request body into the given struct.
// An absent body and a literal JSON null are both reported as
// ErrEmptyBody so handlers can map them to a 400 response distinct
// from malformed JSON.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}

	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return ErrEmptyBody
	}

	return json.Unmarshal(raw, v)
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	return Validate.Struct(v)
}
