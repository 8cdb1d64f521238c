package shared

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance for request structs.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// notblank rejects strings that are empty or whitespace-only, which the
	// builtin required tag does not.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// DecodeJSON decodes the request body into the given struct.
// Unknown fields are tolerated; type mismatches and malformed JSON are not.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
