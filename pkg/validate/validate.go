// Package validate provides a simple way to validate and parse data
// from HTTP requests: JSON bodies, URL search params, and route-param
// bags. Route params compose with body/query validation by plain
// structural assignment; there is no special-casing between sources.
package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Validate is a wrapper around the go-playground/validator package.
type Validate struct {
	Instance *validator.Validate
}

func New() *Validate {
	return &Validate{Instance: validator.New()}
}

const ValidationErrorPrefix = "validation error: "

// IsValidationError returns true if the error came from struct
// validation rather than decoding.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := err.Error()
	if len(errMsg) < len(ValidationErrorPrefix) {
		return false
	}
	return errMsg[:len(ValidationErrorPrefix)] == ValidationErrorPrefix
}

// JSONBodyInto decodes the JSON body of an HTTP request into a struct
// and validates it.
func (v *Validate) JSONBodyInto(body io.ReadCloser, destStructPtr any) error {
	if err := json.NewDecoder(body).Decode(destStructPtr); err != nil {
		return fmt.Errorf("error decoding JSON: %w", err)
	}
	if err := v.Instance.Struct(destStructPtr); err != nil {
		return fmt.Errorf(ValidationErrorPrefix+"%w", err)
	}
	return nil
}

// JSONBytesInto decodes a byte slice containing JSON data into a struct
// and validates it.
func (v *Validate) JSONBytesInto(data []byte, destStructPtr any) error {
	if err := json.Unmarshal(data, destStructPtr); err != nil {
		return fmt.Errorf("error decoding JSON: %w", err)
	}
	if err := v.Instance.Struct(destStructPtr); err != nil {
		return fmt.Errorf(ValidationErrorPrefix+"%w", err)
	}
	return nil
}

// URLSearchParamsInto parses the URL query of an HTTP request into a
// struct and validates it.
func (v *Validate) URLSearchParamsInto(r *http.Request, destStructPtr any) error {
	values := make(map[string]string, len(r.URL.Query()))
	for key, vals := range r.URL.Query() {
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}
	if err := bindStringMap(values, destStructPtr); err != nil {
		return fmt.Errorf("error parsing URL parameters: %w", err)
	}
	if err := v.Instance.Struct(destStructPtr); err != nil {
		return fmt.Errorf(ValidationErrorPrefix+"%w", err)
	}
	return nil
}

// ParamsInto binds a route-params bag (as returned by the router
// wrapper) into a struct and validates it. Slice fields receive the
// value split on "/", matching how routers serialize multi-segment
// captures.
func (v *Validate) ParamsInto(params map[string]string, destStructPtr any) error {
	if err := bindStringMap(params, destStructPtr); err != nil {
		return fmt.Errorf("error parsing route params: %w", err)
	}
	if err := v.Instance.Struct(destStructPtr); err != nil {
		return fmt.Errorf(ValidationErrorPrefix+"%w", err)
	}
	return nil
}
