package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// intURLParam reads a numeric path segment
func intURLParam(r *http.Request, name string) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, validator.ValidationErrors{{Field: name, Message: "must be a number"}}
	}
	return n, nil
}

// intQueryParam reads an optional numeric query parameter
func intQueryParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validator.ValidationErrors{{Field: name, Message: "must be a number"}}
	}
	return &n, nil
}

// requiredIntQueryParam is intQueryParam for parameters that must be present
func requiredIntQueryParam(r *http.Request, name string) (int, error) {
	n, err := intQueryParam(r, name)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return 0, validator.ValidationErrors{{Field: name, Message: "is required"}}
	}
	return *n, nil
}
