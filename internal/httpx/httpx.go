package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

func DecodeJSON(body io.Reader, v interface{}) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}

// ParsePageLimit reads page/limit query parameters. Missing, non-numeric or
// non-positive values fall back to the defaults instead of failing the request.
func ParsePageLimit(values url.Values) (page, limit int) {
	page = DefaultPage
	limit = DefaultLimit

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// ValidationMessage flattens validator errors into one envelope-friendly string.
func ValidationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		parts = append(parts, err.Field()+" ("+err.Tag()+")")
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
