package httpx

import (
	"net/url"
	"strings"
	"testing"
)

func parseQuery(t *testing.T, raw string) url.Values {
	values, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	return values
}

func TestParsePageLimitDefaults(t *testing.T) {
	page, limit := ParsePageLimit(parseQuery(t, ""))
	if page != 1 || limit != 10 {
		t.Fatalf("expected 1/10, got %d/%d", page, limit)
	}
}

func TestParsePageLimitValues(t *testing.T) {
	page, limit := ParsePageLimit(parseQuery(t, "page=3&limit=25"))
	if page != 3 || limit != 25 {
		t.Fatalf("expected 3/25, got %d/%d", page, limit)
	}
}

func TestParsePageLimitGarbageFallsBack(t *testing.T) {
	page, limit := ParsePageLimit(parseQuery(t, "page=abc&limit=-3"))
	if page != 1 || limit != 10 {
		t.Fatalf("expected 1/10, got %d/%d", page, limit)
	}
}

func TestParsePageLimitZeroFallsBack(t *testing.T) {
	page, limit := ParsePageLimit(parseQuery(t, "page=0&limit=0"))
	if page != 1 || limit != 10 {
		t.Fatalf("expected 1/10, got %d/%d", page, limit)
	}
}

func TestParsePageLimitCapped(t *testing.T) {
	_, limit := ParsePageLimit(parseQuery(t, "limit=5000"))
	if limit != MaxLimit {
		t.Fatalf("expected %d, got %d", MaxLimit, limit)
	}
}

func TestDecodeJSONRejectsTrailing(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(strings.NewReader(`{"name":"a"}{"name":"b"}`), &out)
	if err == nil {
		t.Fatalf("expected error for multiple objects")
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	err := DecodeJSON(strings.NewReader(`{"name":"a","bogus":1}`), &out)
	if err == nil {
		t.Fatalf("expected error for unknown field")
	}
}
