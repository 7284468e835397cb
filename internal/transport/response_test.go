package transport

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteListIncludesEmptyData(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteList(rec, []string{}, 1, 10, 0)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"data":[]`) {
		t.Fatalf("expected empty data array in %q", body)
	}

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success {
		t.Fatalf("expected success envelope")
	}
	if env.Pagination == nil || env.Pagination.TotalPages != 0 {
		t.Fatalf("unexpected pagination %+v", env.Pagination)
	}
}

func TestWriteErrorShape(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 404, "account not found")

	if rec.Code != 404 {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Success {
		t.Fatalf("expected success=false")
	}
	if env.Error != "account not found" {
		t.Fatalf("unexpected error %q", env.Error)
	}
	if env.Data != nil {
		t.Fatalf("expected no data, got %v", env.Data)
	}
}

func TestNewPaginationCeil(t *testing.T) {
	p := NewPagination(2, 10, 21)
	if p.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages)
	}
	p = NewPagination(1, 10, 20)
	if p.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", p.TotalPages)
	}
	p = NewPagination(1, 10, 0)
	if p.TotalPages != 0 {
		t.Fatalf("expected 0 pages, got %d", p.TotalPages)
	}
}
