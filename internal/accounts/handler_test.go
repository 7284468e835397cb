package accounts

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"crm-backend/internal/validation"
)

func newTestRouter(repo Repository) chi.Router {
	h := NewHandler(NewService(repo), validation.New(), slog.New(slog.DiscardHandler))
	r := chi.NewRouter()
	r.Get("/accounts", h.List)
	r.Post("/accounts", h.Create)
	r.Get("/accounts/{id}", h.GetByID)
	r.Put("/accounts/{id}", h.Update)
	r.Delete("/accounts/{id}", h.Delete)
	return r
}

type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Error      string          `json:"error"`
	Pagination *struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"totalPages"`
	} `json:"pagination"`
}

func doRequest(t *testing.T, r chi.Router, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func TestCreateAccountEndpoint(t *testing.T) {
	r := newTestRouter(newFakeRepo())

	rec, env := doRequest(t, r, http.MethodPost, "/accounts",
		`{"accountName":"Acme","industry":"Technology","status":"Active"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !env.Success {
		t.Fatalf("expected success envelope: %s", rec.Body.String())
	}

	var resp Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("invalid data payload: %v", err)
	}
	if resp.AccountName != "Acme" || resp.Status != "Active" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
}

func TestCreateAccountMissingRequiredFields(t *testing.T) {
	r := newTestRouter(newFakeRepo())

	rec, env := doRequest(t, r, http.MethodPost, "/accounts", `{"industry":"Technology"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env.Success {
		t.Fatalf("expected failure envelope")
	}
	if !strings.Contains(env.Error, "accountName") {
		t.Fatalf("expected accountName in error, got %q", env.Error)
	}
}

func TestCreateAccountRejectsUnknownStatus(t *testing.T) {
	r := newTestRouter(newFakeRepo())

	rec, _ := doRequest(t, r, http.MethodPost, "/accounts",
		`{"accountName":"Acme","industry":"Technology","status":"Dormant"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestListAccountsSearchIsCaseInsensitive(t *testing.T) {
	repo := newFakeRepo()
	r := newTestRouter(repo)

	doRequest(t, r, http.MethodPost, "/accounts", `{"accountName":"Acme Corp","industry":"Technology"}`)
	doRequest(t, r, http.MethodPost, "/accounts", `{"accountName":"Globex","industry":"Manufacturing"}`)

	rec, env := doRequest(t, r, http.MethodGet, "/accounts?search=ACME", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var items []Response
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("invalid data payload: %v", err)
	}
	if len(items) != 1 || items[0].AccountName != "Acme Corp" {
		t.Fatalf("unexpected search result: %+v", items)
	}
	if env.Pagination == nil || env.Pagination.Page != 1 || env.Pagination.Limit != 10 {
		t.Fatalf("expected default pagination, got %+v", env.Pagination)
	}
}

func TestGetAccountInvalidIDIsNotFound(t *testing.T) {
	r := newTestRouter(newFakeRepo())

	rec, env := doRequest(t, r, http.MethodGet, "/accounts/not-a-uuid", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if env.Success {
		t.Fatalf("expected failure envelope")
	}
}

func TestDeleteMissingAccountIsNotFound(t *testing.T) {
	r := newTestRouter(newFakeRepo())

	rec, env := doRequest(t, r, http.MethodDelete, "/accounts/"+uuid.NewString(), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if env.Success {
		t.Fatalf("expected failure envelope")
	}
}

func TestDeleteAccountEndpoint(t *testing.T) {
	r := newTestRouter(newFakeRepo())

	_, env := doRequest(t, r, http.MethodPost, "/accounts", `{"accountName":"Acme","industry":"Technology"}`)
	var resp Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("invalid data payload: %v", err)
	}

	rec, env := doRequest(t, r, http.MethodDelete, "/accounts/"+resp.ID.String(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !env.Success || env.Message != "account deleted" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}
