package leads

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"crm-backend/internal/enums"
	"crm-backend/internal/httpx"
	"crm-backend/internal/middleware"
	"crm-backend/internal/transport"
	"crm-backend/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	page, limit := httpx.ParsePageLimit(r.URL.Query())
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.List(ctx, search, page, limit)
	if err != nil {
		log.Error("leads list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	resp := make([]Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, NewResponse(item))
	}

	log.Info("leads list: ok", slog.Int("count", len(resp)))
	transport.WriteList(w, resp, page, limit, total)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Warn("leads get: invalid id")
		transport.WriteError(w, http.StatusNotFound, "lead not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("leads get: not found", slog.String("lead_id", id.String()))
			transport.WriteError(w, http.StatusNotFound, "lead not found")
			return
		}
		log.Error("leads get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	transport.WriteData(w, http.StatusOK, NewResponse(item))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("leads create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("leads create: validation error")
		transport.WriteError(w, http.StatusBadRequest, httpx.ValidationMessage(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		if errors.Is(err, enums.ErrUnknownValue) {
			log.Warn("leads create: invalid field", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error("leads create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	log.Info("leads create: ok", slog.String("lead_id", item.ID.String()))
	transport.WriteData(w, http.StatusCreated, NewResponse(item))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Warn("leads update: invalid id")
		transport.WriteError(w, http.StatusNotFound, "lead not found")
		return
	}

	var req UpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("leads update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("leads update: validation error")
		transport.WriteError(w, http.StatusBadRequest, httpx.ValidationMessage(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			log.Warn("leads update: not found", slog.String("lead_id", id.String()))
			transport.WriteError(w, http.StatusNotFound, "lead not found")
		case errors.Is(err, enums.ErrUnknownValue):
			log.Warn("leads update: invalid field", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			log.Error("leads update: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error")
		}
		return
	}

	log.Info("leads update: ok", slog.String("lead_id", id.String()))
	transport.WriteData(w, http.StatusOK, NewResponse(item))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Warn("leads delete: invalid id")
		transport.WriteError(w, http.StatusNotFound, "lead not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("leads delete: not found", slog.String("lead_id", id.String()))
			transport.WriteError(w, http.StatusNotFound, "lead not found")
			return
		}
		log.Error("leads delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	log.Info("leads delete: ok", slog.String("lead_id", id.String()))
	transport.WriteMessage(w, http.StatusOK, "lead deleted")
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
