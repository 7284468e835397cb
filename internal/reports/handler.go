package reports

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"crm-backend/internal/enums"
	"crm-backend/internal/httpx"
	"crm-backend/internal/middleware"
	"crm-backend/internal/transport"
)

type Handler struct {
	service *Service
	log     *slog.Logger
}

func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req Request
	if r.ContentLength != 0 {
		if err := httpx.DecodeJSON(r.Body, &req); err != nil {
			log.Warn("reports generate: invalid json")
			transport.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	report, err := h.service.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, enums.ErrUnknownValue) {
			log.Warn("reports generate: invalid field", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error("reports generate: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error")
		return
	}

	log.Info("reports generate: ok", slog.String("report_id", report.ID.String()))
	transport.WriteData(w, http.StatusOK, report)
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	transport.WriteMessage(w, http.StatusOK, "report export is not available yet")
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
