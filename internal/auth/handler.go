package auth

import (
	"log/slog"
	"net/http"

	"crm-backend/internal/httpx"
	"crm-backend/internal/transport"
	"crm-backend/internal/validation"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Handler issues JWTs for the configured API identity. CRUD routes stay open
// (the upstream system had no auth); tokens only carry the actor identity used
// for audit stamping.
type Handler struct {
	manager      *Manager
	email        string
	name         string
	passwordHash string
	val          *validation.Validator
	log          *slog.Logger
}

func NewHandler(manager *Manager, email, name, passwordHash string, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		manager:      manager,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		val:          val,
		log:          log,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		h.log.Warn("login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.val.Struct(req); err != nil {
		h.log.Warn("login: validation error")
		transport.WriteError(w, http.StatusBadRequest, httpx.ValidationMessage(h.val.ValidationErrors(err)))
		return
	}

	if h.manager == nil || h.passwordHash == "" {
		h.log.Warn("login: auth not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "auth not configured")
		return
	}

	if req.Email != h.email || ComparePassword(h.passwordHash, req.Password) != nil {
		h.log.Warn("login: invalid credentials", slog.String("email", req.Email))
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	actor := Actor{Name: h.name, Email: h.email, Role: "ADMIN"}
	accessToken, err := h.manager.NewAccessToken(actor)
	if err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error")
		return
	}
	refreshToken, err := h.manager.NewRefreshToken(actor)
	if err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error")
		return
	}

	h.log.Info("login: ok", slog.String("email", h.email))
	transport.WriteData(w, http.StatusOK, TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
