// Package transport writes the uniform response envelope shared by every
// endpoint: {success, data?, message?, error?, pagination?}.
package transport

import (
	"encoding/json"
	"net/http"
)

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, Envelope{Success: true, Data: data})
}

func WriteList(w http.ResponseWriter, data interface{}, page, limit int, total int64) {
	writeJSON(w, http.StatusOK, Envelope{
		Success:    true,
		Data:       data,
		Pagination: NewPagination(page, limit, total),
	})
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope{Success: true, Message: message})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope{Success: false, Error: message})
}

func NewPagination(page, limit int, total int64) *Pagination {
	p := &Pagination{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		p.TotalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return p
}
