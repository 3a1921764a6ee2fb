package ui

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"painel/domain/core"
	"painel/domain/table"
)

type modulesResponse struct {
	SessionID string   `json:"session_id"`
	Modules   []string `json:"modules"`
}

type moduleResponse struct {
	Module    string           `json:"module"`
	Source    table.Provenance `json:"source"`
	LoadedAt  core.Timestamp   `json:"loaded_at"`
	UpdatedAt string           `json:"updated_at"`
	Columns   []string         `json:"columns"`
	RowCount  int              `json:"row_count"`
	Rows      []table.Row      `json:"rows"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleModules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, modulesResponse{
		SessionID: a.service.SessionID(),
		Modules:   a.service.Modules(),
	})
}

func (a *App) handleModule(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	res, err := a.service.Get(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, moduleResponse{
		Module:    res.Module,
		Source:    res.Source,
		LoadedAt:  res.LoadedAt,
		UpdatedAt: res.UpdatedAt,
		Columns:   res.Table.Columns,
		RowCount:  res.Table.Len(),
		Rows:      res.Table.Rows,
	})
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	summary, err := a.service.Summary(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if core.IsUnknownModule(err) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[UI] encode response: %v", err)
	}
}
