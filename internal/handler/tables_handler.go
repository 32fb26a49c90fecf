package handlers

import (
	"net/http"
)

type TablesResponse struct {
	CountTables int `json:"countTables"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.TablesService.CountTables()
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeSuccess(w, TablesResponse{count}, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.BoardService.Ping(r.Context()); err != nil {
		WriteError(w, "Storage unavailable: "+err.Error(), http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, HealthResponse{Status: "ok", Storage: h.Cfg.Board.Storage}, http.StatusOK)
}
