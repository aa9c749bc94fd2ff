package server

import (
	"encoding/json"
	"net/http"

	"rift-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /debug/matches", h.handleListMatches)
	mux.HandleFunc("GET /debug/matches/{id}/snapshot", h.handleDumpSnapshot)
	mux.HandleFunc("GET /debug/matches/{id}/events", h.handleDumpEvents)
}

// /debug/matches - идущие матчи и число зрителей
func (h *DebugHandler) handleListMatches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.List())
}

// /debug/matches/{id}/snapshot - полный снимок, включая скрытые поля (кулдауны, цели)
func (h *DebugHandler) handleDumpSnapshot(w http.ResponseWriter, r *http.Request) {
	m, err := h.Service.Get(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Match not found", http.StatusNotFound)
		return
	}
	writeJSON(w, m.State())
}

// /debug/matches/{id}/events - лента событий с начала матча
func (h *DebugHandler) handleDumpEvents(w http.ResponseWriter, r *http.Request) {
	m, err := h.Service.Get(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Match not found", http.StatusNotFound)
		return
	}
	writeJSON(w, m.Events())
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	writeJSONStatus(w, http.StatusOK, data)
}

func writeJSONStatus(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// nil (пустой список) отдаем как [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
