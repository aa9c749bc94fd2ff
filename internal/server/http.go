package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	_ "net/http/pprof" // Profiling
	"time"

	"rift-server/internal/engine"
	"rift-server/internal/repositories/results"
	"rift-server/internal/version"
	"rift-server/pkg/api"
	"rift-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Ограничение на тело POST /matches.
const maxRequestBody = 64 << 10

type Server struct {
	Engine *engine.GameService
	Port   string
}

func New(engine *engine.GameService, port string) *Server {
	return &Server{
		Engine: engine,
		Port:   port,
	}
}

// Handler собирает все роуты сервера.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /matches", enableCORS(s.handleStartMatch))
	mux.HandleFunc("GET /matches/{id}", enableCORS(s.handleGetMatch))
	mux.HandleFunc("GET /results/{id}", enableCORS(s.handleGetResult))
	mux.HandleFunc("GET /results", enableCORS(s.handleRecentResults))
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	debugHandler := NewDebugHandler(s.Engine)
	debugHandler.RegisterRoutes(mux)
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	return mux
}

// Run запускает HTTP сервер и останавливает его при отмене ctx.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infof("Rift spectator server running on :%s", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Log.Info("Shutting down HTTP server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// POST /matches - запуск визуализации
func (s *Server) handleStartMatch(w http.ResponseWriter, r *http.Request) {
	var req api.StartMatchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed json: "+err.Error())
		return
	}

	m, err := s.Engine.StartMatch(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "http",
		"match_id":  m.ID,
		"remote":    r.RemoteAddr,
	}).Info("Match started via HTTP")

	writeJSONStatus(w, http.StatusCreated, api.StartMatchResponse{MatchID: m.ID, Seed: m.Seed})
}

// GET /matches/{id} - последний кадр идущего матча
func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	m, err := s.Engine.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, engine.BuildFrame(m.ID, m.State(), nil))
}

// GET /results/{id} - итоги завершенного матча
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	summary, err := s.Engine.Result(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, results.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		logger.Log.WithError(err).WithField("component", "http").Error("Failed to load result")
		writeError(w, http.StatusInternalServerError, "failed to load result")
		return
	}
	writeJSON(w, summary)
}

// GET /results - последние итоги
func (s *Server) handleRecentResults(w http.ResponseWriter, r *http.Request) {
	list, err := s.Engine.Results.Recent(r.Context(), 20)
	if err != nil {
		logger.Log.WithError(err).WithField("component", "http").Error("Failed to list results")
		writeError(w, http.StatusInternalServerError, "failed to list results")
		return
	}
	writeJSON(w, list)
}

// handleWS подключает зрителя к матчу: /ws?match=<id>
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	m, err := s.Engine.Get(r.URL.Query().Get("match"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Engine, m, conn)

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, version.Info())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSONStatus(w, status, api.ErrorResponse{Error: msg})
}
