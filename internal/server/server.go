// Package server exposes the calculator over HTTP for plan-review tools
// that prefer an API to the CLI.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ChicagoDave/parkplan/internal/history"
	"github.com/ChicagoDave/parkplan/pkg/parking"
	"github.com/ChicagoDave/parkplan/pkg/validation"
	"github.com/ChicagoDave/parkplan/pkg/zoning"
)

var calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "parkplan_calculations_total",
	Help: "Calculations served over the API, by kind.",
}, []string{"kind"})

// Server serves parking calculations over HTTP.
type Server struct {
	table zoning.Table
	store *history.Store
	port  int
}

// New creates a server for the given ratio schedule. store may be nil, in
// which case no history is kept.
func New(table zoning.Table, store *history.Store, port int) *Server {
	return &Server{
		table: table,
		store: store,
		port:  port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("parkplan server starting", "addr", fmt.Sprintf("http://localhost%s", addr))

	return http.ListenAndServe(addr, logRequests(s.routes()))
}

// routes builds the request mux. Split from Start so tests can drive the
// handlers through httptest.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/ratios", s.handleRatios)
	mux.HandleFunc("POST /api/calculate", s.handleCalculate)
	mux.HandleFunc("POST /api/mixed", s.handleMixed)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

func (s *Server) handleRatios(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ratios": s.table})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req parking.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decoding request: %v", err))
		return
	}

	report := validation.ValidateRequest(s.table, req)
	if !report.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": report})
		return
	}

	requirement := parking.Calculate(s.table, req)
	calculationsTotal.WithLabelValues(history.KindSingle).Inc()
	s.record(r, history.KindSingle, requirement.UseType,
		requirement.RequiredSpaces, requirement.ADASpaces, requirement)

	writeJSON(w, http.StatusOK, map[string]any{
		"requirement": requirement,
		"validation":  report,
	})
}

func (s *Server) handleMixed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Uses []parking.Use `json:"uses"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decoding request: %v", err))
		return
	}

	report := validation.ValidateUses(s.table, req.Uses)
	if !report.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": report})
		return
	}

	result := parking.CalculateMixed(s.table, req.Uses)
	calculationsTotal.WithLabelValues(history.KindMixed).Inc()

	useTypes := make([]string, 0, len(result.Calculations))
	for _, c := range result.Calculations {
		useTypes = append(useTypes, c.UseType)
	}
	s.record(r, history.KindMixed, strings.Join(useTypes, ", "),
		result.TotalWithoutSharing, result.ADATotal, result)

	writeJSON(w, http.StatusOK, map[string]any{
		"result":     result,
		"validation": report,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", raw))
			return
		}
		limit = n
	}

	entries := []history.Entry{}
	if s.store != nil {
		var err error
		entries, err = s.store.Recent(r.Context(), limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("reading history: %v", err))
			return
		}
		if entries == nil {
			entries = []history.Entry{}
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// record stores a completed calculation. History is best effort: a write
// failure is logged, never surfaced to the API caller.
func (s *Server) record(r *http.Request, kind, useTypes string, required, ada int, result any) {
	if s.store == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		slog.Warn("encoding history entry", "error", err)
		return
	}
	entry := &history.Entry{
		Kind:           kind,
		UseTypes:       useTypes,
		RequiredSpaces: required,
		ADASpaces:      ada,
		Result:         data,
	}
	if err := s.store.Record(r.Context(), entry); err != nil {
		slog.Warn("recording calculation", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
