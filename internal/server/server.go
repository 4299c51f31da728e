package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alexiusacademia/gofound/internal/din"
	"github.com/alexiusacademia/gofound/internal/footing"
	"github.com/alexiusacademia/gofound/internal/project"
	"github.com/alexiusacademia/gofound/internal/report"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

// Handler serves the footing analysis over HTTP
type Handler struct {
	// Material supplies values the request leaves at zero
	Material footing.Material
}

// NewRouter registers all routes
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequests)

	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	// Full paths on one router so a wrong method always yields 405
	r.HandleFunc("/api/v1/cases", h.Cases).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/analyze", h.Analyze).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/report", h.Report).Methods(http.MethodPost)

	return r
}

// AnalyzeResponse is the JSON body returned by /api/v1/analyze
type AnalyzeResponse struct {
	Project  string            `json:"project,omitempty"`
	Analysis *footing.Analysis `json:"analysis"`
	Text     string            `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Cases returns the reference load case table
func (h *Handler) Cases(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, din.LoadCases)
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	p, a, ok := h.run(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Project:  p.Name,
		Analysis: a,
		Text:     report.Text(a),
	})
}

// Report renders the analysis as text, pdf or xlsx (?format=)
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "text"
	}
	if format != "text" && format != "pdf" && format != "xlsx" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unsupported report format %q", format))
		return
	}

	p, a, ok := h.run(w, r)
	if !ok {
		return
	}
	meta := report.NewMeta(p.Name)

	switch format {
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=\"footing-report.pdf\"")
		w.Header().Set("X-Report-Id", meta.ID)
		if err := report.WritePDF(w, a, meta); err != nil {
			log.Errorf("pdf report %s: %v", meta.ID, err)
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=\"footing-report.xlsx\"")
		w.Header().Set("X-Report-Id", meta.ID)
		if err := report.WriteXLSX(w, a, meta); err != nil {
			log.Errorf("xlsx report %s: %v", meta.ID, err)
		}
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Report-Id", meta.ID)
		io.WriteString(w, report.Text(a))
	}
}

// run decodes the project body and analyzes it, writing the error response on failure
func (h *Handler) run(w http.ResponseWriter, r *http.Request) (*project.Project, *footing.Analysis, bool) {
	p, err := project.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), project.FormatJSON)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request payload: %w", err))
		return nil, nil, false
	}

	a, err := footing.Analyze(p.Geometry, p.LoadCases(), footing.Config{
		Material: p.MergeMaterial(h.Material),
		Factors:  p.Factors(),
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return nil, nil, false
	}
	return p, a, true
}

func statusFor(err error) int {
	if errors.Is(err, footing.ErrValidation) || errors.Is(err, footing.ErrDomain) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Info("request")
	})
}
