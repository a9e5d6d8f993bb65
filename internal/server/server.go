// SPDX-License-Identifier: MIT

// Package server exposes the pit engine over a small JSON HTTP API.
//
//	POST   /api/validate              params → findings and summary
//	POST   /api/layout                params → plan layout
//	POST   /api/mesh                  params → preview mesh (?radial=&angular=)
//	POST   /api/export/{svg|pdf|xlsx} params → document (?force=true skips the gate)
//	GET    /api/presets               built-in and stored preset names
//	GET    /api/presets/{name}        params of one preset
//	PUT    /api/presets/{name}        store params under name
//	DELETE /api/presets/{name}        remove a stored preset
//	GET    /healthz                   liveness
//
// Request bodies are canonical parameter JSON. Domain violations are never
// HTTP errors; only exports refuse a layout with blocking findings (409).
// Layout and export answer 422 for a sector or cut-out count above
// geometry.MaxLayoutCount.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/tokapit/export"
	"github.com/katalvlaran/tokapit/geometry"
	"github.com/katalvlaran/tokapit/internal/store"
	"github.com/katalvlaran/tokapit/pit"
	"github.com/katalvlaran/tokapit/validate"
)

// MaxBodySize bounds a parameter document.
const MaxBodySize = 1 << 20

// Options configures a Server.
type Options struct {
	Store           *store.Store // nil serves built-in presets only
	Log             *slog.Logger
	RateLimit       float64 // requests per second per client; 0 disables limiting
	RateBurst       int
	RadialSegments  int // mesh default when the query omits radial
	AngularSegments int // mesh default when the query omits angular; 0 is sector-aligned
}

// Server routes API requests to the engine.
type Server struct {
	opts   Options
	log    *slog.Logger
	router *mux.Router
}

// New builds the router for opts.
func New(opts Options) *Server {
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}
	if opts.RadialSegments < 1 {
		opts.RadialSegments = 1
	}
	s := &Server{opts: opts, log: opts.Log, router: mux.NewRouter()}

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		api.Use(newIPRateLimiter(rate.Limit(opts.RateLimit), burst).middleware)
	}
	api.Use(s.logRequests)

	api.HandleFunc("/validate", s.handleValidate).Methods(http.MethodPost)
	api.HandleFunc("/layout", s.handleLayout).Methods(http.MethodPost)
	api.HandleFunc("/mesh", s.handleMesh).Methods(http.MethodPost)
	api.HandleFunc("/export/{format:svg|pdf|xlsx}", s.handleExport).Methods(http.MethodPost)
	api.HandleFunc("/presets", s.handleListPresets).Methods(http.MethodGet)
	api.HandleFunc("/presets/{name}", s.handleGetPreset).Methods(http.MethodGet)
	api.HandleFunc("/presets/{name}", s.handleSavePreset).Methods(http.MethodPut)
	api.HandleFunc("/presets/{name}", s.handleDeletePreset).Methods(http.MethodDelete)

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.log.Info("stopped", "addr", addr)

	return nil
}

//-------------------------------------------------------------------------//
// Handlers
//-------------------------------------------------------------------------//

type validateResponse struct {
	Findings []validate.Finding `json:"findings"`
	Summary  validate.Summary   `json:"summary"`
}

type presetsResponse struct {
	Builtin []string      `json:"builtin"`
	Stored  []store.Entry `json:"stored"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	p, ok := s.readParams(w, r)
	if !ok {
		return
	}
	fs := validate.Validate(p)
	writeJSON(w, http.StatusOK, validateResponse{Findings: fs, Summary: validate.Summarize(fs)})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	p, ok := s.readLayoutParams(w, r)
	if !ok {
		return
	}
	l, err := geometry.BuildLayout(p)
	if err != nil {
		s.log.Debug("partial layout", "err", err)
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleMesh(w http.ResponseWriter, r *http.Request) {
	radial, err := queryInt(r, "radial", s.opts.RadialSegments)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	angular, err := queryInt(r, "angular", s.opts.AngularSegments)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, ok := s.readParams(w, r)
	if !ok {
		return
	}

	m, err := geometry.PitMesh(p, radial, angular)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := mux.Vars(r)["format"]
	p, ok := s.readLayoutParams(w, r)
	if !ok {
		return
	}

	fs := validate.Validate(p)
	if validate.HasErrors(fs) && r.URL.Query().Get("force") != "true" {
		writeJSON(w, http.StatusConflict, validateResponse{Findings: fs, Summary: validate.Summarize(fs)})
		return
	}

	var (
		buf         bytes.Buffer
		err         error
		contentType string
	)
	switch format {
	case "svg":
		contentType = "image/svg+xml"
		err = export.PlanSVG(&buf, p)
	case "pdf":
		contentType = "application/pdf"
		err = export.PlanPDF(&buf, p, fs)
	case "xlsx":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = export.ScheduleXLSX(&buf, p, fs)
	}
	if err != nil {
		s.log.Error("export failed", "format", format, "err", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="pit.%s"`, format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	resp := presetsResponse{Builtin: pit.PresetNames(), Stored: []store.Entry{}}
	if s.opts.Store != nil {
		stored, err := s.opts.Store.List(r.Context())
		if err != nil {
			s.log.Error("list presets", "err", err)
			writeError(w, http.StatusInternalServerError, "preset store unavailable")
			return
		}
		resp.Stored = stored
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	p, err := s.opts.Store.Resolve(r.Context(), name)
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, pit.ErrUnknownPreset):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		s.log.Error("get preset", "name", name, "err", err)
		writeError(w, http.StatusInternalServerError, "preset store unavailable")
	default:
		writeJSON(w, http.StatusOK, p)
	}
}

func (s *Server) handleSavePreset(w http.ResponseWriter, r *http.Request) {
	if s.opts.Store == nil {
		writeError(w, http.StatusNotImplemented, "no preset store configured")
		return
	}
	name := mux.Vars(r)["name"]
	p, ok := s.readParams(w, r)
	if !ok {
		return
	}

	err := s.opts.Store.Save(r.Context(), name, p)
	switch {
	case errors.Is(err, store.ErrReserved), errors.Is(err, store.ErrInvalidName):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		s.log.Error("save preset", "name", name, "err", err)
		writeError(w, http.StatusInternalServerError, "preset store unavailable")
	default:
		s.log.Info("preset saved", "name", name)
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	if s.opts.Store == nil {
		writeError(w, http.StatusNotImplemented, "no preset store configured")
		return
	}
	name := mux.Vars(r)["name"]

	err := s.opts.Store.Delete(r.Context(), name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		s.log.Error("delete preset", "name", name, "err", err)
		writeError(w, http.StatusInternalServerError, "preset store unavailable")
	default:
		s.log.Info("preset deleted", "name", name)
		w.WriteHeader(http.StatusNoContent)
	}
}

//-------------------------------------------------------------------------//
// Helpers
//-------------------------------------------------------------------------//

// readParams decodes the request body, answering 400 itself on failure.
func (s *Server) readParams(w http.ResponseWriter, r *http.Request) (pit.Params, bool) {
	body := http.MaxBytesReader(w, r.Body, MaxBodySize)
	p, err := pit.DecodeJSON(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "parameter document too large")
			return pit.Params{}, false
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return pit.Params{}, false
	}

	return p, true
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug("request", "method", r.Method, "path", r.URL.Path,
			"status", rec.status, "took", time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query %s: %q is not an integer", key, raw)
	}

	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// readLayoutParams is readParams for handlers that build a full layout. A
// count above geometry.MaxLayoutCount is answered with 422.
func (s *Server) readLayoutParams(w http.ResponseWriter, r *http.Request) (pit.Params, bool) {
	p, ok := s.readParams(w, r)
	if !ok {
		return p, false
	}
	if err := geometry.CheckLayoutCounts(p); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return p, false
	}

	return p, true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
