// Package server is the local dashboard. Every page load triggers a fresh
// fetch-and-recompute pass; nothing is cached between requests.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yuin/goldmark"

	"github.com/wexpand/talentboard/internal/compose"
	"github.com/wexpand/talentboard/internal/normalize"
	"github.com/wexpand/talentboard/internal/report"
	"github.com/wexpand/talentboard/internal/source"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

var md = goldmark.New()

// Loader produces the raw records for one evaluation pass.
type Loader func() ([]source.Record, error)

// Server is the HTTP server for the recruiting dashboard.
type Server struct {
	load   Loader
	policy report.Policy
	pages  map[string]*template.Template
	mux    *http.ServeMux
}

// New creates a new Server.
func New(load Loader, policy report.Policy) (*Server, error) {
	funcMap := template.FuncMap{
		"date": func(t time.Time) string { return t.Format("Jan 02, 2006") },
		"rate": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	}

	// Parse base template first
	base, err := template.New("base.html").Funcs(funcMap).ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("parsing base template: %w", err)
	}

	// Each page clones the base so it gets its own {{define "content"}}.
	pageNames := []string{"overview.html", "conversion.html", "briefing.html", "error.html"}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning base for %s: %w", name, err)
		}
		_, err = clone.ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		pages[name] = clone
	}

	s := &Server{load: load, policy: policy, pages: pages, mux: http.NewServeMux()}
	s.routes()
	return s, nil
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	staticSub, _ := fs.Sub(staticFS, "static")
	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
	s.mux.Handle("/metrics", promhttp.Handler())

	s.mux.HandleFunc("/", s.handleOverview)
	s.mux.HandleFunc("/conversion", s.handleConversion)
	s.mux.HandleFunc("/briefing", s.handleBriefing)
	s.mux.HandleFunc("/api/report", s.handleReportJSON)
}

// evaluate runs one full pass for the request's position/period selection.
func (s *Server) evaluate(r *http.Request) (*report.Report, error) {
	started := time.Now()

	records, err := s.load()
	if err != nil {
		observePass(outcomeSourceError, time.Since(started))
		return nil, err
	}

	period, ok := report.ParsePeriod(r.URL.Query().Get("period"))
	if !ok {
		period = report.PeriodWeek
	}
	position := r.URL.Query().Get("position")
	if position == "" {
		position = report.AllPositions
	}

	rep, err := report.Build(normalize.Normalize(records), report.Options{
		Period:   period,
		Position: position,
		Now:      time.Now(),
		Policy:   s.policy,
	})
	if err != nil {
		observePass(outcomeDataError, time.Since(started))
		return nil, err
	}

	observePass(outcomeOK, time.Since(started))
	return rep, nil
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	rep, err := s.evaluate(r)
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.render(w, "overview.html", overviewView(rep, s.policy))
}

func (s *Server) handleConversion(w http.ResponseWriter, r *http.Request) {
	rep, err := s.evaluate(r)
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.render(w, "conversion.html", conversionView(rep))
}

func (s *Server) handleBriefing(w http.ResponseWriter, r *http.Request) {
	rep, err := s.evaluate(r)
	if err != nil {
		s.renderError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(compose.Briefing(rep)), &buf); err != nil {
		s.renderError(w, err)
		return
	}

	s.render(w, "briefing.html", map[string]any{
		"Header":   pageHeader(rep),
		"Briefing": template.HTML(buf.String()), //nolint: gosec
	})
}

func (s *Server) handleReportJSON(w http.ResponseWriter, r *http.Request) {
	rep, err := s.evaluate(r)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, source.ErrUnavailable) {
			status = http.StatusBadGateway
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": userMessage(err)})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

func (s *Server) renderError(w http.ResponseWriter, err error) {
	log.Printf("Evaluation pass failed: %v", err)
	tmpl, ok := s.pages["error.html"]
	if !ok {
		http.Error(w, userMessage(err), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusServiceUnavailable)
	if terr := tmpl.ExecuteTemplate(w, "base.html", map[string]any{"Message": userMessage(err)}); terr != nil {
		log.Printf("Error rendering error page: %v", terr)
	}
}

// userMessage maps a pass failure to the one message the dashboard shows.
// No partial state is ever rendered alongside it.
func userMessage(err error) string {
	switch {
	case errors.Is(err, source.ErrUnavailable):
		return "The data source could not be reached. Check the sheet link and try again."
	case errors.Is(err, report.ErrInvalidDateRange):
		return "The selected reporting period is not valid."
	case errors.Is(err, report.ErrNoData):
		return "The source returned no rows with valid dates."
	default:
		return "The report could not be generated."
	}
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := s.pages[name]
	if !ok {
		log.Printf("Template %s not found", name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("Error rendering template %s: %v", name, err)
	}
}

// Serve starts the HTTP server on the given port.
func Serve(load Loader, policy report.Policy, port int) error {
	srv, err := New(load, policy)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	log.Printf("Server listening on http://%s", addr)
	return http.ListenAndServe(addr, srv.Handler())
}
