package http

import (
	"net/http"
	"time"

	"tally/internal/report"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// The filter is screen state: absent param keeps the current one.
	if v, ok := r.URL.Query()["filter"]; ok && len(v) > 0 {
		s.screen.SetFilter(report.ParseFilter(v[0]))
	}

	s.renderIndex(w, r, http.StatusOK, formView{})
}

func (s *Server) renderIndex(w http.ResponseWriter, r *http.Request, status int, form formView) {
	page := buildPage(s.screen.View(time.Now()), form)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, "index.html", page); err != nil {
		s.logger.ErrorContext(r.Context(), "Index template execution failed", "error", err)
	}
}
