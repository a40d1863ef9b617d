package http

import (
	"net/http"
	"strconv"
	"strings"

	"tally/internal/core"
	"tally/internal/screen"
)

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.logger.ErrorContext(r.Context(), "Parse form error", "error", err, "path", r.URL.Path)
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	in := inputFromForm(r)
	if err := s.screen.Add(r.Context(), in); err != nil {
		if core.IsValidationError(err) {
			// Nothing was written; re-render with the entered values.
			s.logger.InfoContext(r.Context(), "Expense rejected",
				"error", err, "operation", "create")
			s.renderIndex(w, r, http.StatusUnprocessableEntity, formView{
				Amount:   in.Amount,
				Category: in.Category,
				Note:     in.Note,
				Date:     in.Date,
				Invalid:  true,
			})
			return
		}
		s.logger.ErrorContext(r.Context(), "Failed to save expense",
			"error", err, "category", in.Category, "operation", "create")
		http.Error(w, "error saving expense", http.StatusInternalServerError)
		return
	}

	s.logger.InfoContext(r.Context(), "Expense created",
		"category", in.Category, "date", in.Date, "operation", "create")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(strings.TrimSpace(r.Form.Get("id")), 10, 64)
	if err != nil {
		http.Error(w, "invalid expense id", http.StatusBadRequest)
		return
	}

	in := inputFromForm(r)
	if err := s.screen.Edit(r.Context(), id, in); err != nil {
		if core.IsValidationError(err) {
			// Silent rejection: the row keeps its stored values.
			s.logger.InfoContext(r.Context(), "Edit rejected",
				"error", err, "expense_id", id, "operation", "update")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.logger.ErrorContext(r.Context(), "Failed to update expense",
			"error", err, "expense_id", id, "operation", "update")
		http.Error(w, "error updating expense", http.StatusInternalServerError)
		return
	}

	s.logger.InfoContext(r.Context(), "Expense updated", "expense_id", id, "operation", "update")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(strings.TrimSpace(r.Form.Get("id")), 10, 64)
	if err != nil {
		http.Error(w, "invalid expense id", http.StatusBadRequest)
		return
	}

	if err := s.screen.Delete(r.Context(), id); err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to delete expense",
			"error", err, "expense_id", id, "operation", "delete")
		http.Error(w, "error deleting expense", http.StatusInternalServerError)
		return
	}

	s.logger.InfoContext(r.Context(), "Expense deleted", "expense_id", id, "operation", "delete")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func inputFromForm(r *http.Request) screen.Input {
	return screen.Input{
		Amount:   strings.TrimSpace(sanitizeInput(r.Form.Get("amount"))),
		Category: sanitizeInput(r.Form.Get("category")),
		Note:     sanitizeInput(r.Form.Get("note")),
		Date:     strings.TrimSpace(sanitizeInput(r.Form.Get("date"))),
	}
}
