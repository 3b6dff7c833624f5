package gateway

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taskmasterhq/taskmaster/internal/tasks"
)

// createRequest is the creation payload. Required-field validation lives
// here: the store accepts whatever it is handed.
type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

// updateRequest carries any subset of the mutable fields. Absent fields stay
// untouched; an id or createdAt in the body is ignored outright.
type updateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Status      *string `json:"status"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q, err := tasks.ParseQuery(params.Get("status"), params.Get("sort"), params.Get("order"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list := q.Apply(s.store.All())
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusUnprocessableEntity, "title is required")
		return
	}
	if strings.TrimSpace(req.DueDate) == "" {
		writeError(w, http.StatusUnprocessableEntity, "dueDate is required")
		return
	}

	task := s.store.Add(tasks.AddInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})

	s.setMirrorCookie(w)
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	task, ok := s.store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.store.Get(id); !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	in := tasks.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		status, err := tasks.ParseStatus(*req.Status)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		in.Status = &status
	}

	s.store.Update(in)

	// The store no-ops silently; re-read to return the applied state.
	task, _ := s.store.Get(id)
	s.setMirrorCookie(w)
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.store.Get(id); !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	status, err := tasks.ParseStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.store.SetStatus(id, status)

	task, _ := s.store.Get(id)
	s.setMirrorCookie(w)
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.store.Get(id); !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	s.store.Delete(id)

	s.setMirrorCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
