package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
)

// taskIDParam parses the {id} URL segment
func taskIDParam(r *http.Request) (models.TaskID, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, errors.New("task id must be a positive integer")
	}
	return models.TaskID(id), nil
}

// writeStoreError maps repository errors onto status codes
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, database.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, database.ErrEmptyTitle),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidPriority):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.ErrorContext(r.Context(), "store error", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// publish announces a write on the hub. Failures only cost live updates.
func (s *Server) publish(ctx context.Context, id models.TaskID, status models.Status) {
	if s.events == nil {
		return
	}
	event := events.Event{
		Type:      events.EventTasksChanged,
		TaskID:    id,
		Status:    status,
		Timestamp: time.Now(),
	}
	if err := events.Publish(ctx, s.events, event, events.DefaultRetry); err != nil {
		s.logger.Warn("failed to publish change", "task_id", id, "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	count, err := s.repo.CountTasks(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "tasks": count})
}

func (s *Server) handleHubMetrics(w http.ResponseWriter, _ *http.Request) {
	if s.hubMetrics == nil {
		writeError(w, http.StatusNotFound, "event hub not running")
		return
	}
	writeJSON(w, http.StatusOK, s.hubMetrics())
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.repo.ListTasks(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.TaskList{Tasks: tasks})
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := s.repo.GetTask(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req api.CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	task, err := s.repo.CreateTask(r.Context(), database.NewTask{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
		Tags:        req.Tags,
	})
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	s.publish(r.Context(), task.ID, task.Status)
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req api.StatusUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if s.statusFailRate > 0 && s.random() < s.statusFailRate {
		s.logger.Info("injecting status update failure", "task_id", id, "status", req.Status)
		writeError(w, http.StatusServiceUnavailable, "status update rejected (injected failure)")
		return
	}

	task, err := s.repo.UpdateTaskStatus(r.Context(), id, req.Status)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	s.publish(r.Context(), task.ID, task.Status)
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleUpdateTitle(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req api.TitleUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	task, err := s.repo.UpdateTaskTitle(r.Context(), id, req.Title)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	s.publish(r.Context(), task.ID, "")
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.repo.DeleteTask(r.Context(), id); err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	s.publish(r.Context(), id, "")
	w.WriteHeader(http.StatusNoContent)
}
