package handler

import (
	"net/http"
	"strconv"

	"github.com/LaryssaGabi/StudyFlow/internal/models"
)

// ListTasks serves GET /api/tasks with an optional ?day=0..6 filter.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request, s ServiceI) {
	var filter models.TaskFilter
	if raw := r.URL.Query().Get("day"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil || !models.ValidDay(day) {
			writeError(w, http.StatusBadRequest, "day must be between 0 and 6")
			return
		}
		filter = models.DayFilter(day)
	}

	tasks, err := s.FetchTasks(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request, s ServiceI) {
	var req models.NewStudyTask
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := s.CreateTask(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request, s ServiceI) {
	var req models.TaskEdit
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := s.UpdateTask(r.Context(), r.PathValue("id"), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *Handler) ToggleTask(w http.ResponseWriter, r *http.Request, s ServiceI) {
	var req struct {
		Completed *bool `json:"completed"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Completed == nil {
		writeError(w, http.StatusBadRequest, "completed is required")
		return
	}

	task, err := s.ToggleTask(r.Context(), r.PathValue("id"), *req.Completed)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request, s ServiceI) {
	if err := s.DeleteTask(r.Context(), r.PathValue("id")); err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
