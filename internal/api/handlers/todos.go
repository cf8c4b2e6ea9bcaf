package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dreed/habit-tracker/internal/api/middleware"
	"github.com/dreed/habit-tracker/internal/domain"
	"github.com/dreed/habit-tracker/internal/service"
	"go.uber.org/zap"
)

type TodoHandler struct {
	todoService *service.TodoService
	logger      *zap.Logger
}

func NewTodoHandler(todoService *service.TodoService, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{todoService: todoService, logger: logger}
}

type TodoResponse struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	IsCompleted bool   `json:"is_completed"`
}

type CreateTodoRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	IsCompleted *bool  `json:"is_completed"`
}

type UpdateTodoRequest struct {
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	IsCompleted *bool   `json:"is_completed"`
}

func toTodoResponse(todo *domain.Todo) TodoResponse {
	return TodoResponse{
		ID:          todo.ID,
		UserID:      todo.UserID,
		Name:        todo.Name,
		Date:        todo.DateString(),
		IsCompleted: todo.IsCompleted,
	}
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}

	todos, err := h.todoService.List(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("failed to list todos", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]TodoResponse, len(todos))
	for i, todo := range todos {
		resp[i] = toTodoResponse(todo)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}

	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	todo, err := h.todoService.Create(r.Context(), identity.UserID, service.CreateTodoInput{
		Name:        req.Name,
		Date:        req.Date,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		h.writeTodoError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toTodoResponse(todo))
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, domain.ErrTodoNotFound.Error())
		return
	}

	todo, err := h.todoService.Get(r.Context(), identity.UserID, id)
	if err != nil {
		h.writeTodoError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTodoResponse(todo))
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, domain.ErrTodoNotFound.Error())
		return
	}

	var req UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	todo, err := h.todoService.Update(r.Context(), identity.UserID, id, service.UpdateTodoInput{
		Name:        req.Name,
		Date:        req.Date,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		h.writeTodoError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTodoResponse(todo))
}

// Toggle flips is_completed on an owned todo.
func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, domain.ErrTodoNotFound.Error())
		return
	}

	todo, err := h.todoService.Toggle(r.Context(), identity.UserID, id)
	if err != nil {
		h.writeTodoError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTodoResponse(todo))
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, domain.ErrTodoNotFound.Error())
		return
	}

	if err := h.todoService.Delete(r.Context(), identity.UserID, id); err != nil {
		h.writeTodoError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *TodoHandler) writeTodoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrTodoNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrInvalidDate):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("todo operation failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
