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

type HabitHandler struct {
	habitService *service.HabitService
	logger       *zap.Logger
}

func NewHabitHandler(habitService *service.HabitService, logger *zap.Logger) *HabitHandler {
	return &HabitHandler{habitService: habitService, logger: logger}
}

type HabitResponse struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id"`
	Name       string `json:"name"`
	Completed  int    `json:"completed"`
	ToComplete int    `json:"to_complete"`
	Status     string `json:"status"`
	Freq       string `json:"freq"`
}

type CreateHabitRequest struct {
	Name       string  `json:"name"`
	Freq       string  `json:"freq"`
	Completed  *int    `json:"completed"`
	ToComplete *int    `json:"to_complete"`
	Status     *string `json:"status"`
}

type UpdateHabitRequest struct {
	Name       *string `json:"name"`
	Freq       *string `json:"freq"`
	Completed  *int    `json:"completed"`
	ToComplete *int    `json:"to_complete"`
	Status     *string `json:"status"`
}

func toHabitResponse(habit *domain.Habit) HabitResponse {
	return HabitResponse{
		ID:         habit.ID,
		UserID:     habit.UserID,
		Name:       habit.Name,
		Completed:  habit.Completed,
		ToComplete: habit.ToComplete,
		Status:     habit.Status,
		Freq:       string(habit.Freq),
	}
}

func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}

	habits, err := h.habitService.List(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("failed to list habits", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]HabitResponse, len(habits))
	for i, habit := range habits {
		resp[i] = toHabitResponse(habit)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}

	var req CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	habit, err := h.habitService.Create(r.Context(), identity.UserID, service.CreateHabitInput{
		Name:       req.Name,
		Freq:       domain.Frequency(req.Freq),
		Completed:  req.Completed,
		ToComplete: req.ToComplete,
		Status:     req.Status,
	})
	if err != nil {
		h.writeHabitError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toHabitResponse(habit))
}

func (h *HabitHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, domain.ErrHabitNotFound.Error())
		return
	}

	habit, err := h.habitService.Get(r.Context(), identity.UserID, id)
	if err != nil {
		h.writeHabitError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toHabitResponse(habit))
}

func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, domain.ErrHabitNotFound.Error())
		return
	}

	var req UpdateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := service.UpdateHabitInput{
		Name:       req.Name,
		Completed:  req.Completed,
		ToComplete: req.ToComplete,
		Status:     req.Status,
	}
	if req.Freq != nil {
		freq := domain.Frequency(*req.Freq)
		input.Freq = &freq
	}

	habit, err := h.habitService.Update(r.Context(), identity.UserID, id, input)
	if err != nil {
		h.writeHabitError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toHabitResponse(habit))
}

func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, domain.ErrHabitNotFound.Error())
		return
	}

	if err := h.habitService.Delete(r.Context(), identity.UserID, id); err != nil {
		h.writeHabitError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *HabitHandler) writeHabitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrHabitNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrInvalidFrequency):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("habit operation failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
