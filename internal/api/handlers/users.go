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

type UserHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// UserResponse is the public shape of a user. Credential fields are
// stripped on every response path, list and detail alike.
type UserResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	AvatarID   int    `json:"avatar_id"`
	Health     int    `json:"health"`
	Experience int    `json:"experience"`
	Level      int    `json:"level"`
}

type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	AvatarID   *int    `json:"avatar_id"`
	Health     *int    `json:"health"`
	Experience *int    `json:"experience"`
	Level      *int    `json:"level"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		AvatarID:   user.AvatarID,
		Health:     user.Health,
		Experience: user.Experience,
		Level:      user.Level,
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = toUserResponse(u)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, domain.ErrUserNotFound.Error())
		return
	}

	user, err := h.userService.Get(r.Context(), identity.UserID, id)
	if err != nil {
		h.writeUserError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, domain.ErrUserNotFound.Error())
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.Update(r.Context(), identity.UserID, id, service.UpdateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		AvatarID:   req.AvatarID,
		Health:     req.Health,
		Experience: req.Experience,
		Level:      req.Level,
	})
	if err != nil {
		h.writeUserError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusNotFound, domain.ErrUserNotFound.Error())
		return
	}

	if err := h.userService.Delete(r.Context(), identity.UserID, id); err != nil {
		h.writeUserError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *UserHandler) writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAccessDenied):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooShort):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("user operation failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
