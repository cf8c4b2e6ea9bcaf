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

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	AvatarID   *int `json:"avatar_id"`
	Health     *int `json:"health"`
	Experience *int `json:"experience"`
	Level      *int `json:"level"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		AvatarID:   req.AvatarID,
		Health:     req.Health,
		Experience: req.Experience,
		Level:      req.Level,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields),
			errors.Is(err, domain.ErrInvalidEmail),
			errors.Is(err, domain.ErrPasswordTooShort),
			errors.Is(err, domain.ErrEmailTaken):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("registration failed", zap.Error(err))
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// Auth middleware already validated the token
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing token")
		return
	}

	h.authService.Logout(token)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
