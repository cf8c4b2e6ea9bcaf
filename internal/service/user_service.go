package service

import (
	"context"
	"errors"

	"github.com/dreed/habit-tracker/internal/domain"
	"github.com/dreed/habit-tracker/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateUserInput carries a partial update: nil fields keep their
// stored values.
type UpdateUserInput struct {
	Name       *string
	Email      *string
	Password   *string
	AvatarID   *int
	Health     *int
	Experience *int
	Level      *int
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.GetAll(ctx)
}

// Get returns the user row behind id. Any authenticated caller may
// resolve the route, but only the owner gets past the access check.
func (s *UserService) Get(ctx context.Context, callerID, id uint) (*domain.User, error) {
	user, err := s.getOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, callerID, id uint, input UpdateUserInput) (*domain.User, error) {
	user, err := s.getOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		if !emailPattern.MatchString(*input.Email) {
			return nil, domain.ErrInvalidEmail
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		if len(*input.Password) < minPasswordLength {
			return nil, domain.ErrPasswordTooShort
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashed)
	}
	if input.AvatarID != nil {
		user.AvatarID = *input.AvatarID
	}
	if input.Health != nil {
		user.Health = *input.Health
	}
	if input.Experience != nil {
		user.Experience = *input.Experience
	}
	if input.Level != nil {
		user.Level = *input.Level
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user; habits and todos go with it via the
// cascading foreign keys. Outstanding session tokens are left alone.
func (s *UserService) Delete(ctx context.Context, callerID, id uint) error {
	if _, err := s.getOwned(ctx, callerID, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// getOwned looks the user up first so an absent id reads as 404, then
// applies the explicit ownership check for 403.
func (s *UserService) getOwned(ctx context.Context, callerID, id uint) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if user.ID != callerID {
		return nil, domain.ErrAccessDenied
	}
	return user, nil
}
