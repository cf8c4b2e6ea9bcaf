package service

import (
	"context"
	"errors"

	"github.com/dreed/habit-tracker/internal/domain"
	"github.com/dreed/habit-tracker/internal/repository"
	"gorm.io/gorm"
)

type HabitService struct {
	habitRepo repository.HabitRepository
}

func NewHabitService(habitRepo repository.HabitRepository) *HabitService {
	return &HabitService{habitRepo: habitRepo}
}

type CreateHabitInput struct {
	Name       string
	Freq       domain.Frequency
	Completed  *int
	ToComplete *int
	Status     *string
}

// UpdateHabitInput carries a partial update: nil fields keep their
// stored values.
type UpdateHabitInput struct {
	Name       *string
	Freq       *domain.Frequency
	Completed  *int
	ToComplete *int
	Status     *string
}

func (s *HabitService) List(ctx context.Context, userID uint) ([]*domain.Habit, error) {
	return s.habitRepo.GetByUserID(ctx, userID)
}

func (s *HabitService) Get(ctx context.Context, userID, id uint) (*domain.Habit, error) {
	return s.getOwned(ctx, userID, id)
}

// Create inserts a habit owned by userID. The owner always comes from
// the authenticated caller, never from the request body.
func (s *HabitService) Create(ctx context.Context, userID uint, input CreateHabitInput) (*domain.Habit, error) {
	if input.Name == "" {
		return nil, domain.ErrNameRequired
	}
	if !domain.ValidFrequency(input.Freq) {
		return nil, domain.ErrInvalidFrequency
	}

	habit := &domain.Habit{
		UserID:     userID,
		Name:       input.Name,
		Freq:       input.Freq,
		ToComplete: 1,
		Status:     domain.HabitStatusActive,
	}
	if input.Completed != nil {
		habit.Completed = *input.Completed
	}
	if input.ToComplete != nil {
		habit.ToComplete = *input.ToComplete
	}
	if input.Status != nil {
		habit.Status = *input.Status
	}
	habit.ClampCompleted()

	if err := s.habitRepo.Create(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) Update(ctx context.Context, userID, id uint, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		habit.Name = *input.Name
	}
	if input.Freq != nil {
		if !domain.ValidFrequency(*input.Freq) {
			return nil, domain.ErrInvalidFrequency
		}
		habit.Freq = *input.Freq
	}
	if input.Completed != nil {
		habit.Completed = *input.Completed
	}
	if input.ToComplete != nil {
		habit.ToComplete = *input.ToComplete
	}
	if input.Status != nil {
		habit.Status = *input.Status
	}
	habit.ClampCompleted()

	if err := s.habitRepo.Update(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) Delete(ctx context.Context, userID, id uint) error {
	habit, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.habitRepo.Delete(ctx, habit.ID)
}

// getOwned scopes the lookup by owner, so another user's habit reads
// as not found rather than forbidden.
func (s *HabitService) getOwned(ctx context.Context, userID, id uint) (*domain.Habit, error) {
	habit, err := s.habitRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, err
	}
	return habit, nil
}
