package service

import (
	"context"
	"errors"
	"time"

	"github.com/dreed/habit-tracker/internal/domain"
	"github.com/dreed/habit-tracker/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TodoService struct {
	todoRepo repository.TodoRepository
}

func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

type CreateTodoInput struct {
	Name        string
	Date        string
	IsCompleted *bool
}

// UpdateTodoInput carries a partial update: nil fields keep their
// stored values.
type UpdateTodoInput struct {
	Name        *string
	Date        *string
	IsCompleted *bool
}

func (s *TodoService) List(ctx context.Context, userID uint) ([]*domain.Todo, error) {
	return s.todoRepo.GetByUserID(ctx, userID)
}

func (s *TodoService) Get(ctx context.Context, userID, id uint) (*domain.Todo, error) {
	return s.getOwned(ctx, userID, id)
}

func (s *TodoService) Create(ctx context.Context, userID uint, input CreateTodoInput) (*domain.Todo, error) {
	if input.Name == "" {
		return nil, domain.ErrNameRequired
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	todo := &domain.Todo{
		UserID: userID,
		Name:   input.Name,
		Date:   date,
	}
	if input.IsCompleted != nil {
		todo.IsCompleted = *input.IsCompleted
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, userID, id uint, input UpdateTodoInput) (*domain.Todo, error) {
	todo, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		todo.Name = *input.Name
	}
	if input.Date != nil {
		date, err := parseDate(*input.Date)
		if err != nil {
			return nil, err
		}
		todo.Date = date
	}
	if input.IsCompleted != nil {
		todo.IsCompleted = *input.IsCompleted
	}

	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Toggle flips the completion flag; two toggles restore the original
// state.
func (s *TodoService) Toggle(ctx context.Context, userID, id uint) (*domain.Todo, error) {
	todo, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	todo.IsCompleted = !todo.IsCompleted
	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, userID, id uint) error {
	todo, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.todoRepo.Delete(ctx, todo.ID)
}

func (s *TodoService) getOwned(ctx context.Context, userID, id uint) (*domain.Todo, error) {
	todo, err := s.todoRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, err
	}
	return todo, nil
}

func parseDate(value string) (datatypes.Date, error) {
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return datatypes.Date{}, domain.ErrInvalidDate
	}
	return datatypes.Date(t), nil
}
