package repository

import (
	"context"

	"github.com/dreed/habit-tracker/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uint) error
}

type HabitRepository interface {
	Create(ctx context.Context, habit *domain.Habit) error
	// GetByIDForUser returns the habit only when it is owned by userID;
	// a habit owned by someone else is indistinguishable from a missing one.
	GetByIDForUser(ctx context.Context, id, userID uint) (*domain.Habit, error)
	GetByUserID(ctx context.Context, userID uint) ([]*domain.Habit, error)
	Update(ctx context.Context, habit *domain.Habit) error
	Delete(ctx context.Context, id uint) error
}

type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) error
	// GetByIDForUser returns the todo only when it is owned by userID.
	GetByIDForUser(ctx context.Context, id, userID uint) (*domain.Todo, error)
	GetByUserID(ctx context.Context, userID uint) ([]*domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) error
	Delete(ctx context.Context, id uint) error
}

type Repositories struct {
	User  UserRepository
	Habit HabitRepository
	Todo  TodoRepository
}
