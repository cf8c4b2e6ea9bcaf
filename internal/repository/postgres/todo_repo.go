package postgres

import (
	"context"

	"github.com/dreed/habit-tracker/internal/domain"
	"gorm.io/gorm"
)

type todoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *todoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *todoRepository) GetByIDForUser(ctx context.Context, id, userID uint) (*domain.Todo, error) {
	var todo domain.Todo
	err := r.db.WithContext(ctx).
		First(&todo, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepository) GetByUserID(ctx context.Context, userID uint) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

func (r *todoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Todo{}, "id = ?", id).Error
}
