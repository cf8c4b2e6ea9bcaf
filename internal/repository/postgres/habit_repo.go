package postgres

import (
	"context"

	"github.com/dreed/habit-tracker/internal/domain"
	"gorm.io/gorm"
)

type habitRepository struct {
	db *gorm.DB
}

func NewHabitRepository(db *gorm.DB) *habitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	return r.db.WithContext(ctx).Create(habit).Error
}

func (r *habitRepository) GetByIDForUser(ctx context.Context, id, userID uint) (*domain.Habit, error) {
	var habit domain.Habit
	err := r.db.WithContext(ctx).
		First(&habit, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func (r *habitRepository) GetByUserID(ctx context.Context, userID uint) ([]*domain.Habit, error) {
	var habits []*domain.Habit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&habits).Error
	if err != nil {
		return nil, err
	}
	return habits, nil
}

func (r *habitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	return r.db.WithContext(ctx).Save(habit).Error
}

func (r *habitRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Habit{}, "id = ?", id).Error
}
