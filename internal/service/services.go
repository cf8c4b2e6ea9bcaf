package service

import (
	"github.com/dreed/habit-tracker/internal/repository"
	"github.com/dreed/habit-tracker/internal/session"
)

type Services struct {
	Auth  *AuthService
	User  *UserService
	Habit *HabitService
	Todo  *TodoService
}

func NewServices(repos *repository.Repositories, sessions session.Store) *Services {
	return &Services{
		Auth:  NewAuthService(repos.User, sessions),
		User:  NewUserService(repos.User),
		Habit: NewHabitService(repos.Habit),
		Todo:  NewTodoService(repos.Todo),
	}
}
