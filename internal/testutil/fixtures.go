package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dreed/habit-tracker/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email address
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		AvatarID:     1,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// UserPayload matches the API's public user shape
type UserPayload struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	AvatarID   int    `json:"avatar_id"`
	Health     int    `json:"health"`
	Experience int    `json:"experience"`
	Level      int    `json:"level"`
}

// LoginPayload matches the API login response
type LoginPayload struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

// BuildAndAuthenticate registers the user via the API, logs in and
// returns the user together with a valid session token.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	registerBody, _ := json.Marshal(map[string]string{
		"name":     b.name,
		"email":    b.email,
		"password": b.password,
	})
	resp, err := http.Post(ts.URL("/register"), "application/json", bytes.NewBuffer(registerBody))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected register status code: %d", resp.StatusCode)
	}

	loginBody, _ := json.Marshal(map[string]string{
		"email":    b.email,
		"password": b.password,
	})
	resp, err = http.Post(ts.URL("/login"), "application/json", bytes.NewBuffer(loginBody))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", resp.StatusCode)
	}

	var login LoginPayload
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	user := &domain.User{
		ID:    login.User.ID,
		Name:  login.User.Name,
		Email: login.User.Email,
	}
	return user, login.Token
}

// HabitBuilder creates test habits with a builder pattern
type HabitBuilder struct {
	owner      *domain.User
	name       string
	freq       domain.Frequency
	completed  int
	toComplete int
	status     string
}

// NewHabitBuilder creates a new HabitBuilder with default values
func NewHabitBuilder() *HabitBuilder {
	return &HabitBuilder{
		name:       "Run",
		freq:       domain.FrequencyDaily,
		toComplete: 1,
		status:     domain.HabitStatusActive,
	}
}

// WithOwner sets the owning user
func (b *HabitBuilder) WithOwner(user *domain.User) *HabitBuilder {
	b.owner = user
	return b
}

// WithName sets the habit name
func (b *HabitBuilder) WithName(name string) *HabitBuilder {
	b.name = name
	return b
}

// WithFreq sets the frequency
func (b *HabitBuilder) WithFreq(freq domain.Frequency) *HabitBuilder {
	b.freq = freq
	return b
}

// WithProgress sets completed and to_complete
func (b *HabitBuilder) WithProgress(completed, toComplete int) *HabitBuilder {
	b.completed = completed
	b.toComplete = toComplete
	return b
}

// Build creates the habit in the database
func (b *HabitBuilder) Build(t *testing.T, db *gorm.DB) *domain.Habit {
	t.Helper()

	if b.owner == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.owner = user
	}

	habit := &domain.Habit{
		UserID:     b.owner.ID,
		Name:       b.name,
		Freq:       b.freq,
		Completed:  b.completed,
		ToComplete: b.toComplete,
		Status:     b.status,
	}

	if err := db.Create(habit).Error; err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	return habit
}

// TodoBuilder creates test todos with a builder pattern
type TodoBuilder struct {
	owner       *domain.User
	name        string
	date        time.Time
	isCompleted bool
}

// NewTodoBuilder creates a new TodoBuilder with default values
func NewTodoBuilder() *TodoBuilder {
	return &TodoBuilder{
		name: "Buy groceries",
		date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithOwner sets the owning user
func (b *TodoBuilder) WithOwner(user *domain.User) *TodoBuilder {
	b.owner = user
	return b
}

// WithName sets the todo name
func (b *TodoBuilder) WithName(name string) *TodoBuilder {
	b.name = name
	return b
}

// WithDate sets the todo date
func (b *TodoBuilder) WithDate(date time.Time) *TodoBuilder {
	b.date = date
	return b
}

// Completed marks the todo as done
func (b *TodoBuilder) Completed() *TodoBuilder {
	b.isCompleted = true
	return b
}

// Build creates the todo in the database
func (b *TodoBuilder) Build(t *testing.T, db *gorm.DB) *domain.Todo {
	t.Helper()

	if b.owner == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.owner = user
	}

	todo := &domain.Todo{
		UserID:      b.owner.ID,
		Name:        b.name,
		Date:        datatypes.Date(b.date),
		IsCompleted: b.isCompleted,
	}

	if err := db.Create(todo).Error; err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}

	return todo
}
