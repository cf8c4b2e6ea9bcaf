package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/dreed/habit-tracker/internal/domain"
	"github.com/dreed/habit-tracker/internal/repository"
	"github.com/dreed/habit-tracker/internal/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// emailPattern accepts local@domain.tld with no whitespace. Nothing
// fancier; the address is never mailed to.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

// dummyHash keeps login timing stable when the email is unknown, so a
// failed lookup is not distinguishable from a wrong password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type AuthService struct {
	userRepo repository.UserRepository
	sessions session.Store
}

func NewAuthService(userRepo repository.UserRepository, sessions session.Store) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string

	// Optional overrides for the gamification defaults
	AvatarID   *int
	Health     *int
	Experience *int
	Level      *int
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	User  *domain.User
	Token string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrMissingFields
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, domain.ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		AvatarID:     1,
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

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.PasswordHash
	}

	// Always run the comparison, even for unknown emails
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(input.Password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := session.NewToken()
	if err != nil {
		return nil, err
	}

	s.sessions.Set(token, session.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	})

	return &AuthResult{User: user, Token: token}, nil
}

// Logout drops the token from the session store. A token that is
// already gone is fine; logout is idempotent.
func (s *AuthService) Logout(token string) {
	s.sessions.Delete(token)
}
