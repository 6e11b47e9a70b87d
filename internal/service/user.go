package service

import (
	"PassKeeper/internal/auth"
	"PassKeeper/internal/model"
	"PassKeeper/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrEmailTaken — email уже занят другим пользователем.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	// Случаи намеренно неразличимы для вызывающего.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserService инкапсулирует регистрацию и аутентификацию.
type UserService struct {
	repo       repo.UserRepository
	bcryptCost int
}

func NewUserService(r repo.UserRepository, bcryptCost int) *UserService {
	return &UserService{repo: r, bcryptCost: bcryptCost}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, email, password string) (*model.User, error) {
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateUser(ctx, &model.User{Email: email, PasswordHash: hash})
}

// Login сверяет пароль и возвращает пользователя.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
