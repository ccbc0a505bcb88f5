package services

import (
	"context"
	"errors"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// Error texts double as response bodies; the Android client matches on them.
var (
	ErrUsernameRequired = errors.New("Error: Username is required!")
	ErrUsernameTaken    = errors.New("Error: Username already taken!")
	ErrEmailTaken       = errors.New("Error: Email already in use!")
	ErrUserNotFound     = errors.New("Error: User Not Found!")
	ErrWrongPassword    = errors.New("Error: Wrong Password")
)

// UserStore is the persistence surface the auth and cart services need.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash, email string) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type AuthService struct {
	Users UserStore
}

func NewAuthService(u UserStore) *AuthService {
	return &AuthService{Users: u}
}

// Register hashes the password and persists a new user. The username must be
// non-empty and unique; a non-empty email must be unique as well.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (int64, error) {
	if username == "" {
		return 0, ErrUsernameRequired
	}
	exists, err := s.Users.ExistsByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrUsernameTaken
	}
	if email != "" {
		exists, err = s.Users.ExistsByEmail(ctx, email)
		if err != nil {
			return 0, err
		}
		if exists {
			return 0, ErrEmailTaken
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.Users.Create(ctx, username, string(hash), email)
}

// Login returns the stored user row when the password verifies against the
// digest. The row still carries the digest; handlers serialize it as-is.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}
	return u, nil
}
