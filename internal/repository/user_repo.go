package repository

import (
	"context"
	"errors"

	"github.com/AdityaUpadhyay26101/GroCart-FullStack/internal/model"
)

type UserRepository struct {
	DB DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Create inserts a new user (password already hashed) and returns the assigned id.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash, email string) (int64, error) {
	var id int64
	query := `INSERT INTO users (username, password, email) VALUES ($1, $2, $3) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, username, passwordHash, email).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	query := `SELECT id, username, password, email FROM users WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.Password, &u.Email); err != nil {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	query := `SELECT id, username, password, email FROM users WHERE username=$1`
	if err := r.DB.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.Password, &u.Email); err != nil {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username=$1)`
	if err := r.DB.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
