package service

import (
	"context"

	"busbook/internal/db"
	apperrors "busbook/internal/errors"
	"busbook/internal/model"
	"busbook/internal/repository"
)

// UserService exposes user domain operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	CreateUser(ctx context.Context, name, email string) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, name, email string) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) (*model.User, error)
	SeedUsers(ctx context.Context, users []model.User) (created, skipped int, err error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService over the repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// CreateUser inserts the user and re-reads the row so system-generated
// values are reflected in the result.
func (s *userService) CreateUser(ctx context.Context, name, email string) (*model.User, error) {
	user := &model.User{Name: name, Email: email}
	if err := s.repo.Create(ctx, user); err != nil {
		if db.IsDuplicateKey(err) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, err
	}
	return s.repo.FindByID(ctx, user.ID)
}

// UpdateUser confirms the row exists before writing so a missing id surfaces
// as not-found rather than a silent no-op. The check and the write are two
// sequential statements, not a transaction.
func (s *userService) UpdateUser(ctx context.Context, id uint, name, email string) (*model.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	existing.Name = name
	existing.Email = email
	if err := s.repo.Update(ctx, existing); err != nil {
		if db.IsDuplicateKey(err) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// DeleteUser removes the row and returns it as it existed before deletion.
func (s *userService) DeleteUser(ctx context.Context, id uint) (*model.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}

// SeedUsers inserts users one at a time, skipping rows whose email is
// already taken. Used by the seed command.
func (s *userService) SeedUsers(ctx context.Context, users []model.User) (created, skipped int, err error) {
	for i := range users {
		user := users[i]
		if err := s.repo.Create(ctx, &user); err != nil {
			if db.IsDuplicateKey(err) {
				skipped++
				continue
			}
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}
