package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/catalyst/internal/domain/user"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/pkg/calendar"
	"github.com/linskybing/catalyst/pkg/utils"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.Repos.User.ListUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*user.User, error) {
	u, err := s.Repos.User.GetUserByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) CreateUser(ctx context.Context, input user.CreateUserDTO) (*user.User, error) {
	u := &user.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Email:     normalizeEmail(input.Email),
		AvatarURL: optionalText(input.AvatarURL),
	}
	if input.Color != nil && *input.Color != "" {
		u.Color = *input.Color
	} else {
		u.Color = calendar.ColorForID(u.ID)
	}
	if err := s.checkEmail(ctx, u); err != nil {
		return nil, err
	}

	if err := s.Repos.User.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, "create", "user", fmt.Sprintf("user_id=%s", u.ID), nil, *u, "", s.Repos.Audit)
	return u, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, input user.UpdateUserDTO) (*user.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *u

	if input.Name != nil {
		u.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		u.Email = normalizeEmail(input.Email)
	}
	if input.AvatarURL != nil {
		u.AvatarURL = optionalText(input.AvatarURL)
	}
	if input.Color != nil && *input.Color != "" {
		u.Color = *input.Color
	}
	if err := s.checkEmail(ctx, u); err != nil {
		return nil, err
	}

	if err := s.Repos.User.UpdateUser(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return nil, ErrDuplicateEmail
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, "update", "user", fmt.Sprintf("user_id=%s", u.ID), old, *u, "", s.Repos.Audit)
	return u, nil
}

// DeleteUser removes the user and unassigns their tickets.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repos.User.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	utils.LogAuditWithConsole(ctx, "delete", "user", fmt.Sprintf("user_id=%s", id), *u, nil, "", s.Repos.Audit)
	return nil
}

func (s *UserService) checkEmail(ctx context.Context, u *user.User) error {
	if u.Email == nil {
		return nil
	}
	existing, err := s.Repos.User.GetUserByEmail(ctx, *u.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != u.ID {
		return ErrDuplicateEmail
	}
	return nil
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	e := strings.ToLower(strings.TrimSpace(*email))
	if e == "" {
		return nil
	}
	return &e
}
