package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/catalyst/internal/application"
	"github.com/linskybing/catalyst/internal/domain/user"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/pkg/calendar"
)

func TestUserServiceCRUD(t *testing.T) {
	repos, m := setupRepos(t)
	svc := application.NewUserService(repos)
	ctx := context.Background()

	t.Run("CreateUser defaults colour from id", func(t *testing.T) {
		m.user.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)

		u, err := svc.CreateUser(ctx, user.CreateUserDTO{Name: "  Alice  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID == "" || u.Name != "Alice" {
			t.Fatalf("unexpected user: %+v", u)
		}
		if u.Color != calendar.ColorForID(u.ID) {
			t.Fatalf("expected hashed colour, got %s", u.Color)
		}
	})

	t.Run("CreateUser keeps explicit colour and lowercases email", func(t *testing.T) {
		m.user.EXPECT().GetUserByEmail(gomock.Any(), "bob@example.com").Return(user.User{}, repository.ErrNotFound)
		m.user.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)

		u, err := svc.CreateUser(ctx, user.CreateUserDTO{Name: "Bob", Email: strPtr("Bob@Example.com"), Color: strPtr("#123456")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Color != "#123456" || *u.Email != "bob@example.com" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("CreateUser duplicate email", func(t *testing.T) {
		m.user.EXPECT().GetUserByEmail(gomock.Any(), "dup@example.com").Return(user.User{ID: "u-9"}, nil)

		_, err := svc.CreateUser(ctx, user.CreateUserDTO{Name: "Dup", Email: strPtr("dup@example.com")})
		if !errors.Is(err, application.ErrDuplicateEmail) {
			t.Fatalf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("UpdateUser", func(t *testing.T) {
		m.user.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(user.User{ID: "u-1", Name: "Old", Color: "#000000"}, nil)
		m.user.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)

		u, err := svc.UpdateUser(ctx, "u-1", user.UpdateUserDTO{Name: strPtr("New"), Color: strPtr("")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Name != "New" || u.Color != "#000000" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("DeleteUser not found", func(t *testing.T) {
		m.user.EXPECT().GetUserByID(gomock.Any(), "u-x").Return(user.User{}, repository.ErrNotFound)
		if err := svc.DeleteUser(ctx, "u-x"); !errors.Is(err, application.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
