package firestore

import (
	"context"
	"sort"
	"strings"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/linskybing/catalyst/internal/domain/user"
	"github.com/linskybing/catalyst/internal/repository"
)

type UserRepo struct {
	client *fs.Client
}

func setUserID(u *user.User, id string) { u.ID = id }

func (r *UserRepo) col() *fs.CollectionRef { return r.client.Collection(UsersCollection) }

func (r *UserRepo) ListUsers(ctx context.Context) ([]user.User, error) {
	users, err := readAll(r.col().Documents(ctx), setUserID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(users, func(i, j int) bool {
		return strings.ToLower(users[i].Name) < strings.ToLower(users[j].Name)
	})
	return users, nil
}

func (r *UserRepo) GetUserByID(ctx context.Context, id string) (user.User, error) {
	return getDoc(ctx, r.col(), id, setUserID)
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	found, err := readAll(r.col().Where("email", "==", email).Limit(1).Documents(ctx), setUserID)
	if err != nil {
		return user.User{}, err
	}
	if len(found) == 0 {
		return user.User{}, repository.ErrNotFound
	}
	return found[0], nil
}

func (r *UserRepo) CreateUser(ctx context.Context, u *user.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = now()
	u.UpdatedAt = u.CreatedAt
	_, err := r.col().Doc(u.ID).Create(ctx, u)
	return translate(err)
}

func (r *UserRepo) UpdateUser(ctx context.Context, u *user.User) error {
	u.UpdatedAt = now()
	return replaceDoc(ctx, r.col().Doc(u.ID), u)
}

func (r *UserRepo) DeleteUser(ctx context.Context, id string) error {
	if _, err := r.GetUserByID(ctx, id); err != nil {
		return err
	}
	b := newBulk(ctx, r.client)
	if err := clearTicketField(ctx, r.client, b, "assignee_id", id); err != nil {
		b.end()
		return err
	}
	b.delete(r.col().Doc(id))
	return b.end()
}

var _ repository.UserRepo = (*UserRepo)(nil)
