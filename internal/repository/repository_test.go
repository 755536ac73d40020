package repository_test

import (
	"context"
	"testing"

	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/domain/project"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"github.com/linskybing/catalyst/internal/domain/user"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepositories(t *testing.T) {
	testutils.RunRepositorySuite(t, repository.NewRepositories(testutils.SetupSQLite(t)))
}

func TestProjectRepo_Conflicts(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutils.SetupSQLite(t))

	p := project.Project{Name: "Mobile App", Identifier: "MOBILEAPP"}
	require.NoError(t, repos.Project.CreateProject(ctx, &p))

	dupName := project.Project{Name: "Mobile App", Identifier: "OTHER"}
	assert.ErrorIs(t, repos.Project.CreateProject(ctx, &dupName), repository.ErrConflict)

	dupIdent := project.Project{Name: "Other", Identifier: "MOBILEAPP"}
	assert.ErrorIs(t, repos.Project.CreateProject(ctx, &dupIdent), repository.ErrConflict)

	byIdent, err := repos.Project.GetProjectByIdentifier(ctx, "MOBILEAPP")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byIdent.ID)

	_, err = repos.Project.GetProjectByName(ctx, "Nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	ghost := project.Project{ID: "missing", Name: "Ghost", Identifier: "GHOST"}
	assert.ErrorIs(t, repos.Project.UpdateProject(ctx, &ghost), repository.ErrNotFound)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutils.SetupSQLite(t))
	email := "dana@example.com"

	require.NoError(t, repos.User.CreateUser(ctx, &user.User{Name: "Dana", Email: &email}))
	assert.ErrorIs(t, repos.User.CreateUser(ctx, &user.User{Name: "Dana 2", Email: &email}), repository.ErrConflict)

	// Users without an email do not collide.
	require.NoError(t, repos.User.CreateUser(ctx, &user.User{Name: "A"}))
	require.NoError(t, repos.User.CreateUser(ctx, &user.User{Name: "B"}))

	users, err := repos.User.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestLabelRepo_DeleteDetachesTickets(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewRepositories(testutils.SetupSQLite(t))

	l := label.Label{Name: "bug"}
	require.NoError(t, repos.Label.CreateLabel(ctx, &l))

	tk := ticket.Ticket{Title: "Crash on start", LabelIDs: []string{l.ID}}
	require.NoError(t, repos.Ticket.CreateTicket(ctx, &tk))

	got, err := repos.Ticket.GetTicketByID(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{l.ID}, got.LabelIDs)

	require.NoError(t, repos.Label.DeleteLabel(ctx, l.ID))
	got, err = repos.Ticket.GetTicketByID(ctx, tk.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LabelIDs)
}
