package testutils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/linskybing/catalyst/internal/domain/audit"
	"github.com/linskybing/catalyst/internal/domain/cycle"
	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/domain/module"
	"github.com/linskybing/catalyst/internal/domain/project"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"github.com/linskybing/catalyst/internal/domain/user"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRepositorySuite checks the behaviour every store backend must share.
// Records are scoped to fresh projects so the suite can run against a store
// that already holds data.
func RunRepositorySuite(t *testing.T, repos *repository.Repos) {
	t.Run("Ping", func(t *testing.T) {
		require.NotNil(t, repos.Ping)
		assert.NoError(t, repos.Ping(context.Background()))
	})
	t.Run("TicketLifecycle", func(t *testing.T) { ticketLifecycle(t, repos) })
	t.Run("TicketUnknownLabels", func(t *testing.T) { ticketUnknownLabels(t, repos) })
	t.Run("TicketFilters", func(t *testing.T) { ticketFilters(t, repos) })
	t.Run("TicketSubtreeDelete", func(t *testing.T) { ticketSubtreeDelete(t, repos) })
	t.Run("ProjectDeleteCascade", func(t *testing.T) { projectDeleteCascade(t, repos) })
	t.Run("UserDeleteUnassigns", func(t *testing.T) { userDeleteUnassigns(t, repos) })
	t.Run("CycleAndModuleDeleteDetach", func(t *testing.T) { groupingDeleteDetach(t, repos) })
	t.Run("AuditQuery", func(t *testing.T) { auditQuery(t, repos) })
}

func strPtr(s string) *string { return &s }

func newProject(t *testing.T, repos *repository.Repos) project.Project {
	t.Helper()
	suffix := uuid.NewString()[:8]
	p := project.Project{Name: "Project " + suffix, Identifier: "P" + suffix}
	require.NoError(t, repos.Project.CreateProject(context.Background(), &p))
	require.NotEmpty(t, p.ID)
	return p
}

func newTicket(t *testing.T, repos *repository.Repos, tk ticket.Ticket) ticket.Ticket {
	t.Helper()
	require.NoError(t, repos.Ticket.CreateTicket(context.Background(), &tk))
	require.NotEmpty(t, tk.ID)
	return tk
}

func ticketLifecycle(t *testing.T, repos *repository.Repos) {
	ctx := context.Background()
	p := newProject(t, repos)
	l := label.Label{Name: "bug", ProjectID: &p.ID}
	require.NoError(t, repos.Label.CreateLabel(ctx, &l))

	created := newTicket(t, repos, ticket.Ticket{
		Title:     "Checkout flow",
		Summary:   strPtr("Card payments"),
		StartDate: strPtr("2024-03-01"),
		ProjectID: &p.ID,
		LabelIDs:  []string{l.ID},
	})
	assert.Equal(t, ticket.StatusOpen, created.Status)
	assert.Equal(t, ticket.PriorityNone, created.Priority)

	got, err := repos.Ticket.GetTicketByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Checkout flow", got.Title)
	assert.Equal(t, []string{l.ID}, got.LabelIDs)
	assert.Equal(t, "2024-03-01", *got.StartDate)
	assert.False(t, got.CreatedAt.IsZero())

	got.Status = ticket.StatusInProgress
	got.LabelIDs = []string{}
	require.NoError(t, repos.Ticket.UpdateTicket(ctx, &got))

	got, err = repos.Ticket.GetTicketByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusInProgress, got.Status)
	assert.Empty(t, got.LabelIDs)

	missing := ticket.Ticket{ID: uuid.NewString(), Title: "ghost"}
	assert.ErrorIs(t, repos.Ticket.UpdateTicket(ctx, &missing), repository.ErrNotFound)

	require.NoError(t, repos.Ticket.DeleteTicket(ctx, created.ID))
	_, err = repos.Ticket.GetTicketByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repos.Ticket.DeleteTicket(ctx, created.ID), repository.ErrNotFound)
}

func ticketUnknownLabels(t *testing.T, repos *repository.Repos) {
	ctx := context.Background()
	p := newProject(t, repos)
	l := label.Label{Name: "api", ProjectID: &p.ID}
	require.NoError(t, repos.Label.CreateLabel(ctx, &l))
	unknown := uuid.NewString()

	created := newTicket(t, repos, ticket.Ticket{
		Title:     "Webhooks",
		ProjectID: &p.ID,
		LabelIDs:  []string{unknown, l.ID, l.ID},
	})
	assert.Equal(t, []string{l.ID}, created.LabelIDs)

	got, err := repos.Ticket.GetTicketByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{l.ID}, got.LabelIDs)

	got.LabelIDs = []string{unknown}
	require.NoError(t, repos.Ticket.UpdateTicket(ctx, &got))
	assert.Empty(t, got.LabelIDs)

	got, err = repos.Ticket.GetTicketByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LabelIDs)
}

func ticketFilters(t *testing.T, repos *repository.Repos) {
	ctx := context.Background()
	p := newProject(t, repos)
	l := label.Label{Name: "ui", ProjectID: &p.ID}
	require.NoError(t, repos.Label.CreateLabel(ctx, &l))

	login := newTicket(t, repos, ticket.Ticket{Title: "Login screen", ProjectID: &p.ID, LabelIDs: []string{l.ID}})
	newTicket(t, repos, ticket.Ticket{
		Title:     "Rate limiter",
		Summary:   strPtr("Protect the LOGIN endpoint"),
		Status:    ticket.StatusResolved,
		Priority:  ticket.PriorityHigh,
		ProjectID: &p.ID,
	})
	newTicket(t, repos, ticket.Ticket{Title: "Onboarding copy", Assignee: strPtr("Dana"), ProjectID: &p.ID})

	all, err := repos.Ticket.ListTickets(ctx, ticket.ListFilter{ProjectID: p.ID})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byLabel, err := repos.Ticket.ListTickets(ctx, ticket.ListFilter{ProjectID: p.ID, LabelID: l.ID})
	require.NoError(t, err)
	require.Len(t, byLabel, 1)
	assert.Equal(t, login.ID, byLabel[0].ID)

	search, err := repos.Ticket.ListTickets(ctx, ticket.ListFilter{ProjectID: p.ID, Search: "login"})
	require.NoError(t, err)
	assert.Len(t, search, 2)

	byAssignee, err := repos.Ticket.ListTickets(ctx, ticket.ListFilter{ProjectID: p.ID, Search: "dana"})
	require.NoError(t, err)
	assert.Len(t, byAssignee, 1)

	resolved, err := repos.Ticket.ListTickets(ctx, ticket.ListFilter{
		ProjectID: p.ID,
		Status:    string(ticket.StatusResolved),
		Priority:  string(ticket.PriorityHigh),
	})
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "Rate limiter", resolved[0].Title)
}

func ticketSubtreeDelete(t *testing.T, repos *repository.Repos) {
	ctx := context.Background()
	p := newProject(t, repos)

	root := newTicket(t, repos, ticket.Ticket{Title: "Epic", ProjectID: &p.ID})
	child := newTicket(t, repos, ticket.Ticket{Title: "Story", ProjectID: &p.ID, ParentTicketID: &root.ID})
	grandchild := newTicket(t, repos, ticket.Ticket{Title: "Task", ProjectID: &p.ID, ParentTicketID: &child.ID})
	other := newTicket(t, repos, ticket.Ticket{Title: "Unrelated", ProjectID: &p.ID})

	children, err := repos.Ticket.ListTickets(ctx, ticket.ListFilter{ParentTicketID: root.ID})
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, child.ID, children[0].ID)

	require.NoError(t, repos.Ticket.DeleteTicket(ctx, root.ID))
	for _, id := range []string{root.ID, child.ID, grandchild.ID} {
		_, err := repos.Ticket.GetTicketByID(ctx, id)
		assert.ErrorIs(t, err, repository.ErrNotFound, id)
	}
	_, err = repos.Ticket.GetTicketByID(ctx, other.ID)
	assert.NoError(t, err)
}

func projectDeleteCascade(t *testing.T, repos *repository.Repos) {
	ctx := context.Background()
	p := newProject(t, repos)
	keep := newProject(t, repos)

	l := label.Label{Name: "backend", ProjectID: &p.ID}
	require.NoError(t, repos.Label.CreateLabel(ctx, &l))
	c := cycle.Cycle{Name: "Sprint 1", ProjectID: &p.ID}
	require.NoError(t, repos.Cycle.CreateCycle(ctx, &c))
	m := module.Module{Name: "Payments", ProjectID: &p.ID}
	require.NoError(t, repos.Module.CreateModule(ctx, &m))
	doomed := newTicket(t, repos, ticket.Ticket{Title: "Doomed", ProjectID: &p.ID})
	// Tickets elsewhere lose the deleted project's label.
	survivor := newTicket(t, repos, ticket.Ticket{Title: "Survivor", ProjectID: &keep.ID, LabelIDs: []string{l.ID}})

	require.NoError(t, repos.Project.DeleteProject(ctx, p.ID))

	_, err := repos.Project.GetProjectByID(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repos.Ticket.GetTicketByID(ctx, doomed.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repos.Label.GetLabelByID(ctx, l.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repos.Cycle.GetCycleByID(ctx, c.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repos.Module.GetModuleByID(ctx, m.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := repos.Ticket.GetTicketByID(ctx, survivor.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LabelIDs)

	assert.ErrorIs(t, repos.Project.DeleteProject(ctx, p.ID), repository.ErrNotFound)
}

func userDeleteUnassigns(t *testing.T, repos *repository.Repos) {
	ctx := context.Background()
	p := newProject(t, repos)
	u := user.User{Name: "Dana", Email: strPtr(uuid.NewString() + "@example.com"), Color: "#3B82F6"}
	require.NoError(t, repos.User.CreateUser(ctx, &u))

	byEmail, err := repos.User.GetUserByEmail(ctx, *u.Email)
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	tk := newTicket(t, repos, ticket.Ticket{Title: "Assigned", ProjectID: &p.ID, AssigneeID: &u.ID})

	require.NoError(t, repos.User.DeleteUser(ctx, u.ID))
	got, err := repos.Ticket.GetTicketByID(ctx, tk.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AssigneeID)

	assert.ErrorIs(t, repos.User.DeleteUser(ctx, u.ID), repository.ErrNotFound)
}

func groupingDeleteDetach(t *testing.T, repos *repository.Repos) {
	ctx := context.Background()
	p := newProject(t, repos)
	c := cycle.Cycle{Name: "Sprint 2", StartDate: strPtr("2024-03-01"), EndDate: strPtr("2024-03-14"), ProjectID: &p.ID}
	require.NoError(t, repos.Cycle.CreateCycle(ctx, &c))
	m := module.Module{Name: "Search", ProjectID: &p.ID}
	require.NoError(t, repos.Module.CreateModule(ctx, &m))

	cycles, err := repos.Cycle.ListCycles(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, cycles, 1)

	tk := newTicket(t, repos, ticket.Ticket{Title: "Indexer", ProjectID: &p.ID, CycleID: &c.ID, ModuleID: &m.ID})

	require.NoError(t, repos.Cycle.DeleteCycle(ctx, c.ID))
	require.NoError(t, repos.Module.DeleteModule(ctx, m.ID))

	got, err := repos.Ticket.GetTicketByID(ctx, tk.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CycleID)
	assert.Nil(t, got.ModuleID)

	assert.ErrorIs(t, repos.Cycle.DeleteCycle(ctx, c.ID), repository.ErrNotFound)
}

func auditQuery(t *testing.T, repos *repository.Repos) {
	ctx := context.Background()
	actor := "suite-" + uuid.NewString()[:8]
	for _, action := range []string{"create", "update", "delete"} {
		require.NoError(t, repos.Audit.CreateAuditLog(ctx, &audit.AuditLog{
			Actor:        actor,
			Action:       action,
			ResourceType: "ticket",
			ResourceID:   uuid.NewString(),
			NewData:      []byte(`{"title":"x"}`),
		}))
	}

	logs, err := repos.Audit.GetAuditLogs(ctx, repository.AuditQueryParams{Actor: &actor})
	require.NoError(t, err)
	assert.Len(t, logs, 3)

	action := "update"
	logs, err = repos.Audit.GetAuditLogs(ctx, repository.AuditQueryParams{Actor: &actor, Action: &action})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.JSONEq(t, `{"title":"x"}`, string(logs[0].NewData))

	logs, err = repos.Audit.GetAuditLogs(ctx, repository.AuditQueryParams{Actor: &actor, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, logs, 2)

	// Fresh entries survive the retention sweep.
	require.NoError(t, repos.Audit.DeleteOldAuditLogs(ctx, 30))
	logs, err = repos.Audit.GetAuditLogs(ctx, repository.AuditQueryParams{Actor: &actor})
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}
