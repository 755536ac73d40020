package handlers_test

import (
	"net/http"
	"testing"

	"github.com/linskybing/catalyst/internal/domain/cycle"
	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/domain/project"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"github.com/linskybing/catalyst/internal/domain/user"
	"github.com/linskybing/catalyst/pkg/calendar"
	"github.com/linskybing/catalyst/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketHandler(t *testing.T) {
	env := newTestEnv(t)

	var created ticket.Ticket
	t.Run("CreateTicket - Success", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/tickets", map[string]any{
			"title":      "Design onboarding flow",
			"summary":    "First-run screens",
			"start_date": "2024-03-01",
			"end_date":   "2024-03-05",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created = decode[ticket.Ticket](t, w)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, ticket.StatusOpen, created.Status)
		assert.Equal(t, ticket.PriorityNone, created.Priority)
		assert.Equal(t, []string{}, created.LabelIDs)
	})

	t.Run("CreateTicket - Invalid Input Validation", func(t *testing.T) {
		tests := []struct {
			name  string
			input map[string]any
		}{
			{"missing title", map[string]any{"summary": "no title"}},
			{"bad status", map[string]any{"title": "x", "status": "done"}},
			{"bad priority", map[string]any{"title": "x", "priority": "p9"}},
			{"bad date", map[string]any{"title": "x", "start_date": "03/01/2024"}},
			{"negative estimate", map[string]any{"title": "x", "estimated_hours": -1}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := env.do(t, http.MethodPost, "/api/tickets", tt.input)
				assert.Equal(t, http.StatusBadRequest, w.Code)
			})
		}
	})

	t.Run("ListTickets - Created ticket reappears", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/tickets", nil)
		require.Equal(t, http.StatusOK, w.Code)
		list := decode[ticket.ListResponse](t, w)
		require.Equal(t, 1, list.Total)
		assert.Equal(t, created.ID, list.Tickets[0].ID)
		assert.Equal(t, "Design onboarding flow", list.Tickets[0].Title)
	})

	t.Run("ListTickets - Search is case-insensitive", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/tickets?search=FIRST-RUN", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, decode[ticket.ListResponse](t, w).Total)

		w = env.do(t, http.MethodGet, "/api/tickets?search=billing", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, decode[ticket.ListResponse](t, w).Total)
	})

	t.Run("UpdateTicket - Partial update", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/tickets/"+created.ID, map[string]any{"status": "in_progress"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := decode[ticket.Ticket](t, w)
		assert.Equal(t, ticket.StatusInProgress, got.Status)
		assert.Equal(t, "Design onboarding flow", got.Title)
		require.NotNil(t, got.Summary)
		assert.Equal(t, "First-run screens", *got.Summary)
	})

	t.Run("UpdateTicket - Own parent rejected", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/tickets/"+created.ID, map[string]any{"parent_ticket_id": created.ID})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DeleteTicket - Removes subtasks", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/tickets", map[string]any{"title": "Subtask", "parent_ticket_id": created.ID})
		require.Equal(t, http.StatusCreated, w.Code)
		child := decode[ticket.Ticket](t, w)

		w = env.do(t, http.MethodDelete, "/api/tickets/"+created.ID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = env.do(t, http.MethodGet, "/api/tickets/"+child.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GetTicket - Not Found", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/tickets/does-not-exist", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "ticket not found", decode[response.ErrorResponse](t, w).Error)
	})
}

func TestProjectHandler(t *testing.T) {
	env := newTestEnv(t)

	var p project.Project
	t.Run("CreateProject - Identifier derived from name", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/projects", map[string]any{"name": "Mobile App Redesign"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		p = decode[project.Project](t, w)
		assert.Equal(t, "MOBILEAPP", p.Identifier)
	})

	t.Run("CreateProject - Duplicate name", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/projects", map[string]any{"name": "Mobile App Redesign", "identifier": "OTHER"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("CreateProject - Duplicate identifier", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/projects", map[string]any{"name": "Another", "identifier": "MOBILEAPP"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("DeleteProject - Cascades to tickets and labels", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/labels", map[string]any{"name": "ios", "project_id": p.ID})
		require.Equal(t, http.StatusCreated, w.Code)
		w = env.do(t, http.MethodPost, "/api/tickets", map[string]any{"title": "Splash screen", "project_id": p.ID})
		require.Equal(t, http.StatusCreated, w.Code)

		w = env.do(t, http.MethodDelete, "/api/projects/"+p.ID, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = env.do(t, http.MethodGet, "/api/tickets?project_id="+p.ID, nil)
		assert.Equal(t, 0, decode[ticket.ListResponse](t, w).Total)
		w = env.do(t, http.MethodGet, "/api/labels?project_id="+p.ID, nil)
		assert.Empty(t, decode[[]label.Label](t, w))
		w = env.do(t, http.MethodGet, "/api/projects/"+p.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GetProjects - Empty list is an array", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/projects", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestUserHandler(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/users", map[string]any{"name": "Jane Doe", "email": "Jane@Example.com"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	jane := decode[user.User](t, w)
	assert.Equal(t, calendar.ColorForID(jane.ID), jane.Color)
	require.NotNil(t, jane.Email)
	assert.Equal(t, "jane@example.com", *jane.Email)

	t.Run("CreateUser - Duplicate email", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/users", map[string]any{"name": "J. Doe", "email": "jane@example.com"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("CreateUser - Invalid email", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/users", map[string]any{"name": "Bob", "email": "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DeleteUser - Unassigns tickets", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/tickets", map[string]any{"title": "Write tests", "assignee_id": jane.ID})
		require.Equal(t, http.StatusCreated, w.Code)
		tk := decode[ticket.Ticket](t, w)

		w = env.do(t, http.MethodDelete, "/api/users/"+jane.ID, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = env.do(t, http.MethodGet, "/api/tickets/"+tk.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, decode[ticket.Ticket](t, w).AssigneeID)
	})

	t.Run("UpdateUser - Not Found", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/users/nobody", map[string]any{"name": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGroupingHandlers(t *testing.T) {
	env := newTestEnv(t)

	t.Run("Labels - Filter tickets and detach on delete", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/labels", map[string]any{"name": "backend", "color": "#123456"})
		require.Equal(t, http.StatusCreated, w.Code)
		l := decode[label.Label](t, w)

		w = env.do(t, http.MethodPost, "/api/tickets", map[string]any{"title": "API", "label_ids": []string{l.ID}})
		require.Equal(t, http.StatusCreated, w.Code)
		tk := decode[ticket.Ticket](t, w)
		assert.Equal(t, []string{l.ID}, tk.LabelIDs)

		w = env.do(t, http.MethodGet, "/api/tickets?label_id="+l.ID, nil)
		assert.Equal(t, 1, decode[ticket.ListResponse](t, w).Total)

		w = env.do(t, http.MethodDelete, "/api/labels/"+l.ID, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = env.do(t, http.MethodGet, "/api/tickets/"+tk.ID, nil)
		assert.Empty(t, decode[ticket.Ticket](t, w).LabelIDs)
	})

	t.Run("Cycles - End before start rejected", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/cycles", map[string]any{
			"name":       "Sprint 1",
			"start_date": "2024-03-10",
			"end_date":   "2024-03-01",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Cycles - Delete clears ticket reference", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/cycles", map[string]any{"name": "Sprint 2", "start_date": "2024-04-01", "end_date": "2024-04-14"})
		require.Equal(t, http.StatusCreated, w.Code)
		cy := decode[cycle.Cycle](t, w)

		w = env.do(t, http.MethodPost, "/api/tickets", map[string]any{"title": "Sprint work", "cycle_id": cy.ID})
		require.Equal(t, http.StatusCreated, w.Code)
		tk := decode[ticket.Ticket](t, w)

		w = env.do(t, http.MethodDelete, "/api/cycles/"+cy.ID, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = env.do(t, http.MethodGet, "/api/tickets/"+tk.ID, nil)
		assert.Nil(t, decode[ticket.Ticket](t, w).CycleID)
	})

	t.Run("Modules - Not Found", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/modules/missing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCalendarHandler(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []map[string]any{
		{"title": "Span", "start_date": "2024-03-01", "end_date": "2024-03-03"},
		{"title": "Same day", "start_date": "2024-03-03", "end_date": "2024-03-03"},
		{"title": "Undated"},
	} {
		w := env.do(t, http.MethodPost, "/api/tickets", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("Events - Bucketed by day", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/calendar/events?from=2024-03-01&to=2024-03-31", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		days := decode[[]calendar.Day](t, w)
		require.Len(t, days, 2)
		assert.Equal(t, "2024-03-01", days[0].Date)
		require.Len(t, days[0].Events, 1)
		assert.Equal(t, calendar.KindStart, days[0].Events[0].Kind)
		assert.Equal(t, "2024-03-03", days[1].Date)
		assert.Len(t, days[1].Events, 2)
	})

	t.Run("Events - Single bound uses that month", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/api/tickets", map[string]any{"title": "Far out", "start_date": "2099-01-20"})
		require.Equal(t, http.StatusCreated, w.Code)

		for _, query := range []string{"from=2099-01-01", "to=2099-01-25"} {
			w = env.do(t, http.MethodGet, "/api/calendar/events?"+query, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			days := decode[[]calendar.Day](t, w)
			require.Len(t, days, 1, query)
			assert.Equal(t, "2099-01-20", days[0].Date)
		}
	})

	t.Run("Events - Inverted range", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/calendar/events?from=2024-03-31&to=2024-03-01", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Events - Bad date", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/calendar/events?from=March", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Month - Monday weeks", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/calendar/month?year=2024&month=3&week_start=monday", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		m := decode[calendar.Month](t, w)
		assert.Equal(t, 2024, m.Year)
		assert.Equal(t, 3, m.Month)
		require.NotEmpty(t, m.Weeks)
		// 1 March 2024 is a Friday.
		assert.Equal(t, "2024-02-26", m.Weeks[0][0].Date)
		assert.False(t, m.Weeks[0][0].InMonth)
	})

	t.Run("Month - Invalid month", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/calendar/month?year=2024&month=13", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		w = env.do(t, http.MethodGet, "/api/calendar/month?week_start=friday", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuditAndHealthHandlers(t *testing.T) {
	env := newTestEnv(t)

	t.Run("GetAuditLogs - Empty", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/audit/logs?resource_type=ticket", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("GetAuditLogs - Invalid time", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/api/audit/logs?start_time=yesterday", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		w = env.do(t, http.MethodGet, "/api/audit/logs?limit=-5", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Healthz", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/healthz", nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[response.HealthResponse](t, w)
		assert.Equal(t, "ok", got.Status)
		assert.Equal(t, "sqlite", got.Backend)
	})

	t.Run("Metrics", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "go_goroutines")
	})
}
