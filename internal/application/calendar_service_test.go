package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/catalyst/internal/application"
	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"github.com/linskybing/catalyst/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarEvents(t *testing.T) {
	repos, m := setupRepos(t)
	svc := application.NewCalendarService(repos)
	ctx := context.Background()

	tickets := []ticket.Ticket{
		{ID: "a", Title: "Span", StartDate: strPtr("2026-02-02"), EndDate: strPtr("2026-02-05"), LabelIDs: []string{"l-1"}},
		{ID: "b", Title: "Same day", StartDate: strPtr("2026-02-05"), EndDate: strPtr("2026-02-05"), Priority: ticket.PriorityHigh},
		{ID: "c", Title: "Undated"},
		{ID: "d", Title: "Outside", EndDate: strPtr("2026-03-10")},
	}
	m.ticket.EXPECT().ListTickets(gomock.Any(), ticket.ListFilter{ProjectID: "p-1"}).Return(tickets, nil)
	m.label.EXPECT().ListLabels(gomock.Any(), "").Return([]label.Label{{ID: "l-1", Color: strPtr("#111111")}}, nil)

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	days, err := svc.Events(ctx, from, to, "p-1")
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, "2026-02-02", days[0].Date)
	require.Len(t, days[0].Events, 1)
	assert.Equal(t, calendar.KindStart, days[0].Events[0].Kind)
	assert.Equal(t, "#111111", days[0].Events[0].Color)

	assert.Equal(t, "2026-02-05", days[1].Date)
	assert.Len(t, days[1].Events, 2)

	_, err = svc.Events(ctx, to, from, "")
	assert.True(t, errors.Is(err, application.ErrInvalidRange))
}

func TestCalendarMonth(t *testing.T) {
	repos, m := setupRepos(t)
	svc := application.NewCalendarService(repos)

	m.ticket.EXPECT().ListTickets(gomock.Any(), gomock.Any()).Return([]ticket.Ticket{
		{ID: "a", EndDate: strPtr("2026-02-14")},
	}, nil)
	m.label.EXPECT().ListLabels(gomock.Any(), "").Return(nil, nil)

	today := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)
	grid, err := svc.Month(context.Background(), 2026, time.February, time.Sunday, "", today)
	require.NoError(t, err)
	assert.Len(t, grid.Weeks, 4)

	var found bool
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.Date == "2026-02-14" {
				found = true
				assert.True(t, cell.IsToday)
				assert.Len(t, cell.Events, 1)
			}
		}
	}
	assert.True(t, found)
}
