package application

import (
	"context"
	"errors"
	"time"

	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/pkg/calendar"
)

var ErrInvalidRange = errors.New("from must not be after to")

type CalendarService struct {
	Repos *repository.Repos
}

func NewCalendarService(repos *repository.Repos) *CalendarService {
	return &CalendarService{
		Repos: repos,
	}
}

func (s *CalendarService) events(ctx context.Context, projectID string) ([]calendar.Event, error) {
	tickets, err := s.Repos.Ticket.ListTickets(ctx, ticket.ListFilter{ProjectID: projectID})
	if err != nil {
		return nil, err
	}
	// Tickets may carry labels of any project.
	labels, err := s.Repos.Label.ListLabels(ctx, "")
	if err != nil {
		return nil, err
	}
	byID := make(map[string]label.Label, len(labels))
	for _, l := range labels {
		byID[l.ID] = l
	}
	return calendar.Project(tickets, byID), nil
}

// Events returns the ticket events dated within [from, to], grouped by day.
func (s *CalendarService) Events(ctx context.Context, from, to time.Time, projectID string) ([]calendar.Day, error) {
	if from.After(to) {
		return nil, ErrInvalidRange
	}
	events, err := s.events(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return calendar.Bucket(events, from, to), nil
}

func (s *CalendarService) Month(ctx context.Context, year int, month time.Month, weekStart time.Weekday, projectID string, today time.Time) (calendar.Month, error) {
	events, err := s.events(ctx, projectID)
	if err != nil {
		return calendar.Month{}, err
	}
	return calendar.MonthGrid(year, month, weekStart, events, today), nil
}
