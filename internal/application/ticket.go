package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/linskybing/catalyst/internal/domain/ticket"
	"github.com/linskybing/catalyst/internal/metrics"
	"github.com/linskybing/catalyst/internal/realtime"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/pkg/utils"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrSelfParent     = errors.New("ticket cannot be its own parent")
)

type TicketService struct {
	Repos *repository.Repos
	Board realtime.Publisher
}

func NewTicketService(repos *repository.Repos, board realtime.Publisher) *TicketService {
	if board == nil {
		board = realtime.Discard
	}
	return &TicketService{
		Repos: repos,
		Board: board,
	}
}

func (s *TicketService) ListTickets(ctx context.Context, filter ticket.ListFilter) (ticket.ListResponse, error) {
	tickets, err := s.Repos.Ticket.ListTickets(ctx, filter)
	if err != nil {
		return ticket.ListResponse{}, err
	}
	if tickets == nil {
		tickets = []ticket.Ticket{}
	}
	return ticket.ListResponse{Tickets: tickets, Total: len(tickets)}, nil
}

func (s *TicketService) GetTicket(ctx context.Context, id string) (*ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetTicketByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TicketService) CreateTicket(ctx context.Context, input ticket.CreateTicketDTO) (*ticket.Ticket, error) {
	t := &ticket.Ticket{
		Title:          input.Title,
		Summary:        input.Summary,
		StartDate:      optionalText(input.StartDate),
		EndDate:        optionalText(input.EndDate),
		Assignee:       input.Assignee,
		AssigneeID:     optionalID(input.AssigneeID),
		EstimatedHours: input.EstimatedHours,
		ProjectID:      optionalID(input.ProjectID),
		CycleID:        optionalID(input.CycleID),
		ModuleID:       optionalID(input.ModuleID),
		ParentTicketID: optionalID(input.ParentTicketID),
	}
	if input.Status != nil {
		t.Status = *input.Status
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	labelIDs, err := s.knownLabels(ctx, input.LabelIDs)
	if err != nil {
		return nil, err
	}
	t.LabelIDs = labelIDs
	return s.create(ctx, t, metrics.SourceAPI)
}

// knownLabels drops duplicates and ids that do not name an existing label,
// keeping the caller's order.
func (s *TicketService) knownLabels(ctx context.Context, ids []string) ([]string, error) {
	kept := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if _, err := s.Repos.Label.GetLabelByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		kept = append(kept, id)
	}
	return kept, nil
}

// create persists t and emits the audit entry, metric and board event.
func (s *TicketService) create(ctx context.Context, t *ticket.Ticket, source string) (*ticket.Ticket, error) {
	t.ApplyDefaults()
	if err := s.Repos.Ticket.CreateTicket(ctx, t); err != nil {
		return nil, err
	}

	metrics.TicketCreated(source)
	utils.LogAuditWithConsole(ctx, "create", "ticket", fmt.Sprintf("ticket_id=%s", t.ID), nil, *t, "", s.Repos.Audit)
	s.Board.Publish(realtime.Event{Type: realtime.TicketCreated, ID: t.ID, Ticket: t})
	return t, nil
}

func (s *TicketService) UpdateTicket(ctx context.Context, id string, input ticket.UpdateTicketDTO) (*ticket.Ticket, error) {
	t, err := s.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *t
	old.LabelIDs = append([]string(nil), t.LabelIDs...)

	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Summary != nil {
		t.Summary = input.Summary
	}
	if input.StartDate != nil {
		t.StartDate = optionalText(input.StartDate)
	}
	if input.EndDate != nil {
		t.EndDate = optionalText(input.EndDate)
	}
	if input.Assignee != nil {
		t.Assignee = input.Assignee
	}
	if input.AssigneeID != nil {
		t.AssigneeID = optionalID(input.AssigneeID)
	}
	if input.Status != nil {
		t.Status = *input.Status
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.EstimatedHours != nil {
		t.EstimatedHours = input.EstimatedHours
	}
	if input.ProjectID != nil {
		t.ProjectID = optionalID(input.ProjectID)
	}
	if input.CycleID != nil {
		t.CycleID = optionalID(input.CycleID)
	}
	if input.ModuleID != nil {
		t.ModuleID = optionalID(input.ModuleID)
	}
	if input.ParentTicketID != nil {
		t.ParentTicketID = optionalID(input.ParentTicketID)
	}
	if input.LabelIDs != nil {
		if t.LabelIDs, err = s.knownLabels(ctx, *input.LabelIDs); err != nil {
			return nil, err
		}
	}
	if t.ParentTicketID != nil && *t.ParentTicketID == t.ID {
		return nil, ErrSelfParent
	}

	if err := s.Repos.Ticket.UpdateTicket(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, "update", "ticket", fmt.Sprintf("ticket_id=%s", t.ID), old, *t, "", s.Repos.Audit)
	s.Board.Publish(realtime.Event{Type: realtime.TicketUpdated, ID: t.ID, Ticket: t})
	return t, nil
}

// DeleteTicket removes the ticket and, recursively, its sub-tickets.
func (s *TicketService) DeleteTicket(ctx context.Context, id string) error {
	t, err := s.GetTicket(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Ticket.DeleteTicket(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTicketNotFound
		}
		return err
	}

	utils.LogAuditWithConsole(ctx, "delete", "ticket", fmt.Sprintf("ticket_id=%s", id), *t, nil, "", s.Repos.Audit)
	s.Board.Publish(realtime.Event{Type: realtime.TicketDeleted, ID: id})
	return nil
}
