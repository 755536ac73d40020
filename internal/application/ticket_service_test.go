package application_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/catalyst/internal/application"
	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"github.com/linskybing/catalyst/internal/realtime"
	"github.com/linskybing/catalyst/internal/repository"
)

func TestTicketServiceCRUD(t *testing.T) {
	repos, m := setupRepos(t)
	board := &recordingBoard{}
	svc := application.NewTicketService(repos, board)
	ctx := context.Background()

	t.Run("CreateTicket applies defaults", func(t *testing.T) {
		m.ticket.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tk *ticket.Ticket) error {
			tk.ID = "t-1"
			return nil
		})

		got, err := svc.CreateTicket(ctx, ticket.CreateTicketDTO{
			Title:     "Write docs",
			ProjectID: strPtr(""),
			CycleID:   strPtr("c-1"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != ticket.StatusOpen || got.Priority != ticket.PriorityNone {
			t.Fatalf("expected open/none defaults, got %s/%s", got.Status, got.Priority)
		}
		if got.ProjectID != nil {
			t.Fatalf("expected empty project id to be dropped, got %v", *got.ProjectID)
		}
		if got.CycleID == nil || *got.CycleID != "c-1" {
			t.Fatalf("expected cycle c-1, got %v", got.CycleID)
		}
		if got.LabelIDs == nil {
			t.Fatalf("expected empty label list, got nil")
		}
	})

	t.Run("CreateTicket repo error", func(t *testing.T) {
		m.ticket.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		if _, err := svc.CreateTicket(ctx, ticket.CreateTicketDTO{Title: "x"}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("CreateTicket drops unknown labels", func(t *testing.T) {
		m.label.EXPECT().GetLabelByID(gomock.Any(), "l-1").Return(label.Label{ID: "l-1"}, nil)
		m.label.EXPECT().GetLabelByID(gomock.Any(), "nope").Return(label.Label{}, repository.ErrNotFound)
		m.ticket.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tk *ticket.Ticket) error {
			if !reflect.DeepEqual(tk.LabelIDs, []string{"l-1"}) {
				t.Fatalf("expected only l-1 to reach the store, got %v", tk.LabelIDs)
			}
			tk.ID = "t-6"
			return nil
		})

		got, err := svc.CreateTicket(ctx, ticket.CreateTicketDTO{
			Title:    "Tagged",
			LabelIDs: []string{"l-1", "nope", "l-1"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got.LabelIDs, []string{"l-1"}) {
			t.Fatalf("expected [l-1], got %v", got.LabelIDs)
		}
	})

	t.Run("CreateTicket label lookup error", func(t *testing.T) {
		m.label.EXPECT().GetLabelByID(gomock.Any(), "l-1").Return(label.Label{}, errors.New("db down"))
		if _, err := svc.CreateTicket(ctx, ticket.CreateTicketDTO{Title: "x", LabelIDs: []string{"l-1"}}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("GetTicket not found", func(t *testing.T) {
		m.ticket.EXPECT().GetTicketByID(gomock.Any(), "missing").Return(ticket.Ticket{}, repository.ErrNotFound)
		_, err := svc.GetTicket(ctx, "missing")
		if !errors.Is(err, application.ErrTicketNotFound) {
			t.Fatalf("expected ErrTicketNotFound, got %v", err)
		}
	})

	t.Run("UpdateTicket changes only provided fields", func(t *testing.T) {
		existing := ticket.Ticket{
			ID:       "t-2",
			Title:    "Old",
			Summary:  strPtr("keep me"),
			Status:   ticket.StatusOpen,
			Priority: ticket.PriorityLow,
			LabelIDs: []string{"l-1"},
		}
		m.ticket.EXPECT().GetTicketByID(gomock.Any(), "t-2").Return(existing, nil)
		m.label.EXPECT().GetLabelByID(gomock.Any(), "l-2").Return(label.Label{ID: "l-2"}, nil)
		m.label.EXPECT().GetLabelByID(gomock.Any(), "l-3").Return(label.Label{ID: "l-3"}, nil)
		m.ticket.EXPECT().UpdateTicket(gomock.Any(), gomock.Any()).Return(nil)

		status := ticket.StatusInProgress
		labels := []string{"l-2", "l-3"}
		got, err := svc.UpdateTicket(ctx, "t-2", ticket.UpdateTicketDTO{
			Title:    strPtr("New"),
			Status:   &status,
			LabelIDs: &labels,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "New" || got.Status != ticket.StatusInProgress {
			t.Fatalf("unexpected update result: %+v", got)
		}
		if got.Summary == nil || *got.Summary != "keep me" || got.Priority != ticket.PriorityLow {
			t.Fatalf("untouched fields changed: %+v", got)
		}
		if !reflect.DeepEqual(got.LabelIDs, labels) {
			t.Fatalf("expected labels %v, got %v", labels, got.LabelIDs)
		}
	})

	t.Run("UpdateTicket rejects self parent", func(t *testing.T) {
		m.ticket.EXPECT().GetTicketByID(gomock.Any(), "t-3").Return(ticket.Ticket{ID: "t-3", Title: "x"}, nil)
		_, err := svc.UpdateTicket(ctx, "t-3", ticket.UpdateTicketDTO{ParentTicketID: strPtr("t-3")})
		if !errors.Is(err, application.ErrSelfParent) {
			t.Fatalf("expected ErrSelfParent, got %v", err)
		}
	})

	t.Run("UpdateTicket clears end date with empty string", func(t *testing.T) {
		m.ticket.EXPECT().GetTicketByID(gomock.Any(), "t-4").Return(ticket.Ticket{ID: "t-4", EndDate: strPtr("2026-01-01")}, nil)
		m.ticket.EXPECT().UpdateTicket(gomock.Any(), gomock.Any()).Return(nil)
		got, err := svc.UpdateTicket(ctx, "t-4", ticket.UpdateTicketDTO{EndDate: strPtr("")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.EndDate != nil {
			t.Fatalf("expected end date cleared, got %v", *got.EndDate)
		}
	})

	t.Run("DeleteTicket", func(t *testing.T) {
		m.ticket.EXPECT().GetTicketByID(gomock.Any(), "t-5").Return(ticket.Ticket{ID: "t-5"}, nil)
		m.ticket.EXPECT().DeleteTicket(gomock.Any(), "t-5").Return(nil)
		if err := svc.DeleteTicket(ctx, "t-5"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("DeleteTicket not found", func(t *testing.T) {
		m.ticket.EXPECT().GetTicketByID(gomock.Any(), "gone").Return(ticket.Ticket{}, repository.ErrNotFound)
		if err := svc.DeleteTicket(ctx, "gone"); !errors.Is(err, application.ErrTicketNotFound) {
			t.Fatalf("expected ErrTicketNotFound, got %v", err)
		}
	})

	want := []string{realtime.TicketCreated, realtime.TicketCreated, realtime.TicketUpdated, realtime.TicketUpdated, realtime.TicketDeleted}
	if got := board.types(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected board events %v, got %v", want, got)
	}
}

func TestListTickets(t *testing.T) {
	repos, m := setupRepos(t)
	svc := application.NewTicketService(repos, nil)

	filter := ticket.ListFilter{ProjectID: "p-1", Search: "login"}
	m.ticket.EXPECT().ListTickets(gomock.Any(), filter).Return(nil, nil)

	resp, err := svc.ListTickets(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Tickets == nil || resp.Total != 0 {
		t.Fatalf("expected empty non-nil list, got %+v", resp)
	}
}
