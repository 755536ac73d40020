package calendar

import (
	"time"

	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/domain/ticket"
)

const DateLayout = ticket.DateLayout

type Kind string

const (
	KindStart  Kind = "start"
	KindEnd    Kind = "end"
	KindSingle Kind = "single"
)

// Event is a ticket placed on one calendar day. Events are derived on
// request and never stored.
type Event struct {
	TicketID  string          `json:"ticket_id"`
	Title     string          `json:"title"`
	Date      string          `json:"date"`
	Kind      Kind            `json:"kind"`
	Color     string          `json:"color"`
	Status    ticket.Status   `json:"status"`
	Priority  ticket.Priority `json:"priority"`
	ProjectID *string         `json:"project_id,omitempty"`
}

// EventColor picks the first coloured label of t, then its priority colour,
// then the id hash.
func EventColor(t ticket.Ticket, labels map[string]label.Label) string {
	for _, id := range t.LabelIDs {
		if l, ok := labels[id]; ok && l.Color != nil && *l.Color != "" {
			return *l.Color
		}
	}
	if c := PriorityColor(t.Priority); c != "" {
		return c
	}
	return ColorForID(t.ID)
}

// Project turns tickets into calendar events. A ticket spanning several days
// yields a start and an end event; one starting and ending the same day yields
// a single event. Unparseable dates are treated as absent.
func Project(tickets []ticket.Ticket, labels map[string]label.Label) []Event {
	events := make([]Event, 0, len(tickets))
	for _, t := range tickets {
		start, hasStart := ParseDate(t.StartDate)
		end, hasEnd := ParseDate(t.EndDate)
		if !hasStart && !hasEnd {
			continue
		}

		base := Event{
			TicketID:  t.ID,
			Title:     t.Title,
			Color:     EventColor(t, labels),
			Status:    t.Status,
			Priority:  t.Priority,
			ProjectID: t.ProjectID,
		}
		switch {
		case hasStart && hasEnd && start.Equal(end):
			events = append(events, withDay(base, start, KindSingle))
		case hasStart && hasEnd:
			events = append(events, withDay(base, start, KindStart), withDay(base, end, KindEnd))
		case hasStart:
			events = append(events, withDay(base, start, KindStart))
		default:
			events = append(events, withDay(base, end, KindEnd))
		}
	}
	return events
}

func withDay(e Event, day time.Time, kind Kind) Event {
	e.Date = day.Format(DateLayout)
	e.Kind = kind
	return e
}

// ParseDate reads a YYYY-MM-DD value. Longer ISO timestamps are cut to
// their date part.
func ParseDate(s *string) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	v := *s
	if len(v) > len(DateLayout) {
		v = v[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
