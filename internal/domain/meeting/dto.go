package meeting

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/linskybing/catalyst/internal/domain/project"
	"github.com/linskybing/catalyst/internal/domain/ticket"
)

type ProcessMeetingRequest struct {
	Transcript  string  `json:"transcript" binding:"required"`
	ProjectName *string `json:"project_name,omitempty"`
}

// Analysis is the structure the analysis model must return.
type Analysis struct {
	ProjectName string           `json:"project_name"`
	Tickets     []ProposedTicket `json:"tickets"`
}

type ProposedTicket struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Priority       *string    `json:"priority"`
	EstimatedHours *FlexFloat `json:"estimated_hours"`
	AssigneeName   string     `json:"assignee_name"`
	Deadline       string     `json:"deadline"`
	Labels         []string   `json:"labels"`
	Dependencies   FlexList   `json:"dependencies"`
}

type Result struct {
	Success     bool            `json:"success"`
	Tickets     []ticket.Ticket `json:"tickets"`
	Project     project.Project `json:"project"`
	Diagram     *string         `json:"diagram,omitempty"`
	Summary     string          `json:"summary"`
	TicketCount int             `json:"ticket_count"`
}

// FlexFloat accepts a JSON number or a numeric string. Anything else
// decodes to zero without failing the whole document.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = FlexFloat(v)
		}
	}
	return nil
}

// FlexList accepts a list of strings, numbers or nulls; nulls are dropped
// and numbers kept in their JSON text form.
type FlexList []string

func (l *FlexList) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	out := make(FlexList, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		t := strings.TrimSpace(string(item))
		if t != "null" && t != "" {
			out = append(out, t)
		}
	}
	*l = out
	return nil
}
