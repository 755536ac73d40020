package ticket

import (
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/catalyst/internal/domain/label"
	"gorm.io/gorm"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
	PriorityNone   Priority = "none"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow, PriorityNone:
		return true
	}
	return false
}

// DateLayout is the wire and storage format of StartDate and EndDate.
const DateLayout = "2006-01-02"

// Ticket is a unit of work. Dates are calendar days without a time zone.
type Ticket struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id" firestore:"-"`
	Title          string    `gorm:"size:255;not null" json:"title" firestore:"title"`
	Summary        *string   `gorm:"type:text" json:"summary,omitempty" firestore:"summary"`
	StartDate      *string   `gorm:"size:10" json:"start_date,omitempty" firestore:"start_date"`
	EndDate        *string   `gorm:"size:10" json:"end_date,omitempty" firestore:"end_date"`
	Assignee       *string   `gorm:"size:255" json:"assignee,omitempty" firestore:"assignee"`
	AssigneeID     *string   `gorm:"size:36;index" json:"assignee_id,omitempty" firestore:"assignee_id"`
	Status         Status    `gorm:"size:20;not null;default:open" json:"status" firestore:"status"`
	Priority       Priority  `gorm:"size:20;not null;default:none" json:"priority" firestore:"priority"`
	EstimatedHours *float64  `json:"estimated_hours,omitempty" firestore:"estimated_hours"`
	ProjectID      *string   `gorm:"size:36;index" json:"project_id,omitempty" firestore:"project_id"`
	CycleID        *string   `gorm:"size:36;index" json:"cycle_id,omitempty" firestore:"cycle_id"`
	ModuleID       *string   `gorm:"size:36;index" json:"module_id,omitempty" firestore:"module_id"`
	ParentTicketID *string   `gorm:"size:36;index" json:"parent_ticket_id,omitempty" firestore:"parent_ticket_id"`
	LabelIDs       []string  `gorm:"-" json:"label_ids" firestore:"label_ids"`
	CreatedAt      time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" firestore:"updated_at"`

	// Relational store only; LabelIDs is the portable view.
	Labels []label.Label `gorm:"many2many:ticket_labels;" json:"-" firestore:"-"`
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// ApplyDefaults fills status and priority when left empty.
func (t *Ticket) ApplyDefaults() {
	if t.Status == "" {
		t.Status = StatusOpen
	}
	if t.Priority == "" {
		t.Priority = PriorityNone
	}
	if t.LabelIDs == nil {
		t.LabelIDs = []string{}
	}
}

func (t *Ticket) HasLabel(id string) bool {
	for _, l := range t.LabelIDs {
		if l == id {
			return true
		}
	}
	return false
}
