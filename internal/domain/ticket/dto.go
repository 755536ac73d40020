package ticket

type CreateTicketDTO struct {
	Title          string    `json:"title" binding:"required,max=255"`
	Summary        *string   `json:"summary,omitempty"`
	StartDate      *string   `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate        *string   `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Assignee       *string   `json:"assignee,omitempty" binding:"omitempty,max=255"`
	AssigneeID     *string   `json:"assignee_id,omitempty"`
	Status         *Status   `json:"status,omitempty" binding:"omitempty,oneof=open in_progress resolved closed"`
	Priority       *Priority `json:"priority,omitempty" binding:"omitempty,oneof=urgent high medium low none"`
	EstimatedHours *float64  `json:"estimated_hours,omitempty" binding:"omitempty,gte=0"`
	ProjectID      *string   `json:"project_id,omitempty"`
	CycleID        *string   `json:"cycle_id,omitempty"`
	ModuleID       *string   `json:"module_id,omitempty"`
	ParentTicketID *string   `json:"parent_ticket_id,omitempty"`
	LabelIDs       []string  `json:"label_ids,omitempty"`
}

type UpdateTicketDTO struct {
	Title          *string   `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Summary        *string   `json:"summary,omitempty"`
	StartDate      *string   `json:"start_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate        *string   `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Assignee       *string   `json:"assignee,omitempty" binding:"omitempty,max=255"`
	AssigneeID     *string   `json:"assignee_id,omitempty"`
	Status         *Status   `json:"status,omitempty" binding:"omitempty,oneof=open in_progress resolved closed"`
	Priority       *Priority `json:"priority,omitempty" binding:"omitempty,oneof=urgent high medium low none"`
	EstimatedHours *float64  `json:"estimated_hours,omitempty" binding:"omitempty,gte=0"`
	ProjectID      *string   `json:"project_id,omitempty"`
	CycleID        *string   `json:"cycle_id,omitempty"`
	ModuleID       *string   `json:"module_id,omitempty"`
	ParentTicketID *string   `json:"parent_ticket_id,omitempty"`
	LabelIDs       *[]string `json:"label_ids,omitempty"`
}

// ListFilter narrows ListTickets. Empty fields are ignored.
type ListFilter struct {
	ProjectID      string `form:"project_id"`
	Status         string `form:"status"`
	Priority       string `form:"priority"`
	AssigneeID     string `form:"assignee_id"`
	CycleID        string `form:"cycle_id"`
	ModuleID       string `form:"module_id"`
	LabelID        string `form:"label_id"`
	ParentTicketID string `form:"parent_ticket_id"`
	Search         string `form:"search"`
}

type ListResponse struct {
	Tickets []Ticket `json:"tickets"`
	Total   int      `json:"total"`
}
