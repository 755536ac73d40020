package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/domain/meeting"
	"github.com/linskybing/catalyst/internal/domain/project"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"github.com/linskybing/catalyst/internal/domain/user"
	"github.com/linskybing/catalyst/internal/integrations"
	"github.com/linskybing/catalyst/internal/integrations/nemotron"
	"github.com/linskybing/catalyst/internal/metrics"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/pkg/calendar"
	"github.com/linskybing/catalyst/pkg/textutil"
	"github.com/linskybing/catalyst/pkg/utils"
)

const (
	StageAnalysis = "analysis"
	StageCreation = "creation"
)

const (
	meetingTimeout         = 5 * time.Minute
	minTranscriptLength    = 10
	assigneeMatchThreshold = 0.6
	defaultProjectName     = "General"
	untitledTicket         = "Untitled Task"
	autoProjectDescription = "Auto-created from meeting analysis"
	dependencyPrefix       = "ticket:"
)

var (
	ErrTranscriptTooShort = errors.New("transcript is too short; please provide a meaningful meeting transcript")
	ErrMalformedAnalysis  = errors.New("missing required fields: project_name or tickets")
)

// StageError reports which step of the meeting workflow failed. Records
// created before the failure are kept.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("Agent workflow failed at %s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

type MeetingService struct {
	Repos    *repository.Repos
	LLM      integrations.LLM
	Tickets  *TicketService
	Projects *ProjectService
	Users    *UserService
	Labels   *LabelService
}

func NewMeetingService(repos *repository.Repos, llm integrations.LLM, tickets *TicketService) *MeetingService {
	return &MeetingService{
		Repos:    repos,
		LLM:      llm,
		Tickets:  tickets,
		Projects: NewProjectService(repos),
		Users:    NewUserService(repos),
		Labels:   NewLabelService(repos),
	}
}

// ProcessMeeting analyzes a transcript, creates the tickets it describes and
// sketches them as a Mermaid diagram.
func (s *MeetingService) ProcessMeeting(ctx context.Context, req meeting.ProcessMeetingRequest) (*meeting.Result, error) {
	transcript := strings.TrimSpace(req.Transcript)
	if len([]rune(transcript)) < minTranscriptLength {
		return nil, ErrTranscriptTooShort
	}

	ctx, cancel := context.WithTimeout(ctx, meetingTimeout)
	defer cancel()

	log.Printf("[Meeting] processing transcript (%d chars)", len(transcript))
	analysis, err := s.Analyze(ctx, transcript)
	if err != nil {
		return nil, &StageError{Stage: StageAnalysis, Err: err}
	}

	override := ""
	if req.ProjectName != nil {
		override = *req.ProjectName
	}
	result, err := s.CreateTickets(ctx, analysis, override)
	if err != nil {
		return nil, &StageError{Stage: StageCreation, Err: err}
	}

	diagram, err := s.Diagram(ctx, result.Tickets, result.Project.Name)
	if err != nil {
		log.Printf("[Meeting] diagram generation failed: %v", err)
	} else {
		result.Diagram = &diagram
	}
	return result, nil
}

func (s *MeetingService) Analyze(ctx context.Context, transcript string) (*meeting.Analysis, error) {
	raw, err := s.LLM.Generate(ctx, integrations.OpMeetingAnalysis, struct{ Transcript string }{transcript})
	if err != nil {
		return nil, err
	}
	analysis, err := ParseAnalysis(raw)
	if err != nil {
		return nil, err
	}
	log.Printf("[Meeting] extracted %d tickets", len(analysis.Tickets))
	return analysis, nil
}

// ParseAnalysis decodes the analysis model's reply. Both project_name and a
// tickets list must be present.
func ParseAnalysis(raw string) (*meeting.Analysis, error) {
	content := nemotron.StripCodeFence(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse AI response as JSON: %w", err)
	}
	if _, ok := fields["project_name"]; !ok {
		return nil, ErrMalformedAnalysis
	}
	rawTickets, ok := fields["tickets"]
	if !ok {
		return nil, ErrMalformedAnalysis
	}
	var list []json.RawMessage
	if err := json.Unmarshal(rawTickets, &list); err != nil || list == nil {
		return nil, errors.New("tickets must be a list")
	}

	var analysis meeting.Analysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse AI response as JSON: %w", err)
	}
	return &analysis, nil
}

// CreateTickets resolves the project, assignees and labels named by the
// analysis and creates one ticket per proposal.
func (s *MeetingService) CreateTickets(ctx context.Context, analysis *meeting.Analysis, projectName string) (*meeting.Result, error) {
	name := strings.TrimSpace(projectName)
	if name == "" {
		name = strings.TrimSpace(analysis.ProjectName)
	}
	if name == "" {
		name = defaultProjectName
	}

	proj, err := s.resolveProject(ctx, name)
	if err != nil {
		return nil, err
	}
	log.Printf("[Meeting] using project %s (%s)", proj.Name, proj.ID)

	users, err := s.Repos.User.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	labels, err := s.Repos.Label.ListLabels(ctx, proj.ID)
	if err != nil {
		return nil, err
	}
	labelByName := make(map[string]string, len(labels))
	for _, l := range labels {
		labelByName[strings.ToLower(strings.TrimSpace(l.Name))] = l.ID
	}

	created := make([]ticket.Ticket, 0, len(analysis.Tickets))
	createdByIndex := make(map[int]string)
	for idx, item := range analysis.Tickets {
		var assigneeID *string
		assigneeID, users, err = s.resolveAssignee(ctx, item.AssigneeName, users)
		if err != nil {
			return nil, err
		}

		labelIDs, err := s.resolveLabels(ctx, item.Labels, proj.ID, labelByName)
		if err != nil {
			return nil, err
		}

		t := &ticket.Ticket{
			Title:          strings.TrimSpace(item.Title),
			Status:         ticket.StatusOpen,
			Priority:       NormalizePriority(item.Priority),
			AssigneeID:     assigneeID,
			EndDate:        ParseDeadline(item.Deadline),
			ProjectID:      utils.StringPtr(proj.ID),
			ParentTicketID: resolveParent(item.Dependencies, createdByIndex),
			LabelIDs:       labelIDs,
		}
		if t.Title == "" {
			t.Title = untitledTicket
		}
		if d := strings.TrimSpace(item.Description); d != "" {
			t.Summary = &d
		}
		if item.EstimatedHours != nil {
			h := float64(*item.EstimatedHours)
			t.EstimatedHours = &h
		}

		if _, err := s.Tickets.create(ctx, t, metrics.SourceMeeting); err != nil {
			return nil, fmt.Errorf("error creating ticket %d: %w", idx, err)
		}
		created = append(created, *t)
		createdByIndex[idx] = t.ID
	}

	return &meeting.Result{
		Success:     true,
		Tickets:     created,
		Project:     *proj,
		Summary:     fmt.Sprintf("Created %d ticket(s) in project '%s'", len(created), name),
		TicketCount: len(created),
	}, nil
}

func (s *MeetingService) resolveProject(ctx context.Context, name string) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByName(ctx, name)
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	p, err = s.Repos.Project.GetProjectByIdentifier(ctx, name)
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	log.Printf("[Meeting] creating project %q", name)
	desc := autoProjectDescription
	return s.Projects.CreateProject(ctx, project.CreateProjectDTO{Name: name, Description: &desc})
}

func (s *MeetingService) resolveAssignee(ctx context.Context, name string, users []user.User) (*string, []user.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, users, nil
	}
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Name
	}
	if i := textutil.BestMatch(name, names, assigneeMatchThreshold); i >= 0 {
		return utils.StringPtr(users[i].ID), users, nil
	}

	log.Printf("[Meeting] creating user %q", name)
	u, err := s.Users.CreateUser(ctx, user.CreateUserDTO{Name: name})
	if err != nil {
		return nil, users, err
	}
	return utils.StringPtr(u.ID), append(users, *u), nil
}

func (s *MeetingService) resolveLabels(ctx context.Context, names []string, projectID string, byName map[string]string) ([]string, error) {
	ids := []string{}
	seen := make(map[string]bool)
	for _, n := range names {
		key := strings.ToLower(strings.TrimSpace(n))
		if key == "" {
			continue
		}
		id, ok := byName[key]
		if !ok {
			color := calendar.ColorForID(key)
			l, err := s.Labels.CreateLabel(ctx, label.CreateLabelDTO{
				Name:      strings.TrimSpace(n),
				Color:     &color,
				ProjectID: &projectID,
			})
			if err != nil {
				return nil, err
			}
			id = l.ID
			byName[key] = id
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// resolveParent returns the first "ticket:N" dependency that refers to an
// already created ticket.
func resolveParent(deps []string, created map[int]string) *string {
	for _, dep := range deps {
		dep = strings.TrimSpace(dep)
		if !strings.HasPrefix(dep, dependencyPrefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(dep, dependencyPrefix)))
		if err != nil {
			continue
		}
		if id, ok := created[n]; ok {
			return utils.StringPtr(id)
		}
	}
	return nil
}

var priorityAliases = map[string]ticket.Priority{
	"urgent":    ticket.PriorityUrgent,
	"critical":  ticket.PriorityUrgent,
	"p0":        ticket.PriorityUrgent,
	"p1":        ticket.PriorityUrgent,
	"high":      ticket.PriorityHigh,
	"p2":        ticket.PriorityHigh,
	"important": ticket.PriorityHigh,
	"medium":    ticket.PriorityMedium,
	"p3":        ticket.PriorityMedium,
	"normal":    ticket.PriorityMedium,
	"low":       ticket.PriorityLow,
	"p4":        ticket.PriorityLow,
	"minor":     ticket.PriorityLow,
	"none":      ticket.PriorityNone,
}

// NormalizePriority maps free-form priority text to a Priority. A missing or
// blank value or an unknown word means medium.
func NormalizePriority(raw *string) ticket.Priority {
	if raw == nil {
		return ticket.PriorityMedium
	}
	if p, ok := priorityAliases[strings.ToLower(strings.TrimSpace(*raw))]; ok {
		return p
	}
	return ticket.PriorityMedium
}

// Tried in order, so ambiguous dates such as 03/04/2026 read month first.
var deadlineLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"1-2-2006",
	"1/2/2006",
	"2-1-2006",
	"2/1/2006",
}

// ParseDeadline normalizes a date to YYYY-MM-DD, or returns nil.
func ParseDeadline(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return utils.StringPtr(t.Format(ticket.DateLayout))
		}
	}
	return nil
}

type diagramTicket struct {
	ID             string   `json:"id"`
	Index          int      `json:"index"`
	Title          string   `json:"title"`
	Priority       string   `json:"priority"`
	AssigneeID     *string  `json:"assignee_id"`
	ParentTicketID *string  `json:"parent_ticket_id"`
	EstimatedHours *float64 `json:"estimated_hours"`
}

// Diagram asks the model for a Mermaid flowchart of tickets.
func (s *MeetingService) Diagram(ctx context.Context, tickets []ticket.Ticket, projectName string) (string, error) {
	summary := make([]diagramTicket, len(tickets))
	for i, t := range tickets {
		summary[i] = diagramTicket{
			ID:             t.ID,
			Index:          i,
			Title:          t.Title,
			Priority:       string(t.Priority),
			AssigneeID:     t.AssigneeID,
			ParentTicketID: t.ParentTicketID,
			EstimatedHours: t.EstimatedHours,
		}
	}
	body, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", err
	}

	raw, err := s.LLM.Generate(ctx, integrations.OpMeetingDiagram, struct {
		ProjectName string
		Tickets     string
	}{projectName, string(body)})
	if err != nil {
		return "", err
	}
	return nemotron.StripCodeFence(raw), nil
}
