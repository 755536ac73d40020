package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/catalyst/internal/application"
	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/domain/meeting"
	"github.com/linskybing/catalyst/internal/domain/project"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"github.com/linskybing/catalyst/internal/domain/user"
	"github.com/linskybing/catalyst/internal/integrations"
	imock "github.com/linskybing/catalyst/internal/integrations/mock"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const analysisReply = "```json\n" + `{
  "project_name": "Apollo",
  "tickets": [
    {
      "title": "Set up API",
      "description": "Create the REST skeleton",
      "priority": "P0",
      "estimated_hours": "8",
      "assignee_name": "alice johnson",
      "deadline": "03/15/2026",
      "labels": ["backend", "Security"],
      "dependencies": [null]
    },
    {
      "title": "",
      "description": "",
      "priority": null,
      "estimated_hours": null,
      "assignee_name": "Zed",
      "deadline": "soon",
      "labels": ["security"],
      "dependencies": ["ticket:0", null]
    }
  ]
}` + "\n```"

func setupMeeting(t *testing.T) (*application.MeetingService, *mocks, *imock.MockLLM, *recordingBoard) {
	repos, m := setupRepos(t)
	llm := imock.NewMockLLM(gomock.NewController(t))
	board := &recordingBoard{}
	svc := application.NewMeetingService(repos, llm, application.NewTicketService(repos, board))
	return svc, m, llm, board
}

func TestProcessMeetingRejectsShortTranscript(t *testing.T) {
	svc, _, _, _ := setupMeeting(t)

	for _, transcript := range []string{"", "   ", "too short", "  123456789  "} {
		_, err := svc.ProcessMeeting(context.Background(), meeting.ProcessMeetingRequest{Transcript: transcript})
		if !errors.Is(err, application.ErrTranscriptTooShort) {
			t.Fatalf("%q: expected ErrTranscriptTooShort, got %v", transcript, err)
		}
	}
}

func TestProcessMeetingCreatesTickets(t *testing.T) {
	svc, m, llm, board := setupMeeting(t)

	llm.EXPECT().Generate(gomock.Any(), integrations.OpMeetingAnalysis, gomock.Any()).Return(analysisReply, nil)
	llm.EXPECT().Generate(gomock.Any(), integrations.OpMeetingDiagram, gomock.Any()).Return("```mermaid\ngraph TD\n  A --> B\n```", nil)

	m.project.EXPECT().GetProjectByName(gomock.Any(), "Apollo").Return(project.Project{}, repository.ErrNotFound).Times(2)
	m.project.EXPECT().GetProjectByIdentifier(gomock.Any(), "Apollo").Return(project.Project{}, repository.ErrNotFound)
	m.project.EXPECT().GetProjectByIdentifier(gomock.Any(), "APOLLO").Return(project.Project{}, repository.ErrNotFound)
	m.project.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *project.Project) error {
		p.ID = "p-1"
		return nil
	})

	m.user.EXPECT().ListUsers(gomock.Any()).Return([]user.User{{ID: "u-1", Name: "Alice Johnson"}}, nil)
	m.user.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
		assert.Equal(t, "Zed", u.Name)
		return nil
	})

	m.label.EXPECT().ListLabels(gomock.Any(), "p-1").Return([]label.Label{{ID: "l-1", Name: "Backend"}}, nil)
	m.label.EXPECT().CreateLabel(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *label.Label) error {
		assert.Equal(t, "Security", l.Name)
		require.NotNil(t, l.ProjectID)
		assert.Equal(t, "p-1", *l.ProjectID)
		l.ID = "l-2"
		return nil
	})

	ids := []string{"t-0", "t-1"}
	m.ticket.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tk *ticket.Ticket) error {
		tk.ID, ids = ids[0], ids[1:]
		return nil
	}).Times(2)

	res, err := svc.ProcessMeeting(context.Background(), meeting.ProcessMeetingRequest{Transcript: "Alice will set up the API by March 15th."})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 2, res.TicketCount)
	assert.Equal(t, "Created 2 ticket(s) in project 'Apollo'", res.Summary)
	assert.Equal(t, "p-1", res.Project.ID)
	assert.Equal(t, "APOLLO", res.Project.Identifier)
	require.NotNil(t, res.Diagram)
	assert.Equal(t, "graph TD\n  A --> B", *res.Diagram)

	first, second := res.Tickets[0], res.Tickets[1]
	assert.Equal(t, "Set up API", first.Title)
	assert.Equal(t, ticket.PriorityUrgent, first.Priority)
	assert.Equal(t, ticket.StatusOpen, first.Status)
	assert.Equal(t, "u-1", *first.AssigneeID)
	assert.Equal(t, "2026-03-15", *first.EndDate)
	assert.Equal(t, 8.0, *first.EstimatedHours)
	assert.Equal(t, []string{"l-1", "l-2"}, first.LabelIDs)
	assert.Nil(t, first.ParentTicketID)

	assert.Equal(t, "Untitled Task", second.Title)
	assert.Equal(t, ticket.PriorityMedium, second.Priority)
	assert.Nil(t, second.EndDate)
	assert.Nil(t, second.Summary)
	assert.NotEqual(t, "u-1", *second.AssigneeID)
	assert.Equal(t, []string{"l-2"}, second.LabelIDs)
	require.NotNil(t, second.ParentTicketID)
	assert.Equal(t, "t-0", *second.ParentTicketID)

	assert.Len(t, board.types(), 2)
}

func TestProcessMeetingProjectOverride(t *testing.T) {
	svc, m, llm, _ := setupMeeting(t)

	llm.EXPECT().Generate(gomock.Any(), integrations.OpMeetingAnalysis, gomock.Any()).Return(`{"project_name": "Ignored", "tickets": []}`, nil)
	llm.EXPECT().Generate(gomock.Any(), integrations.OpMeetingDiagram, gomock.Any()).Return("", errors.New("model overloaded"))
	m.project.EXPECT().GetProjectByName(gomock.Any(), "Existing").Return(project.Project{ID: "p-9", Name: "Existing"}, nil)
	m.user.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)
	m.label.EXPECT().ListLabels(gomock.Any(), "p-9").Return(nil, nil)

	override := "Existing"
	res, err := svc.ProcessMeeting(context.Background(), meeting.ProcessMeetingRequest{
		Transcript:  "A meeting where nothing was decided.",
		ProjectName: &override,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.TicketCount)
	assert.Equal(t, "Created 0 ticket(s) in project 'Existing'", res.Summary)
	assert.Nil(t, res.Diagram)
}

func TestProcessMeetingStageErrors(t *testing.T) {
	t.Run("analysis", func(t *testing.T) {
		svc, _, llm, _ := setupMeeting(t)
		llm.EXPECT().Generate(gomock.Any(), integrations.OpMeetingAnalysis, gomock.Any()).Return("I could not find tickets.", nil)

		_, err := svc.ProcessMeeting(context.Background(), meeting.ProcessMeetingRequest{Transcript: "a long enough transcript"})
		var stageErr *application.StageError
		require.True(t, errors.As(err, &stageErr))
		assert.Equal(t, application.StageAnalysis, stageErr.Stage)
		assert.Contains(t, err.Error(), "Agent workflow failed at analysis stage")
	})

	t.Run("creation", func(t *testing.T) {
		svc, m, llm, _ := setupMeeting(t)
		llm.EXPECT().Generate(gomock.Any(), integrations.OpMeetingAnalysis, gomock.Any()).Return(`{"project_name": "", "tickets": []}`, nil)
		m.project.EXPECT().GetProjectByName(gomock.Any(), "General").Return(project.Project{ID: "p-g", Name: "General"}, nil)
		m.user.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("store unavailable"))

		_, err := svc.ProcessMeeting(context.Background(), meeting.ProcessMeetingRequest{Transcript: "a long enough transcript"})
		var stageErr *application.StageError
		require.True(t, errors.As(err, &stageErr))
		assert.Equal(t, application.StageCreation, stageErr.Stage)
	})
}

func TestParseAnalysis(t *testing.T) {
	cases := map[string]bool{
		`{"project_name": "x", "tickets": []}`:             true,
		`{"project_name": null, "tickets": [{"title": 1}]}`: false,
		`{"tickets": []}`:                                   false,
		`{"project_name": "x"}`:                             false,
		`{"project_name": "x", "tickets": {}}`:              false,
		`{"project_name": "x", "tickets": null}`:            false,
		`not json`:                                          false,
	}
	for raw, ok := range cases {
		_, err := application.ParseAnalysis(raw)
		if ok && err != nil {
			t.Fatalf("%s: unexpected error %v", raw, err)
		}
		if !ok && err == nil {
			t.Fatalf("%s: expected error", raw)
		}
	}
}

func TestNormalizePriority(t *testing.T) {
	cases := []struct {
		in   *string
		want ticket.Priority
	}{
		{nil, ticket.PriorityMedium},
		{strPtr("P1"), ticket.PriorityUrgent},
		{strPtr("critical"), ticket.PriorityUrgent},
		{strPtr(" Important "), ticket.PriorityHigh},
		{strPtr("p3"), ticket.PriorityMedium},
		{strPtr("minor"), ticket.PriorityLow},
		{strPtr(""), ticket.PriorityMedium},
		{strPtr("   "), ticket.PriorityMedium},
		{strPtr("none"), ticket.PriorityNone},
		{strPtr("whenever"), ticket.PriorityMedium},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, application.NormalizePriority(c.in))
	}
}

func TestParseDeadline(t *testing.T) {
	cases := map[string]string{
		"2026-03-05": "2026-03-05",
		"2026/3/5":   "2026-03-05",
		"12-31-2026": "2026-12-31",
		"03/04/2026": "2026-03-04",
		"31-12-2026": "2026-12-31",
		"31/12/2026": "2026-12-31",
	}
	for in, want := range cases {
		got := application.ParseDeadline(in)
		require.NotNil(t, got, in)
		assert.Equal(t, want, *got, in)
	}
	for _, in := range []string{"", "next friday", "2026-13-45"} {
		assert.Nil(t, application.ParseDeadline(in), in)
	}
}
