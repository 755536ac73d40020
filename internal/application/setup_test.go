package application_test

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/catalyst/internal/realtime"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/internal/repository/mock"
	"github.com/linskybing/catalyst/pkg/utils"
)

type mocks struct {
	ticket  *mock.MockTicketRepo
	project *mock.MockProjectRepo
	user    *mock.MockUserRepo
	label   *mock.MockLabelRepo
	cycle   *mock.MockCycleRepo
	module  *mock.MockModuleRepo
	audit   *mock.MockAuditRepo
}

func setupRepos(t *testing.T) (*repository.Repos, *mocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &mocks{
		ticket:  mock.NewMockTicketRepo(ctrl),
		project: mock.NewMockProjectRepo(ctrl),
		user:    mock.NewMockUserRepo(ctrl),
		label:   mock.NewMockLabelRepo(ctrl),
		cycle:   mock.NewMockCycleRepo(ctrl),
		module:  mock.NewMockModuleRepo(ctrl),
		audit:   mock.NewMockAuditRepo(ctrl),
	}
	repos := &repository.Repos{
		Ticket:  m.ticket,
		Project: m.project,
		User:    m.user,
		Label:   m.label,
		Cycle:   m.cycle,
		Module:  m.module,
		Audit:   m.audit,
	}

	// mock utils globally
	orig := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(ctx context.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = orig })

	return repos, m
}

type recordingBoard struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (b *recordingBoard) Publish(ev realtime.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, ev)
}

func (b *recordingBoard) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.events))
	for i, ev := range b.events {
		out[i] = ev.Type
	}
	return out
}

func strPtr(s string) *string { return &s }
