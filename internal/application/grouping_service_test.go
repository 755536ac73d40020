package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/catalyst/internal/application"
	"github.com/linskybing/catalyst/internal/domain/cycle"
	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/domain/module"
	"github.com/linskybing/catalyst/internal/repository"
)

func TestLabelService(t *testing.T) {
	repos, m := setupRepos(t)
	svc := application.NewLabelService(repos)
	ctx := context.Background()

	t.Run("ListLabels by project", func(t *testing.T) {
		m.label.EXPECT().ListLabels(gomock.Any(), "p-1").Return([]label.Label{{ID: "l-1", Name: "bug"}}, nil)
		got, err := svc.ListLabels(ctx, "p-1")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})

	t.Run("CreateLabel", func(t *testing.T) {
		m.label.EXPECT().CreateLabel(gomock.Any(), gomock.Any()).Return(nil)
		l, err := svc.CreateLabel(ctx, label.CreateLabelDTO{Name: " bug ", Color: strPtr("#EF4444"), ProjectID: strPtr("p-1")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.Name != "bug" || *l.ProjectID != "p-1" {
			t.Fatalf("unexpected label: %+v", l)
		}
	})

	t.Run("DeleteLabel not found", func(t *testing.T) {
		m.label.EXPECT().GetLabelByID(gomock.Any(), "l-x").Return(label.Label{}, repository.ErrNotFound)
		if err := svc.DeleteLabel(ctx, "l-x"); !errors.Is(err, application.ErrLabelNotFound) {
			t.Fatalf("expected ErrLabelNotFound, got %v", err)
		}
	})
}

func TestCycleService(t *testing.T) {
	repos, m := setupRepos(t)
	svc := application.NewCycleService(repos)
	ctx := context.Background()

	t.Run("CreateCycle rejects inverted dates", func(t *testing.T) {
		_, err := svc.CreateCycle(ctx, cycle.CreateCycleDTO{Name: "Sprint 1", StartDate: strPtr("2026-02-10"), EndDate: strPtr("2026-02-01")})
		if !errors.Is(err, application.ErrCycleDateOrder) {
			t.Fatalf("expected ErrCycleDateOrder, got %v", err)
		}
	})

	t.Run("CreateCycle", func(t *testing.T) {
		m.cycle.EXPECT().CreateCycle(gomock.Any(), gomock.Any()).Return(nil)
		c, err := svc.CreateCycle(ctx, cycle.CreateCycleDTO{Name: "Sprint 1", StartDate: strPtr("2026-02-01"), EndDate: strPtr("2026-02-14")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *c.EndDate != "2026-02-14" {
			t.Fatalf("unexpected cycle: %+v", c)
		}
	})

	t.Run("UpdateCycle checks merged dates", func(t *testing.T) {
		m.cycle.EXPECT().GetCycleByID(gomock.Any(), "c-1").Return(cycle.Cycle{ID: "c-1", StartDate: strPtr("2026-03-10")}, nil)
		_, err := svc.UpdateCycle(ctx, "c-1", cycle.UpdateCycleDTO{EndDate: strPtr("2026-03-01")})
		if !errors.Is(err, application.ErrCycleDateOrder) {
			t.Fatalf("expected ErrCycleDateOrder, got %v", err)
		}
	})

	t.Run("DeleteCycle", func(t *testing.T) {
		m.cycle.EXPECT().GetCycleByID(gomock.Any(), "c-1").Return(cycle.Cycle{ID: "c-1"}, nil)
		m.cycle.EXPECT().DeleteCycle(gomock.Any(), "c-1").Return(nil)
		if err := svc.DeleteCycle(ctx, "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestModuleService(t *testing.T) {
	repos, m := setupRepos(t)
	svc := application.NewModuleService(repos)
	ctx := context.Background()

	t.Run("UpdateModule", func(t *testing.T) {
		m.module.EXPECT().GetModuleByID(gomock.Any(), "m-1").Return(module.Module{ID: "m-1", Name: "Auth"}, nil)
		m.module.EXPECT().UpdateModule(gomock.Any(), gomock.Any()).Return(nil)
		got, err := svc.UpdateModule(ctx, "m-1", module.UpdateModuleDTO{ProjectID: strPtr("")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProjectID != nil || got.Name != "Auth" {
			t.Fatalf("unexpected module: %+v", got)
		}
	})

	t.Run("UpdateModule vanished", func(t *testing.T) {
		m.module.EXPECT().GetModuleByID(gomock.Any(), "m-2").Return(module.Module{ID: "m-2"}, nil)
		m.module.EXPECT().UpdateModule(gomock.Any(), gomock.Any()).Return(repository.ErrNotFound)
		_, err := svc.UpdateModule(ctx, "m-2", module.UpdateModuleDTO{})
		if !errors.Is(err, application.ErrModuleNotFound) {
			t.Fatalf("expected ErrModuleNotFound, got %v", err)
		}
	})
}
