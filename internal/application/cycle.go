package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/linskybing/catalyst/internal/domain/cycle"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/pkg/utils"
)

var (
	ErrCycleNotFound  = errors.New("cycle not found")
	ErrCycleDateOrder = errors.New("cycle end date is before its start date")
)

type CycleService struct {
	Repos *repository.Repos
}

func NewCycleService(repos *repository.Repos) *CycleService {
	return &CycleService{
		Repos: repos,
	}
}

func (s *CycleService) ListCycles(ctx context.Context, projectID string) ([]cycle.Cycle, error) {
	return s.Repos.Cycle.ListCycles(ctx, projectID)
}

func (s *CycleService) GetCycle(ctx context.Context, id string) (*cycle.Cycle, error) {
	c, err := s.Repos.Cycle.GetCycleByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCycleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CycleService) CreateCycle(ctx context.Context, input cycle.CreateCycleDTO) (*cycle.Cycle, error) {
	c := &cycle.Cycle{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		StartDate:   optionalText(input.StartDate),
		EndDate:     optionalText(input.EndDate),
		ProjectID:   optionalID(input.ProjectID),
	}
	if !datesOrdered(c.StartDate, c.EndDate) {
		return nil, ErrCycleDateOrder
	}
	if err := s.Repos.Cycle.CreateCycle(ctx, c); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, "create", "cycle", fmt.Sprintf("cycle_id=%s", c.ID), nil, *c, "", s.Repos.Audit)
	return c, nil
}

func (s *CycleService) UpdateCycle(ctx context.Context, id string, input cycle.UpdateCycleDTO) (*cycle.Cycle, error) {
	c, err := s.GetCycle(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *c

	if input.Name != nil {
		c.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		c.Description = input.Description
	}
	if input.StartDate != nil {
		c.StartDate = optionalText(input.StartDate)
	}
	if input.EndDate != nil {
		c.EndDate = optionalText(input.EndDate)
	}
	if input.ProjectID != nil {
		c.ProjectID = optionalID(input.ProjectID)
	}
	if !datesOrdered(c.StartDate, c.EndDate) {
		return nil, ErrCycleDateOrder
	}

	if err := s.Repos.Cycle.UpdateCycle(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCycleNotFound
		}
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, "update", "cycle", fmt.Sprintf("cycle_id=%s", c.ID), old, *c, "", s.Repos.Audit)
	return c, nil
}

// DeleteCycle removes the cycle; its tickets stay, without a cycle.
func (s *CycleService) DeleteCycle(ctx context.Context, id string) error {
	c, err := s.GetCycle(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Cycle.DeleteCycle(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCycleNotFound
		}
		return err
	}

	utils.LogAuditWithConsole(ctx, "delete", "cycle", fmt.Sprintf("cycle_id=%s", id), *c, nil, "", s.Repos.Audit)
	return nil
}

// datesOrdered compares YYYY-MM-DD strings, which sort chronologically.
func datesOrdered(start, end *string) bool {
	if start == nil || end == nil {
		return true
	}
	return *start <= *end
}
