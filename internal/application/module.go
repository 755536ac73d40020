package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/linskybing/catalyst/internal/domain/module"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/pkg/utils"
)

var ErrModuleNotFound = errors.New("module not found")

type ModuleService struct {
	Repos *repository.Repos
}

func NewModuleService(repos *repository.Repos) *ModuleService {
	return &ModuleService{
		Repos: repos,
	}
}

func (s *ModuleService) ListModules(ctx context.Context, projectID string) ([]module.Module, error) {
	return s.Repos.Module.ListModules(ctx, projectID)
}

func (s *ModuleService) GetModule(ctx context.Context, id string) (*module.Module, error) {
	m, err := s.Repos.Module.GetModuleByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrModuleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ModuleService) CreateModule(ctx context.Context, input module.CreateModuleDTO) (*module.Module, error) {
	m := &module.Module{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		ProjectID:   optionalID(input.ProjectID),
	}
	if err := s.Repos.Module.CreateModule(ctx, m); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, "create", "module", fmt.Sprintf("module_id=%s", m.ID), nil, *m, "", s.Repos.Audit)
	return m, nil
}

func (s *ModuleService) UpdateModule(ctx context.Context, id string, input module.UpdateModuleDTO) (*module.Module, error) {
	m, err := s.GetModule(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *m

	if input.Name != nil {
		m.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		m.Description = input.Description
	}
	if input.ProjectID != nil {
		m.ProjectID = optionalID(input.ProjectID)
	}

	if err := s.Repos.Module.UpdateModule(ctx, m); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, "update", "module", fmt.Sprintf("module_id=%s", m.ID), old, *m, "", s.Repos.Audit)
	return m, nil
}

func (s *ModuleService) DeleteModule(ctx context.Context, id string) error {
	m, err := s.GetModule(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Module.DeleteModule(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrModuleNotFound
		}
		return err
	}

	utils.LogAuditWithConsole(ctx, "delete", "module", fmt.Sprintf("module_id=%s", id), *m, nil, "", s.Repos.Audit)
	return nil
}
