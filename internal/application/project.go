package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/linskybing/catalyst/internal/domain/project"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/pkg/utils"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrDuplicateProject = errors.New("project name or identifier already exists")
	ErrEmptyIdentifier  = errors.New("project identifier cannot be empty")
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{
		Repos: repos,
	}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]project.Project, error) {
	return s.Repos.Project.ListProjects(ctx)
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, input project.CreateProjectDTO) (*project.Project, error) {
	p := &project.Project{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}
	if input.Identifier != nil {
		p.Identifier = strings.ToUpper(strings.TrimSpace(*input.Identifier))
	} else {
		p.Identifier = project.DeriveIdentifier(p.Name)
	}
	if p.Identifier == "" {
		return nil, ErrEmptyIdentifier
	}
	if err := s.checkUnique(ctx, p); err != nil {
		return nil, err
	}

	if err := s.Repos.Project.CreateProject(ctx, p); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrDuplicateProject
		}
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, "create", "project", fmt.Sprintf("project_id=%s", p.ID), nil, *p, "", s.Repos.Audit)
	return p, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, input project.UpdateProjectDTO) (*project.Project, error) {
	p, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *p

	if input.Name != nil {
		p.Name = strings.TrimSpace(*input.Name)
	}
	if input.Identifier != nil {
		p.Identifier = strings.ToUpper(strings.TrimSpace(*input.Identifier))
		if p.Identifier == "" {
			return nil, ErrEmptyIdentifier
		}
	}
	if input.Description != nil {
		p.Description = input.Description
	}
	if err := s.checkUnique(ctx, p); err != nil {
		return nil, err
	}

	if err := s.Repos.Project.UpdateProject(ctx, p); err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return nil, ErrDuplicateProject
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, "update", "project", fmt.Sprintf("project_id=%s", p.ID), old, *p, "", s.Repos.Audit)
	return p, nil
}

// DeleteProject removes the project with its tickets, labels, cycles and modules.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	p, err := s.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Project.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	utils.LogAuditWithConsole(ctx, "delete", "project", fmt.Sprintf("project_id=%s", id), *p, nil, "", s.Repos.Audit)
	return nil
}

// checkUnique rejects a name or identifier held by another project.
func (s *ProjectService) checkUnique(ctx context.Context, p *project.Project) error {
	lookups := []func(context.Context, string) (project.Project, error){
		s.Repos.Project.GetProjectByName,
		s.Repos.Project.GetProjectByIdentifier,
	}
	keys := []string{p.Name, p.Identifier}
	for i, lookup := range lookups {
		existing, err := lookup(ctx, keys[i])
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if existing.ID != p.ID {
			return ErrDuplicateProject
		}
	}
	return nil
}
