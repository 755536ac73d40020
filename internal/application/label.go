package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/pkg/utils"
)

var ErrLabelNotFound = errors.New("label not found")

type LabelService struct {
	Repos *repository.Repos
}

func NewLabelService(repos *repository.Repos) *LabelService {
	return &LabelService{
		Repos: repos,
	}
}

// ListLabels returns every label, or only those of projectID when set.
func (s *LabelService) ListLabels(ctx context.Context, projectID string) ([]label.Label, error) {
	return s.Repos.Label.ListLabels(ctx, projectID)
}

func (s *LabelService) GetLabel(ctx context.Context, id string) (*label.Label, error) {
	l, err := s.Repos.Label.GetLabelByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrLabelNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *LabelService) CreateLabel(ctx context.Context, input label.CreateLabelDTO) (*label.Label, error) {
	l := &label.Label{
		Name:      strings.TrimSpace(input.Name),
		Color:     optionalText(input.Color),
		ProjectID: optionalID(input.ProjectID),
	}
	if err := s.Repos.Label.CreateLabel(ctx, l); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, "create", "label", fmt.Sprintf("label_id=%s", l.ID), nil, *l, "", s.Repos.Audit)
	return l, nil
}

func (s *LabelService) UpdateLabel(ctx context.Context, id string, input label.UpdateLabelDTO) (*label.Label, error) {
	l, err := s.GetLabel(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *l

	if input.Name != nil {
		l.Name = strings.TrimSpace(*input.Name)
	}
	if input.Color != nil {
		l.Color = optionalText(input.Color)
	}
	if input.ProjectID != nil {
		l.ProjectID = optionalID(input.ProjectID)
	}

	if err := s.Repos.Label.UpdateLabel(ctx, l); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, "update", "label", fmt.Sprintf("label_id=%s", l.ID), old, *l, "", s.Repos.Audit)
	return l, nil
}

// DeleteLabel removes the label and detaches it from every ticket.
func (s *LabelService) DeleteLabel(ctx context.Context, id string) error {
	l, err := s.GetLabel(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repos.Label.DeleteLabel(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLabelNotFound
		}
		return err
	}

	utils.LogAuditWithConsole(ctx, "delete", "label", fmt.Sprintf("label_id=%s", id), *l, nil, "", s.Repos.Audit)
	return nil
}
