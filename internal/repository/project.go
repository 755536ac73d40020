package repository

import (
	"context"

	"github.com/linskybing/catalyst/internal/domain/cycle"
	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/domain/module"
	"github.com/linskybing/catalyst/internal/domain/project"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	ListProjects(ctx context.Context) ([]project.Project, error)
	GetProjectByID(ctx context.Context, id string) (project.Project, error)
	GetProjectByName(ctx context.Context, name string) (project.Project, error)
	GetProjectByIdentifier(ctx context.Context, identifier string) (project.Project, error)
	CreateProject(ctx context.Context, p *project.Project) error
	UpdateProject(ctx context.Context, p *project.Project) error
	// DeleteProject also removes the project's tickets, labels, cycles and modules.
	DeleteProject(ctx context.Context, id string) error
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) ListProjects(ctx context.Context) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) GetProjectByID(ctx context.Context, id string) (project.Project, error) {
	var p project.Project
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return p, translate(err)
}

func (r *DBProjectRepo) GetProjectByName(ctx context.Context, name string) (project.Project, error) {
	var p project.Project
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error
	return p, translate(err)
}

func (r *DBProjectRepo) GetProjectByIdentifier(ctx context.Context, identifier string) (project.Project, error) {
	var p project.Project
	err := r.db.WithContext(ctx).Where("identifier = ?", identifier).First(&p).Error
	return p, translate(err)
}

func (r *DBProjectRepo) CreateProject(ctx context.Context, p *project.Project) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *DBProjectRepo) UpdateProject(ctx context.Context, p *project.Project) error {
	res := r.db.WithContext(ctx).Model(p).Select("*").Omit("CreatedAt").Updates(p)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DBProjectRepo) DeleteProject(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ticketIDs []string
		if err := tx.Model(&ticket.Ticket{}).Where("project_id = ?", id).Pluck("id", &ticketIDs).Error; err != nil {
			return err
		}
		// Subtasks filed under another project still go with their parent.
		ticketIDs, err := collectSubtree(tx, ticketIDs)
		if err != nil {
			return err
		}
		if err := deleteTickets(tx, ticketIDs); err != nil {
			return err
		}

		var labelIDs []string
		if err := tx.Model(&label.Label{}).Where("project_id = ?", id).Pluck("id", &labelIDs).Error; err != nil {
			return err
		}
		if len(labelIDs) > 0 {
			if err := tx.Exec("DELETE FROM "+ticketLabelsTable+" WHERE label_id IN ?", labelIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", labelIDs).Delete(&label.Label{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("project_id = ?", id).Delete(&cycle.Cycle{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&module.Module{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&project.Project{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
