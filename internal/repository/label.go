package repository

import (
	"context"

	"github.com/linskybing/catalyst/internal/domain/label"
	"gorm.io/gorm"
)

type LabelRepo interface {
	// ListLabels returns every label, or only the project's when projectID is set.
	ListLabels(ctx context.Context, projectID string) ([]label.Label, error)
	GetLabelByID(ctx context.Context, id string) (label.Label, error)
	CreateLabel(ctx context.Context, l *label.Label) error
	UpdateLabel(ctx context.Context, l *label.Label) error
	DeleteLabel(ctx context.Context, id string) error
}

type DBLabelRepo struct {
	db *gorm.DB
}

func NewLabelRepo(db *gorm.DB) *DBLabelRepo {
	return &DBLabelRepo{
		db: db,
	}
}

func (r *DBLabelRepo) ListLabels(ctx context.Context, projectID string) ([]label.Label, error) {
	query := r.db.WithContext(ctx).Model(&label.Label{})
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	var labels []label.Label
	err := query.Order("LOWER(name) ASC").Find(&labels).Error
	return labels, err
}

func (r *DBLabelRepo) GetLabelByID(ctx context.Context, id string) (label.Label, error) {
	var l label.Label
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	return l, translate(err)
}

func (r *DBLabelRepo) CreateLabel(ctx context.Context, l *label.Label) error {
	return translate(r.db.WithContext(ctx).Create(l).Error)
}

func (r *DBLabelRepo) UpdateLabel(ctx context.Context, l *label.Label) error {
	res := r.db.WithContext(ctx).Model(l).Select("*").Omit("CreatedAt").Updates(l)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DBLabelRepo) DeleteLabel(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+ticketLabelsTable+" WHERE label_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&label.Label{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
