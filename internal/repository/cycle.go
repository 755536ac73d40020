package repository

import (
	"context"

	"github.com/linskybing/catalyst/internal/domain/cycle"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"gorm.io/gorm"
)

type CycleRepo interface {
	ListCycles(ctx context.Context, projectID string) ([]cycle.Cycle, error)
	GetCycleByID(ctx context.Context, id string) (cycle.Cycle, error)
	CreateCycle(ctx context.Context, c *cycle.Cycle) error
	UpdateCycle(ctx context.Context, c *cycle.Cycle) error
	DeleteCycle(ctx context.Context, id string) error
}

type DBCycleRepo struct {
	db *gorm.DB
}

func NewCycleRepo(db *gorm.DB) *DBCycleRepo {
	return &DBCycleRepo{
		db: db,
	}
}

func (r *DBCycleRepo) ListCycles(ctx context.Context, projectID string) ([]cycle.Cycle, error) {
	query := r.db.WithContext(ctx).Model(&cycle.Cycle{})
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	var cycles []cycle.Cycle
	err := query.Order("start_date DESC").Find(&cycles).Error
	return cycles, err
}

func (r *DBCycleRepo) GetCycleByID(ctx context.Context, id string) (cycle.Cycle, error) {
	var c cycle.Cycle
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, translate(err)
}

func (r *DBCycleRepo) CreateCycle(ctx context.Context, c *cycle.Cycle) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *DBCycleRepo) UpdateCycle(ctx context.Context, c *cycle.Cycle) error {
	res := r.db.WithContext(ctx).Model(c).Select("*").Omit("CreatedAt").Updates(c)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DBCycleRepo) DeleteCycle(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ticket.Ticket{}).Where("cycle_id = ?", id).Update("cycle_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&cycle.Cycle{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
