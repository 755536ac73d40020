package repository

import (
	"context"

	"github.com/linskybing/catalyst/internal/domain/module"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"gorm.io/gorm"
)

type ModuleRepo interface {
	ListModules(ctx context.Context, projectID string) ([]module.Module, error)
	GetModuleByID(ctx context.Context, id string) (module.Module, error)
	CreateModule(ctx context.Context, m *module.Module) error
	UpdateModule(ctx context.Context, m *module.Module) error
	DeleteModule(ctx context.Context, id string) error
}

type DBModuleRepo struct {
	db *gorm.DB
}

func NewModuleRepo(db *gorm.DB) *DBModuleRepo {
	return &DBModuleRepo{
		db: db,
	}
}

func (r *DBModuleRepo) ListModules(ctx context.Context, projectID string) ([]module.Module, error) {
	query := r.db.WithContext(ctx).Model(&module.Module{})
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	var modules []module.Module
	err := query.Order("LOWER(name) ASC").Find(&modules).Error
	return modules, err
}

func (r *DBModuleRepo) GetModuleByID(ctx context.Context, id string) (module.Module, error) {
	var m module.Module
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return m, translate(err)
}

func (r *DBModuleRepo) CreateModule(ctx context.Context, m *module.Module) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *DBModuleRepo) UpdateModule(ctx context.Context, m *module.Module) error {
	res := r.db.WithContext(ctx).Model(m).Select("*").Omit("CreatedAt").Updates(m)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DBModuleRepo) DeleteModule(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&ticket.Ticket{}).Where("module_id = ?", id).Update("module_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&module.Module{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
