package firestore

import (
	"context"
	"sort"
	"strings"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/linskybing/catalyst/internal/domain/module"
	"github.com/linskybing/catalyst/internal/repository"
)

type ModuleRepo struct {
	client *fs.Client
}

func setModuleID(m *module.Module, id string) { m.ID = id }

func (r *ModuleRepo) col() *fs.CollectionRef { return r.client.Collection(ModulesCollection) }

func (r *ModuleRepo) ListModules(ctx context.Context, projectID string) ([]module.Module, error) {
	q := r.col().Query
	if projectID != "" {
		q = q.Where("project_id", "==", projectID)
	}
	modules, err := readAll(q.Documents(ctx), setModuleID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(modules, func(i, j int) bool {
		return strings.ToLower(modules[i].Name) < strings.ToLower(modules[j].Name)
	})
	return modules, nil
}

func (r *ModuleRepo) GetModuleByID(ctx context.Context, id string) (module.Module, error) {
	return getDoc(ctx, r.col(), id, setModuleID)
}

func (r *ModuleRepo) CreateModule(ctx context.Context, m *module.Module) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = now()
	m.UpdatedAt = m.CreatedAt
	_, err := r.col().Doc(m.ID).Create(ctx, m)
	return translate(err)
}

func (r *ModuleRepo) UpdateModule(ctx context.Context, m *module.Module) error {
	m.UpdatedAt = now()
	return replaceDoc(ctx, r.col().Doc(m.ID), m)
}

func (r *ModuleRepo) DeleteModule(ctx context.Context, id string) error {
	if _, err := r.GetModuleByID(ctx, id); err != nil {
		return err
	}
	b := newBulk(ctx, r.client)
	if err := clearTicketField(ctx, r.client, b, "module_id", id); err != nil {
		b.end()
		return err
	}
	b.delete(r.col().Doc(id))
	return b.end()
}

var _ repository.ModuleRepo = (*ModuleRepo)(nil)
