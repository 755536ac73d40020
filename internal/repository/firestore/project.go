package firestore

import (
	"context"
	"sort"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/linskybing/catalyst/internal/domain/project"
	"github.com/linskybing/catalyst/internal/repository"
)

type ProjectRepo struct {
	client *fs.Client
}

func setProjectID(p *project.Project, id string) { p.ID = id }

func (r *ProjectRepo) col() *fs.CollectionRef { return r.client.Collection(ProjectsCollection) }

func (r *ProjectRepo) ListProjects(ctx context.Context) ([]project.Project, error) {
	projects, err := readAll(r.col().Documents(ctx), setProjectID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

func (r *ProjectRepo) GetProjectByID(ctx context.Context, id string) (project.Project, error) {
	return getDoc(ctx, r.col(), id, setProjectID)
}

func (r *ProjectRepo) GetProjectByName(ctx context.Context, name string) (project.Project, error) {
	return r.findOne(ctx, "name", name)
}

func (r *ProjectRepo) GetProjectByIdentifier(ctx context.Context, identifier string) (project.Project, error) {
	return r.findOne(ctx, "identifier", identifier)
}

func (r *ProjectRepo) findOne(ctx context.Context, field, value string) (project.Project, error) {
	found, err := readAll(r.col().Where(field, "==", value).Limit(1).Documents(ctx), setProjectID)
	if err != nil {
		return project.Project{}, err
	}
	if len(found) == 0 {
		return project.Project{}, repository.ErrNotFound
	}
	return found[0], nil
}

func (r *ProjectRepo) CreateProject(ctx context.Context, p *project.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = now()
	p.UpdatedAt = p.CreatedAt
	_, err := r.col().Doc(p.ID).Create(ctx, p)
	return translate(err)
}

func (r *ProjectRepo) UpdateProject(ctx context.Context, p *project.Project) error {
	p.UpdatedAt = now()
	return replaceDoc(ctx, r.col().Doc(p.ID), p)
}

func (r *ProjectRepo) DeleteProject(ctx context.Context, id string) error {
	if _, err := r.GetProjectByID(ctx, id); err != nil {
		return err
	}

	tickets, err := queryRefs(ctx, r.client.Collection(TicketsCollection).Where("project_id", "==", id))
	if err != nil {
		return err
	}
	roots := make([]string, 0, len(tickets))
	for _, t := range tickets {
		roots = append(roots, t.ID)
	}
	ticketRefs, err := ticketSubtree(ctx, r.client, roots)
	if err != nil {
		return err
	}

	labels, err := queryRefs(ctx, r.client.Collection(LabelsCollection).Where("project_id", "==", id))
	if err != nil {
		return err
	}
	labelIDs := make([]string, 0, len(labels))
	for _, ref := range labels {
		labelIDs = append(labelIDs, ref.ID)
	}

	b := newBulk(ctx, r.client)
	deleted := make(map[string]bool, len(ticketRefs))
	for _, ref := range ticketRefs {
		deleted[ref.ID] = true
		b.delete(ref)
	}
	if err := detachLabels(ctx, r.client, b, labelIDs, deleted); err != nil {
		b.end()
		return err
	}
	for _, ref := range labels {
		b.delete(ref)
	}

	for _, name := range []string{CyclesCollection, ModulesCollection} {
		refs, err := queryRefs(ctx, r.client.Collection(name).Where("project_id", "==", id))
		if err != nil {
			b.end()
			return err
		}
		for _, ref := range refs {
			b.delete(ref)
		}
	}

	b.delete(r.col().Doc(id))
	return b.end()
}

var _ repository.ProjectRepo = (*ProjectRepo)(nil)
