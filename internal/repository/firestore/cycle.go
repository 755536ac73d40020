package firestore

import (
	"context"
	"sort"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/linskybing/catalyst/internal/domain/cycle"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/pkg/utils"
)

type CycleRepo struct {
	client *fs.Client
}

func setCycleID(c *cycle.Cycle, id string) { c.ID = id }

func (r *CycleRepo) col() *fs.CollectionRef { return r.client.Collection(CyclesCollection) }

func (r *CycleRepo) ListCycles(ctx context.Context, projectID string) ([]cycle.Cycle, error) {
	q := r.col().Query
	if projectID != "" {
		q = q.Where("project_id", "==", projectID)
	}
	cycles, err := readAll(q.Documents(ctx), setCycleID)
	if err != nil {
		return nil, err
	}
	// YYYY-MM-DD sorts lexically; cycles without a start date go last.
	sort.SliceStable(cycles, func(i, j int) bool {
		return utils.DerefString(cycles[i].StartDate) > utils.DerefString(cycles[j].StartDate)
	})
	return cycles, nil
}

func (r *CycleRepo) GetCycleByID(ctx context.Context, id string) (cycle.Cycle, error) {
	return getDoc(ctx, r.col(), id, setCycleID)
}

func (r *CycleRepo) CreateCycle(ctx context.Context, c *cycle.Cycle) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = now()
	c.UpdatedAt = c.CreatedAt
	_, err := r.col().Doc(c.ID).Create(ctx, c)
	return translate(err)
}

func (r *CycleRepo) UpdateCycle(ctx context.Context, c *cycle.Cycle) error {
	c.UpdatedAt = now()
	return replaceDoc(ctx, r.col().Doc(c.ID), c)
}

func (r *CycleRepo) DeleteCycle(ctx context.Context, id string) error {
	if _, err := r.GetCycleByID(ctx, id); err != nil {
		return err
	}
	b := newBulk(ctx, r.client)
	if err := clearTicketField(ctx, r.client, b, "cycle_id", id); err != nil {
		b.end()
		return err
	}
	b.delete(r.col().Doc(id))
	return b.end()
}

var _ repository.CycleRepo = (*CycleRepo)(nil)
