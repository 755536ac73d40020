package firestore

import (
	"context"
	"sort"
	"strings"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/repository"
)

type LabelRepo struct {
	client *fs.Client
}

func setLabelID(l *label.Label, id string) { l.ID = id }

func (r *LabelRepo) col() *fs.CollectionRef { return r.client.Collection(LabelsCollection) }

func (r *LabelRepo) ListLabels(ctx context.Context, projectID string) ([]label.Label, error) {
	q := r.col().Query
	if projectID != "" {
		q = q.Where("project_id", "==", projectID)
	}
	labels, err := readAll(q.Documents(ctx), setLabelID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(labels, func(i, j int) bool {
		return strings.ToLower(labels[i].Name) < strings.ToLower(labels[j].Name)
	})
	return labels, nil
}

func (r *LabelRepo) GetLabelByID(ctx context.Context, id string) (label.Label, error) {
	return getDoc(ctx, r.col(), id, setLabelID)
}

func (r *LabelRepo) CreateLabel(ctx context.Context, l *label.Label) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	l.CreatedAt = now()
	_, err := r.col().Doc(l.ID).Create(ctx, l)
	return translate(err)
}

func (r *LabelRepo) UpdateLabel(ctx context.Context, l *label.Label) error {
	return replaceDoc(ctx, r.col().Doc(l.ID), l)
}

func (r *LabelRepo) DeleteLabel(ctx context.Context, id string) error {
	if _, err := r.GetLabelByID(ctx, id); err != nil {
		return err
	}
	b := newBulk(ctx, r.client)
	if err := detachLabels(ctx, r.client, b, []string{id}, nil); err != nil {
		b.end()
		return err
	}
	b.delete(r.col().Doc(id))
	return b.end()
}

var _ repository.LabelRepo = (*LabelRepo)(nil)
