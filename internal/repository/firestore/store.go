// Package firestore implements the repository interfaces on Cloud Firestore.
// Each record type lives in its own top-level collection keyed by record id.
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/linskybing/catalyst/internal/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ProjectsCollection  = "projects"
	UsersCollection     = "users"
	LabelsCollection    = "labels"
	CyclesCollection    = "cycles"
	ModulesCollection   = "modules"
	TicketsCollection   = "tickets"
	AuditLogsCollection = "audit_logs"
)

// Collections lists the collections in dependency order.
var Collections = []string{
	ProjectsCollection,
	UsersCollection,
	LabelsCollection,
	CyclesCollection,
	ModulesCollection,
	TicketsCollection,
}

func NewRepositories(client *fs.Client) *repository.Repos {
	return &repository.Repos{
		Ticket:  &TicketRepo{client: client},
		Project: &ProjectRepo{client: client},
		User:    &UserRepo{client: client},
		Label:   &LabelRepo{client: client},
		Cycle:   &CycleRepo{client: client},
		Module:  &ModuleRepo{client: client},
		Audit:   &AuditRepo{client: client},
		Ping: func(ctx context.Context) error {
			it := client.Collection(ProjectsCollection).Limit(1).Documents(ctx)
			defer it.Stop()
			_, err := it.Next()
			if errors.Is(err, iterator.Done) {
				return nil
			}
			return err
		},
	}
}

func now() time.Time { return time.Now().UTC() }

func translate(err error) error {
	switch status.Code(err) {
	case codes.OK:
		return err
	case codes.NotFound:
		return repository.ErrNotFound
	case codes.AlreadyExists:
		return repository.ErrConflict
	}
	return err
}

// getDoc loads one document into out and lets setID stamp the document id.
func getDoc[T any](ctx context.Context, col *fs.CollectionRef, id string, setID func(*T, string)) (T, error) {
	var out T
	if strings.TrimSpace(id) == "" {
		return out, repository.ErrNotFound
	}
	snap, err := col.Doc(id).Get(ctx)
	if err != nil {
		return out, translate(err)
	}
	if err := snap.DataTo(&out); err != nil {
		return out, err
	}
	setID(&out, snap.Ref.ID)
	return out, nil
}

func readAll[T any](it *fs.DocumentIterator, setID func(*T, string)) ([]T, error) {
	docs, err := it.GetAll()
	if err != nil {
		return nil, translate(err)
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := d.DataTo(&v); err != nil {
			return nil, err
		}
		setID(&v, d.Ref.ID)
		out = append(out, v)
	}
	return out, nil
}

// replaceDoc overwrites an existing document; it reports ErrNotFound rather
// than creating a new one.
func replaceDoc(ctx context.Context, ref *fs.DocumentRef, data any) error {
	if _, err := ref.Get(ctx); err != nil {
		return translate(err)
	}
	_, err := ref.Set(ctx, data)
	return translate(err)
}

func deleteDoc(ctx context.Context, ref *fs.DocumentRef) error {
	_, err := ref.Delete(ctx, fs.Exists)
	return translate(err)
}

func queryRefs(ctx context.Context, q fs.Query) ([]*fs.DocumentRef, error) {
	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, translate(err)
	}
	refs := make([]*fs.DocumentRef, 0, len(docs))
	for _, d := range docs {
		refs = append(refs, d.Ref)
	}
	return refs, nil
}

// bulk collects writes on a BulkWriter and reports the first failure.
type bulk struct {
	bw   *fs.BulkWriter
	jobs []*fs.BulkWriterJob
	err  error
}

func newBulk(ctx context.Context, client *fs.Client) *bulk {
	return &bulk{bw: client.BulkWriter(ctx)}
}

func (b *bulk) delete(ref *fs.DocumentRef) {
	if b.err != nil {
		return
	}
	job, err := b.bw.Delete(ref)
	if err != nil {
		b.err = err
		return
	}
	b.jobs = append(b.jobs, job)
}

func (b *bulk) update(ref *fs.DocumentRef, updates []fs.Update) {
	if b.err != nil {
		return
	}
	job, err := b.bw.Update(ref, updates)
	if err != nil {
		b.err = err
		return
	}
	b.jobs = append(b.jobs, job)
}

func (b *bulk) end() error {
	b.bw.End()
	if b.err != nil {
		return b.err
	}
	for _, job := range b.jobs {
		if _, err := job.Results(); err != nil && status.Code(err) != codes.NotFound {
			return err
		}
	}
	return nil
}
