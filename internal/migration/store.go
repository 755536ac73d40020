package migration

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// DocumentStore is the slice of Firestore the migration jobs need.
type DocumentStore interface {
	// Create stores data under a fresh document id and returns that id.
	Create(ctx context.Context, collection string, data map[string]any) (string, error)
	Count(ctx context.Context, collection string) (int, error)
	// Dump returns every document of collection with its id under "id".
	Dump(ctx context.Context, collection string) ([]Row, error)
}

type FirestoreStore struct {
	client *fs.Client
}

func NewFirestoreStore(client *fs.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Close() error { return s.client.Close() }

func (s *FirestoreStore) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.NewString()
	if _, err := s.client.Collection(collection).Doc(id).Create(ctx, data); err != nil {
		return "", errors.Wrapf(err, "create %s document", collection)
	}
	return id, nil
}

func (s *FirestoreStore) Count(ctx context.Context, collection string) (int, error) {
	it := s.client.Collection(collection).Select().Documents(ctx)
	defer it.Stop()
	n := 0
	for {
		_, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return n, nil
		}
		if err != nil {
			return 0, errors.Wrapf(err, "count %s", collection)
		}
		n++
	}
}

func (s *FirestoreStore) Dump(ctx context.Context, collection string) ([]Row, error) {
	docs, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", collection)
	}
	out := make([]Row, 0, len(docs))
	for _, d := range docs {
		row := Row(d.Data())
		row["id"] = d.Ref.ID
		out = append(out, row)
	}
	return out, nil
}

var _ DocumentStore = (*FirestoreStore)(nil)
