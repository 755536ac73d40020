package firestore

import (
	"context"
	"sort"
	"time"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/linskybing/catalyst/internal/domain/audit"
	"github.com/linskybing/catalyst/internal/repository"
)

type AuditRepo struct {
	client *fs.Client
}

// auditDoc stores JSON payloads as strings so they stay readable in the console.
type auditDoc struct {
	Actor        string    `firestore:"actor"`
	Action       string    `firestore:"action"`
	ResourceType string    `firestore:"resource_type"`
	ResourceID   string    `firestore:"resource_id"`
	OldData      string    `firestore:"old_data"`
	NewData      string    `firestore:"new_data"`
	IPAddress    string    `firestore:"ip_address"`
	UserAgent    string    `firestore:"user_agent"`
	Description  string    `firestore:"description"`
	CreatedAt    time.Time `firestore:"created_at"`
}

func (r *AuditRepo) col() *fs.CollectionRef { return r.client.Collection(AuditLogsCollection) }

func (r *AuditRepo) CreateAuditLog(ctx context.Context, a *audit.AuditLog) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = now()
	_, err := r.col().Doc(a.ID).Create(ctx, auditDoc{
		Actor:        a.Actor,
		Action:       a.Action,
		ResourceType: a.ResourceType,
		ResourceID:   a.ResourceID,
		OldData:      string(a.OldData),
		NewData:      string(a.NewData),
		IPAddress:    a.IPAddress,
		UserAgent:    a.UserAgent,
		Description:  a.Description,
		CreatedAt:    a.CreatedAt,
	})
	return translate(err)
}

func (r *AuditRepo) GetAuditLogs(ctx context.Context, params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	q := r.col().Query
	if params.Actor != nil {
		q = q.Where("actor", "==", *params.Actor)
	}
	if params.ResourceType != nil {
		q = q.Where("resource_type", "==", *params.ResourceType)
	}
	if params.Action != nil {
		q = q.Where("action", "==", *params.Action)
	}

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, translate(err)
	}

	logs := make([]audit.AuditLog, 0, len(docs))
	for _, d := range docs {
		var doc auditDoc
		if err := d.DataTo(&doc); err != nil {
			return nil, err
		}
		if params.StartTime != nil && doc.CreatedAt.Before(*params.StartTime) {
			continue
		}
		if params.EndTime != nil && doc.CreatedAt.After(*params.EndTime) {
			continue
		}
		logs = append(logs, audit.AuditLog{
			ID:           d.Ref.ID,
			Actor:        doc.Actor,
			Action:       doc.Action,
			ResourceType: doc.ResourceType,
			ResourceID:   doc.ResourceID,
			OldData:      jsonOrNil(doc.OldData),
			NewData:      jsonOrNil(doc.NewData),
			IPAddress:    doc.IPAddress,
			UserAgent:    doc.UserAgent,
			Description:  doc.Description,
			CreatedAt:    doc.CreatedAt,
		})
	}

	sort.SliceStable(logs, func(i, j int) bool { return logs[i].CreatedAt.After(logs[j].CreatedAt) })

	if params.Offset > 0 {
		if params.Offset >= len(logs) {
			return []audit.AuditLog{}, nil
		}
		logs = logs[params.Offset:]
	}
	if params.Limit > 0 && params.Limit < len(logs) {
		logs = logs[:params.Limit]
	}
	return logs, nil
}

func (r *AuditRepo) DeleteOldAuditLogs(ctx context.Context, retentionDays int) error {
	cutoff := now().AddDate(0, 0, -retentionDays)
	refs, err := queryRefs(ctx, r.col().Where("created_at", "<", cutoff))
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return nil
	}
	b := newBulk(ctx, r.client)
	for _, ref := range refs {
		b.delete(ref)
	}
	return b.end()
}

func jsonOrNil(s string) []byte {
	if s == "" {
		return nil
	}
	return []byte(s)
}

var _ repository.AuditRepo = (*AuditRepo)(nil)
