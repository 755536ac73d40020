package firestore

import (
	"context"
	"sort"
	"strings"

	fs "cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"github.com/linskybing/catalyst/internal/repository"
	"github.com/linskybing/catalyst/pkg/utils"
)

type TicketRepo struct {
	client *fs.Client
}

func setTicketID(t *ticket.Ticket, id string) {
	t.ID = id
	if t.LabelIDs == nil {
		t.LabelIDs = []string{}
	}
}

func (r *TicketRepo) col() *fs.CollectionRef { return r.client.Collection(TicketsCollection) }

func (r *TicketRepo) ListTickets(ctx context.Context, filter ticket.ListFilter) ([]ticket.Ticket, error) {
	q := r.col().Query
	eq := map[string]string{
		"project_id":       filter.ProjectID,
		"status":           filter.Status,
		"priority":         filter.Priority,
		"assignee_id":      filter.AssigneeID,
		"cycle_id":         filter.CycleID,
		"module_id":        filter.ModuleID,
		"parent_ticket_id": filter.ParentTicketID,
	}
	for field, v := range eq {
		if v != "" {
			q = q.Where(field, "==", v)
		}
	}
	if filter.LabelID != "" {
		q = q.Where("label_ids", "array-contains", filter.LabelID)
	}

	tickets, err := readAll(q.Documents(ctx), setTicketID)
	if err != nil {
		return nil, err
	}

	if s := strings.ToLower(strings.TrimSpace(filter.Search)); s != "" {
		kept := tickets[:0]
		for _, t := range tickets {
			if strings.Contains(strings.ToLower(t.Title), s) ||
				strings.Contains(strings.ToLower(utils.DerefString(t.Summary)), s) ||
				strings.Contains(strings.ToLower(utils.DerefString(t.Assignee)), s) {
				kept = append(kept, t)
			}
		}
		tickets = kept
	}

	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
	return tickets, nil
}

func (r *TicketRepo) GetTicketByID(ctx context.Context, id string) (ticket.Ticket, error) {
	return getDoc(ctx, r.col(), id, setTicketID)
}

func (r *TicketRepo) CreateTicket(ctx context.Context, t *ticket.Ticket) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.ApplyDefaults()
	if err := r.keepKnownLabels(ctx, t); err != nil {
		return err
	}
	t.CreatedAt = now()
	t.UpdatedAt = t.CreatedAt
	_, err := r.col().Doc(t.ID).Create(ctx, t)
	return translate(err)
}

func (r *TicketRepo) UpdateTicket(ctx context.Context, t *ticket.Ticket) error {
	t.ApplyDefaults()
	if err := r.keepKnownLabels(ctx, t); err != nil {
		return err
	}
	t.UpdatedAt = now()
	return replaceDoc(ctx, r.col().Doc(t.ID), t)
}

// keepKnownLabels drops duplicate and unknown ids from t.LabelIDs.
func (r *TicketRepo) keepKnownLabels(ctx context.Context, t *ticket.Ticket) error {
	kept := make([]string, 0, len(t.LabelIDs))
	if len(t.LabelIDs) == 0 {
		t.LabelIDs = kept
		return nil
	}

	seen := make(map[string]bool, len(t.LabelIDs))
	var refs []*fs.DocumentRef
	for _, id := range t.LabelIDs {
		if id == "" || strings.Contains(id, "/") || seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, r.client.Collection(LabelsCollection).Doc(id))
	}
	if len(refs) == 0 {
		t.LabelIDs = kept
		return nil
	}

	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return translate(err)
	}
	for _, snap := range snaps {
		if snap.Exists() {
			kept = append(kept, snap.Ref.ID)
		}
	}
	t.LabelIDs = kept
	return nil
}

func (r *TicketRepo) DeleteTicket(ctx context.Context, id string) error {
	if _, err := r.GetTicketByID(ctx, id); err != nil {
		return err
	}
	refs, err := ticketSubtree(ctx, r.client, []string{id})
	if err != nil {
		return err
	}
	b := newBulk(ctx, r.client)
	for _, ref := range refs {
		b.delete(ref)
	}
	return b.end()
}

// ticketSubtree resolves roots plus every descendant through parent_ticket_id.
func ticketSubtree(ctx context.Context, client *fs.Client, roots []string) ([]*fs.DocumentRef, error) {
	col := client.Collection(TicketsCollection)
	seen := make(map[string]bool)
	var refs []*fs.DocumentRef

	frontier := roots
	for _, id := range roots {
		seen[id] = true
		refs = append(refs, col.Doc(id))
	}
	for len(frontier) > 0 {
		var next []string
		for _, parent := range frontier {
			children, err := queryRefs(ctx, col.Where("parent_ticket_id", "==", parent))
			if err != nil {
				return nil, err
			}
			for _, c := range children {
				if seen[c.ID] {
					continue
				}
				seen[c.ID] = true
				refs = append(refs, c)
				next = append(next, c.ID)
			}
		}
		frontier = next
	}
	return refs, nil
}

// clearTicketField nulls field on every ticket where it equals id.
func clearTicketField(ctx context.Context, client *fs.Client, b *bulk, field, id string) error {
	refs, err := queryRefs(ctx, client.Collection(TicketsCollection).Where(field, "==", id))
	if err != nil {
		return err
	}
	for _, ref := range refs {
		b.update(ref, []fs.Update{
			{Path: field, Value: nil},
			{Path: "updated_at", Value: now()},
		})
	}
	return nil
}

// detachLabels removes labelIDs from every ticket's label_ids, skipping
// tickets already queued for deletion. Each ticket gets a single write.
func detachLabels(ctx context.Context, client *fs.Client, b *bulk, labelIDs []string, skip map[string]bool) error {
	removals := make(map[string][]interface{})
	refs := make(map[string]*fs.DocumentRef)
	for _, labelID := range labelIDs {
		found, err := queryRefs(ctx, client.Collection(TicketsCollection).Where("label_ids", "array-contains", labelID))
		if err != nil {
			return err
		}
		for _, ref := range found {
			if skip[ref.ID] {
				continue
			}
			refs[ref.ID] = ref
			removals[ref.ID] = append(removals[ref.ID], labelID)
		}
	}
	for id, ref := range refs {
		b.update(ref, []fs.Update{
			{Path: "label_ids", Value: fs.ArrayRemove(removals[id]...)},
			{Path: "updated_at", Value: now()},
		})
	}
	return nil
}

var _ repository.TicketRepo = (*TicketRepo)(nil)
