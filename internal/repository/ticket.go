package repository

import (
	"context"
	"strings"

	"github.com/linskybing/catalyst/internal/domain/label"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"gorm.io/gorm"
)

const ticketLabelsTable = "ticket_labels"

type TicketRepo interface {
	ListTickets(ctx context.Context, filter ticket.ListFilter) ([]ticket.Ticket, error)
	GetTicketByID(ctx context.Context, id string) (ticket.Ticket, error)
	CreateTicket(ctx context.Context, t *ticket.Ticket) error
	UpdateTicket(ctx context.Context, t *ticket.Ticket) error
	// DeleteTicket removes the ticket and, recursively, its subtasks.
	DeleteTicket(ctx context.Context, id string) error
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{
		db: db,
	}
}

func (r *DBTicketRepo) ListTickets(ctx context.Context, filter ticket.ListFilter) ([]ticket.Ticket, error) {
	query := r.db.WithContext(ctx).Model(&ticket.Ticket{}).Preload("Labels")

	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.AssigneeID != "" {
		query = query.Where("assignee_id = ?", filter.AssigneeID)
	}
	if filter.CycleID != "" {
		query = query.Where("cycle_id = ?", filter.CycleID)
	}
	if filter.ModuleID != "" {
		query = query.Where("module_id = ?", filter.ModuleID)
	}
	if filter.ParentTicketID != "" {
		query = query.Where("parent_ticket_id = ?", filter.ParentTicketID)
	}
	if filter.LabelID != "" {
		sub := r.db.Table(ticketLabelsTable).Select("ticket_id").Where("label_id = ?", filter.LabelID)
		query = query.Where("id IN (?)", sub)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(COALESCE(summary, '')) LIKE ? OR LOWER(COALESCE(assignee, '')) LIKE ?",
			like, like, like,
		)
	}

	var tickets []ticket.Ticket
	if err := query.Order("created_at DESC").Find(&tickets).Error; err != nil {
		return nil, err
	}
	for i := range tickets {
		fillLabelIDs(&tickets[i])
	}
	return tickets, nil
}

func (r *DBTicketRepo) GetTicketByID(ctx context.Context, id string) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.WithContext(ctx).Preload("Labels").First(&t, "id = ?", id).Error
	if err != nil {
		return t, translate(err)
	}
	fillLabelIDs(&t)
	return t, nil
}

func (r *DBTicketRepo) CreateTicket(ctx context.Context, t *ticket.Ticket) error {
	t.ApplyDefaults()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Labels").Create(t).Error; err != nil {
			return translate(err)
		}
		return replaceTicketLabels(tx, t)
	})
}

func (r *DBTicketRepo) UpdateTicket(ctx context.Context, t *ticket.Ticket) error {
	t.ApplyDefaults()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(t).Select("*").Omit("Labels", "CreatedAt").Updates(t)
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return replaceTicketLabels(tx, t)
	})
}

func (r *DBTicketRepo) DeleteTicket(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&ticket.Ticket{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}

		ids, err := collectSubtree(tx, []string{id})
		if err != nil {
			return err
		}
		return deleteTickets(tx, ids)
	})
}

// collectSubtree returns roots plus every descendant through parent_ticket_id.
func collectSubtree(tx *gorm.DB, roots []string) ([]string, error) {
	seen := make(map[string]bool, len(roots))
	all := make([]string, 0, len(roots))
	for _, id := range roots {
		if !seen[id] {
			seen[id] = true
			all = append(all, id)
		}
	}

	frontier := all
	for len(frontier) > 0 {
		var children []string
		if err := tx.Model(&ticket.Ticket{}).Where("parent_ticket_id IN ?", frontier).Pluck("id", &children).Error; err != nil {
			return nil, err
		}
		next := children[:0]
		for _, c := range children {
			if !seen[c] {
				seen[c] = true
				next = append(next, c)
			}
		}
		all = append(all, next...)
		frontier = next
	}
	return all, nil
}

func deleteTickets(tx *gorm.DB, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Exec("DELETE FROM "+ticketLabelsTable+" WHERE ticket_id IN ?", ids).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&ticket.Ticket{}).Error
}

// replaceTicketLabels rewrites the join rows for t, ignoring unknown label ids.
func replaceTicketLabels(tx *gorm.DB, t *ticket.Ticket) error {
	if err := tx.Exec("DELETE FROM "+ticketLabelsTable+" WHERE ticket_id = ?", t.ID).Error; err != nil {
		return err
	}
	if len(t.LabelIDs) == 0 {
		t.LabelIDs = []string{}
		return nil
	}

	var existing []string
	if err := tx.Model(&label.Label{}).Where("id IN ?", t.LabelIDs).Pluck("id", &existing).Error; err != nil {
		return err
	}
	known := make(map[string]bool, len(existing))
	for _, id := range existing {
		known[id] = true
	}

	kept := make([]string, 0, len(t.LabelIDs))
	for _, id := range t.LabelIDs {
		if !known[id] {
			continue
		}
		known[id] = false
		if err := tx.Exec("INSERT INTO "+ticketLabelsTable+" (ticket_id, label_id) VALUES (?, ?)", t.ID, id).Error; err != nil {
			return err
		}
		kept = append(kept, id)
	}
	t.LabelIDs = kept
	return nil
}

func fillLabelIDs(t *ticket.Ticket) {
	t.LabelIDs = make([]string, 0, len(t.Labels))
	for _, l := range t.Labels {
		t.LabelIDs = append(t.LabelIDs, l.ID)
	}
	t.Labels = nil
}
