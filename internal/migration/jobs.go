package migration

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/pkg/errors"
)

// foreignKeys maps table -> column -> referenced table.
var foreignKeys = map[string]map[string]string{
	TableLabels:  {"project_id": TableProjects},
	TableCycles:  {"project_id": TableProjects},
	TableModules: {"project_id": TableProjects},
	TableTickets: {
		"project_id":       TableProjects,
		"cycle_id":         TableCycles,
		"module_id":        TableModules,
		"parent_ticket_id": TableTickets,
		"assignee_id":      TableUsers,
	},
}

var timestampFields = []string{"created_at", "updated_at"}

// Export reads every table of the legacy database. The users table is
// optional in older files; the rest must exist.
func Export(ctx context.Context, db *sql.DB, now time.Time) (*Backup, error) {
	b := &Backup{ExportedAt: now.UTC().Format(time.RFC3339)}
	for _, table := range append(entityTables, TableTicketLabels) {
		ok, err := tableExists(ctx, db, table)
		if err != nil {
			return nil, err
		}
		if !ok {
			if table == TableUsers {
				log.Printf("[Migration] users table not found, skipping")
				b.setTable(table, nil)
				continue
			}
			return nil, errors.Errorf("table %s not found", table)
		}
		rows, err := readTable(ctx, db, table)
		if err != nil {
			return nil, err
		}
		b.setTable(table, rows)
		log.Printf("[Migration] exported %d %s", len(rows), table)
	}
	return b, nil
}

type ImportReport struct {
	IDs    IDMap
	Counts map[string]int
}

// Import writes the backup into store in dependency order. Every record gets
// a fresh document id and references are rewritten through the id map;
// ticket_labels rows become each ticket's label_ids.
func Import(ctx context.Context, store DocumentStore, b *Backup) (*ImportReport, error) {
	report := &ImportReport{IDs: newIDMap(), Counts: make(map[string]int)}

	for _, table := range entityTables {
		rows := b.Table(table)
		var labelIDs map[string][]string
		if table == TableTickets {
			rows = parentsFirst(rows)
			labelIDs = ticketLabelIDs(b.TicketLabels, report.IDs[TableLabels])
		}

		for _, src := range rows {
			oldID := idKey(src["id"])
			doc := make(map[string]any, len(src)+1)
			for k, v := range src {
				if k != "id" {
					doc[k] = v
				}
			}
			remap(doc, foreignKeys[table], report.IDs)
			parseTimestamps(doc)

			if table == TableTickets {
				if v, ok := doc["assignee_id"]; ok && v == nil {
					delete(doc, "assignee_id")
				}
				ids := labelIDs[oldID]
				if ids == nil {
					ids = []string{}
				}
				doc["label_ids"] = ids
			}

			newID, err := store.Create(ctx, table, doc)
			if err != nil {
				return report, errors.Wrapf(err, "import %s %s", table, oldID)
			}
			report.IDs[table][oldID] = newID
		}
		report.Counts[table] = len(rows)
		log.Printf("[Migration] imported %d %s", len(rows), table)
	}
	return report, nil
}

// remap rewrites reference columns to new document ids. References to
// records that were not imported keep their old id as a string.
func remap(doc map[string]any, refs map[string]string, ids IDMap) {
	for col, target := range refs {
		v, ok := doc[col]
		if !ok || v == nil {
			continue
		}
		key := idKey(v)
		if newID, found := ids[target][key]; found {
			doc[col] = newID
		} else {
			doc[col] = key
		}
	}
}

func ticketLabelIDs(assocs []Row, labels map[string]string) map[string][]string {
	out := make(map[string][]string)
	for _, a := range assocs {
		ticketID := idKey(a["ticket_id"])
		if newLabel, ok := labels[idKey(a["label_id"])]; ok {
			out[ticketID] = append(out[ticketID], newLabel)
		}
	}
	return out
}

// parentsFirst orders tickets so a parent is always imported before its
// subtasks. Rows caught in a parent cycle keep their original order at the end.
func parentsFirst(rows []Row) []Row {
	present := make(map[string]bool, len(rows))
	for _, r := range rows {
		present[idKey(r["id"])] = true
	}

	done := make(map[string]bool, len(rows))
	out := make([]Row, 0, len(rows))
	pending := rows
	for len(pending) > 0 {
		var next []Row
		for _, r := range pending {
			parent := idKey(r["parent_ticket_id"])
			if parent == "" || !present[parent] || done[parent] {
				done[idKey(r["id"])] = true
				out = append(out, r)
				continue
			}
			next = append(next, r)
		}
		if len(next) == len(pending) {
			out = append(out, next...)
			break
		}
		pending = next
	}
	return out
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// parseTimestamps turns text timestamps into time.Time so they are stored as
// Firestore timestamps.
func parseTimestamps(doc map[string]any) {
	for _, field := range timestampFields {
		s, ok := doc[field].(string)
		if !ok {
			continue
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				doc[field] = t.UTC()
				break
			}
		}
	}
}

// Snapshot dumps every collection so the Firestore state can be restored.
func Snapshot(ctx context.Context, store DocumentStore, now time.Time) (*Backup, error) {
	b := &Backup{ExportedAt: now.UTC().Format(time.RFC3339), Source: "firestore"}
	for _, collection := range entityTables {
		rows, err := store.Dump(ctx, collection)
		if err != nil {
			return nil, err
		}
		b.setTable(collection, rows)
		log.Printf("[Migration] dumped %d %s", len(rows), collection)
	}
	return b, nil
}

type Check struct {
	Name      string
	SQLite    int
	Firestore int
}

func (c Check) OK() bool { return c.SQLite == c.Firestore }

type VerifyReport struct {
	Checks  []Check
	Skipped []string
}

func (r *VerifyReport) Passed() bool {
	for _, c := range r.Checks {
		if !c.OK() {
			return false
		}
	}
	return true
}

// Verify compares row counts in the legacy database with document counts in
// store, plus ticket_labels against the total length of label_ids. Tables
// missing from the database are skipped.
func Verify(ctx context.Context, db *sql.DB, store DocumentStore) (*VerifyReport, error) {
	report := &VerifyReport{}
	for _, table := range entityTables {
		ok, err := tableExists(ctx, db, table)
		if err != nil {
			return nil, err
		}
		if !ok {
			report.Skipped = append(report.Skipped, table)
			continue
		}
		want, err := countRows(ctx, db, table)
		if err != nil {
			return nil, err
		}
		got, err := store.Count(ctx, table)
		if err != nil {
			return nil, err
		}
		report.Checks = append(report.Checks, Check{Name: table, SQLite: want, Firestore: got})
	}

	ok, err := tableExists(ctx, db, TableTicketLabels)
	if err != nil {
		return nil, err
	}
	if !ok {
		report.Skipped = append(report.Skipped, TableTicketLabels)
		return report, nil
	}
	want, err := countRows(ctx, db, TableTicketLabels)
	if err != nil {
		return nil, err
	}
	tickets, err := store.Dump(ctx, TableTickets)
	if err != nil {
		return nil, err
	}
	got := 0
	for _, t := range tickets {
		got += labelCount(t["label_ids"])
	}
	report.Checks = append(report.Checks, Check{Name: TableTicketLabels, SQLite: want, Firestore: got})
	return report, nil
}

func labelCount(v any) int {
	switch ids := v.(type) {
	case []any:
		return len(ids)
	case []string:
		return len(ids)
	}
	return 0
}
