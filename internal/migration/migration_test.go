package migration

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory DocumentStore with predictable ids.
type memStore struct {
	docs map[string][]Row
	seq  int
}

func newMemStore() *memStore { return &memStore{docs: make(map[string][]Row)} }

func (m *memStore) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	m.seq++
	id := fmt.Sprintf("%s-%d", collection, m.seq)
	row := Row{"id": id}
	for k, v := range data {
		row[k] = v
	}
	m.docs[collection] = append(m.docs[collection], row)
	return id, nil
}

func (m *memStore) Count(ctx context.Context, collection string) (int, error) {
	return len(m.docs[collection]), nil
}

func (m *memStore) Dump(ctx context.Context, collection string) ([]Row, error) {
	return append([]Row{}, m.docs[collection]...), nil
}

func (m *memStore) find(collection, field string, value any) Row {
	for _, r := range m.docs[collection] {
		if r[field] == value {
			return r
		}
	}
	return nil
}

const legacySchema = `
CREATE TABLE projects (id INTEGER PRIMARY KEY, name VARCHAR(255), identifier VARCHAR(50), created_at DATETIME);
CREATE TABLE labels (id INTEGER PRIMARY KEY, name VARCHAR(100), color VARCHAR(7), project_id INTEGER, created_at DATETIME);
CREATE TABLE cycles (id INTEGER PRIMARY KEY, name VARCHAR(255), start_date DATE, end_date DATE, project_id INTEGER);
CREATE TABLE modules (id INTEGER PRIMARY KEY, name VARCHAR(255), project_id INTEGER);
CREATE TABLE tickets (
	id INTEGER PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	start_date DATE,
	status VARCHAR(20),
	project_id INTEGER,
	cycle_id INTEGER,
	module_id INTEGER,
	parent_ticket_id INTEGER,
	assignee_id INTEGER,
	created_at DATETIME
);
CREATE TABLE ticket_labels (ticket_id INTEGER, label_id INTEGER);

INSERT INTO projects VALUES (1, 'Mobile App', 'MOBILEAPP', '2024-01-05 09:30:00');
INSERT INTO labels VALUES (10, 'bug', '#ff0000', 1, '2024-01-05 09:31:00');
INSERT INTO labels VALUES (11, 'ui', NULL, 1, '2024-01-05 09:32:00');
INSERT INTO cycles VALUES (3, 'Sprint 1', '2024-03-01', '2024-03-14', 1);
INSERT INTO modules VALUES (4, 'Auth', 1);
INSERT INTO tickets VALUES (21, 'Login screen', '2024-03-02', 'open', 1, 3, 4, 20, NULL, '2024-02-01 10:00:00');
INSERT INTO tickets VALUES (20, 'Auth epic', NULL, 'in_progress', 1, 3, 4, NULL, NULL, '2024-02-01 09:00:00');
INSERT INTO ticket_labels VALUES (21, 10);
INSERT INTO ticket_labels VALUES (21, 11);
INSERT INTO ticket_labels VALUES (20, 10);
`

// newLegacyDB writes a legacy database without a users table and reopens it
// read-only.
func newLegacyDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalyst.db")
	rw, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = rw.Exec(legacySchema)
	require.NoError(t, err)
	require.NoError(t, rw.Close())

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	db := newLegacyDB(t)
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	b, err := Export(ctx, db, now)
	require.NoError(t, err)

	assert.Equal(t, "2024-04-01T12:00:00Z", b.ExportedAt)
	assert.Len(t, b.Projects, 1)
	assert.Empty(t, b.Users)
	assert.NotNil(t, b.Users)
	assert.Len(t, b.Labels, 2)
	assert.Len(t, b.Tickets, 2)
	assert.Len(t, b.TicketLabels, 3)
	assert.Equal(t, 10, b.Total())

	assert.Equal(t, "MOBILEAPP", b.Projects[0]["identifier"])
	assert.Equal(t, "2024-03-01", b.Cycles[0]["start_date"])
	assert.Nil(t, b.Labels[1]["color"])
}

func TestExport_MissingRequiredTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	rw, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = rw.Exec("CREATE TABLE projects (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)
	require.NoError(t, rw.Close())

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()

	_, err = Export(context.Background(), db, time.Now())
	assert.ErrorContains(t, err, "table labels not found")
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	b, err := Export(ctx, newLegacyDB(t), time.Now())
	require.NoError(t, err)

	// Round-trip through JSON as catalystctl does.
	path := filepath.Join(t.TempDir(), "migration_backup.json")
	require.NoError(t, WriteJSON(path, b))
	b, err = ReadBackup(path)
	require.NoError(t, err)

	store := newMemStore()
	report, err := Import(ctx, store, b)
	require.NoError(t, err)

	projectID := report.IDs[TableProjects]["1"]
	require.NotEmpty(t, projectID)
	assert.Equal(t, 2, report.Counts[TableTickets])
	assert.Equal(t, 0, report.Counts[TableUsers])

	label := store.find(TableLabels, "name", "bug")
	require.NotNil(t, label)
	assert.Equal(t, projectID, label["project_id"])
	assert.Equal(t, report.IDs[TableLabels]["10"], label["id"])

	epic := store.find(TableTickets, "title", "Auth epic")
	login := store.find(TableTickets, "title", "Login screen")
	require.NotNil(t, epic)
	require.NotNil(t, login)

	// Parent is written first even though the child came first in the table.
	assert.Equal(t, epic["id"], store.docs[TableTickets][0]["id"])
	assert.Equal(t, epic["id"], login["parent_ticket_id"])
	assert.Equal(t, report.IDs[TableCycles]["3"], login["cycle_id"])
	assert.Equal(t, report.IDs[TableModules]["4"], login["module_id"])
	assert.ElementsMatch(t, []string{report.IDs[TableLabels]["10"], report.IDs[TableLabels]["11"]}, login["label_ids"])
	assert.Equal(t, []string{report.IDs[TableLabels]["10"]}, epic["label_ids"])

	_, hasAssignee := login["assignee_id"]
	assert.False(t, hasAssignee)
	assert.IsType(t, time.Time{}, login["created_at"])
}

func TestImport_UnknownReferencesKeepOldID(t *testing.T) {
	b := &Backup{
		Tickets: []Row{{"id": float64(7), "title": "Orphan", "project_id": float64(99), "assignee_id": "u-1"}},
	}
	store := newMemStore()
	_, err := Import(context.Background(), store, b)
	require.NoError(t, err)

	got := store.docs[TableTickets][0]
	assert.Equal(t, "99", got["project_id"])
	assert.Equal(t, "u-1", got["assignee_id"])
	assert.Equal(t, []string{}, got["label_ids"])
}

func TestParentsFirst_Cycle(t *testing.T) {
	rows := []Row{
		{"id": "a", "parent_ticket_id": "b"},
		{"id": "b", "parent_ticket_id": "a"},
		{"id": "c"},
	}
	out := parentsFirst(rows)
	require.Len(t, out, 3)
	assert.Equal(t, "c", out[0]["id"])
	assert.Equal(t, "a", out[1]["id"])
	assert.Equal(t, "b", out[2]["id"])
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	db := newLegacyDB(t)
	b, err := Export(ctx, db, time.Now())
	require.NoError(t, err)

	store := newMemStore()
	_, err = Import(ctx, store, b)
	require.NoError(t, err)

	report, err := Verify(ctx, db, store)
	require.NoError(t, err)
	assert.True(t, report.Passed())
	assert.Equal(t, []string{TableUsers}, report.Skipped)

	var assoc Check
	for _, c := range report.Checks {
		if c.Name == TableTicketLabels {
			assoc = c
		}
	}
	assert.Equal(t, Check{Name: TableTicketLabels, SQLite: 3, Firestore: 3}, assoc)

	// A lost document fails the run.
	store.docs[TableModules] = nil
	report, err = Verify(ctx, db, store)
	require.NoError(t, err)
	assert.False(t, report.Passed())
}

func TestSnapshot(t *testing.T) {
	store := newMemStore()
	_, err := store.Create(context.Background(), TableProjects, map[string]any{"name": "Web"})
	require.NoError(t, err)

	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	b, err := Snapshot(context.Background(), store, now)
	require.NoError(t, err)
	assert.Equal(t, "firestore", b.Source)
	require.Len(t, b.Projects, 1)
	assert.Equal(t, "projects-1", b.Projects[0]["id"])
	assert.NotNil(t, b.Tickets)
	assert.Nil(t, b.TicketLabels)
}

func TestIDKey(t *testing.T) {
	assert.Equal(t, "12", idKey(int64(12)))
	assert.Equal(t, "12", idKey(float64(12)))
	assert.Equal(t, "abc", idKey("abc"))
	assert.Equal(t, "", idKey(nil))
}
