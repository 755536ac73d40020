// Package migration moves a legacy SQLite database into Firestore and back
// out again as JSON. Every step is a one-shot job driven by catalystctl.
package migration

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

const (
	TableProjects     = "projects"
	TableUsers        = "users"
	TableLabels       = "labels"
	TableCycles       = "cycles"
	TableModules      = "modules"
	TableTickets      = "tickets"
	TableTicketLabels = "ticket_labels"
)

// Row is one record keyed by column (or document field) name.
type Row map[string]any

// Backup is the JSON document written by export and rollback.
type Backup struct {
	ExportedAt   string `json:"exported_at"`
	Source       string `json:"source,omitempty"`
	Projects     []Row  `json:"projects"`
	Users        []Row  `json:"users"`
	Labels       []Row  `json:"labels"`
	Cycles       []Row  `json:"cycles"`
	Modules      []Row  `json:"modules"`
	Tickets      []Row  `json:"tickets"`
	TicketLabels []Row  `json:"ticket_labels,omitempty"`
}

// Table returns the rows stored for name.
func (b *Backup) Table(name string) []Row {
	switch name {
	case TableProjects:
		return b.Projects
	case TableUsers:
		return b.Users
	case TableLabels:
		return b.Labels
	case TableCycles:
		return b.Cycles
	case TableModules:
		return b.Modules
	case TableTickets:
		return b.Tickets
	case TableTicketLabels:
		return b.TicketLabels
	}
	return nil
}

func (b *Backup) setTable(name string, rows []Row) {
	if rows == nil {
		rows = []Row{}
	}
	switch name {
	case TableProjects:
		b.Projects = rows
	case TableUsers:
		b.Users = rows
	case TableLabels:
		b.Labels = rows
	case TableCycles:
		b.Cycles = rows
	case TableModules:
		b.Modules = rows
	case TableTickets:
		b.Tickets = rows
	case TableTicketLabels:
		b.TicketLabels = rows
	}
}

// Total counts every record in the backup.
func (b *Backup) Total() int {
	n := 0
	for _, name := range append(entityTables, TableTicketLabels) {
		n += len(b.Table(name))
	}
	return n
}

// entityTables are the tables that become collections, parents first.
var entityTables = []string{
	TableProjects,
	TableUsers,
	TableLabels,
	TableCycles,
	TableModules,
	TableTickets,
}

// IDMap records old id -> new document id per collection.
type IDMap map[string]map[string]string

func newIDMap() IDMap {
	m := make(IDMap, len(entityTables))
	for _, name := range entityTables {
		m[name] = make(map[string]string)
	}
	return m
}

// WriteJSON writes v indented to path.
func WriteJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode json")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

func ReadBackup(path string) (*Backup, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	var b Backup
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return &b, nil
}

// idKey normalises an id read from SQLite or decoded from JSON so integer
// and string ids compare equal across both.
func idKey(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case int64:
		return strconv.FormatInt(id, 10)
	case int:
		return strconv.Itoa(id)
	case float64:
		if id == math.Trunc(id) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	case json.Number:
		return id.String()
	}
	return fmt.Sprint(v)
}
