package repository

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-memdb"
	"github.com/yukikurage/realty-dashboard-api/internal/models"
)

const (
	tableUsers        = "users"
	tableTransactions = "transactions"
	tableForms        = "forms"
	tableActivities   = "activities"
	tableTasks        = "tasks"

	indexID    = "id"
	indexAgent = "agent"
	indexSeq   = "seq"
)

// row wraps a stored record with the fields memdb indexes on.
// Seq is a zero-padded insertion counter so the seq index iterates in insertion order.
type row struct {
	ID      string
	AgentID string
	Seq     string
	Value   interface{}
}

func memorySchema() *memdb.DBSchema {
	tables := make(map[string]*memdb.TableSchema)
	for _, name := range []string{tableUsers, tableTransactions, tableForms, tableActivities, tableTasks} {
		tables[name] = &memdb.TableSchema{
			Name: name,
			Indexes: map[string]*memdb.IndexSchema{
				indexID: {
					Name:    indexID,
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
				indexAgent: {
					Name:         indexAgent,
					AllowMissing: true,
					Indexer:      &memdb.StringFieldIndex{Field: "AgentID"},
				},
				indexSeq: {
					Name:    indexSeq,
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Seq"},
				},
			},
		}
	}
	return &memdb.DBSchema{Tables: tables}
}

// memoryDB is the volatile backend. memdb allows a single writer at a time and gives
// readers consistent snapshots, so read-modify-write updates run inside one write txn.
type memoryDB struct {
	db  *memdb.MemDB
	seq atomic.Uint64
	now func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() (*Store, error) {
	return newMemoryStore(time.Now)
}

func newMemoryStore(now func() time.Time) (*Store, error) {
	db, err := memdb.NewMemDB(memorySchema())
	if err != nil {
		return nil, fmt.Errorf("failed to create memory database: %w", err)
	}

	mem := &memoryDB{db: db, now: now}
	return &Store{
		Users:        &memoryUserRepository{table: newUserTable(mem), mem: mem},
		Transactions: &memoryTransactionRepository{table: newTransactionTable(mem), mem: mem},
		Forms:        &memoryFormRepository{table: newFormTable(mem), mem: mem},
		Activities:   &memoryActivityRepository{table: newActivityTable(mem), mem: mem},
		Tasks:        &memoryTaskRepository{table: newTaskTable(mem), mem: mem},
		loader:       mem,
	}, nil
}

func (m *memoryDB) nextSeq() string {
	return fmt.Sprintf("%020d", m.seq.Add(1))
}

func (m *memoryDB) load(data SampleData) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	users := newUserTable(m)
	for i := range data.Users {
		if err := users.put(txn, &data.Users[i]); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", data.Users[i].ID, err)
		}
	}
	transactions := newTransactionTable(m)
	for i := range data.Transactions {
		if err := transactions.put(txn, &data.Transactions[i]); err != nil {
			return fmt.Errorf("failed to seed transaction %s: %w", data.Transactions[i].ID, err)
		}
	}
	forms := newFormTable(m)
	for i := range data.Forms {
		if err := forms.put(txn, &data.Forms[i]); err != nil {
			return fmt.Errorf("failed to seed form %s: %w", data.Forms[i].ID, err)
		}
	}
	activities := newActivityTable(m)
	for i := range data.Activities {
		if err := activities.put(txn, &data.Activities[i]); err != nil {
			return fmt.Errorf("failed to seed activity %s: %w", data.Activities[i].ID, err)
		}
	}
	tasks := newTaskTable(m)
	for i := range data.Tasks {
		if err := tasks.put(txn, &data.Tasks[i]); err != nil {
			return fmt.Errorf("failed to seed task %s: %w", data.Tasks[i].ID, err)
		}
	}

	txn.Commit()
	return nil
}

// memTable is a typed view over one memdb table. Records are copied on the way in and
// on the way out, so callers never hold a pointer into the database.
type memTable[T any] struct {
	mem  *memoryDB
	name string
	keys func(*T) (id, agentID string)
}

func newUserTable(m *memoryDB) memTable[models.User] {
	return memTable[models.User]{mem: m, name: tableUsers, keys: func(u *models.User) (string, string) {
		return u.ID, ""
	}}
}

func newTransactionTable(m *memoryDB) memTable[models.Transaction] {
	return memTable[models.Transaction]{mem: m, name: tableTransactions, keys: func(t *models.Transaction) (string, string) {
		return t.ID, t.AgentID
	}}
}

func newFormTable(m *memoryDB) memTable[models.Form] {
	return memTable[models.Form]{mem: m, name: tableForms, keys: func(f *models.Form) (string, string) {
		return f.ID, f.AgentID
	}}
}

func newActivityTable(m *memoryDB) memTable[models.Activity] {
	return memTable[models.Activity]{mem: m, name: tableActivities, keys: func(a *models.Activity) (string, string) {
		if a.AgentID == nil {
			return a.ID, ""
		}
		return a.ID, *a.AgentID
	}}
}

func newTaskTable(m *memoryDB) memTable[models.Task] {
	return memTable[models.Task]{mem: m, name: tableTasks, keys: func(t *models.Task) (string, string) {
		return t.ID, t.AgentID
	}}
}

func (t memTable[T]) newRow(value *T, seq string) *row {
	id, agentID := t.keys(value)
	stored := *value
	return &row{ID: id, AgentID: agentID, Seq: seq, Value: &stored}
}

func (t memTable[T]) put(txn *memdb.Txn, value *T) error {
	return txn.Insert(t.name, t.newRow(value, t.mem.nextSeq()))
}

func (t memTable[T]) insert(value *T) error {
	txn := t.mem.db.Txn(true)
	defer txn.Abort()

	if err := t.put(txn, value); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", t.name, err)
	}

	txn.Commit()
	return nil
}

func (t memTable[T]) all() ([]T, error) {
	txn := t.mem.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(t.name, indexSeq+"_prefix", "")
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", t.name, err)
	}

	records := []T{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		records = append(records, *obj.(*row).Value.(*T))
	}
	return records, nil
}

func (t memTable[T]) byID(id string) (*T, error) {
	txn := t.mem.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(t.name, indexID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", t.name, err)
	}
	if raw == nil {
		return nil, ErrNotFound
	}

	record := *raw.(*row).Value.(*T)
	return &record, nil
}

func (t memTable[T]) byAgent(agentID string) ([]T, error) {
	txn := t.mem.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(t.name, indexAgent, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to filter %s by agent: %w", t.name, err)
	}

	var rows []*row
	for obj := it.Next(); obj != nil; obj = it.Next() {
		rows = append(rows, obj.(*row))
	}
	// The agent index orders by id; restore insertion order.
	slices.SortFunc(rows, func(a, b *row) int {
		return strings.Compare(a.Seq, b.Seq)
	})

	records := make([]T, 0, len(rows))
	for _, r := range rows {
		records = append(records, *r.Value.(*T))
	}
	return records, nil
}

func (t memTable[T]) update(id string, mutate func(*T)) (*T, error) {
	txn := t.mem.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(t.name, indexID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", t.name, err)
	}
	if raw == nil {
		return nil, ErrNotFound
	}

	current := raw.(*row)
	next := *current.Value.(*T)
	mutate(&next)

	if err := txn.Insert(t.name, t.newRow(&next, current.Seq)); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", t.name, err)
	}

	txn.Commit()
	return &next, nil
}
