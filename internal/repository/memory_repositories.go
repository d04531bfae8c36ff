package repository

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/yukikurage/realty-dashboard-api/internal/models"
)

type memoryUserRepository struct {
	table memTable[models.User]
	mem   *memoryDB
}

func (r *memoryUserRepository) GetAll() ([]models.User, error) {
	return r.table.all()
}

func (r *memoryUserRepository) GetByID(id string) (*models.User, error) {
	return r.table.byID(id)
}

func (r *memoryUserRepository) GetByUsername(username string) (*models.User, error) {
	users, err := r.table.all()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create checks the username and inserts in the same write transaction.
func (r *memoryUserRepository) Create(user *models.User) error {
	txn := r.mem.db.Txn(true)
	defer txn.Abort()

	it, err := txn.Get(tableUsers, indexSeq+"_prefix", "")
	if err != nil {
		return fmt.Errorf("failed to scan users: %w", err)
	}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if obj.(*row).Value.(*models.User).Username == user.Username {
			return ErrDuplicateUsername
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = r.mem.now()
	if err := r.table.put(txn, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	txn.Commit()
	return nil
}

type memoryTransactionRepository struct {
	table memTable[models.Transaction]
	mem   *memoryDB
}

func (r *memoryTransactionRepository) GetAll() ([]models.Transaction, error) {
	return r.table.all()
}

func (r *memoryTransactionRepository) GetByID(id string) (*models.Transaction, error) {
	return r.table.byID(id)
}

func (r *memoryTransactionRepository) GetByAgent(agentID string) ([]models.Transaction, error) {
	return r.table.byAgent(agentID)
}

func (r *memoryTransactionRepository) Create(transaction *models.Transaction) error {
	transaction.ID = uuid.NewString()
	transaction.CreatedAt = r.mem.now()
	return r.table.insert(transaction)
}

type memoryFormRepository struct {
	table memTable[models.Form]
	mem   *memoryDB
}

func (r *memoryFormRepository) GetAll() ([]models.Form, error) {
	return r.table.all()
}

func (r *memoryFormRepository) GetByID(id string) (*models.Form, error) {
	return r.table.byID(id)
}

func (r *memoryFormRepository) GetByAgent(agentID string) ([]models.Form, error) {
	return r.table.byAgent(agentID)
}

func (r *memoryFormRepository) Create(form *models.Form) error {
	form.ID = uuid.NewString()
	form.CreatedAt = r.mem.now()
	return r.table.insert(form)
}

func (r *memoryFormRepository) UpdateStatus(id, status string) (*models.Form, error) {
	return r.table.update(id, func(f *models.Form) {
		f.Status = status
	})
}

type memoryActivityRepository struct {
	table memTable[models.Activity]
	mem   *memoryDB
}

// GetAll returns activities newest first. Equal timestamps keep insertion order.
func (r *memoryActivityRepository) GetAll() ([]models.Activity, error) {
	activities, err := r.table.all()
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(activities, func(a, b models.Activity) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	return activities, nil
}

func (r *memoryActivityRepository) GetByID(id string) (*models.Activity, error) {
	return r.table.byID(id)
}

func (r *memoryActivityRepository) GetByAgent(agentID string) ([]models.Activity, error) {
	return r.table.byAgent(agentID)
}

func (r *memoryActivityRepository) Create(activity *models.Activity) error {
	activity.ID = uuid.NewString()
	activity.CreatedAt = r.mem.now()
	return r.table.insert(activity)
}

type memoryTaskRepository struct {
	table memTable[models.Task]
	mem   *memoryDB
}

func (r *memoryTaskRepository) GetAll() ([]models.Task, error) {
	return r.table.all()
}

func (r *memoryTaskRepository) GetByID(id string) (*models.Task, error) {
	return r.table.byID(id)
}

func (r *memoryTaskRepository) GetByAgent(agentID string) ([]models.Task, error) {
	return r.table.byAgent(agentID)
}

func (r *memoryTaskRepository) Create(task *models.Task) error {
	task.ID = uuid.NewString()
	task.CreatedAt = r.mem.now()
	return r.table.insert(task)
}

func (r *memoryTaskRepository) UpdateCompleted(id string, completed int) (*models.Task, error) {
	return r.table.update(id, func(t *models.Task) {
		t.Completed = completed
	})
}
