package repository

import (
	"errors"

	"github.com/yukikurage/realty-dashboard-api/internal/models"
)

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateUsername is returned when a user is created with a username already in use.
	ErrDuplicateUsername = errors.New("repository: username already exists")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// GetAll returns every user
	GetAll() ([]models.User, error)

	// GetByID finds a user by ID
	GetByID(id string) (*models.User, error)

	// GetByUsername finds a user by username
	GetByUsername(username string) (*models.User, error)

	// Create assigns an ID and creation time and stores the user
	Create(user *models.User) error
}

// TransactionRepository defines the interface for transaction data access
type TransactionRepository interface {
	GetAll() ([]models.Transaction, error)
	GetByID(id string) (*models.Transaction, error)
	GetByAgent(agentID string) ([]models.Transaction, error)
	Create(transaction *models.Transaction) error
}

// FormRepository defines the interface for form data access
type FormRepository interface {
	GetAll() ([]models.Form, error)
	GetByID(id string) (*models.Form, error)
	GetByAgent(agentID string) ([]models.Form, error)
	Create(form *models.Form) error

	// UpdateStatus changes the status of a form and returns the updated record
	UpdateStatus(id, status string) (*models.Form, error)
}

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	// GetAll returns activities, most recent first
	GetAll() ([]models.Activity, error)
	GetByID(id string) (*models.Activity, error)
	GetByAgent(agentID string) ([]models.Activity, error)
	Create(activity *models.Activity) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	GetAll() ([]models.Task, error)
	GetByID(id string) (*models.Task, error)
	GetByAgent(agentID string) ([]models.Task, error)
	Create(task *models.Task) error

	// UpdateCompleted sets the completed flag of a task and returns the updated record
	UpdateCompleted(id string, completed int) (*models.Task, error)
}

// Store groups the repositories of every entity kind behind one handle.
type Store struct {
	Users        UserRepository
	Transactions TransactionRepository
	Forms        FormRepository
	Activities   ActivityRepository
	Tasks        TaskRepository

	loader bulkLoader
}

// bulkLoader writes records verbatim, keeping their IDs and timestamps.
type bulkLoader interface {
	load(data SampleData) error
}

// Seed loads data into the store as-is.
func (s *Store) Seed(data SampleData) error {
	return s.loader.load(data)
}
