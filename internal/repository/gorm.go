package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/realty-dashboard-api/internal/models"
	"gorm.io/gorm"
)

// NewGormStore creates a store backed by a SQL database through GORM.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:        &GormUserRepository{db: db},
		Transactions: &GormTransactionRepository{db: db},
		Forms:        &GormFormRepository{db: db},
		Activities:   &GormActivityRepository{db: db},
		Tasks:        &GormTaskRepository{db: db},
		loader:       gormLoader{db: db},
	}
}

type gormLoader struct {
	db *gorm.DB
}

// load inserts sample records in one transaction. Tables that already hold rows are skipped.
func (l gormLoader) load(data SampleData) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		if err := seedTable(tx, &models.User{}, data.Users); err != nil {
			return err
		}
		if err := seedTable(tx, &models.Transaction{}, data.Transactions); err != nil {
			return err
		}
		if err := seedTable(tx, &models.Form{}, data.Forms); err != nil {
			return err
		}
		if err := seedTable(tx, &models.Activity{}, data.Activities); err != nil {
			return err
		}
		return seedTable(tx, &models.Task{}, data.Tasks)
	})
}

func seedTable[T any](tx *gorm.DB, model interface{}, records []T) error {
	if len(records) == 0 {
		return nil
	}

	var count int64
	if err := tx.Model(model).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count existing rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	return tx.Create(&records).Error
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// GetAll returns every user
func (r *GormUserRepository) GetAll() ([]models.User, error) {
	users := []models.User{}
	if err := r.db.Order("created_at ASC, id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID finds a user by ID
func (r *GormUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

// GetByUsername finds a user by username
func (r *GormUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

// Create creates a new user. The unique index on username rejects duplicates.
func (r *GormUserRepository) Create(user *models.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

// GormTransactionRepository is a GORM implementation of TransactionRepository
type GormTransactionRepository struct {
	db *gorm.DB
}

func (r *GormTransactionRepository) GetAll() ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := r.db.Order("created_at ASC, id ASC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *GormTransactionRepository) GetByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &transaction, nil
}

func (r *GormTransactionRepository) GetByAgent(agentID string) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := r.db.Where("agent_id = ?", agentID).
		Order("created_at ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *GormTransactionRepository) Create(transaction *models.Transaction) error {
	transaction.ID = uuid.NewString()
	transaction.CreatedAt = time.Now()
	return r.db.Create(transaction).Error
}

// GormFormRepository is a GORM implementation of FormRepository
type GormFormRepository struct {
	db *gorm.DB
}

func (r *GormFormRepository) GetAll() ([]models.Form, error) {
	forms := []models.Form{}
	if err := r.db.Order("created_at ASC, id ASC").Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *GormFormRepository) GetByID(id string) (*models.Form, error) {
	var form models.Form
	if err := r.db.Where("id = ?", id).First(&form).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &form, nil
}

func (r *GormFormRepository) GetByAgent(agentID string) ([]models.Form, error) {
	forms := []models.Form{}
	if err := r.db.Where("agent_id = ?", agentID).
		Order("created_at ASC, id ASC").
		Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *GormFormRepository) Create(form *models.Form) error {
	form.ID = uuid.NewString()
	form.CreatedAt = time.Now()
	return r.db.Create(form).Error
}

// UpdateStatus updates the status column only, inside a transaction
func (r *GormFormRepository) UpdateStatus(id, status string) (*models.Form, error) {
	var form models.Form
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&form).Error; err != nil {
			return translateNotFound(err)
		}
		if err := tx.Model(&form).Update("status", status).Error; err != nil {
			return err
		}
		form.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// GetAll returns activities, most recent first
func (r *GormActivityRepository) GetAll() ([]models.Activity, error) {
	activities := []models.Activity{}
	if err := r.db.Order("created_at DESC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *GormActivityRepository) GetByID(id string) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.Where("id = ?", id).First(&activity).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &activity, nil
}

func (r *GormActivityRepository) GetByAgent(agentID string) ([]models.Activity, error) {
	activities := []models.Activity{}
	if err := r.db.Where("agent_id = ?", agentID).
		Order("created_at ASC, id ASC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *GormActivityRepository) Create(activity *models.Activity) error {
	activity.ID = uuid.NewString()
	activity.CreatedAt = time.Now()
	return r.db.Create(activity).Error
}

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

func (r *GormTaskRepository) GetAll() ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.Order("created_at ASC, id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) GetByID(id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ?", id).First(&task).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &task, nil
}

func (r *GormTaskRepository) GetByAgent(agentID string) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.Where("agent_id = ?", agentID).
		Order("created_at ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) Create(task *models.Task) error {
	task.ID = uuid.NewString()
	task.CreatedAt = time.Now()
	return r.db.Create(task).Error
}

// UpdateCompleted updates the completed column only, inside a transaction
func (r *GormTaskRepository) UpdateCompleted(id string, completed int) (*models.Task, error) {
	var task models.Task
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&task).Error; err != nil {
			return translateNotFound(err)
		}
		if err := tx.Model(&task).Update("completed", completed).Error; err != nil {
			return err
		}
		task.Completed = completed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}
