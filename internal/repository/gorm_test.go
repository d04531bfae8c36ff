package repository

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/realty-dashboard-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormStoreTestSuite runs the store contract against an in-memory SQLite database
type GormStoreTestSuite struct {
	suite.Suite
	db    *gorm.DB
	store *Store
}

// SetupTest runs before each test
func (suite *GormStoreTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	// Every pooled connection to ":memory:" would open its own empty database.
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(suite.db.AutoMigrate(models.All()...))

	suite.store = NewGormStore(suite.db)

	data, err := DefaultSampleData(time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.store.Seed(data))
}

// TearDownTest runs after each test
func (suite *GormStoreTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *GormStoreTestSuite) TestSeed_IsIdempotent() {
	data, err := DefaultSampleData(time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.store.Seed(data))

	users, err := suite.store.Users.GetAll()
	suite.Require().NoError(err)
	suite.Len(users, 3)
}

func (suite *GormStoreTestSuite) TestCreateAndGetForm() {
	start := time.Now()
	form := &models.Form{
		Type:            "Counter Offer",
		PropertyAddress: "77 Birch Lane",
		PropertyCity:    "Dallas, TX",
		AgentID:         "2",
		Status:          models.FormStatusPendingReview,
		DueDate:         time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.Require().NoError(suite.store.Forms.Create(form))
	suite.NotEmpty(form.ID)
	suite.False(form.CreatedAt.Before(start.Add(-time.Second)))

	found, err := suite.store.Forms.GetByID(form.ID)
	suite.Require().NoError(err)
	suite.Equal(form.PropertyAddress, found.PropertyAddress)
	suite.Equal(form.AgentID, found.AgentID)
	suite.True(form.DueDate.Equal(found.DueDate))

	byAgent, err := suite.store.Forms.GetByAgent("2")
	suite.Require().NoError(err)
	suite.Len(byAgent, 2)
}

func (suite *GormStoreTestSuite) TestGetByID_Missing() {
	_, err := suite.store.Tasks.GetByID("ghost")
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *GormStoreTestSuite) TestUpdateStatus() {
	updated, err := suite.store.Forms.UpdateStatus("form3", models.FormStatusCompleted)
	suite.Require().NoError(err)
	suite.Equal(models.FormStatusCompleted, updated.Status)
	suite.Equal("789 Maple Drive", updated.PropertyAddress)

	_, err = suite.store.Forms.UpdateStatus("ghost", models.FormStatusCompleted)
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *GormStoreTestSuite) TestUpdateCompleted() {
	updated, err := suite.store.Tasks.UpdateCompleted("task2", models.TaskCompleted)
	suite.Require().NoError(err)
	suite.Equal(models.TaskCompleted, updated.Completed)

	reread, err := suite.store.Tasks.GetByID("task2")
	suite.Require().NoError(err)
	suite.Equal(models.TaskCompleted, reread.Completed)

	reopened, err := suite.store.Tasks.UpdateCompleted("task2", models.TaskOpen)
	suite.Require().NoError(err)
	suite.Equal(models.TaskOpen, reopened.Completed)
}

func (suite *GormStoreTestSuite) TestActivities_NewestFirst() {
	activities, err := suite.store.Activities.GetAll()
	suite.Require().NoError(err)
	suite.Require().Len(activities, 3)
	suite.Equal("activity1", activities[0].ID)
	suite.Equal("activity3", activities[2].ID)

	created := &models.Activity{Description: "Offer accepted", Type: "transaction"}
	suite.Require().NoError(suite.store.Activities.Create(created))

	activities, err = suite.store.Activities.GetAll()
	suite.Require().NoError(err)
	suite.Equal(created.ID, activities[0].ID)
	suite.Nil(activities[0].AgentID)
}

func (suite *GormStoreTestSuite) TestCreateUser_DuplicateUsername() {
	err := suite.store.Users.Create(&models.User{Username: "sarah.miller", Password: "x", Name: "Sarah Two", Role: "Agent"})
	suite.ErrorIs(err, ErrDuplicateUsername)
}

func TestGormStoreTestSuite(t *testing.T) {
	suite.Run(t, new(GormStoreTestSuite))
}

func TestGormStore_QueryErrorIsNotNotFound(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store := NewGormStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `forms`")).
		WillReturnError(errors.New("connection reset"))

	forms, err := store.Forms.GetAll()
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
	require.Nil(t, forms)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `tasks`")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "priority", "due_date", "agent_id", "completed", "created_at"}))

	task, err := store.Tasks.GetByID("ghost")
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, task)

	require.NoError(t, mock.ExpectationsWereMet())
}
