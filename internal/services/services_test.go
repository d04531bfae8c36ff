package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/realty-dashboard-api/internal/models"
	"github.com/yukikurage/realty-dashboard-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type fakeSuggester struct {
	tasks []SuggestedTask
	err   error
	calls int
}

func (f *fakeSuggester) SuggestTasks(ctx context.Context, text string) ([]SuggestedTask, error) {
	f.calls++
	return f.tasks, f.err
}

// ServicesTestSuite runs every service against a freshly seeded memory store
type ServicesTestSuite struct {
	suite.Suite
	store     *repository.Store
	suggester *fakeSuggester

	dashboard    *DashboardService
	team         *TeamService
	forms        *FormService
	tasks        *TaskService
	activities   *ActivityService
	transactions *TransactionService
	users        *UserService
}

// SetupTest runs before each test
func (suite *ServicesTestSuite) SetupTest() {
	store, err := repository.NewMemoryStore()
	suite.Require().NoError(err)

	data, err := repository.DefaultSampleData(time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(store.Seed(data))

	suite.store = store
	suite.suggester = &fakeSuggester{}

	suite.dashboard = NewDashboardService(store.Forms, store.Users)
	suite.team = NewTeamService(store.Users)
	suite.forms = NewFormService(store.Forms, store.Users)
	suite.tasks = NewTaskService(store.Tasks, store.Users, suite.suggester)
	suite.activities = NewActivityService(store.Activities, store.Users)
	suite.transactions = NewTransactionService(store.Transactions, store.Users)
	suite.users = NewUserService(store.Users)
}

func (suite *ServicesTestSuite) TestStats_SampleData() {
	stats, err := suite.dashboard.Stats()
	suite.Require().NoError(err)

	suite.EqualValues(24, stats.ActiveTransactions)
	suite.Equal(2, stats.PendingForms)
	suite.Equal(3, stats.TeamMembers)
	suite.EqualValues("$485K", stats.MonthlyRevenue)
}

func (suite *ServicesTestSuite) TestStats_PendingFormsFollowStatusChanges() {
	_, err := suite.forms.UpdateStatus("form1", models.FormStatusCompleted)
	suite.Require().NoError(err)

	_, err = suite.forms.Create(CreateFormInput{
		Type:            "Addendum",
		PropertyAddress: "5 Cedar Way",
		PropertyCity:    "Austin, TX",
		AgentID:         "2",
		Status:          "Draft",
		DueDate:         time.Now(),
	})
	suite.Require().NoError(err)

	stats, err := suite.dashboard.Stats()
	suite.Require().NoError(err)
	suite.Equal(1, stats.PendingForms)
}

func (suite *ServicesTestSuite) TestStats_EmptyStore() {
	empty, err := repository.NewMemoryStore()
	suite.Require().NoError(err)

	stats, err := NewDashboardService(empty.Forms, empty.Users).Stats()
	suite.Require().NoError(err)
	suite.Equal(0, stats.PendingForms)
	suite.Equal(0, stats.TeamMembers)
	suite.EqualValues(24, stats.ActiveTransactions)
}

func (suite *ServicesTestSuite) TestTeamPerformance() {
	for i := 0; i < 2; i++ {
		_, err := suite.users.Create(CreateUserInput{
			Username: "agent" + string(rune('a'+i)),
			Password: "longenough",
			Name:     "maria de la cruz",
			Role:     "Agent",
		})
		suite.Require().NoError(err)
	}

	rows, err := suite.team.Performance()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 5)

	suite.Equal("1", rows[0].ID)
	suite.Equal("JA", rows[0].Initials)
	suite.EqualValues(8, rows[0].Transactions)
	suite.EqualValues("$2.4M", rows[0].Revenue)
	suite.EqualValues(6, rows[1].Transactions)
	suite.EqualValues("$1.8M", rows[1].Revenue)
	suite.EqualValues(4, rows[2].Transactions)
	suite.EqualValues("$1.2M", rows[2].Revenue)

	for _, row := range rows[3:] {
		suite.EqualValues(2, row.Transactions)
		suite.EqualValues("$800K", row.Revenue)
		suite.Equal("mdlc", row.Initials)
	}
}

func (suite *ServicesTestSuite) TestFormList_EnrichedWithAgent() {
	forms, err := suite.forms.List()
	suite.Require().NoError(err)
	suite.Require().Len(forms, 3)

	suite.Require().NotNil(forms[0].Agent)
	suite.Equal("1", forms[0].Agent.ID)
	suite.Equal("John Agent", forms[0].Agent.Name)
	suite.Equal("JA", forms[0].Agent.Initials)
	suite.Equal("RJ", forms[2].Agent.Initials)
}

func (suite *ServicesTestSuite) TestFormList_DanglingAgentIsNil() {
	dangling := &models.Form{Type: "Disclosure", PropertyAddress: "1 Nowhere", PropertyCity: "Waco, TX", AgentID: "99", Status: "Draft"}
	suite.Require().NoError(suite.store.Forms.Create(dangling))

	forms, err := suite.forms.ListByAgent("99")
	suite.Require().NoError(err)
	suite.Require().Len(forms, 1)
	suite.Nil(forms[0].Agent)
}

func (suite *ServicesTestSuite) TestFormCreate_UnknownAgent() {
	_, err := suite.forms.Create(CreateFormInput{
		Type:            "Purchase Agreement",
		PropertyAddress: "12 Elm Court",
		PropertyCity:    "Austin, TX",
		AgentID:         "ghost",
		Status:          models.FormStatusPendingReview,
		DueDate:         time.Now(),
	})

	var validationErr *ValidationError
	suite.Require().True(errors.As(err, &validationErr))
	suite.Equal("agentId", validationErr.Fields[0].Field)

	forms, err := suite.store.Forms.GetAll()
	suite.Require().NoError(err)
	suite.Len(forms, 3)
}

func (suite *ServicesTestSuite) TestFormUpdateStatus() {
	form, err := suite.forms.UpdateStatus("form1", models.FormStatusCompleted)
	suite.Require().NoError(err)
	suite.Equal(models.FormStatusCompleted, form.Status)

	_, err = suite.forms.UpdateStatus("form1", "")
	suite.ErrorIs(err, ErrStatusRequired)

	_, err = suite.forms.UpdateStatus("ghost", models.FormStatusCompleted)
	suite.ErrorIs(err, ErrFormNotFound)
}

func (suite *ServicesTestSuite) TestTaskCreateAndComplete() {
	task, err := suite.tasks.Create(CreateTaskInput{
		Title:    "Order title insurance",
		Priority: "High",
		DueDate:  time.Now().Add(48 * time.Hour),
		AgentID:  "2",
	})
	suite.Require().NoError(err)
	suite.Equal(models.TaskOpen, task.Completed)

	updated, err := suite.tasks.UpdateCompleted(task.ID, models.TaskCompleted)
	suite.Require().NoError(err)
	suite.Equal(models.TaskCompleted, updated.Completed)

	tasks, err := suite.tasks.ListByAgent("2")
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 2)
	suite.Equal("SM", tasks[1].Agent.Initials)
	suite.Equal(models.TaskCompleted, tasks[1].Completed)
}

func (suite *ServicesTestSuite) TestTaskCreate_InvalidCompleted() {
	_, err := suite.tasks.Create(CreateTaskInput{Title: "x", Priority: "Low", AgentID: "1", Completed: 2})

	var validationErr *ValidationError
	suite.Require().True(errors.As(err, &validationErr))
	suite.Equal("completed", validationErr.Fields[0].Field)
}

func (suite *ServicesTestSuite) TestTaskUpdateCompleted_Errors() {
	_, err := suite.tasks.UpdateCompleted("task1", 5)
	suite.ErrorIs(err, ErrInvalidCompleted)

	_, err = suite.tasks.UpdateCompleted("ghost", models.TaskCompleted)
	suite.ErrorIs(err, ErrTaskNotFound)
}

func (suite *ServicesTestSuite) TestSuggestTasks_FiltersAndNormalizes() {
	past := time.Now().Add(-72 * time.Hour)
	future := time.Now().Add(72 * time.Hour)
	suite.suggester.tasks = []SuggestedTask{
		{Title: "Send comps to buyer", Priority: "high", DueDate: &future},
		{Title: "  ", Priority: "Low"},
		{Title: "Call lender", Priority: "urgent", DueDate: &past},
	}

	tasks, err := suite.tasks.SuggestTasks(context.Background(), SuggestTasksInput{Text: "notes", AgentID: "1"})
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 2)

	suite.Equal("High", tasks[0].Priority)
	suite.Equal("1", tasks[0].AgentID)
	suite.NotNil(tasks[0].DueDate)
	suite.Equal("Medium", tasks[1].Priority)
	suite.Nil(tasks[1].DueDate)

	stored, err := suite.store.Tasks.GetAll()
	suite.Require().NoError(err)
	suite.Len(stored, 3)
}

func (suite *ServicesTestSuite) TestSuggestTasks_Errors() {
	_, err := suite.tasks.SuggestTasks(context.Background(), SuggestTasksInput{Text: "   "})
	suite.ErrorIs(err, ErrTextRequired)
	suite.Equal(0, suite.suggester.calls)

	_, err = suite.tasks.SuggestTasks(context.Background(), SuggestTasksInput{Text: "notes"})
	suite.ErrorIs(err, ErrAINoTasksGenerated)

	suite.suggester.tasks = []SuggestedTask{{Title: ""}}
	_, err = suite.tasks.SuggestTasks(context.Background(), SuggestTasksInput{Text: "notes"})
	suite.ErrorIs(err, ErrAINoValidTasks)

	suite.suggester.err = errors.New("rate limited")
	_, err = suite.tasks.SuggestTasks(context.Background(), SuggestTasksInput{Text: "notes"})
	suite.Error(err)

	unconfigured := NewTaskService(suite.store.Tasks, suite.store.Users, nil)
	_, err = unconfigured.SuggestTasks(context.Background(), SuggestTasksInput{Text: "notes"})
	suite.ErrorIs(err, ErrAIServiceNotConfigured)
}

func (suite *ServicesTestSuite) TestActivityCreate() {
	empty := ""
	activity, err := suite.activities.Create(CreateActivityInput{
		Description: "Buyer walkthrough booked",
		Type:        "event",
		RelatedID:   &empty,
	})
	suite.Require().NoError(err)
	suite.Nil(activity.RelatedID)
	suite.Nil(activity.AgentID)

	activities, err := suite.activities.List()
	suite.Require().NoError(err)
	suite.Require().Len(activities, 4)
	suite.Equal(activity.ID, activities[0].ID)

	ghost := "ghost"
	_, err = suite.activities.Create(CreateActivityInput{Description: "x", Type: "note", AgentID: &ghost})
	var validationErr *ValidationError
	suite.True(errors.As(err, &validationErr))
}

func (suite *ServicesTestSuite) TestTransactions() {
	created, err := suite.transactions.Create(CreateTransactionInput{
		PropertyAddress: "22 Lakeview Dr",
		PropertyCity:    "Austin, TX",
		AgentID:         "3",
		Status:          "Active",
		Type:            "Sale",
	})
	suite.Require().NoError(err)
	suite.NotEmpty(created.ID)

	all, err := suite.transactions.List()
	suite.Require().NoError(err)
	suite.Len(all, 1)

	mine, err := suite.transactions.ListByAgent("3")
	suite.Require().NoError(err)
	suite.Len(mine, 1)

	none, err := suite.transactions.ListByAgent("1")
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *ServicesTestSuite) TestUserCreate_HashesPassword() {
	user, err := suite.users.Create(CreateUserInput{
		Username: "lisa.wong",
		Password: "supersecret",
		Name:     "Lisa Wong",
		Role:     "Agent",
	})
	suite.Require().NoError(err)
	suite.NotEqual("supersecret", user.Password)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("supersecret")))

	found, err := suite.users.Get(user.ID)
	suite.Require().NoError(err)
	suite.Equal("lisa.wong", found.Username)
}

func (suite *ServicesTestSuite) TestUserCreate_Errors() {
	_, err := suite.users.Create(CreateUserInput{Username: "john.agent", Password: "supersecret", Name: "J", Role: "Agent"})
	suite.ErrorIs(err, ErrUsernameTaken)

	_, err = suite.users.Create(CreateUserInput{Username: "new.user", Password: "short", Name: "N", Role: "Agent"})
	suite.ErrorIs(err, ErrPasswordTooShort)

	_, err = suite.users.Get("ghost")
	suite.ErrorIs(err, ErrUserNotFound)
}

func TestServicesTestSuite(t *testing.T) {
	suite.Run(t, new(ServicesTestSuite))
}
