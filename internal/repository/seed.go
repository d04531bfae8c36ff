package repository

import (
	"fmt"
	"time"

	"github.com/yukikurage/realty-dashboard-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// SampleData is a fixed set of records loaded through Store.Seed.
type SampleData struct {
	Users        []models.User
	Transactions []models.Transaction
	Forms        []models.Form
	Activities   []models.Activity
	Tasks        []models.Task
}

const samplePassword = "password123"

// DefaultSampleData returns the demo team, forms, activities and tasks.
// Relative timestamps are computed from now.
func DefaultSampleData(now time.Time) (SampleData, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(samplePassword), bcrypt.MinCost)
	if err != nil {
		return SampleData{}, fmt.Errorf("failed to hash sample password: %w", err)
	}
	password := string(hash)

	users := []models.User{
		{ID: "1", Username: "john.agent", Password: password, Name: "John Agent", Role: "Senior Real Estate Agent", CreatedAt: now},
		{ID: "2", Username: "sarah.miller", Password: password, Name: "Sarah Miller", Role: "Agent", CreatedAt: now},
		{ID: "3", Username: "robert.johnson", Password: password, Name: "Robert Johnson", Role: "Junior Agent", CreatedAt: now},
	}

	forms := []models.Form{
		{
			ID:              "form1",
			Type:            "Purchase Agreement",
			PropertyAddress: "123 Oak Street",
			PropertyCity:    "Austin, TX",
			AgentID:         "1",
			Status:          models.FormStatusPendingReview,
			DueDate:         time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			CreatedAt:       now,
		},
		{
			ID:              "form2",
			Type:            "Inspection Report",
			PropertyAddress: "456 Pine Avenue",
			PropertyCity:    "Dallas, TX",
			AgentID:         "2",
			Status:          models.FormStatusCompleted,
			DueDate:         time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC),
			CreatedAt:       now,
		},
		{
			ID:              "form3",
			Type:            "Listing Agreement",
			PropertyAddress: "789 Maple Drive",
			PropertyCity:    "Houston, TX",
			AgentID:         "3",
			Status:          models.FormStatusOverdue,
			DueDate:         time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
			CreatedAt:       now,
		},
	}

	activities := []models.Activity{
		{
			ID:          "activity1",
			Description: "New transaction created for 123 Main St",
			Type:        "transaction",
			RelatedID:   stringPtr("trans1"),
			AgentID:     stringPtr("1"),
			CreatedAt:   now.Add(-2 * time.Hour),
		},
		{
			ID:          "activity2",
			Description: "Purchase agreement submitted for Oak Valley Home",
			Type:        "form",
			RelatedID:   stringPtr("form1"),
			AgentID:     stringPtr("2"),
			CreatedAt:   now.Add(-4 * time.Hour),
		},
		{
			ID:          "activity3",
			Description: "Inspection completed for Johnson Property",
			Type:        "inspection",
			RelatedID:   stringPtr("form2"),
			AgentID:     stringPtr("3"),
			CreatedAt:   now.Add(-24 * time.Hour),
		},
	}

	tasks := []models.Task{
		{
			ID:        "task1",
			Title:     "Review purchase agreement for Oak Valley property",
			Priority:  "High",
			DueDate:   now.Add(6 * time.Hour),
			AgentID:   "1",
			Completed: models.TaskOpen,
			CreatedAt: now,
		},
		{
			ID:        "task2",
			Title:     "Schedule showing for Pine Avenue listing",
			Priority:  "Medium",
			DueDate:   now.Add(18 * time.Hour),
			AgentID:   "2",
			Completed: models.TaskOpen,
			CreatedAt: now,
		},
		{
			ID:        "task3",
			Title:     "Follow up with Johnson family about inspection results",
			Priority:  "Low",
			DueDate:   time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC),
			AgentID:   "3",
			Completed: models.TaskOpen,
			CreatedAt: now,
		},
	}

	return SampleData{
		Users:      users,
		Forms:      forms,
		Activities: activities,
		Tasks:      tasks,
	}, nil
}

func stringPtr(s string) *string {
	return &s
}
