package dto

// PlaceholderCount is a demo figure that is not derived from stored data.
// It serializes as a plain number.
type PlaceholderCount int

// PlaceholderAmount is a demo money figure that is not derived from stored data.
// It serializes as a plain string.
type PlaceholderAmount string

// DashboardStats is the payload of the stats cards
type DashboardStats struct {
	ActiveTransactions PlaceholderCount  `json:"activeTransactions"`
	PendingForms       int               `json:"pendingForms"`
	TeamMembers        int               `json:"teamMembers"`
	MonthlyRevenue     PlaceholderAmount `json:"monthlyRevenue"`
}

// TeamMemberPerformanceDTO is one row of the team performance card.
// Transactions and Revenue are placeholders.
type TeamMemberPerformanceDTO struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Role         string            `json:"role"`
	Initials     string            `json:"initials"`
	Transactions PlaceholderCount  `json:"transactions"`
	Revenue      PlaceholderAmount `json:"revenue"`
}
