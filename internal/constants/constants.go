package constants

// Session and context keys
const (
	SessionCookieName       = "dashboard_session"
	SessionKeyWidgetContext = "widget_context"
	ContextKeyWidgetContext = "widget_context"
	QueryParamWidgetContext = "context"
)

// User constraints
const (
	MinPasswordLength = 8
)

// Task suggestion limits
const (
	MaxSuggestedTasks = 20
)

// Dashboard placeholders. These are demo figures, not computed from transactions.
const (
	DemoActiveTransactions = 24
	DemoMonthlyRevenue     = "$485K"
)
