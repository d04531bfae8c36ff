package dto

// PlatformDTO is an external real-estate platform the widget links out to
type PlatformDTO struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// WidgetContextDTO wraps the CRM context decoded from the iframe URL.
// Context is null when the widget was not opened with one.
type WidgetContextDTO struct {
	Context map[string]interface{} `json:"context"`
}
