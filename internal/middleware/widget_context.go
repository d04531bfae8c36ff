package middleware

import (
	"encoding/json"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/realty-dashboard-api/internal/constants"
)

// ContextDecoder turns the raw ?context= value into a JSON object
type ContextDecoder interface {
	DecodeContext(raw string) (map[string]interface{}, error)
}

// WidgetContext captures the CRM context the widget iframe was opened with.
// A fresh ?context= value replaces the one kept in the session; an undecodable
// value is logged and ignored.
func WidgetContext(decoder ContextDecoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		if raw := c.Query(constants.QueryParamWidgetContext); raw != "" {
			context, err := decoder.DecodeContext(raw)
			if err != nil {
				log.Printf("Ignoring widget context: %v", err)
			} else {
				// Stored as JSON text so the session codec never sees nested interface values.
				encoded, _ := json.Marshal(context)
				session.Set(constants.SessionKeyWidgetContext, string(encoded))
				if err := session.Save(); err != nil {
					log.Printf("Failed to save widget context to session: %v", err)
				}
				c.Set(constants.ContextKeyWidgetContext, context)
				c.Next()
				return
			}
		}

		if stored, ok := session.Get(constants.SessionKeyWidgetContext).(string); ok {
			var context map[string]interface{}
			if err := json.Unmarshal([]byte(stored), &context); err == nil {
				c.Set(constants.ContextKeyWidgetContext, context)
			}
		}

		c.Next()
	}
}

// GetWidgetContext retrieves the CRM context of the current request
func GetWidgetContext(c *gin.Context) (map[string]interface{}, bool) {
	value, exists := c.Get(constants.ContextKeyWidgetContext)
	if !exists {
		return nil, false
	}

	context, ok := value.(map[string]interface{})
	return context, ok
}
