package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/realty-dashboard-api/internal/constants"
	"github.com/yukikurage/realty-dashboard-api/internal/services"
)

func newWidgetRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("test-secret"))))
	r.Use(WidgetContext(services.NewWidgetService(nil)))
	r.GET("/context", func(c *gin.Context) {
		context, ok := GetWidgetContext(c)
		c.JSON(http.StatusOK, gin.H{"found": ok, "context": context})
	})
	return r
}

type contextResponse struct {
	Found   bool                   `json:"found"`
	Context map[string]interface{} `json:"context"`
}

func TestWidgetContext_DecodesAndRemembers(t *testing.T) {
	r := newWidgetRouter()
	raw := base64.RawURLEncoding.EncodeToString([]byte(`{"contactId":"c-7","stage":"lead"}`))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/context?context="+raw, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var first contextResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.True(t, first.Found)
	assert.Equal(t, "c-7", first.Context["contactId"])

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/context", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)

	var second contextResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.True(t, second.Found)
	assert.Equal(t, "lead", second.Context["stage"])
}

func TestWidgetContext_InvalidIsIgnored(t *testing.T) {
	r := newWidgetRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/context?context=not-base64!!", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp contextResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Found)
	assert.Nil(t, resp.Context)
}

func TestFrameAncestors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(FrameAncestors([]string{"https://crm.example.com", "https://*.example.org"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "frame-ancestors 'self' https://crm.example.com https://*.example.org", w.Header().Get("Content-Security-Policy"))

	r = gin.New()
	r.Use(FrameAncestors(nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "frame-ancestors 'self'", w.Header().Get("Content-Security-Policy"))
}
