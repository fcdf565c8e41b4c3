package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/javajoker/variant-catalog/internal/config"
	"github.com/javajoker/variant-catalog/internal/utils"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"lang":    c.GetString("lang"),
			"subject": c.GetString("subject"),
		})
	})
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	utils.SetJWTSecret("middleware-secret")
	utils.SetJWTIssuer("variant-catalog")
	r := newEngine(AuthRequired(), AdminRequired())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	viewer, err := utils.GenerateJWT("viewer", "viewer", time.Hour)
	assert.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+viewer)
	assert.Equal(t, http.StatusForbidden, serve(r, req).Code)

	admin, err := utils.GenerateJWT("ops", utils.RoleAdmin, time.Hour)
	assert.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	w := serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":"ops"`)
}

func TestOptionalAuthNeverRejects(t *testing.T) {
	utils.SetJWTSecret("middleware-secret")
	utils.SetJWTIssuer("variant-catalog")
	r := newEngine(OptionalAuth())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":""`)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":""`)

	admin, err := utils.GenerateJWT("ops", utils.RoleAdmin, time.Hour)
	assert.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":"ops"`)
}

func TestResolveLocale(t *testing.T) {
	assert.Equal(t, "en", ResolveLocale("", ""))
	assert.Equal(t, "zh_TW", ResolveLocale("", "zh-TW,zh;q=0.9,en;q=0.8"))
	assert.Equal(t, "en", ResolveLocale("", "en-GB,en;q=0.9"))
	assert.Equal(t, "en", ResolveLocale("", "de-DE"))
	assert.Equal(t, "zh_TW", ResolveLocale("zh-Hant", "en"))
	assert.Equal(t, "en", ResolveLocale("", "%%%"))
}

func TestI18nMiddlewareSetsLang(t *testing.T) {
	r := newEngine(I18nMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Accept-Language", "zh-TW")
	w := serve(r, req)
	assert.Contains(t, w.Body.String(), `"lang":"zh_TW"`)
}

func TestRequestIDIsGeneratedOrEchoed(t *testing.T) {
	r := newEngine(RequestID(), RequestLogger())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRequestLoggerRecordsSubject(t *testing.T) {
	utils.SetJWTSecret("middleware-secret")
	utils.SetJWTIssuer("variant-catalog")
	hook := logtest.NewGlobal()
	defer hook.Reset()

	r := newEngine(RequestID(), RequestLogger(), AuthRequired())
	admin, err := utils.GenerateJWT("ops", utils.RoleAdmin, time.Hour)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	assert.Equal(t, http.StatusOK, serve(r, req).Code)

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "ops", entry.Data["subject"])
		assert.Equal(t, http.StatusOK, entry.Data["status"])
	}

	hook.Reset()
	assert.Equal(t, http.StatusUnauthorized, serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil)).Code)
	entry = hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.NotContains(t, entry.Data, "subject")
	}
}

func TestRateLimiterRejectsBurstOverflow(t *testing.T) {
	r := newEngine(GeneralRateLimit(config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 2}))

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil)).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil)).Code)
}

func TestDisabledRateLimitPassesThrough(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: false, RequestsPerSecond: 0.001, Burst: 1, WritesPerMinute: 1}
	r := newEngine(GeneralRateLimit(cfg), WriteRateLimit(cfg))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil)).Code)
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := newEngine(CORS(config.CORSConfig{AllowedOrigins: []string{"https://shop.example.com"}}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	w := serve(r, req)
	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = serve(r, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
