package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session(time.Hour))
	r.GET("/", func(c *gin.Context) {
		*captured = SessionIDFromContext(c)
		c.Status(http.StatusOK)
	})
	return r
}

func TestSessionMintsCookie(t *testing.T) {
	var seen string
	r := newSessionRouter(&seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	require.NoError(t, err, "session id should be a uuid")

	var cookie *http.Cookie
	for _, ck := range resp.Result().Cookies() {
		if ck.Name == "sid" {
			cookie = ck
		}
	}
	require.NotNil(t, cookie, "sid cookie should be set")
	assert.Equal(t, seen, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestSessionReusesValidCookie(t *testing.T) {
	var seen string
	r := newSessionRouter(&seen)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: id})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, id, seen)
	assert.Empty(t, resp.Result().Cookies(), "no new cookie for a valid session")
}

func TestSessionReplacesMalformedCookie(t *testing.T) {
	var seen string
	r := newSessionRouter(&seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "not-a-uuid"})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.NotEqual(t, "not-a-uuid", seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}
