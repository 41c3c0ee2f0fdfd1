package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxWithRequest(headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/login", nil)
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestRealIP_Priority(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"cloudflare header wins", map[string]string{
			"CF-Connecting-IP": "203.0.113.7",
			"X-Forwarded-For":  "198.51.100.1",
		}, "203.0.113.7"},
		{"xff left-most", map[string]string{
			"X-Forwarded-For": "198.51.100.1, 10.0.0.1",
		}, "198.51.100.1"},
		{"invalid cf falls through to xff", map[string]string{
			"CF-Connecting-IP": "not-an-ip",
			"X-Forwarded-For":  "198.51.100.1",
		}, "198.51.100.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ctxWithRequest(tt.headers)
			RealIP()(c)
			assert.Equal(t, tt.want, c.GetString("real_ip"))
		})
	}
}

func TestKeyFuncs(t *testing.T) {
	c := ctxWithRequest(map[string]string{"CF-Connecting-IP": "203.0.113.7"})
	RealIP()(c)

	assert.Equal(t, "rl:ip:203.0.113.7", KeyByIP()(c))
	assert.Equal(t, "rl:path:/api/auth/login:ip:203.0.113.7", KeyByIPAndPath()(c))

	// Anonymous requests key by IP, authenticated ones by user id.
	assert.Equal(t, "rl:user:anon:ip:203.0.113.7", KeyByUserID()(c))
	c.Set(CtxUserIDKey, "user-42")
	assert.Equal(t, "rl:user:user-42", KeyByUserID()(c))
}

func TestAllowPrivateIP(t *testing.T) {
	allow := AllowPrivateIP()

	private := ctxWithRequest(map[string]string{"CF-Connecting-IP": "192.168.1.5"})
	RealIP()(private)
	assert.True(t, allow(private))

	loopback := ctxWithRequest(map[string]string{"CF-Connecting-IP": "127.0.0.1"})
	RealIP()(loopback)
	assert.True(t, allow(loopback))

	public := ctxWithRequest(map[string]string{"CF-Connecting-IP": "203.0.113.7"})
	RealIP()(public)
	assert.False(t, allow(public))
}

func TestRateLimit_NoRedisIsNoop(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(nil, 1, 0, KeyByIP(), nil), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequestID_Set(t *testing.T) {
	c := ctxWithRequest(nil)
	RequestIDMiddleware()(c)
	assert.NotEmpty(t, c.GetString("request_id"))
}
