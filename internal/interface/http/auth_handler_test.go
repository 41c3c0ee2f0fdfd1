package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripora/tripora-api/internal/application"
	"github.com/tripora/tripora-api/internal/interface/middleware"
	"github.com/tripora/tripora-api/pkg/helpers"
	"github.com/tripora/tripora-api/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

func newAuthRouter(users *memUserRepo) *gin.Engine {
	tokens := helpers.NewTokenManager("test-secret", time.Hour)
	svc := application.NewAuthService(users, tokens, nil, testLogger(), false, time.Second)
	h := NewAuthHandler(svc, testLogger())

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.GET("/user", middleware.Auth(tokens), h.Me)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestAuthFlow(t *testing.T) {
	r := newAuthRouter(newMemUserRepo())

	// A short password is valid; registration requires presence only.
	const registerBody = `{"name":"A","email":"a@x.com","password":"p1","mobile":"555"}`

	// Register a new user.
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	e := decodeEnvelope(t, w)
	assert.True(t, e.Success)
	assert.Equal(t, "User registered successfully", e.Message)

	// Registering the same email again is rejected.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	e = decodeEnvelope(t, w)
	assert.False(t, e.Success)
	assert.Equal(t, "User already exists", e.Message)

	// Login returns a bearer token.
	w = doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"p1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Data struct {
			Token string `json:"token"`
			Name  string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Data.Token)
	assert.Equal(t, "A", login.Data.Name)

	// The token unlocks the profile endpoint.
	w = doJSON(t, r, http.MethodGet, "/api/user", "",
		map[string]string{"Authorization": "Bearer " + login.Data.Token})
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Data struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "a@x.com", me.Data.Email)

	// Without the header the profile endpoint refuses.
	w = doJSON(t, r, http.MethodGet, "/api/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegister_EmailCaseSensitive(t *testing.T) {
	r := newAuthRouter(newMemUserRepo())

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"name":"A","email":"a@x.com","password":"p1","mobile":"555"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// A differently-cased email is a distinct account, not a duplicate.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"name":"B","email":"A@x.com","password":"p2","mobile":"556"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "User registered successfully", decodeEnvelope(t, w).Message)

	// Login is exact-match on the stored email.
	w = doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"A@x.com","password":"p2"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"A@x.com","password":"p1"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	users := newMemUserRepo()
	r := newAuthRouter(users)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"name":"Asha","email":"asha@example.com","password":"secret123","mobile":"+15550100"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Wrong password and unknown email produce the identical response.
	wrongPass := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"asha@example.com","password":"nope-nope"}`, nil)
	unknown := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@example.com","password":"secret123"}`, nil)

	assert.Equal(t, http.StatusBadRequest, wrongPass.Code)
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, "Invalid credentials", decodeEnvelope(t, wrongPass).Message)
	assert.Equal(t, "Invalid credentials", decodeEnvelope(t, unknown).Message)
}

func TestRegister_Validation(t *testing.T) {
	r := newAuthRouter(newMemUserRepo())

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{"email":"a@b.com"}`},
		{"bad email", `{"name":"A","email":"not-an-email","password":"secret123","mobile":"1"}`},
		{"empty password", `{"name":"A","email":"a@b.com","password":"","mobile":"1"}`},
		{"invalid json", `{"name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/auth/register", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, decodeEnvelope(t, w).Success)
		})
	}
}

func TestRegister_PasswordHashNotReturned(t *testing.T) {
	users := newMemUserRepo()
	r := newAuthRouter(users)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"name":"Asha","email":"asha@example.com","password":"secret123","mobile":"+15550100"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "secret123")
	assert.NotContains(t, w.Body.String(), "$2")

	u, err := users.GetByEmail(t.Context(), "asha@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "secret123"))
}
