package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/merakistudio/interior-api/internal/config"
	"github.com/merakistudio/interior-api/internal/middleware"
)

func authRouter(t *testing.T, password string) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		AdminEmail:        "studio@example.com",
		AdminPasswordHash: string(hash),
	}

	r := gin.New()
	r.POST("/api/auth/login", NewAuthHandler(cfg).Login)
	r.GET("/api/protected", middleware.AdminAuth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, cfg
}

func TestLogin_IssuesUsableToken(t *testing.T) {
	r, _ := authRouter(t, "letmein")

	w := postJSON(t, r, "/api/auth/login", map[string]any{
		"email":    "Studio@Example.com",
		"password": "letmein",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token     string `json:"token"`
		ExpiresIn int64  `json:"expiresIn"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(86400), resp.ExpiresIn)

	// The issued token passes the admin guard.
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)

	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	r, _ := authRouter(t, "letmein")

	tests := []struct {
		name  string
		body  map[string]any
		wantC int
	}{
		{"wrong password", map[string]any{"email": "studio@example.com", "password": "nope"}, http.StatusUnauthorized},
		{"wrong email", map[string]any{"email": "other@example.com", "password": "letmein"}, http.StatusUnauthorized},
		{"missing password", map[string]any{"email": "studio@example.com"}, http.StatusBadRequest},
		{"not an email", map[string]any{"email": "studio", "password": "letmein"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/auth/login", tt.body)
			assert.Equal(t, tt.wantC, w.Code)
		})
	}
}

func TestAdminAuth_RejectsBadTokens(t *testing.T) {
	r, _ := authRouter(t, "letmein")

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestLogin_UnconfiguredAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/api/auth/login", NewAuthHandler(&config.Config{JWTSecret: "s"}).Login)

	w := postJSON(t, r, "/api/auth/login", map[string]any{
		"email":    "studio@example.com",
		"password": "letmein",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
