package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostech-br/os-manager/internal/logger"
	"github.com/ostech-br/os-manager/internal/token"
)

func newAuthTestRouter(t *testing.T, tokens *token.Service) (*gin.Engine, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init(logger.Options{Level: "error", Output: io.Discard})

	reached := false

	r := gin.New()
	r.Use(ErrorHandler(false))
	r.Use(AuthMiddleware(tokens))
	r.GET("/protected", func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{
			"id":   c.MustGet(ContextUserID),
			"role": c.MustGet(ContextUserRole),
		})
	})

	return r, &reached
}

// Header ausente ou mal formatado nunca chega no handler.
func TestAuthMiddlewareRejectsBadHeaders(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"one part", "Bearer"},
		{"three parts", "Bearer abc def"},
		{"wrong scheme", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, reached := newAuthTestRouter(t, tokens)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, *reached)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	now := time.Now()
	tokens := token.NewService("secret", time.Minute).
		WithClock(func() time.Time { return now })

	raw, err := tokens.Issue(token.Claims{ID: 7, Role: "admin"})
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	r, reached := newAuthTestRouter(t, tokens)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
	assert.Contains(t, w.Body.String(), "token expired")
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)

	raw, err := tokens.Issue(token.Claims{
		ID:    7,
		Email: "admin@oficina.com.br",
		Role:  "admin",
		Name:  "Admin",
	})
	require.NoError(t, err)

	r, reached := newAuthTestRouter(t, tokens)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	// Scheme é case-insensitive.
	req.Header.Set("Authorization", "bearer "+raw)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}
