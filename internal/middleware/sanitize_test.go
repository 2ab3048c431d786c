package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSanitizeTestRouter(bound *map[string]any) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Sanitize())
	r.POST("/echo", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		*bound = body
		c.JSON(http.StatusOK, body)
	})
	return r
}

// O handler nunca vê o body cru: strings chegam sem <script> e sem
// espaços nas bordas.
func TestSanitizeRewritesJSONBody(t *testing.T) {
	var bound map[string]any
	r := newSanitizeTestRouter(&bound)

	payload := `{"name":"  <script>alert(1)</script>Ana ","price":99.9,` +
		`"nested":{"note":" ok "}}`

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ana", bound["name"])
	assert.Equal(t, 99.9, bound["price"])
	assert.Equal(t, "ok", bound["nested"].(map[string]any)["note"])
}

func TestSanitizeLeavesInvalidJSONForBinding(t *testing.T) {
	var bound map[string]any
	r := newSanitizeTestRouter(&bound)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// O binding do handler reporta o erro com o body original.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSanitizeIgnoresNonJSONRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Sanitize())
	r.POST("/raw", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodPost, "/raw", strings.NewReader(" <script></script> "))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
