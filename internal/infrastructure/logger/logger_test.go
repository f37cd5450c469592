package logger

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecoveryEngine(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(GinRecovery(true))
	engine.GET("/download", handler)
	return engine
}

// A handler that aborts after bytes are on the wire must leave the
// client with a read error, not a clean EOF over a shortened body.
func TestGinRecoveryDropsConnectionOnAbortHandler(t *testing.T) {
	engine := newRecoveryEngine(func(c *gin.Context) {
		c.Header("Content-Type", "text/csv; charset=UTF-8")
		_, _ = c.Writer.WriteString("id,name\n1,Yamada Taro\n")
		c.Writer.Flush()
		panic(http.ErrAbortHandler)
	})

	srv := httptest.NewServer(engine)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/download")
	require.NoError(t, err)
	defer resp.Body.Close()

	_, err = io.ReadAll(resp.Body)
	assert.Error(t, err)
}

func TestGinRecoveryAnswersInternalServerError(t *testing.T) {
	engine := newRecoveryEngine(func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/download", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
