package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func auditRouter(buf *bytes.Buffer, status int) *gin.Engine {
	r := gin.New()
	r.Use(AuditLog(zerolog.New(buf)))
	r.POST("/api/v1/dummy-transactions/:id/signatures", func(c *gin.Context) {
		c.Set(CtxMemberID, "bob")
		c.Status(status)
	})
	r.GET("/api/v1/dummy-transactions/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestAuditLog_SuccessfulWrite(t *testing.T) {
	var buf bytes.Buffer
	r := auditRouter(&buf, http.StatusOK)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/dummy-transactions/tx-1/signatures", nil))

	line := buf.String()
	assert.Contains(t, line, `"action":"dummy_tx.sign"`)
	assert.Contains(t, line, `"member_id":"bob"`)
	assert.Contains(t, line, `"id":"tx-1"`)
	assert.Contains(t, line, `"log":"audit"`)
}

func TestAuditLog_SkipsFailures(t *testing.T) {
	var buf bytes.Buffer
	r := auditRouter(&buf, http.StatusConflict)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/dummy-transactions/tx-1/signatures", nil))

	assert.Empty(t, buf.String())
}

func TestAuditLog_SkipsReads(t *testing.T) {
	var buf bytes.Buffer
	r := auditRouter(&buf, http.StatusOK)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dummy-transactions/tx-1", nil))

	assert.Empty(t, buf.String())
}
