package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core).Sugar()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	handler := LoggingMiddleware(log)(next)

	req := httptest.NewRequest(http.MethodGet, "/recipes", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "request", entries[0].Message)
	assert.Equal(t, "response", entries[1].Message)

	reqFields := entries[0].ContextMap()
	assert.Equal(t, "GET", reqFields["method"])
	assert.Equal(t, "/recipes", reqFields["uri"])

	respFields := entries[1].ContextMap()
	assert.Equal(t, int64(http.StatusTeapot), respFields["status"])
	assert.Equal(t, "15B", respFields["response_size"])

	// Request and response entries are correlated by the same request ID.
	assert.Equal(t, reqFields["request_id"], respFields["request_id"])
}
