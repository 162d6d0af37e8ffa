package service

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"localitybay/internal/apiclient"
	"localitybay/internal/session"
)

type recordedRequest struct {
	method      string
	path        string
	query       string
	auth        string
	contentType string
	body        []byte
}

type testBackend struct {
	mu       sync.Mutex
	requests []recordedRequest
	router   *gin.Engine
}

func newTestBackend() *testBackend {
	gin.SetMode(gin.TestMode)
	b := &testBackend{router: gin.New()}
	b.router.Use(func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		b.mu.Lock()
		b.requests = append(b.requests, recordedRequest{
			method:      c.Request.Method,
			path:        c.Request.URL.Path,
			query:       c.Request.URL.RawQuery,
			auth:        c.GetHeader("Authorization"),
			contentType: c.GetHeader("Content-Type"),
			body:        body,
		})
		b.mu.Unlock()
		c.Next()
	})
	return b
}

func (b *testBackend) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func (b *testBackend) last(t *testing.T) recordedRequest {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.requests) == 0 {
		t.Fatalf("backend received no requests")
	}
	return b.requests[len(b.requests)-1]
}

// start levanta el servidor y devuelve un cliente con sesión propia.
func (b *testBackend) start(t *testing.T, token string) (*apiclient.Client, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(b.router)
	t.Cleanup(srv.Close)

	sess := session.New(session.NewMemoryStore())
	if token != "" {
		if err := sess.Authenticate(context.Background(), token); err != nil {
			t.Fatalf("authenticate: %v", err)
		}
	}
	client := apiclient.New(srv.URL, apiclient.Options{Session: sess, Logger: zap.NewNop()})
	return client, sess
}

func ok(data any) gin.H {
	return gin.H{"status": true, "code": 200, "message": "ok", "data": data}
}
