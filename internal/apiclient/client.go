package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"localitybay/internal/session"
)

// Doer es la parte de *http.Client que usa el cliente.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options permite inyectar dependencias del cliente.
type Options struct {
	HTTPClient Doer
	Session    *session.Session
	Logger     *zap.Logger
	// Timeout aplica solo al *http.Client por defecto; 0 desactiva el límite.
	Timeout time.Duration
	// RateLimit en peticiones por segundo; 0 desactiva el throttle.
	RateLimit float64
	RateBurst int
}

// Client es el único punto de salida hacia el backend.
type Client struct {
	baseURL string
	http    Doer
	session *session.Session
	logger  *zap.Logger
	limiter *rate.Limiter
}

// Request describe una llamada. Endpoint puede ser relativo o absoluto.
// Body acepta *Form, []byte, io.Reader o cualquier valor serializable a JSON.
type Request struct {
	Method   string
	Endpoint string
	Body     any
	Auth     bool
	Headers  map[string]string
}

func New(baseURL string, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    httpClient,
		session: opts.Session,
		logger:  logger,
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return c
}

func (c *Client) Session() *session.Session {
	return c.session
}

// Do ejecuta la petición y decodifica el JSON de respuesta en out sin
// desempaquetar el envelope. Un 401 en una llamada autenticada expira la sesión
// antes de devolver el error.
func (c *Client) Do(ctx context.Context, r Request, out any) error {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	reqURL := c.ResolveURL(r.Endpoint)

	body, contentType, err := encodeBody(r.Body)
	if err != nil {
		return &Error{Kind: KindEncode, Message: fmt.Sprintf("encode request: %v", err), Err: err}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return newNetworkError(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return newNetworkError(err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if r.Auth && c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("api request failed",
			zap.String("method", method),
			zap.String("url", reqURL),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return newNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return newNetworkError(fmt.Errorf("read response: %w", err))
	}

	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("url", reqURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
		zap.String("request_id", requestID),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized && r.Auth && c.session != nil {
			c.session.Expire(context.WithoutCancel(ctx))
		}
		return newHTTPError(resp.StatusCode, errorMessage(respBody))
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &Error{
			Kind:    KindDecode,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("decode response: %v", err),
			Err:     err,
		}
	}
	return nil
}

// ResolveURL antepone la URL base salvo que el endpoint ya sea absoluto.
func (c *Client) ResolveURL(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if isAbsoluteURL(endpoint) {
		return endpoint
	}
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

func isAbsoluteURL(endpoint string) bool {
	lower := strings.ToLower(endpoint)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "application/json", nil
	case *Form:
		raw, err := b.Bytes()
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(raw), b.ContentType(), nil
	case []byte:
		return bytes.NewReader(b), "", nil
	case io.Reader:
		return b, "", nil
	default:
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(raw), "application/json", nil
	}
}

// errorMessage extrae "message" de un cuerpo de error JSON.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}
