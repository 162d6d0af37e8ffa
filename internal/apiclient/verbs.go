package apiclient

import (
	"context"
	"net/http"

	"localitybay/internal/domain"
)

type RequestOption func(*Request)

// WithAuth adjunta el bearer token de la sesión, si existe.
func WithAuth() RequestOption {
	return func(r *Request) {
		r.Auth = true
	}
}

func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

func Get[T any](ctx context.Context, c *Client, endpoint string, opts ...RequestOption) (domain.Envelope[T], error) {
	return send[T](ctx, c, http.MethodGet, endpoint, nil, opts)
}

func Post[T any](ctx context.Context, c *Client, endpoint string, body any, opts ...RequestOption) (domain.Envelope[T], error) {
	return send[T](ctx, c, http.MethodPost, endpoint, body, opts)
}

func Put[T any](ctx context.Context, c *Client, endpoint string, body any, opts ...RequestOption) (domain.Envelope[T], error) {
	return send[T](ctx, c, http.MethodPut, endpoint, body, opts)
}

func Patch[T any](ctx context.Context, c *Client, endpoint string, body any, opts ...RequestOption) (domain.Envelope[T], error) {
	return send[T](ctx, c, http.MethodPatch, endpoint, body, opts)
}

func Delete[T any](ctx context.Context, c *Client, endpoint string, opts ...RequestOption) (domain.Envelope[T], error) {
	return send[T](ctx, c, http.MethodDelete, endpoint, nil, opts)
}

func send[T any](ctx context.Context, c *Client, method, endpoint string, body any, opts []RequestOption) (domain.Envelope[T], error) {
	req := Request{Method: method, Endpoint: endpoint, Body: body}
	for _, opt := range opts {
		opt(&req)
	}
	var env domain.Envelope[T]
	if err := c.Do(ctx, req, &env); err != nil {
		return domain.Envelope[T]{}, err
	}
	return env, nil
}
