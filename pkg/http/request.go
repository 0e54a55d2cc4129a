package http

import (
	"context"
	"fmt"
	"net/url"
)

// Request is a GET request built step by step and sent with Execute.
type Request struct {
	client      *Client
	path        string
	queryParams url.Values
	headers     map[string]string
	successResp any
	errorResp   any
}

// NewHttpClientRequest creates a request for the root path of the client's base URL.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{client: client, path: "/"}
}

// WithPath sets the path relative to the base URL.
func (r *Request) WithPath(path string) *Request {
	r.path = path
	return r
}

// WithQueryParams sets the query parameters, encoded in key order.
func (r *Request) WithQueryParams(params url.Values) *Request {
	r.queryParams = params
	return r
}

// WithHeaders sets per-request headers on top of the client defaults.
func (r *Request) WithHeaders(headers map[string]string) *Request {
	r.headers = headers
	return r
}

// WithSuccessResp sets the target decoded from a 2xx body.
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.successResp = successResp
	return r
}

// WithErrorResp sets the target decoded from a non-2xx body. A *string receives the raw body.
func (r *Request) WithErrorResp(errorResp any) *Request {
	r.errorResp = errorResp
	return r
}

// Execute sends the request and returns the success response, error response, status code, and error if any.
func (r *Request) Execute(ctx context.Context) (any, any, int, error) {
	if r.client == nil {
		return nil, nil, 0, fmt.Errorf("client is required")
	}
	return r.client.Get(ctx, r.path, r.queryParams, r.headers, r.successResp, r.errorResp)
}
