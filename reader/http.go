package reader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds a single feed request when the caller's context has
// no deadline.
const DefaultTimeout = 15 * time.Second

// HTTP fetches feeds relative to a base URL.
type HTTP struct {
	// Base is the URL feed names are resolved against.
	Base *url.URL
	// Client overrides http.DefaultClient.
	Client *http.Client
}

// NewHTTP returns an HTTP reader for base, which must be an absolute URL.
func NewHTTP(base string) (*HTTP, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("base url %q is not absolute", base)
	}
	// Resolve names inside the base path rather than replacing its last segment.
	if u.Path == "" || u.Path[len(u.Path)-1] != '/' {
		u.Path += "/"
	}
	return &HTTP{Base: u}, nil
}

// Open issues a GET for name. Any non-2xx status is an error.
func (r *HTTP) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	ref, err := url.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("parse feed name %q: %w", name, err)
	}
	u := r.Base.ResolveReference(ref)

	cancel := context.CancelFunc(func() {})
	if _, ok := ctx.Deadline(); !ok {
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("build request: %w", err)
	}
	body, err := r.do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	// The body outlives this call, so the timeout is released on Close.
	return &cancelOnClose{ReadCloser: body, cancel: cancel}, nil
}

func (r *HTTP) do(req *http.Request) (io.ReadCloser, error) {
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", req.URL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("get %s: unexpected status %s", req.URL, resp.Status)
	}
	return resp.Body, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
