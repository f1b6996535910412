// Package gateway is the single facade for remote data access. Every call
// resolves the backend origin first; reads degrade to the synthetic dataset
// when the backend is unreachable or an individual call fails, writes
// surface the failure instead of faking success. Responses cross the
// normalization boundary here, so consumers only ever see canonical
// entities.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/lumenlearn/lumen-go/logging"
	"github.com/lumenlearn/lumen-go/normalize"
	"github.com/lumenlearn/lumen-go/resolver"
	"github.com/lumenlearn/lumen-go/session"
	"github.com/lumenlearn/lumen-go/synthetic"
)

var (
	// ErrBackendUnavailable is returned for writes when no backend answered
	// probing. Reads never return it; they degrade to synthetic data.
	ErrBackendUnavailable = errors.New("backend unreachable")

	// ErrUnauthorized maps a 401 response. It signals a missing or expired
	// session, not a backend outage.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRequestFailed wraps any other non-2xx response on a write.
	ErrRequestFailed = errors.New("request failed")
)

type Gateway struct {
	resolver *resolver.Resolver
	fallback *synthetic.Provider
	tokens   session.TokenSource
	client   *http.Client
	log      *logging.Logger
}

func New(res *resolver.Resolver, fallback *synthetic.Provider, tokens session.TokenSource, log *logging.Logger) *Gateway {
	if tokens == nil {
		tokens = session.Anonymous
	}
	return &Gateway{
		resolver: res,
		fallback: fallback,
		tokens:   tokens,
		client:   &http.Client{},
		log:      log,
	}
}

// WithHTTPClient replaces the request client, for tests.
func (g *Gateway) WithHTTPClient(client *http.Client) *Gateway {
	g.client = client
	return g
}

// do issues one JSON request and returns the body and status. Network
// failures come back as errors; HTTP error statuses do not, the caller
// decides between fallback and failure.
func (g *Gateway) do(ctx context.Context, method, origin, path string, payload interface{}) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, origin+path, body)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	// The header goes out even with an empty token; the backend's 401 is
	// the authoritative "unauthenticated" signal.
	req.Header.Set("Authorization", "Bearer "+g.tokens.Token())

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return buf, resp.StatusCode, nil
}

// fetchList GETs a collection of raw records. Any failure is reported to
// the caller, who falls back to synthetic data.
func (g *Gateway) fetchList(ctx context.Context, origin, path string) ([]normalize.Raw, error) {
	buf, status, err := g.do(ctx, http.MethodGet, origin, path, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: GET %s returned %d", ErrRequestFailed, path, status)
	}
	var raws []normalize.Raw
	if err := json.Unmarshal(buf, &raws); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return raws, nil
}

// fetchOne GETs a single raw record.
func (g *Gateway) fetchOne(ctx context.Context, origin, path string) (normalize.Raw, int, error) {
	buf, status, err := g.do(ctx, http.MethodGet, origin, path, nil)
	if err != nil {
		return nil, 0, err
	}
	if status < 200 || status >= 300 {
		return nil, status, fmt.Errorf("%w: GET %s returned %d", ErrRequestFailed, path, status)
	}
	var raw normalize.Raw
	if err := json.Unmarshal(buf, &raw); err != nil {
		return nil, status, fmt.Errorf("decode %s: %w", path, err)
	}
	return raw, status, nil
}

// write issues a mutating request and returns the raw response record, if
// any. Writes never fall back to synthetic data.
func (g *Gateway) write(ctx context.Context, method, origin, path string, payload interface{}) (normalize.Raw, error) {
	buf, status, err := g.do(ctx, method, origin, path, payload)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case status < 200 || status >= 300:
		return nil, fmt.Errorf("%w: %s %s returned %d", ErrRequestFailed, method, path, status)
	}
	if len(buf) == 0 || status == http.StatusNoContent {
		return nil, nil
	}
	var raw normalize.Raw
	if err := json.Unmarshal(buf, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return raw, nil
}

// resolveWrite is the shared precondition for mutating calls.
func (g *Gateway) resolveWrite(ctx context.Context) (string, error) {
	verdict := g.resolver.Resolve(ctx)
	if !verdict.Reachable {
		return "", ErrBackendUnavailable
	}
	return verdict.Origin, nil
}
