// Package session keeps a client signed in. A Coordinator attaches the stored
// access token to outgoing requests and, when the server reports the token as
// invalid or expired, exchanges the refresh cookie for a new one exactly once
// no matter how many requests failed at the same time.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"inkwell/internal/errors"
)

// DefaultRefreshTimeout bounds a single refresh exchange.
const DefaultRefreshTimeout = 15 * time.Second

// CodeInvalidOrExpiredToken is the only rejection worth a refresh.
const CodeInvalidOrExpiredToken = "INVALID_OR_EXPIRED_TOKEN"

// maxErrorBody caps how much of a 401 body is read to classify it.
const maxErrorBody = 64 << 10

var (
	ErrRefreshTimeout = errors.New("session: refresh timed out")
	ErrEmptyToken     = errors.New("session: refresh returned an empty token")
	// ErrSessionCleared is returned for a late rejection after the stored
	// credentials were cleared.
	ErrSessionCleared = errors.New("session: credentials were cleared")
)

// RefreshError is what every request parked on a failed refresh receives.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string {
	return "session: refresh failed: " + e.Err.Error()
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

// RefreshFunc exchanges the refresh credential for a new access token.
type RefreshFunc func(ctx context.Context) (string, error)

// SendFunc performs one attempt of a request.
type SendFunc func(ctx context.Context, req *http.Request) (*http.Response, error)

// Options configures a Coordinator. Store defaults to a MemoryStore and
// RefreshTimeout to DefaultRefreshTimeout.
type Options struct {
	Store            CredentialStore
	Refresh          RefreshFunc
	RefreshTimeout   time.Duration
	OnSessionExpired func(err error)
	Logger           *slog.Logger
}

type refreshResult struct {
	token string
	err   error
}

// Coordinator serializes token refreshes for one client.
type Coordinator struct {
	store     CredentialStore
	refresh   RefreshFunc
	timeout   time.Duration
	onExpired func(err error)
	logger    *slog.Logger

	mu         sync.Mutex
	refreshing bool
	waiters    []chan refreshResult
	lastErr    error
}

// NewCoordinator creates a new Coordinator from opts
func NewCoordinator(opts Options) *Coordinator {
	c := &Coordinator{
		store:     opts.Store,
		refresh:   opts.Refresh,
		timeout:   opts.RefreshTimeout,
		onExpired: opts.OnSessionExpired,
		logger:    opts.Logger,
	}
	if c.store == nil {
		c.store = NewMemoryStore()
	}
	if c.timeout <= 0 {
		c.timeout = DefaultRefreshTimeout
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// RunWithRefresh sends req with the stored access token. A 401 carrying
// INVALID_OR_EXPIRED_TOKEN parks the request until the single in-flight
// refresh settles and then replays it once with the new token. The replay's
// response is returned whatever it is. Any other response is returned as is.
func (c *Coordinator) RunWithRefresh(ctx context.Context, req *http.Request, send SendFunc) (*http.Response, error) {
	token, err := c.store.Get(KeyToken)
	if err != nil {
		return nil, errors.Wrap(err, "load access token")
	}

	first, err := withToken(ctx, req, token)
	if err != nil {
		return nil, err
	}

	resp, err := send(ctx, first)
	if err != nil {
		return nil, err
	}

	if !replayable(req) {
		return resp, nil
	}

	refreshable, err := needsRefresh(resp)
	if err != nil || !refreshable {
		return resp, err
	}
	drain(resp)

	fresh, err := c.awaitToken(ctx, token)
	if err != nil {
		return nil, err
	}

	replay, err := withToken(ctx, req, fresh)
	if err != nil {
		return nil, err
	}

	return send(ctx, replay)
}

// awaitToken returns a token newer than stale, refreshing if nobody else
// already did or is doing so. A request that carried a token which has since
// been cleared fails without a new refresh.
func (c *Coordinator) awaitToken(ctx context.Context, stale string) (string, error) {
	c.mu.Lock()
	if current, err := c.store.Get(KeyToken); err == nil && current != stale {
		if current != "" {
			c.mu.Unlock()
			return current, nil
		}
		if stale != "" && !c.refreshing {
			cause := c.lastErr
			c.mu.Unlock()
			if cause == nil {
				cause = ErrSessionCleared
			}

			return "", &RefreshError{Err: cause}
		}
	}

	waiter := make(chan refreshResult, 1)
	c.waiters = append(c.waiters, waiter)
	if !c.refreshing {
		c.refreshing = true
		go c.runRefresh(c.refresh)
	}
	c.mu.Unlock()

	select {
	case res := <-waiter:
		return res.token, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (c *Coordinator) runRefresh(refresh RefreshFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	c.logger.Debug("Refreshing access token")

	res := exchange(ctx, refresh)
	if res.err == nil {
		if err := c.store.Set(KeyToken, res.token); err != nil {
			res = refreshResult{err: errors.Wrap(err, "store access token")}
		}
	}

	cause := res.err
	if res.err != nil {
		res.err = &RefreshError{Err: res.err}
		if err := c.store.Clear(); err != nil {
			c.logger.Error("Failed to clear credentials", slog.Any("error", err))
		}
		c.logger.Warn("Access token refresh failed", slog.Any("error", res.err))
	}

	c.mu.Lock()
	waiters := c.waiters
	c.waiters = nil
	c.refreshing = false
	c.lastErr = cause
	c.mu.Unlock()

	for _, waiter := range waiters {
		waiter <- res
	}

	if res.err != nil && c.onExpired != nil {
		c.onExpired(res.err)
	}
}

// exchange runs refresh under ctx and gives up at the deadline even if
// refresh ignores its context.
func exchange(ctx context.Context, refresh RefreshFunc) refreshResult {
	if refresh == nil {
		return refreshResult{err: errors.New("session: no refresh configured")}
	}

	done := make(chan refreshResult, 1)
	go func() {
		token, err := refresh(ctx)
		done <- refreshResult{token: token, err: err}
	}()

	select {
	case res := <-done:
		if res.err == nil && res.token == "" {
			res.err = ErrEmptyToken
		}
		if res.err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			res.err = ErrRefreshTimeout
		}

		return res
	case <-ctx.Done():
		return refreshResult{err: ErrRefreshTimeout}
	}
}

// withToken clones req for one attempt. The body is rewound through GetBody.
func withToken(ctx context.Context, req *http.Request, token string) (*http.Request, error) {
	out := req.Clone(ctx)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, errors.Wrap(err, "rewind request body")
		}
		out.Body = body
	}

	if token == "" {
		out.Header.Del("Authorization")
	} else {
		out.Header.Set("Authorization", "Bearer "+token)
	}

	return out, nil
}

func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}

// needsRefresh peeks at a 401 body and puts it back so callers can still read it.
func needsRefresh(resp *http.Response) (bool, error) {
	if resp.StatusCode != http.StatusUnauthorized || resp.Body == nil {
		return false, nil
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return false, errors.Wrap(err, "read error response")
	}

	var envelope struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if json.Unmarshal(raw, &envelope) != nil || envelope.Error == nil {
		return false, nil
	}

	return envelope.Error.Code == CodeInvalidOrExpiredToken, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
