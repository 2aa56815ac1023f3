// Package api is a typed client for the inkwell HTTP API. Calls that need an
// access token go through a session.Coordinator so an expired token is
// refreshed once and the call replayed.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"inkwell/internal/client/session"
	"inkwell/internal/errors"
)

const defaultTimeout = 30 * time.Second

// Options configures a Client. Only BaseURL is required.
type Options struct {
	BaseURL          string
	Store            session.CredentialStore
	Jar              http.CookieJar
	Transport        http.RoundTripper
	Timeout          time.Duration
	RefreshTimeout   time.Duration
	OnSessionExpired func(err error)
	Logger           *slog.Logger
}

// Client is a typed client for the inkwell API. Authenticated calls go
// through a session Coordinator that refreshes the access token on demand.
type Client struct {
	baseURL *url.URL
	store   session.CredentialStore
	coord   *session.Coordinator
	authed  *http.Client
	raw     *http.Client
	logger  *slog.Logger
}

// New creates a new API client
func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("base url %q must be absolute", opts.BaseURL)
	}

	jar := opts.Jar
	if jar == nil {
		if jar, err = cookiejar.New(nil); err != nil {
			return nil, errors.Wrap(err, "create cookie jar")
		}
	}

	store := opts.Store
	if store == nil {
		store = session.NewMemoryStore()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	c := &Client{
		baseURL: base,
		store:   store,
		logger:  logger,
		raw:     &http.Client{Jar: jar, Transport: transport, Timeout: timeout},
	}
	c.coord = session.NewCoordinator(session.Options{
		Store:            store,
		Refresh:          c.RefreshAccessToken,
		RefreshTimeout:   opts.RefreshTimeout,
		OnSessionExpired: opts.OnSessionExpired,
		Logger:           logger,
	})
	c.authed = &http.Client{
		Jar:       jar,
		Transport: &session.Transport{Coordinator: c.coord, Base: transport},
		Timeout:   timeout,
	}

	return c, nil
}

// Signup stages a registration. The server mails a code to the returned address.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (string, error) {
	var out emailData
	if err := c.do(ctx, c.raw, http.MethodPost, "/signup", req, &out); err != nil {
		return "", err
	}

	return out.Email, nil
}

// VerifyCode submits the emailed code and returns the created identity.
func (c *Client) VerifyCode(ctx context.Context, email, code string) (*Identity, error) {
	var out identityData
	body := map[string]string{"email": email, "otp": code}
	if err := c.do(ctx, c.raw, http.MethodPost, "/verify-otp", body, &out); err != nil {
		return nil, err
	}

	return out.Identity, nil
}

// ResendCode asks the server to mail a fresh code.
func (c *Client) ResendCode(ctx context.Context, email string) error {
	return c.do(ctx, c.raw, http.MethodPost, "/resend-otp", map[string]string{"email": email}, nil)
}

// Signin stores the identity and access token. The refresh token stays in the cookie jar.
func (c *Client) Signin(ctx context.Context, email, password string) (*Identity, error) {
	var out signinData
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, c.raw, http.MethodPost, "/signin", body, &out); err != nil {
		return nil, err
	}

	if err := c.remember(out.Identity, out.Token); err != nil {
		return nil, err
	}

	return out.Identity, nil
}

// Authenticate returns the identity behind the stored access token.
func (c *Client) Authenticate(ctx context.Context) (*Identity, error) {
	var out identityData
	if err := c.do(ctx, c.authed, http.MethodGet, "/authenticate", nil, &out); err != nil {
		return nil, err
	}

	return out.Identity, nil
}

// RefreshAccessToken trades the refresh cookie for a new access token. It
// bypasses the coordinator, which calls it.
func (c *Client) RefreshAccessToken(ctx context.Context) (string, error) {
	var out tokenData
	if err := c.do(ctx, c.raw, http.MethodPost, "/refresh-token", nil, &out); err != nil {
		return "", err
	}

	return out.Token, nil
}

// ChangePassword replaces the signed-in identity's password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}

	return c.do(ctx, c.authed, http.MethodPatch, "/users", body, nil)
}

// Signout expires the refresh cookie and forgets local credentials even if
// the server could not be reached.
func (c *Client) Signout(ctx context.Context) error {
	callErr := c.do(ctx, c.raw, http.MethodPost, "/signout", nil, nil)
	if err := c.store.Clear(); err != nil {
		return errors.Join(callErr, errors.Wrap(err, "clear credentials"))
	}

	return callErr
}

// CurrentIdentity is the identity stored at signin, or nil when signed out.
func (c *Client) CurrentIdentity() (*Identity, error) {
	raw, err := c.store.Get(session.KeyUser)
	if err != nil || raw == "" {
		return nil, err
	}

	var identity Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return nil, errors.Wrap(err, "decode stored identity")
	}

	return &identity, nil
}

// Health checks the server is up
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, c.raw, http.MethodGet, "/health", nil, nil)
}

func (c *Client) remember(identity *Identity, token string) error {
	user, err := json.Marshal(identity)
	if err != nil {
		return errors.Wrap(err, "encode identity")
	}
	if err := c.store.Set(session.KeyUser, string(user)); err != nil {
		return errors.Wrap(err, "store identity")
	}

	return errors.Wrap(c.store.Set(session.KeyToken, token), "store access token")
}

func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "decode %s %s response (status %d)", method, path, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Details = env.Error.Details
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}

		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(env.Data, out), "decode response data")
}
