package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"inkwell/config"
	httpmiddleware "inkwell/internal/delivery/http/middleware"
	"inkwell/internal/delivery/http/response"
	"inkwell/internal/delivery/http/router"
	"inkwell/internal/delivery/http/router/handler"
	"inkwell/internal/domain/service"
	"inkwell/internal/infra/auth"
	"inkwell/internal/infra/cache"
	"inkwell/internal/infra/persistence/postgres"
	"inkwell/internal/infra/pubsub"
	"inkwell/internal/usecase/impl"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// inbox captures verification codes instead of mailing them.
type inbox struct {
	mu    sync.Mutex
	codes map[string]string
}

func (i *inbox) SendVerificationCode(_ context.Context, email, code string, _ time.Duration) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.codes[email] = code

	return nil
}

func (i *inbox) last(email string) string {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.codes[email]
}

type testServer struct {
	echo  *echo.Echo
	inbox *inbox
	redis *miniredis.Miniredis
	cfg   *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:    time.Hour,
			RefreshTokenTTL:   7 * 24 * time.Hour,
			RefreshCookieName: "refreshToken",
			BcryptCost:        bcrypt.MinCost,
		},
		Registration: &config.RegistrationConfig{CodeLength: 6, CodeTTL: 10 * time.Minute},
		Redis:        &config.RedisConfig{KeyPrefix: "pending_registration:"},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(cfg)
	identities := postgres.NewIdentityRepository(db)

	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: logger,
	})
	require.NoError(t, err)

	mails := &inbox{codes: map[string]string{}}

	registration := impl.NewRegistrationService(impl.RegistrationServiceParams{
		IdentityRepo: identities,
		PendingStore: cache.NewPendingRegistrationStore(client, cfg),
		Hasher:       hasher,
		Codes:        auth.NewCodeGenerator(cfg),
		Mailer:       mails,
		Publisher:    publisher,
		Config:       cfg,
		Logger:       logger,
	})
	session := impl.NewSessionService(identities, hasher, tokens, logger)
	account := impl.NewAccountService(postgres.NewTransactionManager(db), hasher, logger)

	e := newEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: httpmiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(registration, session, cfg, logger),
			AccountHandler: handler.NewAccountHandler(account, logger),
			AuthMiddleware: httpmiddleware.NewAuthMiddleware(tokens, logger),
		},
	})

	return &testServer{echo: e, inbox: mails, redis: mr, cfg: cfg}
}

type call struct {
	method  string
	path    string
	body    any
	token   string
	cookies []*http.Cookie
}

func (s *testServer) do(t *testing.T, c call) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	var payload io.Reader
	if c.body != nil {
		raw, err := json.Marshal(c.body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(c.method, c.path, payload)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if c.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+c.token)
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return rec, body
}

func signupBody(email string) map[string]any {
	return map[string]any{
		"email":       email,
		"password":    "letmein1!",
		"firstName":   "Ada",
		"lastName":    "Lovelace",
		"phone":       "+441234567890",
		"dob":         "1990-12-10",
		"preferences": []string{"tech", "history"},
	}
}

func dataField(t *testing.T, body response.Response, key string) any {
	t.Helper()

	data, ok := body.Data.(map[string]any)
	require.True(t, ok, "data is %T", body.Data)

	return data[key]
}

func errorCode(body response.Response) string {
	if body.Error == nil {
		return ""
	}

	return body.Error.Code
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestServer_RegistrationAndSessionLifecycle(t *testing.T) {
	s := newTestServer(t)
	const email = "ada@example.com"

	rec, body := s.do(t, call{method: http.MethodPost, path: "/signup", body: signupBody(email)})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, email, dataField(t, body, "email"))
	code := s.inbox.last(email)
	require.Len(t, code, 6)

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	rec, body = s.do(t, call{method: http.MethodPost, path: "/verify-otp", body: map[string]string{"email": email, "otp": wrong}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INCORRECT_CODE", errorCode(body))

	rec, body = s.do(t, call{method: http.MethodPost, path: "/verify-otp", body: map[string]string{"email": email, "otp": code}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	identity, ok := dataField(t, body, "identity").(map[string]any)
	require.True(t, ok)
	assert.Equal(t, email, identity["email"])
	assert.Equal(t, "1990-12-10", identity["dob"])
	assert.NotContains(t, identity, "passwordHash")
	identityID := identity["id"].(string)

	rec, body = s.do(t, call{method: http.MethodPost, path: "/verify-otp", body: map[string]string{"email": email, "otp": code}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SESSION_EXPIRED", errorCode(body))

	rec, body = s.do(t, call{method: http.MethodPost, path: "/signup", body: signupBody(email)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DUPLICATE_IDENTITY", errorCode(body))

	rec, body = s.do(t, call{method: http.MethodPost, path: "/signin", body: map[string]string{"email": email, "password": "wrong-pass1!"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(body))

	rec, body = s.do(t, call{method: http.MethodPost, path: "/signin", body: map[string]string{"email": email, "password": "letmein1!"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	access, _ := dataField(t, body, "token").(string)
	require.NotEmpty(t, access)

	refresh := findCookie(rec, "refreshToken")
	require.NotNil(t, refresh)
	assert.True(t, refresh.HttpOnly)
	assert.Equal(t, "/", refresh.Path)
	assert.Equal(t, http.SameSiteLaxMode, refresh.SameSite)
	assert.False(t, refresh.Secure)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), refresh.MaxAge)

	rec, body = s.do(t, call{method: http.MethodGet, path: "/authenticate", token: access})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	me := dataField(t, body, "identity").(map[string]any)
	assert.Equal(t, identityID, me["id"])

	rec, body = s.do(t, call{method: http.MethodPost, path: "/refresh-token", cookies: []*http.Cookie{refresh}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	fresh, _ := dataField(t, body, "token").(string)
	require.NotEmpty(t, fresh)

	rec, _ = s.do(t, call{method: http.MethodGet, path: "/authenticate", token: fresh})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body = s.do(t, call{method: http.MethodPatch, path: "/users", token: fresh,
		body: map[string]string{"currentPassword": "nope-nope1!", "newPassword": "brandnew2@"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INCORRECT_PASSWORD", errorCode(body))

	rec, _ = s.do(t, call{method: http.MethodPatch, path: "/users", token: fresh,
		body: map[string]string{"currentPassword": "letmein1!", "newPassword": "brandnew2@"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, _ = s.do(t, call{method: http.MethodPost, path: "/signin", body: map[string]string{"email": email, "password": "letmein1!"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec, _ = s.do(t, call{method: http.MethodPost, path: "/signin", body: map[string]string{"email": email, "password": "brandnew2@"}})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, call{method: http.MethodPost, path: "/signout"})
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := findCookie(rec, "refreshToken")
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestServer_VerifyAfterCodeExpiry(t *testing.T) {
	s := newTestServer(t)
	const email = "grace@example.com"

	rec, _ := s.do(t, call{method: http.MethodPost, path: "/signup", body: signupBody(email)})
	require.Equal(t, http.StatusOK, rec.Code)
	code := s.inbox.last(email)

	s.redis.FastForward(11 * time.Minute)

	rec, body := s.do(t, call{method: http.MethodPost, path: "/verify-otp", body: map[string]string{"email": email, "otp": code}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SESSION_EXPIRED", errorCode(body))

	rec, body = s.do(t, call{method: http.MethodPost, path: "/resend-otp", body: map[string]string{"email": email}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SESSION_EXPIRED", errorCode(body))
}

func TestServer_NonNumericCodeIsJustIncorrect(t *testing.T) {
	s := newTestServer(t)
	const email = "barbara@example.com"

	rec, _ := s.do(t, call{method: http.MethodPost, path: "/signup", body: signupBody(email)})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := s.do(t, call{method: http.MethodPost, path: "/verify-otp", body: map[string]string{"email": email, "otp": "abc123"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INCORRECT_CODE", errorCode(body))

	s.redis.FastForward(11 * time.Minute)

	rec, body = s.do(t, call{method: http.MethodPost, path: "/verify-otp", body: map[string]string{"email": email, "otp": "abc123"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SESSION_EXPIRED", errorCode(body))
}

func TestServer_ResendReplacesCode(t *testing.T) {
	s := newTestServer(t)
	const email = "linus@example.com"

	rec, _ := s.do(t, call{method: http.MethodPost, path: "/signup", body: signupBody(email)})
	require.Equal(t, http.StatusOK, rec.Code)
	first := s.inbox.last(email)

	rec, _ = s.do(t, call{method: http.MethodPost, path: "/resend-otp", body: map[string]string{"email": email}})
	require.Equal(t, http.StatusOK, rec.Code)
	second := s.inbox.last(email)

	if first != second {
		rec, body := s.do(t, call{method: http.MethodPost, path: "/verify-otp", body: map[string]string{"email": email, "otp": first}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INCORRECT_CODE", errorCode(body))
	}

	rec, _ = s.do(t, call{method: http.MethodPost, path: "/verify-otp", body: map[string]string{"email": email, "otp": second}})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestServer_SessionBoundary(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		call     call
		wantCode string
	}{
		{name: "no header", call: call{method: http.MethodGet, path: "/authenticate"}, wantCode: "UNAUTHENTICATED"},
		{name: "garbage token", call: call{method: http.MethodGet, path: "/authenticate", token: "garbage"}, wantCode: "INVALID_OR_EXPIRED_TOKEN"},
		{name: "password change without token", call: call{method: http.MethodPatch, path: "/users"}, wantCode: "UNAUTHENTICATED"},
		{name: "refresh without cookie", call: call{method: http.MethodPost, path: "/refresh-token"}, wantCode: "REFRESH_TOKEN_MISSING"},
		{
			name:     "refresh with bad cookie",
			call:     call{method: http.MethodPost, path: "/refresh-token", cookies: []*http.Cookie{{Name: "refreshToken", Value: "garbage"}}},
			wantCode: "REFRESH_TOKEN_INVALID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := s.do(t, tt.call)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(body))
		})
	}
}

func TestServer_AccessTokenForVanishedIdentity(t *testing.T) {
	s := newTestServer(t)

	tokens, err := auth.NewJWTService(s.cfg)
	require.NoError(t, err)
	access, err := tokens.IssueAccess(uuid.Must(uuid.NewV7()))
	require.NoError(t, err)

	rec, body := s.do(t, call{method: http.MethodGet, path: "/authenticate", token: access})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", errorCode(body))
}

func TestServer_SignupValidation(t *testing.T) {
	s := newTestServer(t)

	tests := map[string]func(map[string]any){
		"bad email":        func(b map[string]any) { b["email"] = "not-an-email" },
		"short first name": func(b map[string]any) { b["firstName"] = "A" },
		"bad phone":        func(b map[string]any) { b["phone"] = "12-34" },
		"future dob":       func(b map[string]any) { b["dob"] = time.Now().AddDate(1, 0, 0).Format(time.DateOnly) },
		"no preferences":   func(b map[string]any) { b["preferences"] = []string{} },
		"bad picture":      func(b map[string]any) { b["profilePicture"] = "not a url" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			body := signupBody("val@example.com")
			mutate(body)

			rec, resp := s.do(t, call{method: http.MethodPost, path: "/signup", body: body})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", errorCode(resp))
		})
	}

	body := signupBody("weak@example.com")
	body["password"] = "weak"
	rec, resp := s.do(t, call{method: http.MethodPost, path: "/signup", body: body})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PASSWORD_STRENGTH", errorCode(resp))
	assert.Empty(t, s.inbox.last("weak@example.com"))
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(t, call{method: http.MethodGet, path: "/health"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
}

var _ service.CodeMailer = (*inbox)(nil)
