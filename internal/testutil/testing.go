package testutil

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobportal-auth/internal/config"
	"jobportal-auth/internal/cookies"
	"jobportal-auth/internal/middlewares"
	"jobportal-auth/internal/mocks"
	"jobportal-auth/internal/session"

	"go.uber.org/mock/gomock"
)

const TestSecret = "test-secret-0123456789abcdef-0123456789"

// TestContext holds everything needed for testing
type TestContext struct {
	AppContext      *middlewares.AppContext
	Request         *http.Request
	Response        *httptest.ResponseRecorder
	MockController  *gomock.Controller
	MockIdentity    *mocks.MockIdentityClient
	MockOAuth       *mocks.MockOAuthProvider
	MockFlowSession *mocks.MockFlowSessionProvider
	Codec           *session.Codec
	LogHandler      *CaptureHandler
}

// NewTestConfig returns a validated-looking config for a plain HTTP production deployment.
func NewTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, Environment: config.EnvironmentProduction},
		Log:    config.DefaultLogConfig,
		Auth: config.AuthConfig{
			BaseURL:        "http://localhost:3000",
			Secret:         TestSecret,
			SessionMaxAge:  config.DefaultAuthConfig.SessionMaxAge,
			RefreshHorizon: config.DefaultAuthConfig.RefreshHorizon,
			Pages:          config.DefaultAuthConfig.Pages,
		},
		Identity: config.IdentityConfig{BaseURL: "http://identity.test", Timeout: time.Second},
		Sessions: config.DefaultSessionConfig,
	}
}

func NewTestContext(t *testing.T) *TestContext {
	return newTestContext(t, nil)
}

// NewTestContextWithURL creates a complete test setup with sensible defaults
func NewTestContextWithURL(t *testing.T, method, url string) *TestContext {
	return newTestContext(t, httptest.NewRequest(method, url, nil))
}

// NewTestContextWithBody creates a test setup whose request carries body with the given content type.
func NewTestContextWithBody(t *testing.T, method, url, contentType, body string) *TestContext {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	return newTestContext(t, req)
}

func newTestContext(t *testing.T, req *http.Request) *TestContext {
	t.Helper()

	cfg := NewTestConfig()

	logHandler := NewCaptureHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)

	mockIdentity := mocks.NewMockIdentityClient(ctrl)
	mockOAuth := mocks.NewMockOAuthProvider(ctrl)
	mockFlowSession := mocks.NewMockFlowSessionProvider(ctrl)

	codec, err := session.NewCodec(cfg.Auth.Secret, cfg.Auth.SessionMaxAge)
	if err != nil {
		t.Fatalf("failed to create session codec: %v", err)
	}

	policy := cookies.Resolve(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg.Auth.BaseURL, nil, cfg.Server.Environment).
		WithFlowName(cfg.Sessions.FlowName)

	rr := httptest.NewRecorder()

	var reqCtx context.Context = context.Background()
	if req != nil {
		reqCtx = req.Context()
	}

	appCtx := &middlewares.AppContext{
		Context:       reqCtx,
		Config:        cfg,
		Logger:        logger,
		Cookies:       policy,
		Sessions:      codec,
		FlowSession:   mockFlowSession,
		OAuthProvider: mockOAuth,
		Identity:      mockIdentity,
		Request:       req,
		Response:      rr,
	}

	return &TestContext{
		AppContext:      appCtx,
		Request:         req,
		Response:        rr,
		MockController:  ctrl,
		MockIdentity:    mockIdentity,
		MockOAuth:       mockOAuth,
		MockFlowSession: mockFlowSession,
		Codec:           codec,
		LogHandler:      logHandler,
	}
}

// Finish should be called at the end of tests to clean up mocks
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

func (tc *TestContext) AssertLogsContainMessage(t *testing.T, level slog.Level, message string) {
	t.Helper()
	if !tc.LogHandler.Has(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

func (tc *TestContext) AssertLogCount(t *testing.T, level slog.Level, expectedCount int) {
	t.Helper()
	count := tc.LogHandler.Count(level)
	if count != expectedCount {
		t.Errorf("Expected %d log entries at level %v, got %d", expectedCount, level, count)
	}
}

func (tc *TestContext) AssertNoLogs(t *testing.T) {
	t.Helper()
	if entries := tc.LogHandler.Entries(); len(entries) != 0 {
		t.Errorf("Expected no log entries, got %d: first %q", len(entries), entries[0].Message)
	}
}

// AssertLogAttr checks that the entry logged at level with message carries key=expected.
func (tc *TestContext) AssertLogAttr(t *testing.T, level slog.Level, message, key string, expected any) {
	t.Helper()
	entry, ok := tc.LogHandler.Find(level, message)
	if !ok {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
		return
	}
	got, ok := entry.Attrs[key]
	if !ok {
		t.Errorf("Log entry %q has no attribute %q (attrs: %v)", message, key, entry.Attrs)
		return
	}
	if got != expected {
		t.Errorf("Log entry %q attribute %q: expected %v, got %v", message, key, expected, got)
	}
}

func (tc *TestContext) LogEntries() []LogEntry {
	return tc.LogHandler.Entries()
}

func (tc *TestContext) ClearLogs() {
	tc.LogHandler.Reset()
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	t.Helper()
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	t.Helper()
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// AssertRedirect checks the status and Location header of a redirect
func (tc *TestContext) AssertRedirect(t *testing.T, expectedStatus int, expectedLocation string) {
	t.Helper()
	tc.AssertStatus(t, expectedStatus)
	if loc := tc.Response.Header().Get("Location"); loc != expectedLocation {
		t.Errorf("Expected redirect to %s, got %s", expectedLocation, loc)
	}
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// AssertJSONField checks a specific field in a JSON response
func (tc *TestContext) AssertJSONField(t *testing.T, field string, expected any) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	if actual, ok := response[field]; !ok || actual != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, response[field])
	}
}

// AssertJSONString checks a specific string field in a JSON response
func (tc *TestContext) AssertJSONString(t *testing.T, field string, expected string) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualString, ok := actual.(string)
	if !ok {
		t.Errorf("Expected %s to be a string, got %T", field, actual)
		return
	}

	if actualString != expected {
		t.Errorf("Expected %s to be %q, got %q", field, expected, actualString)
	}
}

// AssertJSONObject validates an object field with expected key-value pairs
func (tc *TestContext) AssertJSONObject(t *testing.T, field string, expectedFields map[string]interface{}) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualObj, ok := actual.(map[string]interface{})
	if !ok {
		t.Errorf("Expected %s to be an object, got %T", field, actual)
		return
	}

	for key, expectedValue := range expectedFields {
		if actualValue, keyExists := actualObj[key]; !keyExists {
			t.Errorf("Expected field %s.%s to exist", field, key)
		} else if actualValue != expectedValue {
			t.Errorf("Expected %s.%s to be %v, got %v", field, key, expectedValue, actualValue)
		}
	}
}

// ResponseCookie returns the last cookie named name set on the response, or nil.
func (tc *TestContext) ResponseCookie(name string) *http.Cookie {
	var found *http.Cookie
	for _, c := range tc.Response.Result().Cookies() {
		if c.Name == name {
			found = c
		}
	}
	return found
}

// WithConfig allows you to override the default config for specific tests
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	return tc
}

// WithHTTPS switches the cookie policy to the prefixed HTTPS names.
func (tc *TestContext) WithHTTPS() *TestContext {
	secure := true
	tc.AppContext.Config.Auth.BaseURL = "https://jobacademy.net"
	tc.AppContext.Cookies = cookies.Resolve(slog.New(slog.NewTextHandler(io.Discard, nil)), tc.AppContext.Config.Auth.BaseURL, &secure, tc.AppContext.Config.Server.Environment).
		WithFlowName(tc.AppContext.Config.Sessions.FlowName)
	return tc
}

// WithEnvironment changes Server.Environment, e.g. to enable development-only logging.
func (tc *TestContext) WithEnvironment(environment string) *TestContext {
	tc.AppContext.Config.Server.Environment = environment
	return tc
}

// WithoutOAuthProvider simulates a deployment without social login configured.
func (tc *TestContext) WithoutOAuthProvider() *TestContext {
	tc.AppContext.OAuthProvider = nil
	return tc
}

// Helper to add query parameters to the request
func (tc *TestContext) WithQueryParam(key, value string) *TestContext {
	q := tc.Request.URL.Query()
	q.Add(key, value)
	tc.Request.URL.RawQuery = q.Encode()
	return tc
}

// Helper to add headers
func (tc *TestContext) WithHeader(key, value string) *TestContext {
	tc.Request.Header.Set(key, value)
	return tc
}

func (tc *TestContext) WithCookie(c *http.Cookie) *TestContext {
	tc.Request.AddCookie(c)
	return tc
}

// WithSession attaches an encoded session cookie for tok to the request.
func (tc *TestContext) WithSession(t *testing.T, tok *session.Token) *TestContext {
	t.Helper()
	raw, err := tc.Codec.Encode(tok)
	if err != nil {
		t.Fatalf("failed to encode session: %v", err)
	}
	return tc.WithCookie(&http.Cookie{Name: tc.AppContext.Cookies.SessionToken().Name, Value: raw})
}

// WithRequest allows you to set a custom request
func (tc *TestContext) WithRequest(req *http.Request) *TestContext {
	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()
	return tc
}
