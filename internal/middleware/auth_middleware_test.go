package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeVerifier verifies any token listed in tokens and rejects the rest.
type fakeVerifier struct {
	tokens map[string]*auth.Token
	calls  int
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	f.calls++
	if tok, ok := f.tokens[idToken]; ok {
		return tok, nil
	}
	return nil, errors.New("invalid token")
}

func newTestRouter(mw gin.HandlerFunc) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlerCalls := 0
	router.GET("/protected", mw, func(c *gin.Context) {
		handlerCalls++
		c.JSON(http.StatusOK, gin.H{"owner": c.GetString(ContextOwnerID)})
	})
	return router, &handlerCalls
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	verifier := &fakeVerifier{}
	mw := NewAuthMiddleware(verifier, zap.NewNop())
	router, handlerCalls := newTestRouter(mw.RequireAuth())

	w := doRequest(router, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Zero(t, *handlerCalls)
	require.Zero(t, verifier.calls)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	verifier := &fakeVerifier{}
	mw := NewAuthMiddleware(verifier, zap.NewNop())
	router, handlerCalls := newTestRouter(mw.RequireAuth())

	for _, header := range []string{"sometoken", "Basic abc", "Bearer a b"} {
		w := doRequest(router, header)
		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
	require.Zero(t, *handlerCalls)
	require.Zero(t, verifier.calls)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	verifier := &fakeVerifier{}
	mw := NewAuthMiddleware(verifier, zap.NewNop())
	router, handlerCalls := newTestRouter(mw.RequireAuth())

	w := doRequest(router, "Bearer bad-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Zero(t, *handlerCalls)
	require.Equal(t, 1, verifier.calls)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	verifier := &fakeVerifier{tokens: map[string]*auth.Token{
		"good-token": {UID: "u1", Claims: map[string]any{"email": "u1@example.com"}},
	}}
	mw := NewAuthMiddleware(verifier, zap.NewNop())
	router, handlerCalls := newTestRouter(mw.RequireAuth())

	w := doRequest(router, "Bearer good-token")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, *handlerCalls)
	require.Contains(t, w.Body.String(), `"owner":"u1"`)
}

func TestRequireAuth_BearerCaseInsensitive(t *testing.T) {
	verifier := &fakeVerifier{tokens: map[string]*auth.Token{
		"good-token": {UID: "u1"},
	}}
	mw := NewAuthMiddleware(verifier, zap.NewNop())
	router, _ := newTestRouter(mw.RequireAuth())

	w := doRequest(router, "bearer good-token")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuth_MissingHeaderProceedsAnonymously(t *testing.T) {
	verifier := &fakeVerifier{}
	mw := NewAuthMiddleware(verifier, zap.NewNop())
	router, handlerCalls := newTestRouter(mw.OptionalAuth())

	w := doRequest(router, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, *handlerCalls)
	require.Contains(t, w.Body.String(), `"owner":""`)
}

func TestOptionalAuth_InvalidTokenProceedsAnonymously(t *testing.T) {
	verifier := &fakeVerifier{}
	mw := NewAuthMiddleware(verifier, zap.NewNop())
	router, handlerCalls := newTestRouter(mw.OptionalAuth())

	w := doRequest(router, "Bearer bad-token")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, *handlerCalls)
	require.Contains(t, w.Body.String(), `"owner":""`)
}

func TestOptionalAuth_ValidTokenAttachesOwner(t *testing.T) {
	verifier := &fakeVerifier{tokens: map[string]*auth.Token{
		"good-token": {UID: "u1"},
	}}
	mw := NewAuthMiddleware(verifier, zap.NewNop())
	router, _ := newTestRouter(mw.OptionalAuth())

	w := doRequest(router, "Bearer good-token")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"owner":"u1"`)
}
