package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is a local definition for sending standardized error
// messages. It mirrors the one in internal/api to avoid an import cycle.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ContextOwnerID is the gin context key carrying the authenticated owner's
// identifier (the Firebase Auth UID).
const ContextOwnerID = "userID"

// TokenVerifier verifies a bearer token and yields its decoded claims.
// Satisfied by *auth.Client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

var (
	errMissingAuthHeader = errors.New("Authorization header is required")
	errMalformedHeader   = errors.New("Authorization header format must be 'Bearer {token}'")
	errInvalidToken      = errors.New("Invalid or expired authentication token")
)

// AuthMiddleware authenticates requests against the identity provider. One
// verification routine backs two policy modes: RequireAuth rejects on any
// failure, OptionalAuth lets the request proceed anonymously.
type AuthMiddleware struct {
	verifier TokenVerifier
	logger   *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware. It panics on a nil
// verifier, because no authenticated route can function without one.
func NewAuthMiddleware(verifier TokenVerifier, logger *zap.Logger) *AuthMiddleware {
	if verifier == nil {
		panic("token verifier is not initialized for AuthMiddleware")
	}
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// RequireAuth is the hard policy: a missing, malformed or invalid token
// aborts the request with 401 before any handler runs.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.authenticate(c); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
			return
		}
		c.Next()
	}
}

// OptionalAuth is the soft policy: verification failure or an absent header
// leaves the request anonymous, and handlers decide what anonymous callers
// may see.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.authenticate(c); err != nil && !errors.Is(err, errMissingAuthHeader) {
			m.logger.Debug("proceeding without owner identity", zap.Error(err))
		}
		c.Next()
	}
}

// authenticate extracts and verifies the bearer token, attaching the owner
// identity and useful claims to the context on success. It never mutates
// state beyond the context.
func (m *AuthMiddleware) authenticate(c *gin.Context) error {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return errMissingAuthHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return errMalformedHeader
	}

	token, err := m.verifier.VerifyIDToken(c.Request.Context(), parts[1])
	if err != nil {
		// Specific failure detail stays server-side.
		m.logger.Warn("token verification failed", zap.Error(err))
		return errInvalidToken
	}

	c.Set(ContextOwnerID, token.UID)
	if email, ok := token.Claims["email"].(string); ok {
		c.Set("userEmail", email)
	}
	if name, ok := token.Claims["name"].(string); ok {
		c.Set("userDisplayName", name)
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		c.Set("userPhotoURL", picture)
	}
	return nil
}
