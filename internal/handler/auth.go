package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	TokenIssuer   = "studyflow"
	TokenAudience = "studyflow-api"
)

// NewAuthMiddleware validates HS256 bearer tokens signed with secret.
func NewAuthMiddleware(secret string, log *zap.Logger) (func(http.Handler) http.Handler, error) {
	keyFunc := func(context.Context) (interface{}, error) {
		return []byte(secret), nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		TokenIssuer,
		[]string{TokenAudience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up the jwt validator: %w", err)
	}

	middleware := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			log.Debug("rejected request", zap.String("path", r.URL.Path), zap.Error(err))
			writeError(w, http.StatusUnauthorized, "invalid or missing token")
		}),
	)

	return middleware.CheckJWT, nil
}

// Subject returns the subject of the validated token of r.
func Subject(r *http.Request) (string, bool) {
	claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
	if !ok || claims.RegisteredClaims.Subject == "" {
		return "", false
	}
	return claims.RegisteredClaims.Subject, true
}

// NewToken mints an API token for subject, valid for ttl.
func NewToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   subject,
		Audience:  jwt.ClaimStrings{TokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	return token.SignedString([]byte(secret))
}
