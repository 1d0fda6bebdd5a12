package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-delivery-board/models"
)

// ErrInvalidTokenParams is returned when a session token cannot be issued
// because the issuer, duration or sign key is missing.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// GenerateSessionToken signs an HMAC-SHA256 JWT carrying the given session
// state.
//
// Besides the session claims the token includes:
//   - Issuer    (iss): identifies the service that issued the token
//   - ID        (jti): a fresh UUIDv7
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("go-delivery-board", state, 8*time.Hour, "secret")
func GenerateSessionToken(issuer string, state models.SessionState, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := models.NewSessionClaims(state)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		ID:        NewUUIDGenerator().Generate(),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseSessionToken verifies the signature, issuer and expiry of
// tokenString and returns the session claims it carries.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseSessionToken(raw, "secret", "go-delivery-board")
//	if err != nil {
//	    // handle invalid or expired token
//	}
//	state := token.Claims.State()
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return models.Token{Claims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// BearerHeader formats token as an Authorization header value.
func BearerHeader(token string) string {
	return "Bearer " + token
}
