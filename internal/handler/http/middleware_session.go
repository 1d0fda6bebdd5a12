package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-delivery-board/internal/app"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/internal/utils"
	"github.com/MKhiriev/go-delivery-board/models"
)

// session is an HTTP middleware that restores the caller's session state.
//
// Requests without an "Authorization" header get a fresh, logged-out state.
// When the header is present it must carry a valid session token; the state
// encoded in the token is stored in the request context under
// [utils.SessionCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, has a bad signature or cannot be parsed.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		state := models.NewSessionState()
		if authHeader := r.Header.Get("Authorization"); authHeader != "" {
			tokenString, err := getTokenFromAuthHeader(authHeader)
			if err != nil {
				log.Err(err).Send()
				utils.WriteError(w, http.StatusUnauthorized, err.Error(), nil)
				return
			}

			token, err := h.services.AccessService.ParseToken(r.Context(), tokenString)
			if err != nil {
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteError(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid, nil)
				return
			}
			state = token.Claims.State()
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), state)))
	})
}

// issueToken signs state and returns it to the caller in the
// "Authorization" response header. It writes a 500 response and returns false
// when signing fails.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, state models.SessionState) bool {
	token, err := h.services.AccessService.CreateToken(r.Context(), state)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.issueToken").Msg("error creating session token")
		utils.WriteError(w, http.StatusInternalServerError, app.MsgInternalServerError, nil)
		return false
	}

	w.Header().Set("Authorization", utils.BearerHeader(token.String()))
	return true
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns [ErrInvalidAuthorizationHeader] if the header contains fewer
// than two space-separated parts, and [ErrEmptyToken] if the token part is
// empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
