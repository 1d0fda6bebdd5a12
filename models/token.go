package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the JWT claim set that carries a [SessionState] between
// requests.
//
// The server is stateless: every state-changing access call signs a fresh
// token from the new state and returns it to the caller, who presents it on
// the next request.
type SessionClaims struct {
	// RegisteredClaims provides the standard claim set (iss, iat, exp, jti).
	jwt.RegisteredClaims

	// ActiveProfile is the profile currently using the session.
	ActiveProfile Profile `json:"act,omitempty"`

	// Authenticated lists the profiles that logged in during the session.
	Authenticated []Profile `json:"auth,omitempty"`
}

// State rebuilds the session state encoded in the claims. Unknown profiles
// are silently dropped.
func (c *SessionClaims) State() SessionState {
	state := NewSessionState()
	for _, p := range c.Authenticated {
		if p.IsValid() {
			state.Authenticated[p] = true
		}
	}
	if c.ActiveProfile.IsValid() {
		state.ActiveProfile = c.ActiveProfile
	}
	return state
}

// Token is a signed session token together with the state it encodes.
type Token struct {
	// Claims is the decoded claim set.
	Claims SessionClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// NewSessionClaims converts a session state into claims. Registered claims
// are left empty for the signer to fill in.
func NewSessionClaims(state SessionState) SessionClaims {
	return SessionClaims{
		ActiveProfile: state.ActiveProfile,
		Authenticated: state.AuthenticatedProfiles(),
	}
}
