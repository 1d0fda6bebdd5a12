// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Profile is one of the fixed access roles. The string values are the keys
// stored in the "perfis.perfil" column.
type Profile string

const (
	ProfileFiscal    Profile = "Departamento Fiscal"
	ProfilePersonnel Profile = "Departamento Pessoal"
	ProfileHR        Profile = "RH"
	ProfileAdmin     Profile = "Administrador"
)

// Profiles lists every profile in selection order.
var Profiles = []Profile{ProfileFiscal, ProfilePersonnel, ProfileHR, ProfileAdmin}

var profileDisplayNames = map[Profile]string{
	ProfileFiscal:    "Fiscal",
	ProfilePersonnel: "Pessoal",
	ProfileHR:        "Recursos Humanos",
	ProfileAdmin:     "Administrador",
}

// profileAliases maps short, URL-friendly names to profiles.
var profileAliases = map[string]Profile{
	"fiscal":    ProfileFiscal,
	"personnel": ProfilePersonnel,
	"pessoal":   ProfilePersonnel,
	"hr":        ProfileHR,
	"rh":        ProfileHR,
	"admin":     ProfileAdmin,
}

// IsValid reports whether p is one of the four known profiles.
func (p Profile) IsValid() bool {
	_, ok := profileDisplayNames[p]
	return ok
}

// DisplayName returns the human-readable profile name, or the raw value
// for unknown profiles.
func (p Profile) DisplayName() string {
	if name, ok := profileDisplayNames[p]; ok {
		return name
	}
	return string(p)
}

// ParseProfile resolves either a stored profile key ("Administrador") or a
// short alias ("admin") into a Profile. The second result is false when
// nothing matches.
func ParseProfile(s string) (Profile, bool) {
	if p := Profile(s); p.IsValid() {
		return p, true
	}
	p, ok := profileAliases[s]
	return p, ok
}

// ProfileCredential is the persisted password digest of a profile.
// There is at most one credential per profile.
type ProfileCredential struct {
	Profile      Profile `json:"profile"`
	PasswordHash string  `json:"-"`
}

// SessionState is the per-session authentication state.
//
// It is a value: access operations take a state and return a new one
// instead of mutating shared state.
type SessionState struct {
	// ActiveProfile is the profile currently using the session, empty when
	// nobody is logged in.
	ActiveProfile Profile `json:"active_profile,omitempty"`

	// Authenticated holds the per-profile authenticated flag.
	Authenticated map[Profile]bool `json:"authenticated,omitempty"`
}

// NewSessionState returns a fresh, logged-out session.
func NewSessionState() SessionState {
	return SessionState{Authenticated: make(map[Profile]bool, len(Profiles))}
}

// IsAuthenticated reports whether p has logged in during this session.
func (s SessionState) IsAuthenticated(p Profile) bool {
	return s.Authenticated[p]
}

// Active returns the active profile if it is also authenticated.
func (s SessionState) Active() (Profile, bool) {
	if s.ActiveProfile == "" || !s.Authenticated[s.ActiveProfile] {
		return "", false
	}
	return s.ActiveProfile, true
}

// Clone returns a deep copy so callers can derive a new state without
// touching the original map.
func (s SessionState) Clone() SessionState {
	out := SessionState{
		ActiveProfile: s.ActiveProfile,
		Authenticated: make(map[Profile]bool, len(s.Authenticated)),
	}
	for p, ok := range s.Authenticated {
		if ok {
			out.Authenticated[p] = true
		}
	}
	return out
}

// AuthenticatedProfiles returns the authenticated profiles in selection order.
func (s SessionState) AuthenticatedProfiles() []Profile {
	out := make([]Profile, 0, len(s.Authenticated))
	for _, p := range Profiles {
		if s.Authenticated[p] {
			out = append(out, p)
		}
	}
	return out
}

// SessionView is the JSON representation of a session returned by the API.
type SessionView struct {
	ActiveProfile Profile      `json:"active_profile,omitempty"`
	DisplayName   string       `json:"display_name,omitempty"`
	Authenticated []Profile    `json:"authenticated"`
	Visibility    []Department `json:"visibility"`
}

// ProfileStatus tells the UI whether a profile can log in yet.
type ProfileStatus struct {
	Profile     Profile `json:"profile"`
	DisplayName string  `json:"display_name"`
	Configured  bool    `json:"configured"`
}

// LoginRequest is the body of a login call.
type LoginRequest struct {
	Profile  string `json:"profile"`
	Password string `json:"password"`
}

// PasswordRequest is the body of a password change / bootstrap call.
type PasswordRequest struct {
	Password string `json:"password"`
}
