package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-delivery-board/internal/config"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/internal/metrics"
	"github.com/MKhiriev/go-delivery-board/internal/store"
	"github.com/MKhiriev/go-delivery-board/internal/utils"
	"github.com/MKhiriev/go-delivery-board/models"
)

// accessService is the concrete implementation of AccessService.
// Password digests are read from and written to a ProfileRepository; the
// session itself is never persisted and travels as a signed JWT.
type accessService struct {
	// profileRepository stores one password digest per profile.
	profileRepository store.ProfileRepository

	// hashKey is the HMAC key for password digests. Empty means plain SHA-256.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim of every issued token.
	tokenIssuer string

	// tokenDuration controls how long a session token remains valid.
	tokenDuration time.Duration

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewAccessService constructs an AccessService wired to the given
// ProfileRepository and populated with security parameters from cfg.
func NewAccessService(profileRepository store.ProfileRepository, cfg config.App, m *metrics.Metrics, logger *logger.Logger) AccessService {
	return &accessService{
		profileRepository: profileRepository,
		hashKey:           cfg.PasswordHashKey,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		metrics:           m,
		logger:            logger,
	}
}

// Login authenticates profile with secret and makes it the active profile.
//
// Checks, in order:
//   - unknown profile → ErrInvalidProfile.
//   - no stored credential → ErrBootstrapRequired.
//   - a different profile is active → ErrSessionActive.
//   - digest mismatch → ErrWrongPassword.
//
// On any error the returned state equals the input state.
func (a *accessService) Login(ctx context.Context, state models.SessionState, profile models.Profile, secret string) (models.SessionState, error) {
	log := logger.FromContext(ctx)

	if !profile.IsValid() {
		return state, fmt.Errorf("%w: %q", ErrInvalidProfile, profile)
	}

	storedHash, err := a.profileRepository.GetPasswordHash(ctx, profile)
	if err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			log.Info().Str("profile", string(profile)).Msg("login attempt on profile without password")
			a.metrics.RecordLogin(profile, metrics.ResultBootstrap)
			return state, ErrBootstrapRequired
		}
		log.Err(err).Str("func", "accessService.Login").Msg("error reading profile credential")
		a.metrics.RecordLogin(profile, metrics.ResultError)
		return state, fmt.Errorf("error reading profile credential: %w", err)
	}

	if active, ok := state.Active(); ok && active != profile {
		a.metrics.RecordLogin(profile, metrics.ResultRejected)
		return state, ErrSessionActive
	}

	if !utils.EqualDigests(utils.PasswordDigest(secret, a.hashKey), storedHash) {
		log.Warn().Str("profile", string(profile)).Msg("wrong password")
		a.metrics.RecordLogin(profile, metrics.ResultWrongPassword)
		return state, ErrWrongPassword
	}

	next := state.Clone()
	next.Authenticated[profile] = true
	next.ActiveProfile = profile

	log.Info().Str("profile", string(profile)).Msg("profile logged in")
	a.metrics.RecordLogin(profile, metrics.ResultOK)
	return next, nil
}

// Logout clears the active profile's authenticated flag and frees the
// active slot. Logging out of an empty session is a no-op.
func (a *accessService) Logout(ctx context.Context, state models.SessionState) models.SessionState {
	next := state.Clone()
	if next.ActiveProfile == "" {
		return next
	}

	delete(next.Authenticated, next.ActiveProfile)
	logger.FromContext(ctx).Info().Str("profile", string(next.ActiveProfile)).Msg("profile logged out")
	next.ActiveProfile = ""
	return next
}

// SetPassword stores a new digest for profile.
//
// It is allowed when state holds an authenticated Administrador, or as the
// bootstrap of the Administrador profile while it has no credential yet.
// Everything else is ErrForbidden.
func (a *accessService) SetPassword(ctx context.Context, state models.SessionState, profile models.Profile, secret string) error {
	log := logger.FromContext(ctx)

	if !profile.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidProfile, profile)
	}
	if strings.TrimSpace(secret) == "" {
		return ErrInvalidPassword
	}

	if err := a.RequireAdmin(state); err != nil {
		if profile != models.ProfileAdmin {
			return err
		}
		configured, err := a.ProfileStatus(ctx, models.ProfileAdmin)
		if err != nil {
			return err
		}
		if configured {
			return ErrForbidden
		}
		log.Info().Msg("bootstrapping Administrador password")
	}

	if err := a.profileRepository.UpsertPasswordHash(ctx, profile, utils.PasswordDigest(secret, a.hashKey)); err != nil {
		log.Err(err).Str("func", "accessService.SetPassword").Str("profile", string(profile)).Msg("error storing password")
		return fmt.Errorf("error storing password: %w", err)
	}

	return nil
}

// ProfileStatus reports whether profile has a stored credential.
func (a *accessService) ProfileStatus(ctx context.Context, profile models.Profile) (bool, error) {
	if !profile.IsValid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidProfile, profile)
	}

	_, err := a.profileRepository.GetPasswordHash(ctx, profile)
	switch {
	case errors.Is(err, store.ErrCredentialNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("error reading profile credential: %w", err)
	}
	return true, nil
}

// Visibility returns the departments the active profile may read.
func (a *accessService) Visibility(state models.SessionState) ([]models.Department, error) {
	return Visibility(state)
}

// RequireAdmin returns ErrForbidden unless the Administrador profile is
// active and authenticated.
func (a *accessService) RequireAdmin(state models.SessionState) error {
	return RequireAdmin(state)
}

// CreateToken signs a session token carrying state.
func (a *accessService) CreateToken(ctx context.Context, state models.SessionState) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, state, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "accessService.CreateToken").Msg("error generating token")
		return models.Token{}, fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}

// ParseToken verifies tokenString and returns the session it carries.
func (a *accessService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("rejected session token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return token, nil
}

// Visibility maps the active profile of state to its readable departments:
// Fiscal sees Fiscal, Pessoal sees Pessoal (DP), RH and Administrador see
// both.
func Visibility(state models.SessionState) ([]models.Department, error) {
	active, ok := state.Active()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	switch active {
	case models.ProfileFiscal:
		return []models.Department{models.Fiscal}, nil
	case models.ProfilePersonnel:
		return []models.Department{models.Personnel}, nil
	default:
		return append([]models.Department(nil), models.Departments...), nil
	}
}

// RequireAdmin returns ErrForbidden unless the Administrador profile is
// active and authenticated in state.
func RequireAdmin(state models.SessionState) error {
	if active, ok := state.Active(); !ok || active != models.ProfileAdmin {
		return ErrForbidden
	}
	return nil
}
