// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-delivery-board/internal/app"
	"github.com/MKhiriev/go-delivery-board/internal/logger"
	"github.com/MKhiriev/go-delivery-board/internal/utils"
	"github.com/MKhiriev/go-delivery-board/models"
)

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	state := utils.GetSessionFromContext(r.Context())
	utils.WriteJSON(w, h.sessionView(state), http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, nil)
		return
	}

	profile := parseProfile(req.Profile)
	state, err := h.services.AccessService.Login(r.Context(), utils.GetSessionFromContext(r.Context()), profile, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if !h.issueToken(w, r, state) {
		return
	}
	log.Info().Str("profile", string(profile)).Msg("logged in")
	utils.WriteJSON(w, h.sessionView(state), http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	state := h.services.AccessService.Logout(r.Context(), utils.GetSessionFromContext(r.Context()))

	if !h.issueToken(w, r, state) {
		return
	}
	utils.WriteJSON(w, h.sessionView(state), http.StatusOK)
}

func (h *Handler) getProfileStatus(w http.ResponseWriter, r *http.Request) {
	profile := parseProfile(chi.URLParam(r, "profile"))

	configured, err := h.services.AccessService.ProfileStatus(r.Context(), profile)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileStatus{
		Profile:     profile,
		DisplayName: profile.DisplayName(),
		Configured:  configured,
	}, http.StatusOK)
}

func (h *Handler) setPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.setPassword").Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, nil)
		return
	}

	profile := parseProfile(chi.URLParam(r, "profile"))
	if err := h.services.AccessService.SetPassword(r.Context(), utils.GetSessionFromContext(r.Context()), profile, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Str("profile", string(profile)).Msg("password stored")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sessionView(state models.SessionState) models.SessionView {
	view := models.SessionView{
		Authenticated: state.AuthenticatedProfiles(),
		Visibility:    []models.Department{},
	}
	if active, ok := state.Active(); ok {
		view.ActiveProfile = active
		view.DisplayName = active.DisplayName()
	}
	if visible, err := h.services.AccessService.Visibility(state); err == nil {
		view.Visibility = visible
	}
	return view
}

// parseProfile resolves a profile key or alias. Unknown names are passed
// through unchanged so the access service reports them.
func parseProfile(s string) models.Profile {
	if p, ok := models.ParseProfile(s); ok {
		return p
	}
	return models.Profile(s)
}
