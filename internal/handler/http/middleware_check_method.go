// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-delivery-board/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// A request whose path is known but whose method is not gets the same JSON
// 404 as an unknown path, so callers cannot probe which methods a route
// supports. Parameterised routes such as /api/profiles/{profile} are
// matched through the router itself.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), nil)
	}
}
