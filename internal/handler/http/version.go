package http

import (
	"net/http"

	"github.com/MKhiriev/go-delivery-board/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
		return
	}

	utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
}
