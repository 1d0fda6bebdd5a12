package http

import (
	"bytes"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/MKhiriev/go-delivery-board/internal/app"
	"github.com/MKhiriev/go-delivery-board/internal/utils"
)

const contentHashHeader = "X-Content-SHA256"

// uploadIntegrity verifies the optional X-Content-SHA256 header against the
// raw request body, still compressed when sent with a Content-Encoding.
// Requests without the header pass through unchanged.
func (h *Handler) uploadIntegrity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hashFromRequest := r.Header.Get(contentHashHeader)
		if hashFromRequest == "" {
			next.ServeHTTP(w, r)
			return
		}

		h.logger.Debug().Str("func", "*Handler.uploadIntegrity").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadSize()))
		r.Body.Close()
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.uploadIntegrity").Msg("failed to read request body")
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, nil)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashedBody := hex.EncodeToString(utils.Hash(body))
		if !utils.EqualDigests(hashedBody, hashFromRequest) {
			h.logger.Error().Str("func", "*Handler.uploadIntegrity").
				Str("hash from request", hashFromRequest).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			utils.WriteError(w, http.StatusBadRequest, app.MsgIntegrityCheckFailed, nil)
			return
		}

		h.logger.Debug().Str("func", "*Handler.uploadIntegrity").
			Str("hashed body", hashedBody).
			Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
