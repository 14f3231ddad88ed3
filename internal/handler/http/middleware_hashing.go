package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-game-keeper/internal/app"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
)

// HashHeader carries the hex HMAC-SHA256 of the uncompressed request body.
const HashHeader = "HashSHA256"

// withHashCheck verifies the HashSHA256 header against the request body.
// It runs after withGZip so the digest covers the plain JSON. With no key
// configured every request passes.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		signature := r.Header.Get(HashHeader)
		if signature == "" {
			logger.FromRequest(r).Err(ErrMissingSignature).Str("func", "*Handler.withHashCheck").Send()
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withHashCheck").Msg("failed to read request body")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, signature) {
			logger.FromRequest(r).Err(ErrSignatureMismatch).Str("func", "*Handler.withHashCheck").
				Str("signature", signature).
				Str("expected", h.hasher.SumHex(body)).
				Send()
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
