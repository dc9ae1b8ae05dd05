package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-dict-keeper/internal/app"
	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/utils"
)

// withHashing checks the HashSHA256 header of incoming bodies, when one is
// sent, and signs every response body. It is a no-op without a hash key.
func (h *Handler) withHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}
		log := logger.FromRequest(r)

		if signature := r.Header.Get(utils.HashHeader); signature != "" && r.Body != nil {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to read request body")
				http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if !h.hasher.Verify(body, signature) {
				log.Error().Str("func", "*Handler.withHashing").
					Str("hash from request", signature).
					Msg("hashes are not equal")
				http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
				return
			}
		}

		hw := &hashingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(hw, r)

		body := hw.buf.Bytes()
		w.Header().Set(utils.HashHeader, h.hasher.SumHex(body))
		w.WriteHeader(hw.status)
		if _, err := w.Write(body); err != nil {
			log.Err(err).Str("func", "*Handler.withHashing").Msg("failed to write response body")
		}
	})
}

// hashingResponseWriter holds the response back until the body is complete
// so its digest can go into a header.
type hashingResponseWriter struct {
	http.ResponseWriter
	buf         bytes.Buffer
	status      int
	wroteHeader bool
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}
