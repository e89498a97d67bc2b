package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-cert-registry/internal/logger"
)

// certificateFile serves stored certificate bytes back by their generated
// storage name. Content sniffing is left to the standard library.
func (h *Handler) certificateFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")

	data, err := h.services.CertificateService.CertificateFile(r.Context(), name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.certificateFile").Str("file", name).Msg("error reading certificate file")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
