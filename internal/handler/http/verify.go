package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/utils"
	"github.com/MKhiriev/go-cert-registry/models"
)

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	hash := chi.URLParam(r, "hash")

	result, err := h.services.VerifyService.VerifyCertificate(r.Context(), hash)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verify").Str("certificate_hash", hash).Msg("error verifying certificate")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.VerifyResponse{
		Valid:    result.Valid,
		TokenID:  result.TokenID,
		Metadata: result.Metadata,
		Message:  result.Message,
	}, http.StatusOK)
}
