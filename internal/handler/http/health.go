package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/utils"
	"github.com/MKhiriev/go-cert-registry/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	count, err := h.services.CertificateService.Count(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.health").Msg("error counting certificates")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{
		Status:            "OK",
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		CertificatesCount: count,
	}, http.StatusOK)
}
