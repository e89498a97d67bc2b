package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/service"
	"github.com/MKhiriev/go-cert-registry/internal/utils"
	"github.com/MKhiriev/go-cert-registry/models"
)

// maxUploadBytes bounds the multipart form held in memory per upload.
const maxUploadBytes = 32 << 20

func (h *Handler) uploadCertificate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Err(err).Str("func", "*Handler.uploadCertificate").Msg("invalid multipart form")
		writeError(w, service.ErrNoFileProvided)
		return
	}

	file, header, err := r.FormFile("certificate")
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadCertificate").Msg("no certificate file in form")
		writeError(w, service.ErrNoFileProvided)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadCertificate").Msg("error reading uploaded file")
		writeError(w, err)
		return
	}

	result, err := h.services.CertificateService.UploadCertificate(r.Context(), models.UploadRequest{
		FileName: header.Filename,
		Data:     data,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadCertificate").Msg("error uploading certificate")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.UploadResponse{
		Success:         true,
		TokenID:         result.ID,
		CertificateHash: result.CertificateHash,
		MetadataURI:     result.MetadataURI,
		FilePath:        result.FileReference,
	}, http.StatusOK)
}

func (h *Handler) metadata(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	tokenID, err := strconv.ParseInt(chi.URLParam(r, "tokenId"), 10, 64)
	if err != nil {
		writeError(w, errInvalidTokenID)
		return
	}

	metadata, err := h.services.CertificateService.Metadata(r.Context(), tokenID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.metadata").Int64("token_id", tokenID).Msg("error fetching metadata")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, metadata, http.StatusOK)
}

func (h *Handler) listCertificates(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entries, err := h.services.CertificateService.ListCertificates(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCertificates").Msg("error listing certificates")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
