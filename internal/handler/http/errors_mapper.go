package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cert-registry/internal/ledger"
	"github.com/MKhiriev/go-cert-registry/internal/service"
	"github.com/MKhiriev/go-cert-registry/internal/store"
	"github.com/MKhiriev/go-cert-registry/internal/utils"
	"github.com/MKhiriev/go-cert-registry/models"
)

var errorStatusMap = map[error]int{
	errInvalidTokenID: http.StatusBadRequest,

	service.ErrNoFileProvided:           http.StatusBadRequest,
	service.ErrInvalidHashProvided:      http.StatusBadRequest,
	service.ErrInvalidRecipientProvided: http.StatusBadRequest,
	service.ErrLedgerNotConfigured:      http.StatusServiceUnavailable,

	ledger.ErrDuplicateCertificate: http.StatusConflict,
	ledger.ErrUnauthorizedIssuer:   http.StatusForbidden,
	ledger.ErrInsufficientFunds:    http.StatusPaymentRequired,
	ledger.ErrUserCancelled:        http.StatusBadRequest,
	ledger.ErrNetwork:              http.StatusBadGateway,
	ledger.ErrUnknownChain:         http.StatusBadGateway,

	store.ErrCertificateNotFound: http.StatusNotFound,
	store.ErrFileNotFound:        http.StatusNotFound,
	store.ErrDuplicateHash:       http.StatusConflict,
	store.ErrCertificateNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as the API's uniform {"error": ...} envelope with
// the status derived from the error class.
func writeError(w http.ResponseWriter, err error) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err))
}
