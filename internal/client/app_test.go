package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/utils"
	"github.com/MKhiriev/go-cert-registry/models"
)

func newTestApp(t *testing.T, handler http.HandlerFunc) (*App, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	httpClient := utils.NewHTTPClient()
	httpClient.SetBaseURL(srv.URL)
	httpClient.SetTimeout(5 * time.Second)

	out := &bytes.Buffer{}
	return &App{
		http:   httpClient,
		out:    out,
		logger: logger.Nop(),
	}, out
}

func TestApp_Upload(t *testing.T) {
	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/upload-certificate", r.URL.Path)

		file, header, err := r.FormFile("certificate")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "contract.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.UploadResponse{
			Success:         true,
			TokenID:         1,
			CertificateHash: "0xabc",
			MetadataURI:     "http://localhost:3000/api/metadata/1",
			FilePath:        "certificate-1-x.pdf",
		})
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "contract.pdf")
	require.NoError(t, os.WriteFile(path, []byte("certificate content"), 0o644))

	err := app.Upload(context.Background(), path)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "id:           1")
	assert.Contains(t, out.String(), "0xabc")
}

func TestApp_Upload_MissingFile(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("server must not be called")
	})

	err := app.Upload(context.Background(), "/does/not/exist.pdf")

	require.Error(t, err)
}

func TestApp_Upload_ServerError(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "no file provided"})
	})

	dir := t.TempDir()
	path := filepath.Join(dir, "contract.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := app.Upload(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no file provided")
}

func TestApp_Verify_ServerFallback(t *testing.T) {
	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/verify/0xabc", r.URL.Path)

		metadata := models.TokenMetadata{Name: "Certificate #2", CertificateHash: "0xabc"}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.VerifyResponse{Valid: true, TokenID: 2, Metadata: &metadata})
	})

	err := app.Verify(context.Background(), "0xabc")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "VALID: token id 2")
	assert.Contains(t, out.String(), "Certificate #2")
}

func TestApp_Verify_ServerFallback_Invalid(t *testing.T) {
	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.VerifyResponse{Valid: false, Message: "Certificate not found"})
	})

	err := app.Verify(context.Background(), "0xabc")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "INVALID: Certificate not found")
}

func TestApp_List(t *testing.T) {
	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/certificates", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.CertificateListEntry{
			{TokenID: 1, TokenMetadata: models.TokenMetadata{Name: "Certificate #1", CertificateHash: "0xaa"}},
			{TokenID: 2, TokenMetadata: models.TokenMetadata{Name: "Certificate #2", CertificateHash: "0xbb"}},
		})
	})

	err := app.List(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Certificate #1")
	assert.Contains(t, out.String(), "0xbb")
}

func TestApp_List_Empty(t *testing.T) {
	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	})

	err := app.List(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "no certificates")
}

func TestApp_Health(t *testing.T) {
	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.HealthResponse{
			Status:            "OK",
			Timestamp:         "2026-09-01T00:00:00Z",
			CertificatesCount: 3,
		})
	})

	err := app.Health(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "status: OK")
	assert.Contains(t, out.String(), "certificates: 3")
}

func TestApp_Issue_NoLedger(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	err := app.Issue(context.Background(), "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", "0xabc", "uri")

	require.ErrorIs(t, err, errLedgerNotConfigured)
}

func TestApp_Info_NoLedger(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	err := app.Info(context.Background())

	require.ErrorIs(t, err, errLedgerNotConfigured)
}

func TestApp_IssueFile_NoLedger(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected before the ledger check")
	})

	path := filepath.Join(t.TempDir(), "diploma.pdf")
	require.NoError(t, os.WriteFile(path, []byte("diploma"), 0o644))

	err := app.IssueFile(context.Background(), path, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

	require.ErrorIs(t, err, errLedgerNotConfigured)
}

func TestApp_VerifyFile_HashesLocally(t *testing.T) {
	payload := []byte("certificate body")
	wantHash := utils.HashBytes(payload)

	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/verify/"+wantHash, r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.VerifyResponse{Valid: true, TokenID: 4})
	})

	path := filepath.Join(t.TempDir(), "certificate.pdf")
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	err := app.VerifyFile(context.Background(), path)

	require.NoError(t, err)
	assert.Contains(t, out.String(), wantHash)
	assert.Contains(t, out.String(), "VALID: token id 4")
}

func TestApp_VerifyFile_MissingFile(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an unreadable file")
	})

	err := app.VerifyFile(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"))

	require.Error(t, err)
}
