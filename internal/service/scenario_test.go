package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/ledger"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/internal/store"
	"github.com/MKhiriev/go-cert-registry/internal/utils"
	"github.com/MKhiriev/go-cert-registry/models"
)

// fakeRegistry is an in-process stand-in for the registry contract with
// the contract's real duplicate-hash rule.
type fakeRegistry struct {
	mu     sync.Mutex
	issued map[[32]byte]int64
	uris   map[int64]string
	owners map[int64]string
	next   int64
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		issued: make(map[[32]byte]int64),
		uris:   make(map[int64]string),
		owners: make(map[int64]string),
		next:   1,
	}
}

func (f *fakeRegistry) IssueCertificate(_ context.Context, recipient string, certHash [32]byte, metadataURI string) (models.IssueResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.issued[certHash]; ok {
		return models.IssueResult{}, ledger.ErrDuplicateCertificate
	}

	tokenID := f.next
	f.next++
	f.issued[certHash] = tokenID
	f.uris[tokenID] = metadataURI
	f.owners[tokenID] = recipient

	return models.IssueResult{TokenID: tokenID, TokenIDKnown: true, TxHash: fmt.Sprintf("0xtx%d", tokenID)}, nil
}

func (f *fakeRegistry) VerifyCertificate(_ context.Context, certHash [32]byte) (bool, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tokenID, ok := f.issued[certHash]
	return ok, tokenID, nil
}

func (f *fakeRegistry) CertificateHash(_ context.Context, tokenID int64) ([32]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for hash, id := range f.issued {
		if id == tokenID {
			return hash, nil
		}
	}
	return [32]byte{}, fmt.Errorf("token %d does not exist", tokenID)
}

func (f *fakeRegistry) TokenURI(_ context.Context, tokenID int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uris[tokenID], nil
}

func (f *fakeRegistry) OwnerOf(_ context.Context, tokenID int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.owners[tokenID], nil
}

func (f *fakeRegistry) TotalCertificates(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.next - 1, nil
}

func (f *fakeRegistry) ContractInfo(_ context.Context) (models.ContractInfo, error) {
	return models.ContractInfo{Name: "CertificateRegistry", Symbol: "CERT"}, nil
}

func (f *fakeRegistry) CertificateInfo(ctx context.Context, tokenID int64) (models.OnChainCertificate, error) {
	hash, err := f.CertificateHash(ctx, tokenID)
	if err != nil {
		return models.OnChainCertificate{}, err
	}
	uri, _ := f.TokenURI(ctx, tokenID)
	owner, _ := f.OwnerOf(ctx, tokenID)

	return models.OnChainCertificate{
		TokenID:         tokenID,
		CertificateHash: "0x" + fmt.Sprintf("%x", hash),
		Owner:           owner,
		MetadataURI:     uri,
		Valid:           true,
	}, nil
}

func (f *fakeRegistry) CanIssue() bool { return true }

// ─────────────────────────────────────────────
// Upload → issue → verify, end to end
// ─────────────────────────────────────────────

func TestCertificateLifecycle(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()

	// 17-byte fixture, same bytes every run.
	fixture := []byte("certificate-17b!!")
	require.Len(t, fixture, 17)

	files, err := store.NewCertificateFileStorage(t.TempDir(), log)
	require.NoError(t, err)
	repo := store.NewMemoryCertificateRepository(false, log)
	registry := newFakeRegistry()

	appCfg := config.App{PublicBaseURL: "http://localhost:3000"}
	certificates := NewCertificateService(repo, files, appCfg, log)
	issue := NewIssueService(registry, log)
	verify := NewVerifyService(repo, registry, appCfg, log)

	// Upload: the digest is computed over the persisted bytes and must
	// match an independent hash of the fixture.
	uploaded, err := certificates.UploadCertificate(ctx, models.UploadRequest{
		FileName: "contract.pdf",
		Data:     fixture,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), uploaded.ID)
	assert.Equal(t, utils.HashBytes(fixture), uploaded.CertificateHash)
	assert.Equal(t, "http://localhost:3000/api/metadata/1", uploaded.MetadataURI)

	// Issue: the first token the registry assigns is 1.
	recipient := "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	issued, err := issue.IssueCertificate(ctx, recipient, uploaded.CertificateHash, uploaded.MetadataURI)
	require.NoError(t, err)
	require.True(t, issued.TokenIDKnown)
	assert.Equal(t, int64(1), issued.TokenID)

	// Verify the issued hash: valid, same token id, metadata attached.
	result, err := verify.VerifyCertificate(ctx, uploaded.CertificateHash)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, issued.TokenID, result.TokenID)
	require.NotNil(t, result.Metadata)
	assert.Equal(t, uploaded.CertificateHash, result.Metadata.CertificateHash)

	// A hash never issued verifies as invalid, not as an error.
	mutated := append([]byte{}, fixture...)
	mutated[0]++
	neverIssued := utils.HashBytes(mutated)
	require.NotEqual(t, uploaded.CertificateHash, neverIssued)

	result, err = verify.VerifyCertificate(ctx, neverIssued)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Zero(t, result.TokenID)

	// Issuing the same hash twice fails and leaves the token count alone.
	_, err = issue.IssueCertificate(ctx, recipient, uploaded.CertificateHash, uploaded.MetadataURI)
	require.ErrorIs(t, err, ledger.ErrDuplicateCertificate)

	total, err := registry.TotalCertificates(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
