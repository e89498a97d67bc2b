// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-cert-registry/models"
)

var (
	errStorage = errors.New("storage error")
	errChain   = errors.New("chain error")
)

// ─────────────────────────────────────────────
// Mock: store.CertificateRepository
// ─────────────────────────────────────────────

type mockCertificateRepository struct {
	saveFn       func(ctx context.Context, record models.CertificateRecord) (int64, error)
	getFn        func(ctx context.Context, id int64) (models.CertificateRecord, error)
	findByHashFn func(ctx context.Context, hash string) (models.CertificateRecord, error)
	listFn       func(ctx context.Context) ([]models.CertificateRecord, error)
	countFn      func(ctx context.Context) (int64, error)
}

func (m *mockCertificateRepository) Save(ctx context.Context, record models.CertificateRecord) (int64, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, record)
	}
	return 1, nil
}

func (m *mockCertificateRepository) Get(ctx context.Context, id int64) (models.CertificateRecord, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.CertificateRecord{}, nil
}

func (m *mockCertificateRepository) FindByHash(ctx context.Context, hash string) (models.CertificateRecord, error) {
	if m.findByHashFn != nil {
		return m.findByHashFn(ctx, hash)
	}
	return models.CertificateRecord{}, nil
}

func (m *mockCertificateRepository) List(ctx context.Context) ([]models.CertificateRecord, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockCertificateRepository) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.CertificateFileStorage
// ─────────────────────────────────────────────

type mockFileStorage struct {
	saveFn func(ctx context.Context, originalName string, data []byte) (string, error)
	readFn func(ctx context.Context, name string) ([]byte, error)

	saved map[string][]byte
}

func newMockFileStorage() *mockFileStorage {
	m := &mockFileStorage{saved: map[string][]byte{}}
	m.saveFn = func(_ context.Context, _ string, data []byte) (string, error) {
		name := "certificate-stored"
		m.saved[name] = data
		return name, nil
	}
	m.readFn = func(_ context.Context, name string) ([]byte, error) {
		data, ok := m.saved[name]
		if !ok {
			return nil, errStorage
		}
		return data, nil
	}
	return m
}

func (m *mockFileStorage) Save(ctx context.Context, originalName string, data []byte) (string, error) {
	return m.saveFn(ctx, originalName, data)
}

func (m *mockFileStorage) Read(ctx context.Context, name string) ([]byte, error) {
	return m.readFn(ctx, name)
}

// ─────────────────────────────────────────────
// Mock: ledger.Registry
// ─────────────────────────────────────────────

type mockRegistry struct {
	issueFn    func(ctx context.Context, recipient string, certHash [32]byte, metadataURI string) (models.IssueResult, error)
	verifyFn   func(ctx context.Context, certHash [32]byte) (bool, int64, error)
	canIssueFn func() bool
}

func (m *mockRegistry) IssueCertificate(ctx context.Context, recipient string, certHash [32]byte, metadataURI string) (models.IssueResult, error) {
	if m.issueFn != nil {
		return m.issueFn(ctx, recipient, certHash, metadataURI)
	}
	return models.IssueResult{}, nil
}

func (m *mockRegistry) VerifyCertificate(ctx context.Context, certHash [32]byte) (bool, int64, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, certHash)
	}
	return false, 0, nil
}

func (m *mockRegistry) CertificateHash(_ context.Context, _ int64) ([32]byte, error) {
	return [32]byte{}, nil
}

func (m *mockRegistry) TokenURI(_ context.Context, _ int64) (string, error) {
	return "", nil
}

func (m *mockRegistry) OwnerOf(_ context.Context, _ int64) (string, error) {
	return "", nil
}

func (m *mockRegistry) TotalCertificates(_ context.Context) (int64, error) {
	return 0, nil
}

func (m *mockRegistry) ContractInfo(_ context.Context) (models.ContractInfo, error) {
	return models.ContractInfo{}, nil
}

func (m *mockRegistry) CertificateInfo(_ context.Context, tokenID int64) (models.OnChainCertificate, error) {
	return models.OnChainCertificate{TokenID: tokenID}, nil
}

func (m *mockRegistry) CanIssue() bool {
	if m.canIssueFn != nil {
		return m.canIssueFn()
	}
	return true
}
