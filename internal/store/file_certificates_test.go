package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cert-registry/internal/logger"
)

func newTestFileStorage(t *testing.T) CertificateFileStorage {
	t.Helper()

	storage, err := NewCertificateFileStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	return storage
}

func TestCertificateFileStorage_SaveAndRead(t *testing.T) {
	storage := newTestFileStorage(t)
	ctx := context.Background()

	name, err := storage.Save(ctx, "contract.pdf", []byte("certificate content"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "certificate-"))
	assert.True(t, strings.HasSuffix(name, ".pdf"), "generated name must keep the original extension")

	data, err := storage.Read(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, []byte("certificate content"), data)
}

func TestCertificateFileStorage_Save_UniqueNames(t *testing.T) {
	storage := newTestFileStorage(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		name, err := storage.Save(ctx, "contract.pdf", []byte("same content"))
		require.NoError(t, err)
		assert.False(t, seen[name], "name %q generated twice", name)
		seen[name] = true
	}
}

func TestCertificateFileStorage_Read_NotFound(t *testing.T) {
	storage := newTestFileStorage(t)

	_, err := storage.Read(context.Background(), "certificate-missing.pdf")

	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestCertificateFileStorage_Read_StripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewCertificateFileStorage(dir, logger.Nop())
	require.NoError(t, err)

	secret := filepath.Join(filepath.Dir(dir), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("outside"), 0o600))

	_, err = storage.Read(context.Background(), "../secret.txt")

	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestNewCertificateFileStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "certificates")

	_, err := NewCertificateFileStorage(dir, logger.Nop())

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCertificateFileStorage_Save_NoExtension(t *testing.T) {
	storage := newTestFileStorage(t)

	name, err := storage.Save(context.Background(), "certificate", []byte("data"))

	require.NoError(t, err)
	assert.Equal(t, "", filepath.Ext(name))
}
