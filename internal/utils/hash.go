// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for certificate-hash computation and normalization,
// HTTP response writing, HTTP client initialization, unique name
// generation, and other common operations.
package utils

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"
	"sync"

	"golang.org/x/crypto/sha3"
)

// ErrInvalidHash is returned when a certificate hash string cannot be
// interpreted as a 32-byte hex digest.
var ErrInvalidHash = errors.New("invalid certificate hash")

// hasherPool is a package-level pool of reusable keccak-256 hash instances.
// Unlike a keyed HMAC pool, keccak states need no configuration so the pool
// initializes itself on first use.
var hasherPool = sync.Pool{
	New: func() any {
		return sha3.NewLegacyKeccak256()
	},
}

// HashBytes computes the keccak-256 digest of data and returns it as a
// 0x-prefixed lowercase hex string.
//
// The same algorithm must be used wherever a certificate is hashed,
// at upload time on the server and at verification time on the client,
// because the digest doubles as the registry ledger's bytes32 key.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
func HashBytes(data []byte) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return "0x" + hex.EncodeToString(sum)
}

// HashReader computes the keccak-256 digest of everything readable from r
// and returns it in the same format as [HashBytes]. Use this form for large
// files so the whole payload is never held in memory at once.
func HashReader(r io.Reader) (string, error) {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	if _, err := io.Copy(h, r); err != nil {
		h.Reset()
		hasherPool.Put(h)
		return "", fmt.Errorf("error hashing stream: %w", err)
	}
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return "0x" + hex.EncodeToString(sum), nil
}

// NormalizeHash lowercases the given hash string and prepends the standard
// "0x" prefix when it is absent. It performs no validity checking; use
// [HashToBytes32] when the value must be a well-formed digest.
func NormalizeHash(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	if !strings.HasPrefix(h, "0x") {
		h = "0x" + h
	}
	return h
}

// HashToBytes32 converts a hex digest string (with or without the 0x prefix)
// into the fixed 32-byte representation expected by the registry contract.
//
// Returns [ErrInvalidHash] if the payload is not exactly 64 hex digits.
func HashToBytes32(h string) ([32]byte, error) {
	var out [32]byte

	trimmed := strings.TrimPrefix(NormalizeHash(h), "0x")
	if len(trimmed) != 64 {
		return out, fmt.Errorf("%w: expected 64 hex digits, got %d", ErrInvalidHash, len(trimmed))
	}

	decoded, err := hex.DecodeString(trimmed)
	if err != nil {
		return out, fmt.Errorf("%w: %s", ErrInvalidHash, err)
	}

	copy(out[:], decoded)
	return out, nil
}
