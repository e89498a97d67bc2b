// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import "errors"

// Failure taxonomy of ledger interactions. Raw chain errors are translated
// into these sentinels by classifyChainError so that callers can match with
// [errors.Is] and render user-actionable messages instead of opaque
// technical strings. The original cause stays attached via wrapping.
var (
	// ErrDuplicateCertificate is returned when the registry rejects an
	// issuance because the certificate hash is already registered.
	ErrDuplicateCertificate = errors.New("this certificate has already been issued; each certificate can only be issued once")

	// ErrUnauthorizedIssuer is returned when the caller does not hold the
	// issuer role on the registry contract.
	ErrUnauthorizedIssuer = errors.New("only the registry owner can issue certificates")

	// ErrInsufficientFunds is returned when the issuer account cannot
	// cover the network transaction cost.
	ErrInsufficientFunds = errors.New("insufficient funds to cover the network transaction cost")

	// ErrUserCancelled is returned when the signing identity declined to
	// authorize the transaction, or the caller abandoned the pending
	// operation.
	ErrUserCancelled = errors.New("transaction was cancelled before it was sent")

	// ErrNetwork is returned on transport or connectivity failures
	// between this application and the chain node.
	ErrNetwork = errors.New("cannot reach the registry ledger; check your connection and try again")

	// ErrUnknownChain is the fallback bucket for chain errors that match
	// no known category. The raw message is preserved via wrapping for
	// diagnostics.
	ErrUnknownChain = errors.New("unexpected ledger error")

	// ErrSignerNotConfigured is returned by IssueCertificate when the
	// client was created without a signing key.
	ErrSignerNotConfigured = errors.New("no signing key configured for issuance")

	// ErrInvalidRecipient is returned when the issuance recipient is not
	// a syntactically valid chain address.
	ErrInvalidRecipient = errors.New("recipient is not a valid chain address")
)
