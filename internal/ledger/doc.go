// Package ledger implements the client for the on-chain certificate
// registry contract.
//
// The registry is the source of truth for which content hashes are
// certified. This package exposes issuance and the read-only surface of the
// contract, translates raw chain errors into the application's failure
// taxonomy, and recovers the assigned token id from the issuance event log.
// The contract itself is external; its storage is treated as an opaque
// ledger behind the ABI.
package ledger
