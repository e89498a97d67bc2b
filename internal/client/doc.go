// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the certctl command-line client runtime.
//
// It talks to the metadata server over its REST API and, when a ledger is
// configured, to the registry contract directly for issuance and on-chain
// inspection.
package client
