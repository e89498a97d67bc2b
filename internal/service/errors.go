// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNoFileProvided = errors.New("no file provided")

	ErrInvalidHashProvided      = errors.New("invalid certificate hash provided")
	ErrInvalidRecipientProvided = errors.New("invalid recipient address provided")

	ErrLedgerNotConfigured = errors.New("registry ledger is not configured")
)
