// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errInvalidTokenID is returned when the {tokenId} route parameter is not a
// decimal integer.
var errInvalidTokenID = errors.New("invalid token id")
