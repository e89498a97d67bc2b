package ledger

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// classifyChainError maps a raw error from the chain client onto the
// package's failure taxonomy. The original error stays wrapped inside the
// sentinel so diagnostics are never lost, but callers only ever need to
// match the sentinel.
//
// Revert reasons are matched as substrings because different node
// implementations wrap them differently ("execution reverted: Certificate
// already issued", "Error: VM Exception ... reason: 'Certificate already
// issued'", and so on).
func classifyChainError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrUserCancelled, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "already issued"):
		return fmt.Errorf("%w: %v", ErrDuplicateCertificate, err)

	case strings.Contains(msg, "caller is not the owner"),
		strings.Contains(msg, "ownable"):
		return fmt.Errorf("%w: %v", ErrUnauthorizedIssuer, err)

	case strings.Contains(msg, "insufficient funds"):
		return fmt.Errorf("%w: %v", ErrInsufficientFunds, err)

	case strings.Contains(msg, "user rejected"),
		strings.Contains(msg, "user denied"):
		return fmt.Errorf("%w: %v", ErrUserCancelled, err)

	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no such host"),
		strings.Contains(msg, "i/o timeout"),
		strings.Contains(msg, "network is unreachable"):
		return fmt.Errorf("%w: %v", ErrNetwork, err)

	default:
		return fmt.Errorf("%w: %v", ErrUnknownChain, err)
	}
}
