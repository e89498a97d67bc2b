package ledger

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
)

// decodeIssuedTokenID scans the receipt's logs for the CertificateIssued
// event and returns the token id from its first indexed topic.
//
// Matching is by the named event's signature hash (topic 0), never by log
// position: the transaction may have emitted ERC-721 Transfer logs or other
// events first. A receipt without a matching log yields (0, false) so the
// caller knows the fallback value is in use.
func decodeIssuedTokenID(contractABI abi.ABI, receipt *types.Receipt) (int64, bool) {
	event, ok := contractABI.Events[issuedEventName]
	if !ok {
		return 0, false
	}

	for _, entry := range receipt.Logs {
		if len(entry.Topics) < 2 || entry.Topics[0] != event.ID {
			continue
		}

		// tokenId is the first indexed input, so it lives in topic 1.
		return new(big.Int).SetBytes(entry.Topics[1].Bytes()).Int64(), true
	}

	return 0, false
}
