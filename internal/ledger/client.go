package ledger

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/MKhiriev/go-cert-registry/internal/config"
	"github.com/MKhiriev/go-cert-registry/internal/logger"
	"github.com/MKhiriev/go-cert-registry/models"
)

// registryClient is the go-ethereum backed implementation of [Registry].
//
// It is deliberately retry-free: every call either succeeds once or reports
// a terminal, classified failure, and the caller decides whether to try
// again. Timeouts are bounded only by the supplied context and the
// transport's own behavior.
type registryClient struct {
	eth      *ethclient.Client
	contract *bind.BoundContract
	abi      abi.ABI
	address  common.Address
	signer   *bind.TransactOpts

	logger *logger.Logger
}

// NewRegistryClient dials the configured chain node and binds the registry
// contract. A signing key is optional; without one the client serves the
// read-only surface and IssueCertificate returns [ErrSignerNotConfigured].
func NewRegistryClient(ctx context.Context, cfg config.Ledger, log *logger.Logger) (Registry, error) {
	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		log.Err(err).Str("func", "NewRegistryClient").Str("rpc_url", cfg.RPCURL).Msg("error dialing chain node")
		return nil, classifyChainError(err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		return nil, fmt.Errorf("error parsing registry ABI: %w", err)
	}

	address := common.HexToAddress(cfg.ContractAddress)
	contract := bind.NewBoundContract(address, parsedABI, eth, eth, eth)

	var signer *bind.TransactOpts
	if cfg.PrivateKey != "" {
		key, keyErr := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if keyErr != nil {
			return nil, fmt.Errorf("error parsing issuer private key: %w", keyErr)
		}

		signer, err = bind.NewKeyedTransactorWithChainID(key, big.NewInt(cfg.ChainID))
		if err != nil {
			return nil, fmt.Errorf("error creating transactor: %w", err)
		}
	}

	log.Info().
		Str("contract", address.Hex()).
		Bool("can_issue", signer != nil).
		Msg("registry ledger client created")

	return &registryClient{
		eth:      eth,
		contract: contract,
		abi:      parsedABI,
		address:  address,
		signer:   signer,
		logger:   log,
	}, nil
}

func (c *registryClient) IssueCertificate(ctx context.Context, recipient string, certHash [32]byte, metadataURI string) (models.IssueResult, error) {
	log := logger.FromContext(ctx)

	if c.signer == nil {
		return models.IssueResult{}, ErrSignerNotConfigured
	}
	if !common.IsHexAddress(recipient) {
		return models.IssueResult{}, ErrInvalidRecipient
	}

	opts := *c.signer
	opts.Context = ctx

	tx, err := c.contract.Transact(&opts, "issueCertificate", common.HexToAddress(recipient), certHash, metadataURI)
	if err != nil {
		log.Err(err).Str("func", "*registryClient.IssueCertificate").Msg("issuance transaction rejected")
		return models.IssueResult{}, classifyChainError(err)
	}

	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		log.Err(err).
			Str("func", "*registryClient.IssueCertificate").
			Str("tx", tx.Hash().Hex()).
			Msg("error waiting for issuance confirmation")
		return models.IssueResult{}, classifyChainError(err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		// Mined but reverted; revert reasons are not carried in receipts,
		// so only the fallback bucket applies here.
		return models.IssueResult{}, fmt.Errorf("%w: transaction %s reverted", ErrUnknownChain, receipt.TxHash.Hex())
	}

	tokenID, found := decodeIssuedTokenID(c.abi, receipt)
	if !found {
		log.Warn().
			Str("tx", receipt.TxHash.Hex()).
			Msg("issuance confirmed but no CertificateIssued event found; token id unknown")
	}

	return models.IssueResult{
		TokenID:      tokenID,
		TokenIDKnown: found,
		TxHash:       receipt.TxHash.Hex(),
	}, nil
}

func (c *registryClient) VerifyCertificate(ctx context.Context, certHash [32]byte) (bool, int64, error) {
	var out []interface{}
	err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "verifyCertificate", certHash)
	if err != nil {
		return false, 0, classifyChainError(err)
	}

	valid := *abi.ConvertType(out[0], new(bool)).(*bool)
	tokenID := abi.ConvertType(out[1], new(big.Int)).(*big.Int)

	return valid, tokenID.Int64(), nil
}

func (c *registryClient) CertificateHash(ctx context.Context, tokenID int64) ([32]byte, error) {
	var out []interface{}
	err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getCertificateHash", big.NewInt(tokenID))
	if err != nil {
		return [32]byte{}, classifyChainError(err)
	}

	return *abi.ConvertType(out[0], new([32]byte)).(*[32]byte), nil
}

func (c *registryClient) TokenURI(ctx context.Context, tokenID int64) (string, error) {
	var out []interface{}
	err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "tokenURI", big.NewInt(tokenID))
	if err != nil {
		return "", classifyChainError(err)
	}

	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func (c *registryClient) OwnerOf(ctx context.Context, tokenID int64) (string, error) {
	var out []interface{}
	err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "ownerOf", big.NewInt(tokenID))
	if err != nil {
		return "", classifyChainError(err)
	}

	return abi.ConvertType(out[0], new(common.Address)).(*common.Address).Hex(), nil
}

func (c *registryClient) TotalCertificates(ctx context.Context) (int64, error) {
	var out []interface{}
	err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "totalCertificates")
	if err != nil {
		return 0, classifyChainError(err)
	}

	return abi.ConvertType(out[0], new(big.Int)).(*big.Int).Int64(), nil
}

func (c *registryClient) ContractInfo(ctx context.Context) (models.ContractInfo, error) {
	var info models.ContractInfo

	for _, call := range []struct {
		method string
		dest   *string
	}{
		{method: "name", dest: &info.Name},
		{method: "symbol", dest: &info.Symbol},
	} {
		var out []interface{}
		if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, call.method); err != nil {
			return models.ContractInfo{}, classifyChainError(err)
		}
		*call.dest = *abi.ConvertType(out[0], new(string)).(*string)
	}

	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "owner"); err != nil {
		return models.ContractInfo{}, classifyChainError(err)
	}
	info.Owner = abi.ConvertType(out[0], new(common.Address)).(*common.Address).Hex()

	return info, nil
}

func (c *registryClient) CertificateInfo(ctx context.Context, tokenID int64) (models.OnChainCertificate, error) {
	hash, err := c.CertificateHash(ctx, tokenID)
	if err != nil {
		return models.OnChainCertificate{}, err
	}

	owner, err := c.OwnerOf(ctx, tokenID)
	if err != nil {
		return models.OnChainCertificate{}, err
	}

	uri, err := c.TokenURI(ctx, tokenID)
	if err != nil {
		return models.OnChainCertificate{}, err
	}

	valid, _, err := c.VerifyCertificate(ctx, hash)
	if err != nil {
		return models.OnChainCertificate{}, err
	}

	return models.OnChainCertificate{
		TokenID:         tokenID,
		CertificateHash: "0x" + common.Bytes2Hex(hash[:]),
		Owner:           owner,
		MetadataURI:     uri,
		Valid:           valid,
	}, nil
}

func (c *registryClient) CanIssue() bool {
	return c.signer != nil
}
