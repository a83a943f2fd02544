package bridger

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
)

const etherDecimals = 18

// Status is the final state of a run
type Status string

const (
	// StatusBridged means the outbound transfer was mined
	StatusBridged Status = "bridged"
	// StatusAlreadyDeployed means the token already exists on L2 and nothing was sent
	StatusAlreadyDeployed Status = "already_deployed"
	// StatusDryRun means the run stopped before sending any tx
	StatusDryRun Status = "dry_run"
)

// BridgeRequest is the bridging operation of one run
type BridgeRequest struct {
	Token     common.Address
	Router    common.Address
	Amount    *big.Int
	Sender    common.Address
	Recipient common.Address
	key       *ecdsa.PrivateKey
}

// GasPricing holds the fees paid by the outbound transfer
type GasPricing struct {
	L1FeePerGas *big.Int
	L2FeePerGas *big.Int
	L1GasLimit  uint64
	L2GasLimit  uint64
	// MaxSubmissionCost covers the creation of the retryable ticket on L2
	MaxSubmissionCost *big.Int
	// Value is the wei sent along the outbound transfer
	Value *big.Int
}

// TokenInfo is the on-chain data of the bridged token
type TokenInfo struct {
	L1Address common.Address
	L2Address common.Address
	Name      string
	Symbol    string
	Gateway   common.Address
}

// TransferOutcome is the result of a run
type TransferOutcome struct {
	Status  Status
	Request BridgeRequest
	Pricing *GasPricing
	Token   TokenInfo
	// NeedsApproval is set when the allowance to the gateway was 0
	NeedsApproval  bool
	ApprovalTxHash *common.Hash
	TransferTxHash common.Hash
	Receipt        *types.Receipt
}

func formatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -etherDecimals).String()
}
