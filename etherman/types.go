package etherman

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// NetworkSID is used to identify the network.
type NetworkSID string

const (
	// L1 identifies the chain holding the token and the gateway router
	L1 NetworkSID = "l1"
	// L2 identifies the rollup
	L2 NetworkSID = "l2"
)

// FeeData holds the fee estimation of a chain. MaxFeePerGas and MaxPriorityFeePerGas are nil
// for chains without a base fee, GasPrice is nil for chains with one.
type FeeData struct {
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	GasPrice             *big.Int
}

// ContractCall describes a contract method invocation
type ContractCall struct {
	Address common.Address
	ABI     *abi.ABI
	Method  string
	Args    []interface{}
	// Value is the amount of wei sent along a write
	Value *big.Int
}
