package bridger

import (
	"fmt"
	"math/big"

	"github.com/0xPolygonHermez/token-bridger/etherman"
)

const percent = 100

// ComputeGasPricing derives the submission cost and the call value of the outbound transfer.
// The fee of each chain is its max fee per gas, or its gas price on legacy chains, inflated by
// marginPercent.
//
//	maxSubmissionCost = l1Fee * l1GasLimit
//	value             = l2Fee * l2GasLimit + maxSubmissionCost
func ComputeGasPricing(l1Fees, l2Fees *etherman.FeeData, l1GasLimit, l2GasLimit, marginPercent uint64) (*GasPricing, error) {
	l1Fee, err := feeCost(l1Fees, marginPercent)
	if err != nil {
		return nil, fmt.Errorf("l1 fee: %w", err)
	}
	l2Fee, err := feeCost(l2Fees, marginPercent)
	if err != nil {
		return nil, fmt.Errorf("l2 fee: %w", err)
	}

	maxSubmissionCost := new(big.Int).Mul(l1Fee, new(big.Int).SetUint64(l1GasLimit))
	value := new(big.Int).Mul(l2Fee, new(big.Int).SetUint64(l2GasLimit))
	value.Add(value, maxSubmissionCost)

	return &GasPricing{
		L1FeePerGas:       l1Fee,
		L2FeePerGas:       l2Fee,
		L1GasLimit:        l1GasLimit,
		L2GasLimit:        l2GasLimit,
		MaxSubmissionCost: maxSubmissionCost,
		Value:             value,
	}, nil
}

func feeCost(fees *etherman.FeeData, marginPercent uint64) (*big.Int, error) {
	if fees == nil {
		return nil, fmt.Errorf("no fee data")
	}
	fee := fees.MaxFeePerGas
	if fee == nil {
		fee = fees.GasPrice
	}
	if fee == nil {
		return nil, fmt.Errorf("neither max fee per gas nor gas price estimated")
	}
	margin := new(big.Int).Mul(fee, new(big.Int).SetUint64(marginPercent))
	margin.Div(margin, big.NewInt(percent))
	return new(big.Int).Add(fee, margin), nil
}
