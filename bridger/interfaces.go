package bridger

import (
	"context"
	"math/big"

	"github.com/0xPolygonHermez/token-bridger/etherman"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// chainClient is the rpc surface of one chain the bridger depends on
type chainClient interface {
	EstimateFees(ctx context.Context) (*etherman.FeeData, error)
	ReadContract(ctx context.Context, call etherman.ContractCall) ([]interface{}, error)
	WriteContract(ctx context.Context, auth *bind.TransactOpts, call etherman.ContractCall) (common.Hash, error)
	WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}
