package etherman

import (
	"context"
	"math/big"
	"time"

	"github.com/0xPolygonHermez/token-bridger/gerror"
	"github.com/0xPolygonHermez/token-bridger/metrics"
	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

const (
	// base fee and legacy gas price are scaled by baseFeeMultiplierNum/baseFeeMultiplierDen (x1.2)
	baseFeeMultiplierNum = 12
	baseFeeMultiplierDen = 10

	defaultPollInterval = time.Second
)

type ethClienter interface {
	bind.ContractBackend
	ethereum.TransactionReader
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// Client is the rpc client of one chain.
type Client struct {
	EtherClient ethClienter
	network     NetworkSID
	cfg         Config
	logger      *log.Logger
}

// NewClient dials the node of the network.
func NewClient(network NetworkSID, url string, cfg Config) (*Client, error) {
	ethClient, err := ethclient.Dial(url)
	if err != nil {
		log.Errorf("error connecting to %s node: %+v", network, err)
		return nil, errors.Wrapf(err, "dial %s node", network)
	}
	return &Client{
		EtherClient: ethClient,
		network:     network,
		cfg:         cfg,
		logger:      log.WithFields("network", string(network)),
	}, nil
}

// Network returns the network identifier of the client.
func (c *Client) Network() NetworkSID {
	return c.network
}

// Close closes the underlying rpc connection.
func (c *Client) Close() {
	c.EtherClient.Close()
}

func (c *Client) record(method string, start time.Time, err error) {
	metrics.RecordRequest(string(c.network), method, time.Since(start), err == nil)
}

// EstimateFees returns the current fees of the chain. On chains with a base fee the max fee is
// 1.2 times the latest base fee plus the suggested tip. On legacy chains the gas price is 1.2
// times the suggested gas price.
func (c *Client) EstimateFees(ctx context.Context) (*FeeData, error) {
	start := time.Now()
	header, err := c.EtherClient.HeaderByNumber(ctx, nil)
	c.record("eth_getBlockByNumber", start, err)
	if err != nil {
		return nil, errors.Wrap(err, "get latest header")
	}

	if header.BaseFee == nil {
		start = time.Now()
		gasPrice, err := c.EtherClient.SuggestGasPrice(ctx)
		c.record("eth_gasPrice", start, err)
		if err != nil {
			return nil, errors.Wrap(err, "suggest gas price")
		}
		return &FeeData{GasPrice: scaleFee(gasPrice)}, nil
	}

	start = time.Now()
	tip, err := c.EtherClient.SuggestGasTipCap(ctx)
	c.record("eth_maxPriorityFeePerGas", start, err)
	if err != nil {
		// Some nodes don't expose eth_maxPriorityFeePerGas, derive the tip from the gas price
		c.logger.Debugf("eth_maxPriorityFeePerGas not available, deriving tip from the gas price: %v", err)
		start = time.Now()
		gasPrice, err := c.EtherClient.SuggestGasPrice(ctx)
		c.record("eth_gasPrice", start, err)
		if err != nil {
			return nil, errors.Wrap(err, "suggest gas price")
		}
		tip = new(big.Int).Sub(gasPrice, header.BaseFee)
		if tip.Sign() < 0 {
			tip = big.NewInt(0)
		}
	}
	maxFee := new(big.Int).Add(scaleFee(header.BaseFee), tip)
	c.logger.Debugf("base fee: %s, max priority fee: %s, max fee: %s", header.BaseFee, tip, maxFee)
	return &FeeData{MaxFeePerGas: maxFee, MaxPriorityFeePerGas: tip}, nil
}

func scaleFee(fee *big.Int) *big.Int {
	scaled := new(big.Int).Mul(fee, big.NewInt(baseFeeMultiplierNum))
	return scaled.Div(scaled, big.NewInt(baseFeeMultiplierDen))
}

// ReadContract calls a view method and returns its unpacked outputs.
func (c *Client) ReadContract(ctx context.Context, call ContractCall) ([]interface{}, error) {
	contract := bind.NewBoundContract(call.Address, *call.ABI, c.EtherClient, c.EtherClient, c.EtherClient)
	var out []interface{}
	start := time.Now()
	err := contract.Call(&bind.CallOpts{Context: ctx}, &out, call.Method, call.Args...)
	c.record("eth_call", start, err)
	if err != nil {
		return nil, errors.Wrapf(err, "call %s on %s", call.Method, call.Address)
	}
	return out, nil
}

// WriteContract signs and sends a transaction invoking the method. It doesn't wait for the tx to be mined.
func (c *Client) WriteContract(ctx context.Context, auth *bind.TransactOpts, call ContractCall) (common.Hash, error) {
	opts := *auth
	opts.Context = ctx
	opts.Value = call.Value
	contract := bind.NewBoundContract(call.Address, *call.ABI, c.EtherClient, c.EtherClient, c.EtherClient)
	start := time.Now()
	tx, err := contract.Transact(&opts, call.Method, call.Args...)
	c.record("eth_sendRawTransaction", start, err)
	if err != nil {
		txHash := ""
		if tx != nil {
			txHash = tx.Hash().String()
		}
		c.logger.Error("Error: ", err, ". Tx Hash: ", txHash)
		return common.Hash{}, errors.Wrapf(err, "send %s tx to %s", call.Method, call.Address)
	}
	c.logger.Debugf("%s tx sent: %s, nonce: %d, gas: %d", call.Method, tx.Hash(), tx.Nonce(), tx.Gas())
	return tx.Hash(), nil
}

// WaitForReceipt polls the receipt of the tx until it is mined.
func (c *Client) WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if c.cfg.ReceiptTimeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.ReceiptTimeout.Duration)
		defer cancel()
	}
	interval := c.cfg.PollInterval.Duration
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		mined, receipt, err := c.CheckTxWasMined(ctx, txHash)
		if err != nil && ctx.Err() == nil {
			return nil, err
		}
		if mined {
			return receipt, nil
		}
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) && c.cfg.ReceiptTimeout.Duration > 0 {
				return nil, errors.Wrapf(gerror.ErrReceiptTimeout, "tx %s", txHash)
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// CheckTxWasMined check if a tx was already mined
func (c *Client) CheckTxWasMined(ctx context.Context, txHash common.Hash) (bool, *types.Receipt, error) {
	start := time.Now()
	receipt, err := c.EtherClient.TransactionReceipt(ctx, txHash)
	if errors.Is(err, ethereum.NotFound) {
		c.record("eth_getTransactionReceipt", start, nil)
		return false, nil, nil
	}
	c.record("eth_getTransactionReceipt", start, err)
	if err != nil {
		return false, nil, errors.Wrapf(err, "get receipt of %s", txHash)
	}
	return true, receipt, nil
}

// BalanceAt returns the latest native balance of the account.
func (c *Client) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	start := time.Now()
	balance, err := c.EtherClient.BalanceAt(ctx, account, nil)
	c.record("eth_getBalance", start, err)
	if err != nil {
		return nil, errors.Wrapf(err, "get balance of %s", account)
	}
	return balance, nil
}

// ChainID returns the chain id used to sign transactions.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	start := time.Now()
	chainID, err := c.EtherClient.ChainID(ctx)
	c.record("eth_chainId", start, err)
	if err != nil {
		return nil, errors.Wrap(err, "get chain id")
	}
	return chainID, nil
}
