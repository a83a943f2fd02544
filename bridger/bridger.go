package bridger

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"time"

	"github.com/0xPolygonHermez/token-bridger/etherman"
	"github.com/0xPolygonHermez/token-bridger/etherman/smartcontracts/erc20"
	"github.com/0xPolygonHermez/token-bridger/etherman/smartcontracts/l1gatewayrouter"
	"github.com/0xPolygonHermez/token-bridger/gerror"
	"github.com/0xPolygonHermez/token-bridger/metrics"
	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	txKindApprove          = "approve"
	txKindOutboundTransfer = "outbound_transfer"
)

// Bridger moves an erc20 token from L1 to L2 through the gateway router.
type Bridger struct {
	cfg          Config
	token        common.Address
	router       common.Address
	amount       *big.Int
	callHookData []byte
	l1           chainClient
	l2           chainClient
}

// NewBridger validates the configuration and creates a bridger. It doesn't touch the network.
func NewBridger(cfg Config, token, router common.Address, l1, l2 chainClient) (*Bridger, error) {
	if token == (common.Address{}) {
		return nil, fmt.Errorf("token address is not configured")
	}
	if router == (common.Address{}) {
		return nil, fmt.Errorf("router address is not configured")
	}
	amount, ok := new(big.Int).SetString(cfg.Amount, 0)
	if !ok || amount.Sign() <= 0 {
		return nil, fmt.Errorf("invalid amount %q", cfg.Amount)
	}
	if cfg.L1GasLimit == 0 || cfg.L2GasLimit == 0 {
		return nil, fmt.Errorf("gas limits must be greater than 0, l1: %d, l2: %d", cfg.L1GasLimit, cfg.L2GasLimit)
	}
	return &Bridger{
		cfg:          cfg,
		token:        token,
		router:       router,
		amount:       amount,
		callHookData: common.FromHex(cfg.CallHookData),
		l1:           l1,
		l2:           l2,
	}, nil
}

// Run bridges the token. It returns StatusAlreadyDeployed without sending anything when the
// token already exists on L2.
func (b *Bridger) Run(ctx context.Context) (*TransferOutcome, error) {
	return b.run(ctx, false)
}

// Estimate performs every read of Run and reports what would be sent, without sending it.
func (b *Bridger) Estimate(ctx context.Context) (*TransferOutcome, error) {
	return b.run(ctx, true)
}

func (b *Bridger) run(ctx context.Context, dryRun bool) (*TransferOutcome, error) {
	req, err := b.newRequest()
	if err != nil {
		return nil, err
	}
	logger := log.WithFields("run", uuid.NewString(), "token", req.Token.String())
	logger.Infof("Sender: %s, recipient: %s, amount: %s", req.Sender, req.Recipient, req.Amount)

	pricing, err := b.estimatePricing(ctx)
	if err != nil {
		return nil, err
	}
	logger.Infof("Fees per gas l1: %s, l2: %s. Max submission cost: %s ETH, call value: %s ETH",
		pricing.L1FeePerGas, pricing.L2FeePerGas, formatEther(pricing.MaxSubmissionCost), formatEther(pricing.Value))
	extraData, err := l1gatewayrouter.PackOutboundTransferData(pricing.MaxSubmissionCost, b.callHookData)
	if err != nil {
		return nil, fmt.Errorf("pack outbound transfer data: %w", err)
	}

	info, l2Balance, err := b.readTokenInfo(ctx, req.Sender)
	if err != nil {
		return nil, err
	}
	outcome := &TransferOutcome{Request: req, Pricing: pricing, Token: info}

	if l2Balance.Sign() == 0 {
		logger.Error("Your ETH balance on the rollup is 0, any token deployment transaction will fail until you bridge some ETH over")
		return nil, gerror.ErrInsufficientL2Funds
	}
	logger.Debugf("Rollup balance: %s ETH", formatEther(l2Balance))

	if b.isDeployedOnL2(ctx, logger, info.L2Address) {
		logger.Infof("%s already deployed to rollup at %s", info.Name, info.L2Address)
		outcome.Status = StatusAlreadyDeployed
		return outcome, nil
	}
	logger.Infof("Bridging %s (%s) to rollup, rollup %s address will be %s", info.Symbol, info.L1Address, info.Symbol, info.L2Address)

	gateway, err := b.readAddress(ctx, b.l1, etherman.ContractCall{
		Address: b.router,
		ABI:     l1gatewayrouter.ABI(),
		Method:  l1gatewayrouter.MethodGetGateway,
		Args:    []interface{}{b.token},
	})
	if err != nil {
		return nil, fmt.Errorf("get gateway: %w", err)
	}
	outcome.Token.Gateway = gateway
	logger.Debugf("Gateway: %s", gateway)

	allowance, err := b.readBigInt(ctx, b.l1, etherman.ContractCall{
		Address: b.token,
		ABI:     erc20.ABI(),
		Method:  erc20.MethodAllowance,
		Args:    []interface{}{req.Sender, gateway},
	})
	if err != nil {
		return nil, fmt.Errorf("get allowance: %w", err)
	}
	outcome.NeedsApproval = allowance.Sign() == 0

	if dryRun {
		logger.Infof("Dry run: approval needed: %t, outbound transfer value: %s wei, max gas: %d, gas price bid: %s",
			outcome.NeedsApproval, pricing.Value, pricing.L2GasLimit, pricing.L2FeePerGas)
		outcome.Status = StatusDryRun
		return outcome, nil
	}

	auth, err := b.transactor(ctx, req.key)
	if err != nil {
		return nil, err
	}

	if outcome.NeedsApproval {
		logger.Infof("Approving %s to gateway", info.Symbol)
		approveTx, err := b.l1.WriteContract(ctx, auth, etherman.ContractCall{
			Address: b.token,
			ABI:     erc20.ABI(),
			Method:  erc20.MethodApprove,
			Args:    []interface{}{gateway, req.Amount},
		})
		if err != nil {
			return nil, fmt.Errorf("approve: %w", err)
		}
		metrics.RecordTxSubmitted(txKindApprove)
		outcome.ApprovalTxHash = &approveTx
		if _, err := b.waitMined(ctx, txKindApprove, approveTx); err != nil {
			return nil, err
		}
		logger.Info("Approved")
	}

	logger.Info("Submitting bridge operation...")
	transferTx, err := b.l1.WriteContract(ctx, auth, etherman.ContractCall{
		Address: b.router,
		ABI:     l1gatewayrouter.ABI(),
		Method:  l1gatewayrouter.MethodOutboundTransferCustomRefund,
		Args: []interface{}{
			b.token,
			req.Sender, // refund to
			req.Recipient,
			req.Amount,
			new(big.Int).SetUint64(pricing.L2GasLimit), // max gas
			pricing.L2FeePerGas,                        // gas price bid
			extraData,
		},
		Value: pricing.Value,
	})
	if err != nil {
		return nil, fmt.Errorf("outbound transfer: %w", err)
	}
	metrics.RecordTxSubmitted(txKindOutboundTransfer)
	outcome.TransferTxHash = transferTx
	logger.Infof("Bridge tx sent: %s", transferTx)

	receipt, err := b.waitMined(ctx, txKindOutboundTransfer, transferTx)
	if err != nil {
		return nil, err
	}
	outcome.Receipt = receipt
	outcome.Status = StatusBridged
	logger.Infof("Submission confirmed in block %s, bridge operation will take a few minutes", receipt.BlockNumber)
	return outcome, nil
}

// newRequest resolves the signer credential. It never touches the network, a missing
// credential is reported before any rpc call.
func (b *Bridger) newRequest() (BridgeRequest, error) {
	var (
		key *ecdsa.PrivateKey
		err error
	)
	switch {
	case b.cfg.PrivateKey != "":
		key, err = etherman.LoadPrivateKey(b.cfg.PrivateKey)
	case b.cfg.Keystore.Path != "":
		key, err = etherman.LoadKeystore(b.cfg.Keystore)
	default:
		return BridgeRequest{}, gerror.ErrMissingCredential
	}
	if err != nil {
		return BridgeRequest{}, err
	}
	sender := crypto.PubkeyToAddress(key.PublicKey)
	recipient := b.cfg.Recipient
	if recipient == (common.Address{}) {
		recipient = sender
	}
	return BridgeRequest{
		Token:     b.token,
		Router:    b.router,
		Amount:    new(big.Int).Set(b.amount),
		Sender:    sender,
		Recipient: recipient,
		key:       key,
	}, nil
}

func (b *Bridger) estimatePricing(ctx context.Context) (*GasPricing, error) {
	var l1Fees, l2Fees *etherman.FeeData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fees, err := b.l1.EstimateFees(gctx)
		if err != nil {
			return fmt.Errorf("estimate l1 fees: %w", err)
		}
		l1Fees = fees
		return nil
	})
	g.Go(func() error {
		fees, err := b.l2.EstimateFees(gctx)
		if err != nil {
			return fmt.Errorf("estimate l2 fees: %w", err)
		}
		l2Fees = fees
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ComputeGasPricing(l1Fees, l2Fees, b.cfg.L1GasLimit, b.cfg.L2GasLimit, b.cfg.FeeMarginPercent)
}

// readTokenInfo reads the L2 token address, the token metadata and the L2 balance of the sender at once
func (b *Bridger) readTokenInfo(ctx context.Context, sender common.Address) (TokenInfo, *big.Int, error) {
	info := TokenInfo{L1Address: b.token}
	var l2Balance *big.Int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr, err := b.readAddress(gctx, b.l1, etherman.ContractCall{
			Address: b.router,
			ABI:     l1gatewayrouter.ABI(),
			Method:  l1gatewayrouter.MethodCalculateL2TokenAddress,
			Args:    []interface{}{b.token},
		})
		if err != nil {
			return fmt.Errorf("calculate l2 token address: %w", err)
		}
		info.L2Address = addr
		return nil
	})
	g.Go(func() error {
		name, err := b.readString(gctx, b.l1, etherman.ContractCall{Address: b.token, ABI: erc20.ABI(), Method: erc20.MethodName})
		if err != nil {
			return fmt.Errorf("get token name: %w", err)
		}
		info.Name = name
		return nil
	})
	g.Go(func() error {
		symbol, err := b.readString(gctx, b.l1, etherman.ContractCall{Address: b.token, ABI: erc20.ABI(), Method: erc20.MethodSymbol})
		if err != nil {
			return fmt.Errorf("get token symbol: %w", err)
		}
		info.Symbol = symbol
		return nil
	})
	g.Go(func() error {
		balance, err := b.l2.BalanceAt(gctx, sender)
		if err != nil {
			return fmt.Errorf("get rollup balance: %w", err)
		}
		l2Balance = balance
		return nil
	})
	if err := g.Wait(); err != nil {
		return TokenInfo{}, nil, err
	}
	return info, l2Balance, nil
}

// isDeployedOnL2 probes the symbol of the L2 token. A failing or empty read means the token
// is not deployed yet.
func (b *Bridger) isDeployedOnL2(ctx context.Context, logger *log.Logger, l2Token common.Address) bool {
	symbol, err := b.readString(ctx, b.l2, etherman.ContractCall{Address: l2Token, ABI: erc20.ABI(), Method: erc20.MethodSymbol})
	if err != nil {
		logger.Debugf("token not found on rollup at %s: %v", l2Token, err)
		return false
	}
	return symbol != ""
}

func (b *Bridger) transactor(ctx context.Context, key *ecdsa.PrivateKey) (*bind.TransactOpts, error) {
	chainID, err := b.l1.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get l1 chain id: %w", err)
	}
	auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("create transactor: %w", err)
	}
	return auth, nil
}

func (b *Bridger) waitMined(ctx context.Context, kind string, txHash common.Hash) (*types.Receipt, error) {
	start := time.Now()
	receipt, err := b.l1.WaitForReceipt(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("wait %s tx %s: %w", kind, txHash, err)
	}
	metrics.RecordReceiptWaitTime(kind, time.Since(start))
	if receipt.Status == types.ReceiptStatusFailed {
		return nil, fmt.Errorf("%s tx %s: %w", kind, txHash, gerror.ErrTxReverted)
	}
	return receipt, nil
}

func (b *Bridger) readAddress(ctx context.Context, client chainClient, call etherman.ContractCall) (common.Address, error) {
	out, err := client.ReadContract(ctx, call)
	if err != nil {
		return common.Address{}, err
	}
	if len(out) == 0 {
		return common.Address{}, fmt.Errorf("%s returned no value", call.Method)
	}
	addr, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("%s returned %T, expected address", call.Method, out[0])
	}
	return addr, nil
}

func (b *Bridger) readString(ctx context.Context, client chainClient, call etherman.ContractCall) (string, error) {
	out, err := client.ReadContract(ctx, call)
	if err != nil {
		return "", err
	}
	if len(out) == 0 {
		return "", fmt.Errorf("%s returned no value", call.Method)
	}
	s, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("%s returned %T, expected string", call.Method, out[0])
	}
	return s, nil
}

func (b *Bridger) readBigInt(ctx context.Context, client chainClient, call etherman.ContractCall) (*big.Int, error) {
	out, err := client.ReadContract(ctx, call)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned no value", call.Method)
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s returned %T, expected uint256", call.Method, out[0])
	}
	return v, nil
}
