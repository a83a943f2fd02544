package bridger

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/0xPolygonHermez/token-bridger/etherman"
	"github.com/0xPolygonHermez/token-bridger/etherman/smartcontracts/erc20"
	"github.com/0xPolygonHermez/token-bridger/etherman/smartcontracts/l1gatewayrouter"
	"github.com/0xPolygonHermez/token-bridger/gerror"
	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	accHexPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

var (
	sender       = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	tokenAddr    = common.HexToAddress("0x5a5297A52b1faCa0958084D4D424E774b0EDE7d2")
	routerAddr   = common.HexToAddress("0x76B99e93314aC2bDA886a6c9103fe18380B496c7")
	l2TokenAddr  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	gatewayAddr  = common.HexToAddress("0x2222222222222222222222222222222222222222")
	approveHash  = common.HexToHash("0xaa")
	transferHash = common.HexToHash("0xbb")
	l1ChainID    = big.NewInt(11155111)
)

func init() {
	log.Init(log.Config{
		Level:   "debug",
		Outputs: []string{"stdout"},
	})
}

type mocks struct {
	L1 *chainClientMock
	L2 *chainClientMock
}

func defaultConfig() Config {
	return Config{
		PrivateKey:       accHexPrivateKey,
		Amount:           "1",
		L1GasLimit:       300000,
		L2GasLimit:       500000,
		FeeMarginPercent: 10,
	}
}

func newTestBridger(t *testing.T, cfg Config) (*Bridger, *mocks) {
	m := &mocks{
		L1: newChainClientMock(t),
		L2: newChainClientMock(t),
	}
	b, err := NewBridger(cfg, tokenAddr, routerAddr, m.L1, m.L2)
	require.NoError(t, err)
	return b, m
}

func isCall(addr common.Address, method string) interface{} {
	return mock.MatchedBy(func(call etherman.ContractCall) bool {
		return call.Address == addr && call.Method == method
	})
}

func signedBySender() interface{} {
	return mock.MatchedBy(func(auth *bind.TransactOpts) bool {
		return auth != nil && auth.From == sender
	})
}

// expectReads registers the reads every run performs up to the L2 balance check
func expectReads(m *mocks, l2Balance *big.Int) {
	m.L1.On("EstimateFees", mock.Anything).Return(&etherman.FeeData{MaxFeePerGas: big.NewInt(10), MaxPriorityFeePerGas: big.NewInt(1)}, nil).Once()
	m.L2.On("EstimateFees", mock.Anything).Return(&etherman.FeeData{GasPrice: big.NewInt(5)}, nil).Once()
	m.L1.On("ReadContract", mock.Anything, isCall(routerAddr, l1gatewayrouter.MethodCalculateL2TokenAddress)).Return([]interface{}{l2TokenAddr}, nil).Once()
	m.L1.On("ReadContract", mock.Anything, isCall(tokenAddr, erc20.MethodName)).Return([]interface{}{"Test Token"}, nil).Once()
	m.L1.On("ReadContract", mock.Anything, isCall(tokenAddr, erc20.MethodSymbol)).Return([]interface{}{"TST"}, nil).Once()
	m.L2.On("BalanceAt", mock.Anything, sender).Return(l2Balance, nil).Once()
}

// expectUndeployed registers a failing probe followed by the gateway and allowance reads
func expectUndeployed(m *mocks, allowance *big.Int) {
	m.L2.On("ReadContract", mock.Anything, isCall(l2TokenAddr, erc20.MethodSymbol)).Return(nil, errors.New("no contract code at given address")).Once()
	m.L1.On("ReadContract", mock.Anything, isCall(routerAddr, l1gatewayrouter.MethodGetGateway)).Return([]interface{}{gatewayAddr}, nil).Once()
	m.L1.On("ReadContract", mock.Anything, isCall(tokenAddr, erc20.MethodAllowance)).Return([]interface{}{allowance}, nil).Once()
}

func successReceipt(txHash common.Hash) *types.Receipt {
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: txHash, BlockNumber: big.NewInt(100)}
}

func TestMissingCredential(t *testing.T) {
	cfg := defaultConfig()
	cfg.PrivateKey = ""
	b, m := newTestBridger(t, cfg)

	_, err := b.Run(context.Background())
	require.ErrorIs(t, err, gerror.ErrMissingCredential)
	assert.Empty(t, m.L1.Calls)
	assert.Empty(t, m.L2.Calls)
}

func TestInvalidPrivateKey(t *testing.T) {
	cfg := defaultConfig()
	cfg.PrivateKey = "0xnotakey"
	b, m := newTestBridger(t, cfg)

	_, err := b.Run(context.Background())
	require.Error(t, err)
	assert.Empty(t, m.L1.Calls)
	assert.Empty(t, m.L2.Calls)
}

func TestKeystoreCredential(t *testing.T) {
	key, err := etherman.LoadPrivateKey(accHexPrivateKey)
	require.NoError(t, err)
	ks := keystore.NewKeyStore(t.TempDir(), keystore.LightScryptN, keystore.LightScryptP)
	acc, err := ks.ImportECDSA(key, "testonly")
	require.NoError(t, err)

	cfg := defaultConfig()
	cfg.PrivateKey = ""
	cfg.Keystore = etherman.KeystoreFileConfig{Path: acc.URL.Path, Password: "testonly"}
	b, m := newTestBridger(t, cfg)
	expectReads(m, big.NewInt(0))

	_, err = b.Run(context.Background())
	require.ErrorIs(t, err, gerror.ErrInsufficientL2Funds)
	m.L2.AssertCalled(t, "BalanceAt", mock.Anything, sender)
}

func TestZeroL2Balance(t *testing.T) {
	b, m := newTestBridger(t, defaultConfig())
	expectReads(m, big.NewInt(0))

	_, err := b.Run(context.Background())
	require.ErrorIs(t, err, gerror.ErrInsufficientL2Funds)
	m.L1.AssertNotCalled(t, "WriteContract", mock.Anything, mock.Anything, mock.Anything)
	m.L2.AssertNotCalled(t, "ReadContract", mock.Anything, mock.Anything)
}

func TestAlreadyDeployed(t *testing.T) {
	b, m := newTestBridger(t, defaultConfig())
	expectReads(m, big.NewInt(1))
	m.L2.On("ReadContract", mock.Anything, isCall(l2TokenAddr, erc20.MethodSymbol)).Return([]interface{}{"TST"}, nil).Once()

	outcome, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyDeployed, outcome.Status)
	assert.Equal(t, l2TokenAddr, outcome.Token.L2Address)
	m.L1.AssertNotCalled(t, "WriteContract", mock.Anything, mock.Anything, mock.Anything)
	m.L1.AssertNotCalled(t, "ChainID", mock.Anything)
}

func TestEmptySymbolIsNotDeployed(t *testing.T) {
	b, m := newTestBridger(t, defaultConfig())
	expectReads(m, big.NewInt(1))
	m.L2.On("ReadContract", mock.Anything, isCall(l2TokenAddr, erc20.MethodSymbol)).Return([]interface{}{""}, nil).Once()
	m.L1.On("ReadContract", mock.Anything, isCall(routerAddr, l1gatewayrouter.MethodGetGateway)).Return([]interface{}{gatewayAddr}, nil).Once()
	m.L1.On("ReadContract", mock.Anything, isCall(tokenAddr, erc20.MethodAllowance)).Return([]interface{}{big.NewInt(1)}, nil).Once()

	outcome, err := b.Estimate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusDryRun, outcome.Status)
}

func TestNonZeroAllowanceSkipsApproval(t *testing.T) {
	b, m := newTestBridger(t, defaultConfig())
	expectReads(m, big.NewInt(1))
	expectUndeployed(m, big.NewInt(1))
	m.L1.On("ChainID", mock.Anything).Return(l1ChainID, nil).Once()

	var transferCall etherman.ContractCall
	m.L1.On("WriteContract", mock.Anything, signedBySender(), isCall(routerAddr, l1gatewayrouter.MethodOutboundTransferCustomRefund)).
		Run(func(args mock.Arguments) { transferCall = args.Get(2).(etherman.ContractCall) }).
		Return(transferHash, nil).Once()
	m.L1.On("WaitForReceipt", mock.Anything, transferHash).Return(successReceipt(transferHash), nil).Once()

	outcome, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusBridged, outcome.Status)
	assert.False(t, outcome.NeedsApproval)
	assert.Nil(t, outcome.ApprovalTxHash)
	assert.Equal(t, transferHash, outcome.TransferTxHash)
	m.L1.AssertNotCalled(t, "WriteContract", mock.Anything, mock.Anything, isCall(tokenAddr, erc20.MethodApprove))

	// fees 10 and 5 with a 10% margin
	assert.Equal(t, big.NewInt(5800000), transferCall.Value)
	require.Len(t, transferCall.Args, 7)
	assert.Equal(t, tokenAddr, transferCall.Args[0])
	assert.Equal(t, sender, transferCall.Args[1])
	assert.Equal(t, sender, transferCall.Args[2])
	assert.Equal(t, big.NewInt(1), transferCall.Args[3])
	assert.Equal(t, big.NewInt(500000), transferCall.Args[4])
	assert.Equal(t, big.NewInt(5), transferCall.Args[5])
	maxSubmissionCost, hook, err := l1gatewayrouter.UnpackOutboundTransferData(transferCall.Args[6].([]byte))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(3300000), maxSubmissionCost)
	assert.Empty(t, hook)
}

func TestZeroAllowanceApprovesBeforeTransfer(t *testing.T) {
	b, m := newTestBridger(t, defaultConfig())
	expectReads(m, big.NewInt(1))
	expectUndeployed(m, big.NewInt(0))
	m.L1.On("ChainID", mock.Anything).Return(l1ChainID, nil).Once()

	var (
		mu    sync.Mutex
		steps []string
	)
	step := func(s string) func(mock.Arguments) {
		return func(mock.Arguments) {
			mu.Lock()
			defer mu.Unlock()
			steps = append(steps, s)
		}
	}
	m.L1.On("WriteContract", mock.Anything, signedBySender(), mock.MatchedBy(func(call etherman.ContractCall) bool {
		return call.Address == tokenAddr && call.Method == erc20.MethodApprove &&
			call.Args[0] == gatewayAddr && call.Args[1].(*big.Int).Cmp(big.NewInt(1)) == 0
	})).Run(step("approve")).Return(approveHash, nil).Once()
	m.L1.On("WaitForReceipt", mock.Anything, approveHash).Run(step("approve mined")).Return(successReceipt(approveHash), nil).Once()
	m.L1.On("WriteContract", mock.Anything, signedBySender(), isCall(routerAddr, l1gatewayrouter.MethodOutboundTransferCustomRefund)).
		Run(step("transfer")).Return(transferHash, nil).Once()
	m.L1.On("WaitForReceipt", mock.Anything, transferHash).Run(step("transfer mined")).Return(successReceipt(transferHash), nil).Once()

	outcome, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusBridged, outcome.Status)
	assert.True(t, outcome.NeedsApproval)
	require.NotNil(t, outcome.ApprovalTxHash)
	assert.Equal(t, approveHash, *outcome.ApprovalTxHash)
	assert.Equal(t, []string{"approve", "approve mined", "transfer", "transfer mined"}, steps)
}

func TestApprovalReverted(t *testing.T) {
	b, m := newTestBridger(t, defaultConfig())
	expectReads(m, big.NewInt(1))
	expectUndeployed(m, big.NewInt(0))
	m.L1.On("ChainID", mock.Anything).Return(l1ChainID, nil).Once()
	m.L1.On("WriteContract", mock.Anything, mock.Anything, isCall(tokenAddr, erc20.MethodApprove)).Return(approveHash, nil).Once()
	m.L1.On("WaitForReceipt", mock.Anything, approveHash).Return(&types.Receipt{Status: types.ReceiptStatusFailed, TxHash: approveHash}, nil).Once()

	_, err := b.Run(context.Background())
	require.ErrorIs(t, err, gerror.ErrTxReverted)
	m.L1.AssertNotCalled(t, "WriteContract", mock.Anything, mock.Anything, isCall(routerAddr, l1gatewayrouter.MethodOutboundTransferCustomRefund))
}

func TestTransferReverted(t *testing.T) {
	b, m := newTestBridger(t, defaultConfig())
	expectReads(m, big.NewInt(1))
	expectUndeployed(m, big.NewInt(1))
	m.L1.On("ChainID", mock.Anything).Return(l1ChainID, nil).Once()
	m.L1.On("WriteContract", mock.Anything, mock.Anything, isCall(routerAddr, l1gatewayrouter.MethodOutboundTransferCustomRefund)).Return(transferHash, nil).Once()
	m.L1.On("WaitForReceipt", mock.Anything, transferHash).Return(&types.Receipt{Status: types.ReceiptStatusFailed, TxHash: transferHash}, nil).Once()

	_, err := b.Run(context.Background())
	require.ErrorIs(t, err, gerror.ErrTxReverted)
}

func TestDryRunSendsNothing(t *testing.T) {
	b, m := newTestBridger(t, defaultConfig())
	expectReads(m, big.NewInt(1))
	expectUndeployed(m, big.NewInt(0))

	outcome, err := b.Estimate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusDryRun, outcome.Status)
	assert.True(t, outcome.NeedsApproval)
	assert.Equal(t, gatewayAddr, outcome.Token.Gateway)
	assert.Equal(t, "TST", outcome.Token.Symbol)
	assert.Equal(t, "Test Token", outcome.Token.Name)
	assert.Equal(t, big.NewInt(5800000), outcome.Pricing.Value)
	m.L1.AssertNotCalled(t, "ChainID", mock.Anything)
	m.L1.AssertNotCalled(t, "WriteContract", mock.Anything, mock.Anything, mock.Anything)
}

func TestFeeEstimationError(t *testing.T) {
	b, m := newTestBridger(t, defaultConfig())
	rpcErr := errors.New("connection refused")
	m.L1.On("EstimateFees", mock.Anything).Return(nil, rpcErr).Once()
	m.L2.On("EstimateFees", mock.Anything).Return(&etherman.FeeData{GasPrice: big.NewInt(5)}, nil).Maybe()

	_, err := b.Run(context.Background())
	require.ErrorIs(t, err, rpcErr)
	m.L1.AssertNotCalled(t, "ReadContract", mock.Anything, mock.Anything)
}

func TestCustomRecipientAndCallHookData(t *testing.T) {
	recipient := common.HexToAddress("0x3333333333333333333333333333333333333333")
	cfg := defaultConfig()
	cfg.Recipient = recipient
	cfg.CallHookData = "0xdeadbeef"
	cfg.Amount = "1000000000000000000"
	b, m := newTestBridger(t, cfg)
	expectReads(m, big.NewInt(1))
	expectUndeployed(m, big.NewInt(1))
	m.L1.On("ChainID", mock.Anything).Return(l1ChainID, nil).Once()

	var transferCall etherman.ContractCall
	m.L1.On("WriteContract", mock.Anything, mock.Anything, isCall(routerAddr, l1gatewayrouter.MethodOutboundTransferCustomRefund)).
		Run(func(args mock.Arguments) { transferCall = args.Get(2).(etherman.ContractCall) }).
		Return(transferHash, nil).Once()
	m.L1.On("WaitForReceipt", mock.Anything, transferHash).Return(successReceipt(transferHash), nil).Once()

	_, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sender, transferCall.Args[1])
	assert.Equal(t, recipient, transferCall.Args[2])
	amount, _ := new(big.Int).SetString("1000000000000000000", 10)
	assert.Equal(t, amount, transferCall.Args[3])
	_, hook, err := l1gatewayrouter.UnpackOutboundTransferData(transferCall.Args[6].([]byte))
	require.NoError(t, err)
	assert.Equal(t, common.FromHex("0xdeadbeef"), hook)
}

func TestNewBridgerValidation(t *testing.T) {
	m := &mocks{L1: &chainClientMock{}, L2: &chainClientMock{}}

	_, err := NewBridger(defaultConfig(), common.Address{}, routerAddr, m.L1, m.L2)
	require.Error(t, err)

	_, err = NewBridger(defaultConfig(), tokenAddr, common.Address{}, m.L1, m.L2)
	require.Error(t, err)

	cfg := defaultConfig()
	cfg.Amount = "0"
	_, err = NewBridger(cfg, tokenAddr, routerAddr, m.L1, m.L2)
	require.Error(t, err)

	cfg = defaultConfig()
	cfg.Amount = "abc"
	_, err = NewBridger(cfg, tokenAddr, routerAddr, m.L1, m.L2)
	require.Error(t, err)

	cfg = defaultConfig()
	cfg.L2GasLimit = 0
	_, err = NewBridger(cfg, tokenAddr, routerAddr, m.L1, m.L2)
	require.Error(t, err)
}
