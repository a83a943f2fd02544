// Package l1gatewayrouter contains the abi of the L1 token gateway router and the codec of the
// extra data attached to an outbound transfer.
package l1gatewayrouter

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Router methods
const (
	MethodCalculateL2TokenAddress      = "calculateL2TokenAddress"
	MethodGetGateway                   = "getGateway"
	MethodOutboundTransferCustomRefund = "outboundTransferCustomRefund"
)

var (
	parsedABI abi.ABI

	// outboundTransferDataArgs is the layout of the _data param: abi.encode(maxSubmissionCost, callHookData)
	outboundTransferDataArgs abi.Arguments
)

func init() {
	parsed, err := abi.JSON(strings.NewReader(ABIJson))
	if err != nil {
		panic("parse l1 gateway router abi json: " + err.Error())
	}
	parsedABI = parsed

	uint256Type, err := abi.NewType("uint256", "", nil)
	if err != nil {
		panic("new abi type uint256: " + err.Error())
	}
	bytesType, err := abi.NewType("bytes", "", nil)
	if err != nil {
		panic("new abi type bytes: " + err.Error())
	}
	outboundTransferDataArgs = abi.Arguments{
		{Type: uint256Type},
		{Type: bytesType},
	}
}

// ABI returns the parsed router abi.
func ABI() *abi.ABI {
	return &parsedABI
}

// PackOutboundTransferData encodes the _data param of an outbound transfer.
func PackOutboundTransferData(maxSubmissionCost *big.Int, callHookData []byte) ([]byte, error) {
	if callHookData == nil {
		callHookData = []byte{}
	}
	return outboundTransferDataArgs.Pack(maxSubmissionCost, callHookData)
}

// UnpackOutboundTransferData decodes the _data param of an outbound transfer.
func UnpackOutboundTransferData(data []byte) (*big.Int, []byte, error) {
	values, err := outboundTransferDataArgs.Unpack(data)
	if err != nil {
		return nil, nil, err
	}
	maxSubmissionCost, ok := values[0].(*big.Int)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected max submission cost type %T", values[0])
	}
	callHookData, ok := values[1].([]byte)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected call hook data type %T", values[1])
	}
	return maxSubmissionCost, callHookData, nil
}

// ABIJson is the L1GatewayRouter abi, reduced to the entries the bridger touches
const ABIJson = `[
{
	"anonymous": false,
	"inputs": [
		{"indexed": false, "internalType": "address", "name": "newDefaultGateway", "type": "address"}
	],
	"name": "DefaultGatewayUpdated",
	"type": "event"
},
{
	"anonymous": false,
	"inputs": [
		{"indexed": true, "internalType": "address", "name": "l1Token", "type": "address"},
		{"indexed": true, "internalType": "address", "name": "gateway", "type": "address"}
	],
	"name": "GatewaySet",
	"type": "event"
},
{
	"anonymous": false,
	"inputs": [
		{"indexed": true, "internalType": "address", "name": "token", "type": "address"},
		{"indexed": true, "internalType": "address", "name": "_userFrom", "type": "address"},
		{"indexed": true, "internalType": "address", "name": "_userTo", "type": "address"},
		{"indexed": false, "internalType": "address", "name": "gateway", "type": "address"}
	],
	"name": "TransferRouted",
	"type": "event"
},
{
	"inputs": [
		{"internalType": "address", "name": "l1ERC20", "type": "address"}
	],
	"name": "calculateL2TokenAddress",
	"outputs": [
		{"internalType": "address", "name": "", "type": "address"}
	],
	"stateMutability": "view",
	"type": "function"
},
{
	"inputs": [],
	"name": "counterpartGateway",
	"outputs": [
		{"internalType": "address", "name": "", "type": "address"}
	],
	"stateMutability": "view",
	"type": "function"
},
{
	"inputs": [],
	"name": "defaultGateway",
	"outputs": [
		{"internalType": "address", "name": "", "type": "address"}
	],
	"stateMutability": "view",
	"type": "function"
},
{
	"inputs": [
		{"internalType": "address", "name": "_token", "type": "address"}
	],
	"name": "getGateway",
	"outputs": [
		{"internalType": "address", "name": "gateway", "type": "address"}
	],
	"stateMutability": "view",
	"type": "function"
},
{
	"inputs": [
		{"internalType": "address", "name": "_token", "type": "address"},
		{"internalType": "address", "name": "_to", "type": "address"},
		{"internalType": "uint256", "name": "_amount", "type": "uint256"},
		{"internalType": "uint256", "name": "_maxGas", "type": "uint256"},
		{"internalType": "uint256", "name": "_gasPriceBid", "type": "uint256"},
		{"internalType": "bytes", "name": "_data", "type": "bytes"}
	],
	"name": "outboundTransfer",
	"outputs": [
		{"internalType": "bytes", "name": "", "type": "bytes"}
	],
	"stateMutability": "payable",
	"type": "function"
},
{
	"inputs": [
		{"internalType": "address", "name": "_token", "type": "address"},
		{"internalType": "address", "name": "_refundTo", "type": "address"},
		{"internalType": "address", "name": "_to", "type": "address"},
		{"internalType": "uint256", "name": "_amount", "type": "uint256"},
		{"internalType": "uint256", "name": "_maxGas", "type": "uint256"},
		{"internalType": "uint256", "name": "_gasPriceBid", "type": "uint256"},
		{"internalType": "bytes", "name": "_data", "type": "bytes"}
	],
	"name": "outboundTransferCustomRefund",
	"outputs": [
		{"internalType": "bytes", "name": "", "type": "bytes"}
	],
	"stateMutability": "payable",
	"type": "function"
}
]`
