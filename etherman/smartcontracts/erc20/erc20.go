// Package erc20 contains the abi of the standard fungible token interface used by the bridger.
package erc20

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Token methods
const (
	MethodName      = "name"
	MethodSymbol    = "symbol"
	MethodAllowance = "allowance"
	MethodApprove   = "approve"
)

var parsedABI abi.ABI

func init() {
	parsed, err := abi.JSON(strings.NewReader(ABIJson))
	if err != nil {
		panic("parse erc20 abi json: " + err.Error())
	}
	parsedABI = parsed
}

// ABI returns the parsed erc20 abi.
func ABI() *abi.ABI {
	return &parsedABI
}

// ABIJson is the erc20 abi
const ABIJson = `[
{
	"constant": true,
	"inputs": [],
	"name": "name",
	"outputs": [{"name": "", "type": "string"}],
	"stateMutability": "view",
	"type": "function"
},
{
	"constant": true,
	"inputs": [],
	"name": "symbol",
	"outputs": [{"name": "", "type": "string"}],
	"stateMutability": "view",
	"type": "function"
},
{
	"constant": true,
	"inputs": [],
	"name": "decimals",
	"outputs": [{"name": "", "type": "uint8"}],
	"stateMutability": "view",
	"type": "function"
},
{
	"constant": true,
	"inputs": [],
	"name": "totalSupply",
	"outputs": [{"name": "", "type": "uint256"}],
	"stateMutability": "view",
	"type": "function"
},
{
	"constant": true,
	"inputs": [{"name": "account", "type": "address"}],
	"name": "balanceOf",
	"outputs": [{"name": "", "type": "uint256"}],
	"stateMutability": "view",
	"type": "function"
},
{
	"constant": true,
	"inputs": [
		{"name": "owner", "type": "address"},
		{"name": "spender", "type": "address"}
	],
	"name": "allowance",
	"outputs": [{"name": "", "type": "uint256"}],
	"stateMutability": "view",
	"type": "function"
},
{
	"constant": false,
	"inputs": [
		{"name": "spender", "type": "address"},
		{"name": "amount", "type": "uint256"}
	],
	"name": "approve",
	"outputs": [{"name": "", "type": "bool"}],
	"stateMutability": "nonpayable",
	"type": "function"
},
{
	"constant": false,
	"inputs": [
		{"name": "recipient", "type": "address"},
		{"name": "amount", "type": "uint256"}
	],
	"name": "transfer",
	"outputs": [{"name": "", "type": "bool"}],
	"stateMutability": "nonpayable",
	"type": "function"
},
{
	"anonymous": false,
	"inputs": [
		{"indexed": true, "name": "owner", "type": "address"},
		{"indexed": true, "name": "spender", "type": "address"},
		{"indexed": false, "name": "value", "type": "uint256"}
	],
	"name": "Approval",
	"type": "event"
},
{
	"anonymous": false,
	"inputs": [
		{"indexed": true, "name": "from", "type": "address"},
		{"indexed": true, "name": "to", "type": "address"},
		{"indexed": false, "name": "value", "type": "uint256"}
	],
	"name": "Transfer",
	"type": "event"
}
]`
