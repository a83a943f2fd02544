package bridger

import (
	"github.com/0xPolygonHermez/token-bridger/etherman"
	"github.com/ethereum/go-ethereum/common"
)

// Config represents the configuration of the bridger
type Config struct {
	// PrivateKey is the hex encoded key of the signer. It's usually provided by the PRIVATE_KEY env var
	PrivateKey string `mapstructure:"PrivateKey"`
	// Keystore is read when PrivateKey is empty
	Keystore etherman.KeystoreFileConfig `mapstructure:"Keystore"`

	// Amount is the number of token base units to bridge
	Amount string `mapstructure:"Amount"`
	// Recipient of the tokens on L2. The signer address is used when it's not set
	Recipient common.Address `mapstructure:"Recipient"`
	// CallHookData is the hex encoded data forwarded to the recipient on L2
	CallHookData string `mapstructure:"CallHookData"`

	// L1GasLimit is the gas the max submission cost is computed for
	L1GasLimit uint64 `mapstructure:"L1GasLimit"`
	// L2GasLimit is the max gas of the L2 execution
	L2GasLimit uint64 `mapstructure:"L2GasLimit"`
	// FeeMarginPercent inflates both fee estimations. 0 disables the margin
	FeeMarginPercent uint64 `mapstructure:"FeeMarginPercent"`
}
