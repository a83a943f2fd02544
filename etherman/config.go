package etherman

import "github.com/0xPolygonHermez/zkevm-node/config/types"

// Config represents the configuration of the etherman
type Config struct {
	// L1URL is the json rpc endpoint of the chain holding the token and the gateway router
	L1URL string `mapstructure:"L1URL"`
	// L2URL is the json rpc endpoint of the rollup the token is bridged to
	L2URL string `mapstructure:"L2URL"`

	// PollInterval is the time between two receipt queries while waiting for a tx to be mined
	PollInterval types.Duration `mapstructure:"PollInterval"`
	// ReceiptTimeout bounds the wait for a receipt. 0 waits forever
	ReceiptTimeout types.Duration `mapstructure:"ReceiptTimeout"`
}

// KeystoreFileConfig has all the information needed to load a private key from a keystore file
type KeystoreFileConfig struct {
	// Path is the path of the keystore file
	Path string `mapstructure:"Path"`
	// Password used to decrypt the keystore file
	Password string `mapstructure:"Password"`
}
