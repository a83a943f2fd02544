package gerror

import "errors"

var (
	// ErrMissingCredential is used when neither a private key nor a keystore file is configured
	ErrMissingCredential = errors.New("missing signer credential, set the PRIVATE_KEY environment variable or configure a keystore")
	// ErrInsufficientL2Funds is used when the signer holds no native balance on the rollup.
	// Any token deployment transaction would fail until some ETH is bridged over
	ErrInsufficientL2Funds = errors.New("signer balance on the rollup is 0")
	// ErrTxReverted is used when a mined transaction has a failed receipt status
	ErrTxReverted = errors.New("transaction reverted")
	// ErrReceiptTimeout is used when a transaction is not mined within the configured timeout
	ErrReceiptTimeout = errors.New("timeout waiting for the transaction receipt")
)
