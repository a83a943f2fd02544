package etherman

import (
	"crypto/ecdsa"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// LoadPrivateKey parses a hex encoded private key, with or without the 0x prefix.
func LoadPrivateKey(accHexPrivateKey string) (*ecdsa.PrivateKey, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(accHexPrivateKey), "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	return privateKey, nil
}

// LoadKeystore decrypts the private key stored in the keystore file.
func LoadKeystore(ks KeystoreFileConfig) (*ecdsa.PrivateKey, error) {
	keystoreEncrypted, err := os.ReadFile(filepath.Clean(ks.Path))
	if err != nil {
		return nil, errors.Wrapf(err, "read keystore %s", ks.Path)
	}
	key, err := keystore.DecryptKey(keystoreEncrypted, ks.Password)
	if err != nil {
		return nil, errors.Wrapf(err, "decrypt keystore %s", ks.Path)
	}
	return key.PrivateKey, nil
}
