package config

import (
	"fmt"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/ethereum/go-ethereum/common"
)

//NetworkConfig is the configuration struct for the different environments
type NetworkConfig struct {
	// TokenAddr is the L1 erc20 token to bridge
	TokenAddr common.Address
	// RouterAddr is the L1 gateway router of the rollup
	RouterAddr common.Address
}

type networkPreset struct {
	NetworkConfig
	l1URL string
	l2URL string
}

const (
	sepolia = "sepolia"
	local   = "local"
)

//nolint:gomnd
var (
	sepoliaConfig = networkPreset{
		NetworkConfig: NetworkConfig{
			TokenAddr:  common.HexToAddress("0x5a5297A52b1faCa0958084D4D424E774b0EDE7d2"),
			RouterAddr: common.HexToAddress("0x76B99e93314aC2bDA886a6c9103fe18380B496c7"),
		},
		l1URL: "https://sepolia.drpc.org",
		l2URL: "https://rpc-grubby-red-rodent-a6u9rz8x70.t.conduit.xyz",
	}
	localConfig = networkPreset{
		NetworkConfig: NetworkConfig{
			TokenAddr:  common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
			RouterAddr: common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"),
		},
		l1URL: "http://localhost:8545",
		l2URL: "http://localhost:8547",
	}
)

// loadNetworkConfig applies the preset. The rpc endpoints of the preset are only used when they aren't configured.
func (cfg *Config) loadNetworkConfig(network string) error {
	var preset networkPreset
	switch network {
	case sepolia:
		log.Debug("Sepolia network selected")
		preset = sepoliaConfig
	case local:
		log.Debug("Local network selected")
		preset = localConfig
	default:
		return fmt.Errorf("unknown network %q, available networks: %s, %s", network, sepolia, local)
	}
	cfg.NetworkConfig = preset.NetworkConfig
	if cfg.Etherman.L1URL == "" {
		cfg.Etherman.L1URL = preset.l1URL
	}
	if cfg.Etherman.L2URL == "" {
		cfg.Etherman.L2URL = preset.l2URL
	}
	return nil
}
