package config

import (
	"bytes"
	"errors"
	"strings"

	"github.com/0xPolygonHermez/token-bridger/bridger"
	"github.com/0xPolygonHermez/token-bridger/etherman"
	"github.com/0xPolygonHermez/token-bridger/metrics"
	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	envPrefix = "TOKEN_BRIDGER"
	// privateKeyEnv is read without the prefix
	privateKeyEnv = "PRIVATE_KEY"
)

// Config struct
type Config struct {
	Log      log.Config
	Etherman etherman.Config
	Bridger  bridger.Config
	Metrics  metrics.Config
	NetworkConfig
}

// Load loads the configuration. The defaults are overridden by the config file, then by the env vars.
func Load(configFilePath string, network string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	err := v.ReadConfig(bytes.NewBuffer([]byte(DefaultValues)))
	if err != nil {
		return nil, err
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(envPrefix)
	err = v.BindEnv("Bridger.PrivateKey", privateKeyEnv)
	if err != nil {
		return nil, err
	}

	if configFilePath != "" {
		v.SetConfigFile(configFilePath)
		err = v.MergeInConfig()
		if err != nil {
			log.Errorf("error reading config file %s: %v", configFilePath, err)
			return nil, err
		}
	}

	var cfg Config
	err = v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, err
	}

	if v.IsSet("NetworkConfig") && network != "" {
		return nil, errors.New("Network details are provided in the config file (the [NetworkConfig] section) and as a flag (the --network or -n). Configure it only once and try again please.")
	}
	if !v.IsSet("NetworkConfig") && network == "" {
		return nil, errors.New("Network details are not provided. Please configure the [NetworkConfig] section in your config file, or provide a --network flag.")
	}
	if !v.IsSet("NetworkConfig") {
		err = cfg.loadNetworkConfig(network)
		if err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}
