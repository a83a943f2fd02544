package main

import (
	"fmt"
	"os"

	tokenbridger "github.com/0xPolygonHermez/token-bridger"
	"github.com/urfave/cli/v2"
)

const (
	flagCfg     = "cfg"
	flagNetwork = "network"
)

const (
	// App name
	appName = "token-bridger"
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Bridge an erc20 token from L1 to the rollup through the gateway router"
	app.Version = tokenbridger.Version
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     flagCfg,
			Aliases:  []string{"c"},
			Usage:    "Configuration `FILE`",
			Required: false,
		},
		&cli.StringFlag{
			Name:     flagNetwork,
			Aliases:  []string{"n"},
			Usage:    "Network: sepolia, local. Required unless the [NetworkConfig] section is in the config file",
			Required: false,
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Approve the gateway if needed and bridge the token to the rollup",
			Action:  runCmd,
			Flags:   flags,
		},
		{
			Name:    "estimate",
			Aliases: []string{},
			Usage:   "Read the token state and print the transactions the run command would send, without sending them",
			Action:  estimateCmd,
			Flags:   flags,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		os.Exit(1)
	}
}
