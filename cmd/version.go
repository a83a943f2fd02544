package main

import (
	"os"

	tokenbridger "github.com/0xPolygonHermez/token-bridger"
	"github.com/urfave/cli/v2"
)

func versionCmd(*cli.Context) error {
	tokenbridger.PrintVersion(os.Stdout)
	return nil
}
