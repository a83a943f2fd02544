package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/0xPolygonHermez/token-bridger/bridger"
	"github.com/0xPolygonHermez/token-bridger/config"
	"github.com/0xPolygonHermez/token-bridger/etherman"
	"github.com/0xPolygonHermez/token-bridger/metrics"
	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/urfave/cli/v2"
)

const runStatusFailed = "failed"

func runCmd(ctx *cli.Context) error {
	return start(ctx, false)
}

func estimateCmd(ctx *cli.Context) error {
	return start(ctx, true)
}

func start(cliCtx *cli.Context, dryRun bool) error {
	c, err := initCommon(cliCtx)
	if err != nil {
		return err
	}
	metrics.Init(c.Metrics)
	defer func() {
		if err := metrics.Push(c.Metrics); err != nil {
			log.Warnf("error pushing the run metrics: %v", err)
		}
	}()

	l1Client, l2Client, err := newClients(c.Etherman)
	if err != nil {
		log.Error(err)
		metrics.RecordRun(runStatusFailed)
		return err
	}
	defer l1Client.Close()
	defer l2Client.Close()

	b, err := bridger.NewBridger(c.Bridger, c.NetworkConfig.TokenAddr, c.NetworkConfig.RouterAddr, l1Client, l2Client)
	if err != nil {
		log.Error(err)
		metrics.RecordRun(runStatusFailed)
		return err
	}

	// Cancel the run on an interrupt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var outcome *bridger.TransferOutcome
	if dryRun {
		outcome, err = b.Estimate(ctx)
	} else {
		outcome, err = b.Run(ctx)
	}
	if err != nil {
		log.Error(err)
		metrics.RecordRun(runStatusFailed)
		return err
	}
	metrics.RecordRun(string(outcome.Status))
	log.Infof("Done, status: %s", outcome.Status)
	return nil
}

func initCommon(ctx *cli.Context) (*config.Config, error) {
	configFilePath := ctx.String(flagCfg)
	network := ctx.String(flagNetwork)
	c, err := config.Load(configFilePath, network)
	if err != nil {
		return nil, err
	}
	setupLog(c.Log)
	return c, nil
}

func setupLog(c log.Config) {
	log.Init(c)
}

func newClients(c etherman.Config) (*etherman.Client, *etherman.Client, error) {
	l1Client, err := etherman.NewClient(etherman.L1, c.L1URL, c)
	if err != nil {
		return nil, nil, err
	}
	l2Client, err := etherman.NewClient(etherman.L2, c.L2URL, c)
	if err != nil {
		l1Client.Close()
		return nil, nil, err
	}
	return l1Client, l2Client, nil
}
