package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gabapcia/waveportal/internal/config"
	"github.com/gabapcia/waveportal/internal/handlers/cli"
	"github.com/gabapcia/waveportal/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/waveportal/internal/infra/wallet/keystore"
	"github.com/gabapcia/waveportal/internal/infra/wallet/rpcwallet"
	"github.com/gabapcia/waveportal/internal/pkg/logger"
	"github.com/gabapcia/waveportal/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/waveportal/internal/pkg/transport/http"
	"github.com/gabapcia/waveportal/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/waveportal/internal/portal"
	"github.com/gabapcia/waveportal/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var (
		wallet   session.Wallet
		contract portal.Contract
	)

	if cfg.HasProvider() {
		portalContract, closeContract, err := dialContract(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeContract()
		contract = portalContract

		if wallet, err = openWallet(cfg); err != nil {
			return err
		}
	} else {
		logger.Info(ctx, "make sure you have a wallet configured")
	}

	svc := portal.New(wallet, contract, portal.WithGasLimit(cfg.Contract.GasLimit))
	return cli.Run(ctx, svc, wallet)
}

func transportOptions(cfg config.Config) []transporthttp.Option {
	opts := []transporthttp.Option{
		transporthttp.WithTimeout(cfg.Provider.Timeout),
		transporthttp.WithRetryMax(cfg.Provider.RetryMax),
	}
	if cfg.Log.Debug() {
		opts = append(opts, transporthttp.WithRequestLogging())
	}

	return opts
}

func dialContract(ctx context.Context, cfg config.Config) (portal.Contract, ethereum.Closer, error) {
	contract, closeContract, err := ethereum.Dial(ctx,
		cfg.Provider.URL,
		transporthttp.NewStandardClient(transportOptions(cfg)...),
		common.HexToAddress(cfg.Contract.Address),
		ethereum.WithPollInterval(cfg.Contract.PollInterval),
		ethereum.WithReceiptAttempts(cfg.Contract.ReceiptAttempts),
	)
	if err != nil {
		return nil, nil, err
	}

	logger.Info(ctx, "we have the ethereum provider", "provider.url", cfg.Provider.URL)
	return contract, closeContract, nil
}

func openWallet(cfg config.Config) (session.Wallet, error) {
	switch cfg.Wallet.Kind {
	case config.WalletKindKeystore:
		w, err := keystore.Open(cfg.Wallet.KeystoreDir, cfg.Wallet.Passphrase, keystore.WithUnlockAll(cfg.Wallet.UnlockAll))
		if err != nil {
			return nil, fmt.Errorf("open keystore: %w", err)
		}
		return w, nil
	default:
		conn := jsonrpc.NewClient(transporthttp.NewClient(transportOptions(cfg)...), cfg.WalletRPCURL())
		return rpcwallet.New(conn), nil
	}
}
