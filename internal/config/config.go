// Package config loads the waveportal settings from WAVEPORTAL_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/waveportal/internal/pkg/validator"
)

// Prefix is prepended to every environment variable name.
const Prefix = "WAVEPORTAL"

const (
	WalletKindRPC      = "rpc"
	WalletKindKeystore = "keystore"
)

type Config struct {
	Log       LogConfig       `envconfig:"LOG"`
	Telemetry TelemetryConfig `envconfig:"TELEMETRY"`
	Provider  ProviderConfig  `envconfig:"PROVIDER"`
	Wallet    WalletConfig    `envconfig:"WALLET"`
	Contract  ContractConfig  `envconfig:"CONTRACT"`
}

type LogConfig struct {
	Level string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	// File receives the logs. The terminal belongs to the UI.
	File string `envconfig:"FILE" default:"waveportal.log" validate:"required"`
}

type TelemetryConfig struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"waveportal" validate:"required"`
}

// ProviderConfig points at the Ethereum endpoint. An empty URL means no
// wallet is present.
type ProviderConfig struct {
	URL      string        `envconfig:"URL" validate:"omitempty,uri"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"30s" validate:"gt=0"`
	RetryMax int           `envconfig:"RETRY_MAX" default:"3" validate:"gte=0"`
}

type WalletConfig struct {
	Kind string `envconfig:"KIND" default:"rpc" validate:"oneof=rpc keystore"`
	// RPCURL is the HTTP endpoint of an rpc wallet. Defaults to the
	// provider URL.
	RPCURL      string `envconfig:"RPC_URL" validate:"omitempty,http_url"`
	KeystoreDir string `envconfig:"KEYSTORE_DIR" validate:"required_if=Kind keystore"`
	Passphrase  string `envconfig:"PASSPHRASE"`
	UnlockAll   bool   `envconfig:"UNLOCK_ALL" default:"false"`
}

type ContractConfig struct {
	Address      string        `envconfig:"ADDRESS" default:"0xEe1C3c1b2757eDA0723cC9b289816d2E77AE2488" validate:"eth_addr"`
	GasLimit     uint64        `envconfig:"GAS_LIMIT" default:"300000" validate:"gt=0"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"12s" validate:"gt=0"`
	// ReceiptAttempts bounds the receipt polling. Zero polls until the
	// context ends.
	ReceiptAttempts uint `envconfig:"RECEIPT_ATTEMPTS" default:"0"`
}

// Debug reports whether debug logging is enabled.
func (c LogConfig) Debug() bool {
	return c.Level == "debug"
}

// HasProvider reports whether an Ethereum endpoint is configured.
func (c Config) HasProvider() bool {
	return c.Provider.URL != ""
}

// WalletRPCURL returns the endpoint an rpc wallet talks to.
func (c Config) WalletRPCURL() string {
	if c.Wallet.RPCURL != "" {
		return c.Wallet.RPCURL
	}

	return c.Provider.URL
}

// Load reads and validates the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.validateWalletEndpoint(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validateWalletEndpoint rejects rpc wallets whose endpoint is not HTTP, as
// happens when the provider is a websocket or IPC path and no RPC_URL is set.
func (c Config) validateWalletEndpoint() error {
	if !c.HasProvider() || c.Wallet.Kind != WalletKindRPC {
		return nil
	}

	if err := validator.ValidateVar("WALLET_RPC_URL", c.WalletRPCURL(), "http_url"); err != nil {
		return fmt.Errorf("rpc wallet needs an http endpoint, set %s_WALLET_RPC_URL: %w", Prefix, err)
	}

	return nil
}
