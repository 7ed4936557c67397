package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Chain holds the per-chain bridge deployment: the contracts this node talks to and
// the message policy for sends originating here.
type Chain struct {
	Chain         string   `toml:"chain"`
	ChainId       int64    `toml:"chain_id"`
	ChainSelector uint64   `toml:"chain_selector"`
	Rpcs          []string `toml:"rpcs"`

	// Deployed collaborator contracts.
	Nft      string `toml:"nft"`
	FeeToken string `toml:"fee_token"`
	Router   string `toml:"router"`

	// Account that holds bridged tokens during the transfer-in -> burn window and
	// pays relay fees.
	BridgeAccount string `toml:"bridge_account"`

	// Gas budget for destination-side execution. Zero means the default policy value.
	GasLimit uint64 `toml:"gas_limit"`
}

type Config struct {
	DbHost     string `toml:"db_host"`
	DbPort     int    `toml:"db_port"`
	DbUsername string `toml:"db_username"`
	DbPassword string `toml:"db_password"`
	DbSchema   string `toml:"db_schema"`
	InMemory   bool   `toml:"in_memory"`

	ServerPort int    `toml:"server_port"`
	RelayUrl   string `toml:"relay_url"`

	Chains map[string]Chain `toml:"chains"`
}

func Load(path string) (Config, error) {
	cfg := Config{}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return cfg, nil
}
