package main

import (
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/joho/godotenv"
	"github.com/sisu-network/lib/log"

	"github.com/sisu-network/nftbridge/config"
	"github.com/sisu-network/nftbridge/core"
	"github.com/sisu-network/nftbridge/database"
	"github.com/sisu-network/nftbridge/network"
	"github.com/sisu-network/nftbridge/relay"
	"github.com/sisu-network/nftbridge/server"
	"github.com/sisu-network/nftbridge/token"
)

func initialize() (config.Config, database.Database) {
	err := godotenv.Load()
	if err != nil {
		panic(err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "./bridge.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	db := database.NewDb(&cfg)
	if err := db.Init(); err != nil {
		panic(err)
	}

	return cfg, db
}

func setupBridges(cfg config.Config, db database.Database, relayClient relay.Relay) map[string]*core.Bridge {
	bridges := make(map[string]*core.Bridge)
	hexKey := os.Getenv("BRIDGE_ACCOUNT_KEY")

	for name, chainCfg := range cfg.Chains {
		log.Info("Setting up bridge for chain ", name)

		client, err := token.DialEthClient(chainCfg.Rpcs)
		if err != nil {
			panic(err)
		}

		transactor, err := token.NewTransactor(client, hexKey, big.NewInt(chainCfg.ChainId))
		if err != nil {
			panic(err)
		}

		nft := token.NewEthWrappedNFT(client, common.HexToAddress(chainCfg.Nft), transactor)
		feeToken := token.NewEthFeeToken(client, common.HexToAddress(chainCfg.FeeToken), transactor)

		bridges[name] = core.NewBridge(chainCfg, relayClient, nft, feeToken, db)
	}

	return bridges
}

func main() {
	cfg, db := initialize()

	relayClient := relay.NewClient(cfg.RelayUrl, network.NewHttp())
	go relayClient.TryDial()

	bridges := setupBridges(cfg, db, relayClient)

	handler := rpc.NewServer()
	if err := handler.RegisterName("bridge", server.NewApi(bridges)); err != nil {
		panic(err)
	}

	s := server.NewServer(handler, cfg.ServerPort)
	s.Run()
}
