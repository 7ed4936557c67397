package database

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/sisu-network/nftbridge/config"
	"github.com/sisu-network/nftbridge/types"
)

func getTestDb(t *testing.T) Database {
	cfg := config.Config{
		InMemory: true,
	}
	dbInstance := NewDb(&cfg)
	err := dbInstance.Init()
	require.Nil(t, err)

	return dbInstance
}

func TestDefaultDatabase_SaveAndGetReceipt(t *testing.T) {
	db := getTestDb(t)

	receipt := &types.MessageReceipt{
		MessageId:           common.HexToHash("0xabc1"),
		DestinationSelector: 2,
		Receiver:            common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199"),
		FeeToken:            common.HexToAddress("0xc6e7DF5E7b4f2A278906862b61205850344D4e7d"),
		FeePaid:             big.NewInt(1500),
	}

	err := db.SaveReceipt("ganache1", receipt)
	require.Nil(t, err)

	loaded, err := db.GetReceipt("ganache1", receipt.MessageId)
	require.Nil(t, err)
	require.Equal(t, receipt.DestinationSelector, loaded.DestinationSelector)
	require.Equal(t, receipt.Receiver, loaded.Receiver)
	require.Equal(t, receipt.FeeToken, loaded.FeeToken)
	require.Equal(t, 0, receipt.FeePaid.Cmp(loaded.FeePaid))
}

func TestDefaultDatabase_GetReceiptNotFound(t *testing.T) {
	db := getTestDb(t)

	_, err := db.GetReceipt("ganache1", common.HexToHash("0xdead"))
	require.NotNil(t, err)
}

func TestDefaultDatabase_TokenCounter(t *testing.T) {
	db := getTestDb(t)

	id, err := db.PeekTokenId("ganache1")
	require.Nil(t, err)
	require.Equal(t, int64(1), id.Int64())

	// Peeking again does not consume the id.
	id, err = db.PeekTokenId("ganache1")
	require.Nil(t, err)
	require.Equal(t, int64(1), id.Int64())

	err = db.AdvanceTokenId("ganache1")
	require.Nil(t, err)

	id, err = db.PeekTokenId("ganache1")
	require.Nil(t, err)
	require.Equal(t, int64(2), id.Int64())

	// Counters are independent per chain.
	id, err = db.PeekTokenId("ganache2")
	require.Nil(t, err)
	require.Equal(t, int64(1), id.Int64())
}
