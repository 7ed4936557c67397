package core

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/sisu-network/nftbridge/database"
	"github.com/sisu-network/nftbridge/relay"
	"github.com/sisu-network/nftbridge/token"
	"github.com/sisu-network/nftbridge/types"
)

var (
	testRouter    = common.HexToAddress("0x59b670e9fA9D0A427751Af201D676719a970857b")
	testFeeToken  = common.HexToAddress("0xc6e7DF5E7b4f2A278906862b61205850344D4e7d")
	testMessageId = common.HexToHash("0x11223344556677889900aabbccddeeff11223344556677889900aabbccddeeff")
)

func mockForDispatcher(fee, balance *big.Int) (*relay.MockRelay, *token.MockFeeToken, *database.MockDb) {
	mockRelay := &relay.MockRelay{
		GetFeeFunc: func(ctx context.Context, destinationSelector uint64, msg *types.OutboundMessage) (*big.Int, error) {
			return new(big.Int).Set(fee), nil
		},
		SendFunc: func(ctx context.Context, destinationSelector uint64, msg *types.OutboundMessage) (common.Hash, error) {
			return testMessageId, nil
		},
	}

	mockFeeToken := &token.MockFeeToken{
		BalanceOfFunc: func(ctx context.Context, account common.Address) (*big.Int, error) {
			return new(big.Int).Set(balance), nil
		},
	}

	return mockRelay, mockFeeToken, &database.MockDb{}
}

func newTestDispatcher(mockRelay *relay.MockRelay, mockFeeToken *token.MockFeeToken,
	db *database.MockDb) *Dispatcher {
	builder := NewMessageBuilder(mockRelay, testFeeToken, 0)

	return NewDispatcher("ganache1", mockRelay, builder, mockFeeToken, testBridgeAccount,
		testRouter, db)
}

func TestDispatcher_Send(t *testing.T) {
	mockRelay, mockFeeToken, db := mockForDispatcher(big.NewInt(1500), big.NewInt(5000))

	var approvedSpender common.Address
	var approvedAmount *big.Int
	mockFeeToken.ApproveFunc = func(ctx context.Context, spender common.Address, amount *big.Int) (bool, error) {
		approvedSpender = spender
		approvedAmount = amount
		return true, nil
	}

	var saved *types.MessageReceipt
	db.SaveReceiptFunc = func(chain string, receipt *types.MessageReceipt) error {
		require.Equal(t, "ganache1", chain)
		saved = receipt
		return nil
	}

	dispatcher := newTestDispatcher(mockRelay, mockFeeToken, db)
	msg := dispatcher.builder.Build(2, testOwner, []byte{0x01})

	receipt, err := dispatcher.Send(context.Background(), msg)
	require.Nil(t, err)

	// The approval is bounded to exactly the quoted fee.
	require.Equal(t, testRouter, approvedSpender)
	require.Equal(t, int64(1500), approvedAmount.Int64())

	require.Equal(t, testMessageId, receipt.MessageId)
	require.Equal(t, uint64(2), receipt.DestinationSelector)
	require.Equal(t, testFeeToken, receipt.FeeToken)
	require.Equal(t, int64(1500), receipt.FeePaid.Int64())
	require.Equal(t, saved, receipt)
}

func TestDispatcher_InsufficientFee(t *testing.T) {
	mockRelay, mockFeeToken, db := mockForDispatcher(big.NewInt(1500), big.NewInt(100))

	approved := false
	mockFeeToken.ApproveFunc = func(ctx context.Context, spender common.Address, amount *big.Int) (bool, error) {
		approved = true
		return true, nil
	}

	sent := false
	mockRelay.SendFunc = func(ctx context.Context, destinationSelector uint64, msg *types.OutboundMessage) (common.Hash, error) {
		sent = true
		return testMessageId, nil
	}

	dispatcher := newTestDispatcher(mockRelay, mockFeeToken, db)
	msg := dispatcher.builder.Build(2, testOwner, []byte{0x01})

	_, err := dispatcher.Send(context.Background(), msg)

	var feeErr *types.InsufficientFeeError
	require.ErrorAs(t, err, &feeErr)
	require.Equal(t, int64(100), feeErr.Current.Int64())
	require.Equal(t, int64(1500), feeErr.Required.Int64())
	require.False(t, approved)
	require.False(t, sent)
}

func TestDispatcher_UnsupportedDestination(t *testing.T) {
	mockRelay, mockFeeToken, db := mockForDispatcher(big.NewInt(1500), big.NewInt(5000))
	mockRelay.GetFeeFunc = func(ctx context.Context, destinationSelector uint64, msg *types.OutboundMessage) (*big.Int, error) {
		return nil, &types.UnsupportedDestinationError{Selector: destinationSelector}
	}

	dispatcher := newTestDispatcher(mockRelay, mockFeeToken, db)
	msg := dispatcher.builder.Build(99, testOwner, []byte{0x01})

	_, err := dispatcher.Send(context.Background(), msg)
	require.IsType(t, &types.UnsupportedDestinationError{}, err)
}
