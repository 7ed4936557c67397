package core

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/sisu-network/nftbridge/codec"
	"github.com/sisu-network/nftbridge/token"
	"github.com/sisu-network/nftbridge/types"
)

func inboundFor(t *testing.T, tokenId int64, newOwner common.Address) *types.InboundMessage {
	payload, err := codec.Encode(&types.TransferIntent{
		TokenId:  big.NewInt(tokenId),
		NewOwner: newOwner,
	})
	require.Nil(t, err)

	return &types.InboundMessage{
		MessageId:           testMessageId,
		SourceChainSelector: 1,
		SourceSender:        testRouter,
		Payload:             payload,
	}
}

func TestReceiver_Mint(t *testing.T) {
	var mintedOwner common.Address
	var mintedId *big.Int
	nft := &token.MockWrappedNFT{
		MintWithIdFunc: func(ctx context.Context, owner common.Address, tokenId *big.Int) error {
			mintedOwner = owner
			mintedId = tokenId
			return nil
		},
	}

	receiver := NewReceiver(nft, testRouter)
	err := receiver.OnRelayMessage(context.Background(), inboundFor(t, 7, testOwner))
	require.Nil(t, err)
	require.Equal(t, testOwner, mintedOwner)
	require.Equal(t, int64(7), mintedId.Int64())
}

func TestReceiver_UnauthorizedSender(t *testing.T) {
	minted := false
	nft := &token.MockWrappedNFT{
		MintWithIdFunc: func(ctx context.Context, owner common.Address, tokenId *big.Int) error {
			minted = true
			return nil
		},
	}

	receiver := NewReceiver(nft, testRouter)
	msg := inboundFor(t, 7, testOwner)
	msg.SourceSender = common.HexToAddress("0x000000000000000000000000000000000000dEaD")

	err := receiver.OnRelayMessage(context.Background(), msg)
	require.IsType(t, &types.UnauthorizedSenderError{}, err)
	require.False(t, minted)
}

func TestReceiver_MalformedPayload(t *testing.T) {
	receiver := NewReceiver(&token.MockWrappedNFT{}, testRouter)

	msg := inboundFor(t, 7, testOwner)
	msg.Payload = []byte{0x01, 0x02}

	err := receiver.OnRelayMessage(context.Background(), msg)
	require.IsType(t, &types.MalformedPayloadError{}, err)
}

func TestReceiver_RepeatedDelivery(t *testing.T) {
	mintCount := 0
	nft := &token.MockWrappedNFT{
		MintWithIdFunc: func(ctx context.Context, owner common.Address, tokenId *big.Int) error {
			mintCount++
			return nil
		},
	}

	receiver := NewReceiver(nft, testRouter)
	msg := inboundFor(t, 7, testOwner)

	err := receiver.OnRelayMessage(context.Background(), msg)
	require.Nil(t, err)

	// The relay delivers at least once; the second delivery of the same message id
	// must not mint again.
	err = receiver.OnRelayMessage(context.Background(), msg)
	require.IsType(t, &types.AlreadyProcessedError{}, err)
	require.Equal(t, 1, mintCount)
}

func TestReceiver_DuplicateTokenId(t *testing.T) {
	nft := &token.MockWrappedNFT{
		MintWithIdFunc: func(ctx context.Context, owner common.Address, tokenId *big.Int) error {
			return &types.DuplicateTokenIdError{TokenId: tokenId}
		},
	}

	receiver := NewReceiver(nft, testRouter)
	err := receiver.OnRelayMessage(context.Background(), inboundFor(t, 7, testOwner))
	require.IsType(t, &types.DuplicateTokenIdError{}, err)
}
