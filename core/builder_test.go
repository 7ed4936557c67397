package core

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sisu-network/nftbridge/relay"
	"github.com/sisu-network/nftbridge/types"
)

func TestMessageBuilder_Build(t *testing.T) {
	builder := NewMessageBuilder(&relay.MockRelay{}, testFeeToken, 0)

	msg := builder.Build(selectorY, receiverY, []byte{0x01, 0x02})
	require.Equal(t, selectorY, msg.DestinationSelector)
	require.Equal(t, receiverY, msg.Receiver)
	require.Equal(t, testFeeToken, msg.FeeToken)
	require.Equal(t, DefaultGasLimit, msg.GasLimit)

	// An explicit config value overrides the policy default.
	builder = NewMessageBuilder(&relay.MockRelay{}, testFeeToken, 500_000)
	msg = builder.Build(selectorY, receiverY, nil)
	require.Equal(t, uint64(500_000), msg.GasLimit)
}

func TestMessageBuilder_Quote(t *testing.T) {
	mockRelay := &relay.MockRelay{
		GetFeeFunc: func(ctx context.Context, destinationSelector uint64, msg *types.OutboundMessage) (*big.Int, error) {
			return big.NewInt(1500), nil
		},
	}

	builder := NewMessageBuilder(mockRelay, testFeeToken, 0)
	quote, err := builder.Quote(context.Background(), builder.Build(selectorY, receiverY, nil))
	require.Nil(t, err)
	require.Equal(t, int64(1500), quote.Amount.Int64())
}

func TestMessageBuilder_QuoteRelayDown(t *testing.T) {
	mockRelay := &relay.MockRelay{
		GetFeeFunc: func(ctx context.Context, destinationSelector uint64, msg *types.OutboundMessage) (*big.Int, error) {
			return nil, types.ErrRelayUnavailable
		},
	}

	builder := NewMessageBuilder(mockRelay, testFeeToken, 0)
	_, err := builder.Quote(context.Background(), builder.Build(selectorY, receiverY, nil))
	require.Equal(t, types.ErrRelayUnavailable, err)
}
