package core

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sisu-network/nftbridge/relay"
	"github.com/sisu-network/nftbridge/types"
)

// DefaultGasLimit bounds destination-side execution cost of a delivered message. It is
// a deliberate policy constant; operators can override it per chain in the config but
// the effective value is always visible in the outbound message itself.
const DefaultGasLimit = uint64(200_000)

// MessageBuilder assembles outbound messages and quotes their delivery fee. Building
// is pure; only Quote touches the relay.
type MessageBuilder struct {
	relay    relay.Relay
	feeToken common.Address
	gasLimit uint64
}

func NewMessageBuilder(relayClient relay.Relay, feeToken common.Address, gasLimit uint64) *MessageBuilder {
	if gasLimit == 0 {
		gasLimit = DefaultGasLimit
	}

	return &MessageBuilder{
		relay:    relayClient,
		feeToken: feeToken,
		gasLimit: gasLimit,
	}
}

func (b *MessageBuilder) Build(destinationSelector uint64, receiver common.Address, payload []byte) *types.OutboundMessage {
	return &types.OutboundMessage{
		DestinationSelector: destinationSelector,
		Receiver:            receiver,
		Payload:             payload,
		FeeToken:            b.feeToken,
		GasLimit:            b.gasLimit,
	}
}

// Quote asks the relay for the delivery fee of one specific message. The fee depends
// on the message content and current conditions, so callers must re-quote whenever the
// message changes.
func (b *MessageBuilder) Quote(ctx context.Context, msg *types.OutboundMessage) (*types.FeeQuote, error) {
	amount, err := b.relay.GetFee(ctx, msg.DestinationSelector, msg)
	if err != nil {
		return nil, err
	}

	return &types.FeeQuote{Amount: amount}, nil
}
