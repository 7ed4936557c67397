package relay

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sisu-network/nftbridge/types"
)

// Relay is the message-relay network collaborator. GetFee quotes the delivery fee for
// one specific message; the quote is only valid for that exact message. Send hands the
// message to the relay and returns its 32-byte id. Delivery on the destination chain
// happens later, through the receive entry point, with at-least-once semantics.
type Relay interface {
	GetFee(ctx context.Context, destinationSelector uint64, msg *types.OutboundMessage) (*big.Int, error)
	Send(ctx context.Context, destinationSelector uint64, msg *types.OutboundMessage) (common.Hash, error)
}
