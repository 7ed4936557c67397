package relay

import (
	"context"
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sisu-network/nftbridge/types"
	"github.com/sisu-network/nftbridge/utils"
)

type MockRelay struct {
	GetFeeFunc func(ctx context.Context, destinationSelector uint64, msg *types.OutboundMessage) (*big.Int, error)
	SendFunc   func(ctx context.Context, destinationSelector uint64, msg *types.OutboundMessage) (common.Hash, error)
}

func (m *MockRelay) GetFee(ctx context.Context, destinationSelector uint64, msg *types.OutboundMessage) (*big.Int, error) {
	if m.GetFeeFunc != nil {
		return m.GetFeeFunc(ctx, destinationSelector, msg)
	}

	return big.NewInt(0), nil
}

func (m *MockRelay) Send(ctx context.Context, destinationSelector uint64, msg *types.OutboundMessage) (common.Hash, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, destinationSelector, msg)
	}

	// Deterministic id derived the same way a router would: hash the destination
	// and the payload.
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, destinationSelector)

	return utils.KeccakHash32Bytes(append(bz, msg.Payload...)), nil
}
