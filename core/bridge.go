package core

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sisu-network/lib/log"

	"github.com/sisu-network/nftbridge/codec"
	"github.com/sisu-network/nftbridge/config"
	"github.com/sisu-network/nftbridge/database"
	"github.com/sisu-network/nftbridge/relay"
	"github.com/sisu-network/nftbridge/token"
	"github.com/sisu-network/nftbridge/types"
)

// Bridge wires the bridge components for one chain and exposes the public entry
// points. All collaborators arrive through the constructor; there is no ambient state.
type Bridge struct {
	cfg config.Chain

	custody    *CustodyManager
	builder    *MessageBuilder
	dispatcher *Dispatcher
	receiver   *Receiver
	db         database.Database
}

func NewBridge(
	cfg config.Chain,
	relayClient relay.Relay,
	nft token.WrappedNFT,
	feeToken token.FeeToken,
	db database.Database,
) *Bridge {
	bridgeAccount := common.HexToAddress(cfg.BridgeAccount)
	router := common.HexToAddress(cfg.Router)
	builder := NewMessageBuilder(relayClient, common.HexToAddress(cfg.FeeToken), cfg.GasLimit)

	return &Bridge{
		cfg:        cfg,
		custody:    NewCustodyManager(nft, bridgeAccount),
		builder:    builder,
		dispatcher: NewDispatcher(cfg.Chain, relayClient, builder, feeToken, bridgeAccount, router, db),
		receiver:   NewReceiver(nft, router),
		db:         db,
	}
}

// BridgeOut burns the requester's token on this chain and dispatches a message that
// re-mints it for newOwner on the destination chain.
func (b *Bridge) BridgeOut(
	ctx context.Context,
	tokenId *big.Int,
	requester common.Address,
	newOwner common.Address,
	destinationSelector uint64,
	destReceiver common.Address,
) (*types.MessageReceipt, error) {
	payload, err := codec.Encode(&types.TransferIntent{TokenId: tokenId, NewOwner: newOwner})
	if err != nil {
		return nil, err
	}

	msg := b.builder.Build(destinationSelector, destReceiver, payload)

	// Fee preflight before touching custody. The burn cannot be undone, so an
	// underfunded caller must fail while the token still exists.
	if _, err := b.dispatcher.CheckFee(ctx, msg); err != nil {
		return nil, err
	}

	if err := b.custody.LockAndBurn(ctx, tokenId, requester); err != nil {
		return nil, err
	}

	return b.dispatcher.Send(ctx, msg)
}

// OriginateMint requests a wholly new token on the destination chain. The fresh id
// comes from the persisted counter, the shared numbering scheme both chains agree on.
// Any caller may originate; the fee comes out of the bridge account either way.
// A counter id that already exists on the destination is rejected there by the
// duplicate-id guard; the fee for that message is spent and the receipt stands.
func (b *Bridge) OriginateMint(
	ctx context.Context,
	destinationSelector uint64,
	receiver common.Address,
) (*types.MessageReceipt, error) {
	tokenId, err := b.db.PeekTokenId(b.cfg.Chain)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Encode(&types.TransferIntent{TokenId: tokenId, NewOwner: receiver})
	if err != nil {
		return nil, err
	}

	msg := b.builder.Build(destinationSelector, receiver, payload)

	receipt, err := b.dispatcher.Send(ctx, msg)
	if err != nil {
		return nil, err
	}

	// The counter advances only after the relay accepted the message. If the process
	// dies in between, the id gets reused and the destination's duplicate-id guard
	// rejects the second mint.
	if err := b.db.AdvanceTokenId(b.cfg.Chain); err != nil {
		log.Error("Cannot advance token counter, chain = ", b.cfg.Chain, " err = ", err)
	}

	return receipt, nil
}

// OnRelayMessage is the inbound delivery entry point, invoked by the relay only.
func (b *Bridge) OnRelayMessage(ctx context.Context, msg *types.InboundMessage) error {
	return b.receiver.OnRelayMessage(ctx, msg)
}

// GetReceipt looks up the audit record of a previously dispatched message.
func (b *Bridge) GetReceipt(messageId common.Hash) (*types.MessageReceipt, error) {
	return b.db.GetReceipt(b.cfg.Chain, messageId)
}
