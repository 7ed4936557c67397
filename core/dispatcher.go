package core

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sisu-network/lib/log"

	"github.com/sisu-network/nftbridge/database"
	"github.com/sisu-network/nftbridge/relay"
	"github.com/sisu-network/nftbridge/token"
	"github.com/sisu-network/nftbridge/types"
)

// Dispatcher submits outbound messages to the relay. Every step is a precondition for
// the next one: quote, balance check, bounded approval, send. Nothing is retried; a
// failure at any step surfaces to the caller with no fee spent.
type Dispatcher struct {
	chain         string
	relay         relay.Relay
	builder       *MessageBuilder
	feeToken      token.FeeToken
	bridgeAccount common.Address
	router        common.Address
	db            database.Database
}

func NewDispatcher(
	chain string,
	relayClient relay.Relay,
	builder *MessageBuilder,
	feeToken token.FeeToken,
	bridgeAccount common.Address,
	router common.Address,
	db database.Database,
) *Dispatcher {
	return &Dispatcher{
		chain:         chain,
		relay:         relayClient,
		builder:       builder,
		feeToken:      feeToken,
		bridgeAccount: bridgeAccount,
		router:        router,
		db:            db,
	}
}

// CheckFee quotes the message and verifies the bridge account can pay. Callers that
// mutate local state before dispatching use it as a preflight so an underfunded send
// fails before any custody change.
func (d *Dispatcher) CheckFee(ctx context.Context, msg *types.OutboundMessage) (*types.FeeQuote, error) {
	quote, err := d.builder.Quote(ctx, msg)
	if err != nil {
		return nil, err
	}

	balance, err := d.feeToken.BalanceOf(ctx, d.bridgeAccount)
	if err != nil {
		return nil, err
	}

	if balance.Cmp(quote.Amount) < 0 {
		return nil, &types.InsufficientFeeError{Current: balance, Required: quote.Amount}
	}

	return quote, nil
}

func (d *Dispatcher) Send(ctx context.Context, msg *types.OutboundMessage) (*types.MessageReceipt, error) {
	quote, err := d.CheckFee(ctx, msg)
	if err != nil {
		return nil, err
	}

	// The approval is scoped to exactly the quoted fee. Repeated sends never leave the
	// router with spending power beyond the message being dispatched.
	ok, err := d.feeToken.Approve(ctx, d.router, quote.Amount)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("fee token approval rejected for spender %s", d.router)
	}

	messageId, err := d.relay.Send(ctx, msg.DestinationSelector, msg)
	if err != nil {
		return nil, err
	}

	receipt := &types.MessageReceipt{
		MessageId:           messageId,
		DestinationSelector: msg.DestinationSelector,
		Receiver:            msg.Receiver,
		FeeToken:            msg.FeeToken,
		FeePaid:             quote.Amount,
	}

	if err := d.db.SaveReceipt(d.chain, receipt); err != nil {
		// The message is already accepted by the relay and cannot be recalled. Keep
		// going so the caller still observes the send; the event log carries the id.
		log.Error("Cannot save message receipt, messageId = ", messageId, " err = ", err)
	}

	log.Infof("MessageSent: messageId = %s, destination = %d, receiver = %s, feeToken = %s, fee = %s",
		messageId, msg.DestinationSelector, msg.Receiver, msg.FeeToken, quote.Amount)

	return receipt, nil
}
