package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TransferIntent is the record carried inside a cross-chain payload. It instructs the
// destination chain to mint token TokenId for NewOwner. The token id numbering scheme
// is shared by both chains, so the id survives the trip unchanged.
type TransferIntent struct {
	TokenId  *big.Int
	NewOwner common.Address
}

// OutboundMessage is assembled fresh for every send and never persisted. The relay fee
// depends on its exact content, so a quote obtained for one message must not be reused
// for another.
type OutboundMessage struct {
	DestinationSelector uint64
	Receiver            common.Address
	Payload             []byte
	FeeToken            common.Address
	GasLimit            uint64
}

type FeeQuote struct {
	Amount *big.Int
}

// MessageReceipt is the durable audit record of a dispatched message. It is saved into
// the database and logged as the MessageSent event.
type MessageReceipt struct {
	MessageId           common.Hash
	DestinationSelector uint64
	Receiver            common.Address
	FeeToken            common.Address
	FeePaid             *big.Int
}

// InboundMessage is what the relay hands to this node when a message arrives from
// another chain.
type InboundMessage struct {
	MessageId           common.Hash
	SourceChainSelector uint64
	SourceSender        common.Address
	Payload             []byte
}
