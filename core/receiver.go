package core

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/groupcache/lru"
	"github.com/sisu-network/lib/log"

	"github.com/sisu-network/nftbridge/codec"
	"github.com/sisu-network/nftbridge/token"
	"github.com/sisu-network/nftbridge/types"
)

const ProcessedCacheSize = 1_000

// Receiver handles relay-delivered messages on the destination chain. It is stateless
// between deliveries apart from a bounded cache of processed message ids: the relay
// delivers at least once, and a repeated id must not mint twice. The token
// collaborator's duplicate-id check remains the authoritative guard; the cache only
// short-circuits repeats seen by this process.
type Receiver struct {
	nft            token.WrappedNFT
	router         common.Address
	processedCache *lru.Cache
	lock           *sync.Mutex
}

func NewReceiver(nft token.WrappedNFT, router common.Address) *Receiver {
	return &Receiver{
		nft:            nft,
		router:         router,
		processedCache: lru.New(ProcessedCacheSize),
		lock:           &sync.Mutex{},
	}
}

// OnRelayMessage validates and applies one inbound message. Only the configured relay
// router may deliver; the relay has already validated the origin chain and sender
// contract upstream, so the router check is the sole admission control here.
func (r *Receiver) OnRelayMessage(ctx context.Context, msg *types.InboundMessage) error {
	if msg.SourceSender != r.router {
		return &types.UnauthorizedSenderError{Sender: msg.SourceSender}
	}

	r.lock.Lock()
	_, processed := r.processedCache.Get(msg.MessageId)
	r.lock.Unlock()

	if processed {
		return &types.AlreadyProcessedError{MessageId: msg.MessageId}
	}

	intent, err := codec.Decode(msg.Payload)
	if err != nil {
		return err
	}

	if err := r.nft.MintWithId(ctx, intent.NewOwner, intent.TokenId); err != nil {
		return err
	}

	r.lock.Lock()
	r.processedCache.Add(msg.MessageId, true)
	r.lock.Unlock()

	log.Infof("Minted bridged token, tokenId = %s, owner = %s, messageId = %s",
		intent.TokenId, intent.NewOwner, msg.MessageId)

	return nil
}
