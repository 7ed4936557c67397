package server

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sisu-network/nftbridge/core"
	"github.com/sisu-network/nftbridge/types"
)

type BridgeOutRequest struct {
	Chain               string         `json:"chain"`
	TokenId             *big.Int       `json:"token_id"`
	Requester           common.Address `json:"requester"`
	NewOwner            common.Address `json:"new_owner"`
	DestinationSelector uint64         `json:"destination_selector"`
	DestReceiver        common.Address `json:"dest_receiver"`
}

type OriginateMintRequest struct {
	Chain               string         `json:"chain"`
	DestinationSelector uint64         `json:"destination_selector"`
	Receiver            common.Address `json:"receiver"`
}

type DeliverRequest struct {
	Chain   string                `json:"chain"`
	Message *types.InboundMessage `json:"message"`
}

// ApiHandler is the json rpc surface of the bridge node, registered under the
// "bridge" namespace. One handler serves every configured chain.
type ApiHandler struct {
	bridges map[string]*core.Bridge
}

func NewApi(bridges map[string]*core.Bridge) *ApiHandler {
	return &ApiHandler{
		bridges: bridges,
	}
}

// Empty function for checking health only.
func (api *ApiHandler) CheckHealth() {
}

func (api *ApiHandler) bridgeFor(chain string) (*core.Bridge, error) {
	bridge, ok := api.bridges[chain]
	if !ok {
		return nil, fmt.Errorf("unknown chain %s", chain)
	}

	return bridge, nil
}

func (api *ApiHandler) BridgeOut(ctx context.Context, req *BridgeOutRequest) (*types.MessageReceipt, error) {
	bridge, err := api.bridgeFor(req.Chain)
	if err != nil {
		return nil, err
	}

	return bridge.BridgeOut(ctx, req.TokenId, req.Requester, req.NewOwner,
		req.DestinationSelector, req.DestReceiver)
}

func (api *ApiHandler) OriginateMint(ctx context.Context, req *OriginateMintRequest) (*types.MessageReceipt, error) {
	bridge, err := api.bridgeFor(req.Chain)
	if err != nil {
		return nil, err
	}

	return bridge.OriginateMint(ctx, req.DestinationSelector, req.Receiver)
}

// DeliverMessage is called by the relay when a message arrives for this node. It is
// not meant for end users; the receiver rejects anything not sent through the
// authorized router.
func (api *ApiHandler) DeliverMessage(ctx context.Context, req *DeliverRequest) error {
	bridge, err := api.bridgeFor(req.Chain)
	if err != nil {
		return err
	}

	return bridge.OnRelayMessage(ctx, req.Message)
}

func (api *ApiHandler) GetReceipt(chain string, messageId common.Hash) (*types.MessageReceipt, error) {
	bridge, err := api.bridgeFor(chain)
	if err != nil {
		return nil, err
	}

	return bridge.GetReceipt(messageId)
}
