package relay

import (
	"context"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/sisu-network/lib/log"
	"go.uber.org/atomic"

	"github.com/sisu-network/nftbridge/network"
	"github.com/sisu-network/nftbridge/types"
)

const (
	RetryTime = 10 * time.Second
)

// Client connects to the relay router over json rpc. All calls fail with
// ErrRelayUnavailable until TryDial has established the connection.
type Client struct {
	client    *rpc.Client
	url       string
	connected *atomic.Bool
	http      network.Http
}

func NewClient(url string, networkHttp network.Http) *Client {
	return &Client{
		url:       url,
		connected: atomic.NewBool(false),
		http:      networkHttp,
	}
}

func (c *Client) TryDial() {
	log.Info("Trying to dial relay router")

	for {
		log.Info("Dialing...", c.url)

		if err := c.checkHealth(); err != nil {
			log.Error("Relay router is not healthy, err = ", err)
			time.Sleep(RetryTime)
			continue
		}

		var err error
		c.client, err = rpc.DialContext(context.Background(), c.url)
		if err != nil {
			log.Error("Cannot connect to relay router, err = ", err)
			time.Sleep(RetryTime)
			continue
		}

		c.connected.Store(true)
		break
	}

	log.Info("Relay router is connected")
}

func (c *Client) checkHealth() error {
	req, err := http.NewRequest(http.MethodGet, c.url+"/health", nil)
	if err != nil {
		return err
	}

	_, err = c.http.Get(req)
	return err
}

func (c *Client) GetFee(ctx context.Context, destinationSelector uint64, msg *types.OutboundMessage) (*big.Int, error) {
	if !c.connected.Load() {
		return nil, types.ErrRelayUnavailable
	}

	var fee string
	err := c.client.CallContext(ctx, &fee, "relay_getFee", destinationSelector, msg)
	if err != nil {
		return nil, translateRelayError(err, destinationSelector)
	}

	amount, ok := new(big.Int).SetString(fee, 10)
	if !ok {
		return nil, types.ErrRelayUnavailable
	}

	return amount, nil
}

func (c *Client) Send(ctx context.Context, destinationSelector uint64, msg *types.OutboundMessage) (common.Hash, error) {
	if !c.connected.Load() {
		return common.Hash{}, types.ErrRelayUnavailable
	}

	var messageId common.Hash
	err := c.client.CallContext(ctx, &messageId, "relay_sendMessage", destinationSelector, msg)
	if err != nil {
		return common.Hash{}, translateRelayError(err, destinationSelector)
	}

	return messageId, nil
}

// The relay router does not return error codes in its json rpc, so we have to rely on
// string matching to tell a rejected destination from a transport failure.
func translateRelayError(err error, destinationSelector uint64) error {
	if strings.Contains(err.Error(), "unsupported destination") {
		return &types.UnsupportedDestinationError{Selector: destinationSelector}
	}

	log.Error("Relay call failed, err = ", err)
	return types.ErrRelayUnavailable
}
