package codec

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/sisu-network/nftbridge/types"
)

// The payload layout is abi.encode(uint256 tokenId, address newOwner), so payloads
// produced here are byte compatible with EVM contracts on either end of the bridge.
var intentArguments abi.Arguments

func init() {
	uint256Type, err := abi.NewType("uint256", "", nil)
	if err != nil {
		panic(err)
	}

	addressType, err := abi.NewType("address", "", nil)
	if err != nil {
		panic(err)
	}

	intentArguments = abi.Arguments{
		{Name: "tokenId", Type: uint256Type},
		{Name: "newOwner", Type: addressType},
	}
}

// Encode serializes a transfer intent into an opaque payload for transit.
func Encode(intent *types.TransferIntent) ([]byte, error) {
	if intent.TokenId == nil || intent.TokenId.Sign() < 0 {
		return nil, types.NewMalformedPayloadError("token id must be a non-negative integer")
	}

	// abi packing reduces wider values mod 2^256, which would alias the id.
	if intent.TokenId.BitLen() > 256 {
		return nil, types.NewMalformedPayloadError("token id does not fit in uint256")
	}

	return intentArguments.Pack(intent.TokenId, intent.NewOwner)
}

// Decode is the exact inverse of Encode. It never panics on attacker-controlled
// bytes; any structural mismatch comes back as a MalformedPayloadError.
func Decode(payload []byte) (*types.TransferIntent, error) {
	values, err := intentArguments.Unpack(payload)
	if err != nil {
		return nil, types.NewMalformedPayloadError(err.Error())
	}

	if len(values) != 2 {
		return nil, types.NewMalformedPayloadError("wrong field count")
	}

	tokenId, ok := values[0].(*big.Int)
	if !ok {
		return nil, types.NewMalformedPayloadError("token id is not an unsigned integer")
	}

	newOwner, ok := values[1].(common.Address)
	if !ok {
		return nil, types.NewMalformedPayloadError("new owner is not an address")
	}

	return &types.TransferIntent{
		TokenId:  tokenId,
		NewOwner: newOwner,
	}, nil
}
