package token

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// WrappedNFT is the token collaborator consumed by the bridge core. Implementations
// must execute TransferFrom and Burn inside the caller's host transaction so that a
// failed custody transition leaves no partial state behind.
type WrappedNFT interface {
	OwnerOf(ctx context.Context, tokenId *big.Int) (common.Address, error)
	TransferFrom(ctx context.Context, from, to common.Address, tokenId *big.Int) error
	Burn(ctx context.Context, tokenId *big.Int) error

	// MintWithId creates the token under the exact cross-chain id. It must fail with
	// types.DuplicateTokenIdError when the id already exists on this chain.
	MintWithId(ctx context.Context, owner common.Address, tokenId *big.Int) error
}

// FeeToken is the asset used to pay the relay for message delivery.
type FeeToken interface {
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
	Approve(ctx context.Context, spender common.Address, amount *big.Int) (bool, error)
}
