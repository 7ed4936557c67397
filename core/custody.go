package core

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sisu-network/lib/log"

	"github.com/sisu-network/nftbridge/token"
	"github.com/sisu-network/nftbridge/types"
)

// CustodyManager moves a token through its exit lifecycle on the source chain:
// holder -> bridge-held -> burned. The bridge account only ever owns a token inside
// the transfer-in -> burn window of a single LockAndBurn call.
type CustodyManager struct {
	nft           token.WrappedNFT
	bridgeAccount common.Address
}

func NewCustodyManager(nft token.WrappedNFT, bridgeAccount common.Address) *CustodyManager {
	return &CustodyManager{
		nft:           nft,
		bridgeAccount: bridgeAccount,
	}
}

// LockAndBurn verifies the requester owns the token, takes custody and burns it. The
// token collaborator executes both writes inside one host transaction, so a failure at
// either step leaves custody where it started.
func (c *CustodyManager) LockAndBurn(ctx context.Context, tokenId *big.Int, requester common.Address) error {
	owner, err := c.nft.OwnerOf(ctx, tokenId)
	if err != nil {
		return &types.CustodyTransitionError{TokenId: tokenId, Step: "ownerOf", Err: err}
	}

	if owner != requester {
		return &types.NotTokenOwnerError{TokenId: tokenId, Requester: requester, Owner: owner}
	}

	if err := c.nft.TransferFrom(ctx, requester, c.bridgeAccount, tokenId); err != nil {
		return &types.CustodyTransitionError{TokenId: tokenId, Step: "transferFrom", Err: err}
	}

	if err := c.nft.Burn(ctx, tokenId); err != nil {
		return &types.CustodyTransitionError{TokenId: tokenId, Step: "burn", Err: err}
	}

	log.Verbose("Token is locked and burned, tokenId = ", tokenId)

	return nil
}
