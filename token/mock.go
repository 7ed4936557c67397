package token

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type MockWrappedNFT struct {
	OwnerOfFunc      func(ctx context.Context, tokenId *big.Int) (common.Address, error)
	TransferFromFunc func(ctx context.Context, from, to common.Address, tokenId *big.Int) error
	BurnFunc         func(ctx context.Context, tokenId *big.Int) error
	MintWithIdFunc   func(ctx context.Context, owner common.Address, tokenId *big.Int) error
}

func (m *MockWrappedNFT) OwnerOf(ctx context.Context, tokenId *big.Int) (common.Address, error) {
	if m.OwnerOfFunc != nil {
		return m.OwnerOfFunc(ctx, tokenId)
	}

	return common.Address{}, nil
}

func (m *MockWrappedNFT) TransferFrom(ctx context.Context, from, to common.Address, tokenId *big.Int) error {
	if m.TransferFromFunc != nil {
		return m.TransferFromFunc(ctx, from, to, tokenId)
	}

	return nil
}

func (m *MockWrappedNFT) Burn(ctx context.Context, tokenId *big.Int) error {
	if m.BurnFunc != nil {
		return m.BurnFunc(ctx, tokenId)
	}

	return nil
}

func (m *MockWrappedNFT) MintWithId(ctx context.Context, owner common.Address, tokenId *big.Int) error {
	if m.MintWithIdFunc != nil {
		return m.MintWithIdFunc(ctx, owner, tokenId)
	}

	return nil
}

type MockFeeToken struct {
	BalanceOfFunc func(ctx context.Context, account common.Address) (*big.Int, error)
	ApproveFunc   func(ctx context.Context, spender common.Address, amount *big.Int) (bool, error)
}

func (m *MockFeeToken) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	if m.BalanceOfFunc != nil {
		return m.BalanceOfFunc(ctx, account)
	}

	return big.NewInt(0), nil
}

func (m *MockFeeToken) Approve(ctx context.Context, spender common.Address, amount *big.Int) (bool, error) {
	if m.ApproveFunc != nil {
		return m.ApproveFunc(ctx, spender, amount)
	}

	return true, nil
}
