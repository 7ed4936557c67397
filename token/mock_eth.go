package token

import (
	"context"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

type MockEthClient struct {
	CallContractFunc    func(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAtFunc  func(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPriceFunc func(ctx context.Context) (*big.Int, error)
	SendTransactionFunc func(ctx context.Context, tx *ethtypes.Transaction) error
}

func (m *MockEthClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if m.CallContractFunc != nil {
		return m.CallContractFunc(ctx, msg, blockNumber)
	}

	return nil, nil
}

func (m *MockEthClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	if m.PendingNonceAtFunc != nil {
		return m.PendingNonceAtFunc(ctx, account)
	}

	return 0, nil
}

func (m *MockEthClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if m.SuggestGasPriceFunc != nil {
		return m.SuggestGasPriceFunc(ctx)
	}

	return big.NewInt(1_000_000_000), nil
}

func (m *MockEthClient) SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error {
	if m.SendTransactionFunc != nil {
		return m.SendTransactionFunc(ctx, tx)
	}

	return nil
}
