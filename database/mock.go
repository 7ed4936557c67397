package database

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sisu-network/nftbridge/types"
)

type MockDb struct {
	InitFunc           func() error
	SaveReceiptFunc    func(chain string, receipt *types.MessageReceipt) error
	GetReceiptFunc     func(chain string, messageId common.Hash) (*types.MessageReceipt, error)
	PeekTokenIdFunc    func(chain string) (*big.Int, error)
	AdvanceTokenIdFunc func(chain string) error
}

func (mock *MockDb) Init() error {
	if mock.InitFunc != nil {
		return mock.InitFunc()
	}

	return nil
}

func (mock *MockDb) SaveReceipt(chain string, receipt *types.MessageReceipt) error {
	if mock.SaveReceiptFunc != nil {
		return mock.SaveReceiptFunc(chain, receipt)
	}

	return nil
}

func (mock *MockDb) GetReceipt(chain string, messageId common.Hash) (*types.MessageReceipt, error) {
	if mock.GetReceiptFunc != nil {
		return mock.GetReceiptFunc(chain, messageId)
	}

	return nil, nil
}

func (mock *MockDb) PeekTokenId(chain string) (*big.Int, error) {
	if mock.PeekTokenIdFunc != nil {
		return mock.PeekTokenIdFunc(chain)
	}

	return big.NewInt(1), nil
}

func (mock *MockDb) AdvanceTokenId(chain string) error {
	if mock.AdvanceTokenIdFunc != nil {
		return mock.AdvanceTokenIdFunc(chain)
	}

	return nil
}
