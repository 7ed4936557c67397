package token

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sisu-network/lib/log"

	"github.com/sisu-network/nftbridge/types"
)

const (
	// Gas budget for local collaborator writes. This is separate from the
	// cross-chain gas limit carried inside the outbound message.
	writeGasLimit = uint64(300_000)
)

const wrappedNftAbiJson = `[
	{"name": "ownerOf", "type": "function", "stateMutability": "view",
		"inputs": [{"name": "tokenId", "type": "uint256"}],
		"outputs": [{"name": "owner", "type": "address"}]},
	{"name": "transferFrom", "type": "function",
		"inputs": [{"name": "from", "type": "address"}, {"name": "to", "type": "address"},
			{"name": "tokenId", "type": "uint256"}], "outputs": []},
	{"name": "burn", "type": "function",
		"inputs": [{"name": "tokenId", "type": "uint256"}], "outputs": []},
	{"name": "mintWithId", "type": "function",
		"inputs": [{"name": "owner", "type": "address"}, {"name": "tokenId", "type": "uint256"}],
		"outputs": []}
]`

const feeTokenAbiJson = `[
	{"name": "balanceOf", "type": "function", "stateMutability": "view",
		"inputs": [{"name": "account", "type": "address"}],
		"outputs": [{"name": "balance", "type": "uint256"}]},
	{"name": "approve", "type": "function",
		"inputs": [{"name": "spender", "type": "address"}, {"name": "amount", "type": "uint256"}],
		"outputs": [{"name": "ok", "type": "bool"}]}
]`

var (
	wrappedNftAbi abi.ABI
	feeTokenAbi   abi.ABI
)

func init() {
	var err error
	wrappedNftAbi, err = abi.JSON(strings.NewReader(wrappedNftAbiJson))
	if err != nil {
		panic(err)
	}

	feeTokenAbi, err = abi.JSON(strings.NewReader(feeTokenAbiJson))
	if err != nil {
		panic(err)
	}
}

// EthClient is the subset of ethclient.Client the token collaborators need. A wrapper
// interface so that we can mock it in tests.
type EthClient interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error
}

// DialEthClient connects to the first healthy rpc in the list.
func DialEthClient(rpcs []string) (EthClient, error) {
	for _, rpc := range rpcs {
		client, err := ethclient.Dial(rpc)
		if err == nil {
			return client, nil
		}

		log.Errorf("Cannot dial rpc %s, err = %v", rpc, err)
	}

	return nil, fmt.Errorf("no healthy rpc among %v", rpcs)
}

// Transactor signs and submits local collaborator writes.
type Transactor struct {
	client  EthClient
	key     *ecdsa.PrivateKey
	chainId *big.Int
}

func NewTransactor(client EthClient, hexKey string, chainId *big.Int) (*Transactor, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid bridge account key: %w", err)
	}

	return &Transactor{
		client:  client,
		key:     key,
		chainId: chainId,
	}, nil
}

func (t *Transactor) Address() common.Address {
	return crypto.PubkeyToAddress(t.key.PublicKey)
}

func (t *Transactor) execute(ctx context.Context, to common.Address, data []byte) error {
	nonce, err := t.client.PendingNonceAt(ctx, t.Address())
	if err != nil {
		return err
	}

	gasPrice, err := t.client.SuggestGasPrice(ctx)
	if err != nil {
		return err
	}

	tx := ethtypes.NewTransaction(nonce, to, big.NewInt(0), writeGasLimit, gasPrice, data)
	signed, err := ethtypes.SignTx(tx, ethtypes.NewEIP155Signer(t.chainId), t.key)
	if err != nil {
		return err
	}

	return t.client.SendTransaction(ctx, signed)
}

// EthWrappedNFT talks to the deployed wrapped NFT contract.
type EthWrappedNFT struct {
	client     EthClient
	contract   common.Address
	transactor *Transactor
}

func NewEthWrappedNFT(client EthClient, contract common.Address, transactor *Transactor) WrappedNFT {
	return &EthWrappedNFT{
		client:     client,
		contract:   contract,
		transactor: transactor,
	}
}

func (n *EthWrappedNFT) OwnerOf(ctx context.Context, tokenId *big.Int) (common.Address, error) {
	data, err := wrappedNftAbi.Pack("ownerOf", tokenId)
	if err != nil {
		return common.Address{}, err
	}

	output, err := n.client.CallContract(ctx, ethereum.CallMsg{To: &n.contract, Data: data}, nil)
	if err != nil {
		return common.Address{}, err
	}

	values, err := wrappedNftAbi.Unpack("ownerOf", output)
	if err != nil {
		return common.Address{}, err
	}

	owner, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected ownerOf output for token %s", tokenId)
	}

	return owner, nil
}

func (n *EthWrappedNFT) TransferFrom(ctx context.Context, from, to common.Address, tokenId *big.Int) error {
	data, err := wrappedNftAbi.Pack("transferFrom", from, to, tokenId)
	if err != nil {
		return err
	}

	return n.transactor.execute(ctx, n.contract, data)
}

func (n *EthWrappedNFT) Burn(ctx context.Context, tokenId *big.Int) error {
	data, err := wrappedNftAbi.Pack("burn", tokenId)
	if err != nil {
		return err
	}

	return n.transactor.execute(ctx, n.contract, data)
}

func (n *EthWrappedNFT) MintWithId(ctx context.Context, owner common.Address, tokenId *big.Int) error {
	// The contract reverts on an existing id as well, but checking here surfaces the
	// duplicate as a typed error instead of a failed transaction.
	existing, err := n.OwnerOf(ctx, tokenId)
	if err == nil && existing != (common.Address{}) {
		return &types.DuplicateTokenIdError{TokenId: tokenId}
	}

	data, err := wrappedNftAbi.Pack("mintWithId", owner, tokenId)
	if err != nil {
		return err
	}

	return n.transactor.execute(ctx, n.contract, data)
}

// EthFeeToken talks to the deployed fee-paying ERC20 contract.
type EthFeeToken struct {
	client     EthClient
	contract   common.Address
	transactor *Transactor
}

func NewEthFeeToken(client EthClient, contract common.Address, transactor *Transactor) FeeToken {
	return &EthFeeToken{
		client:     client,
		contract:   contract,
		transactor: transactor,
	}
}

func (f *EthFeeToken) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	data, err := feeTokenAbi.Pack("balanceOf", account)
	if err != nil {
		return nil, err
	}

	output, err := f.client.CallContract(ctx, ethereum.CallMsg{To: &f.contract, Data: data}, nil)
	if err != nil {
		return nil, err
	}

	values, err := feeTokenAbi.Unpack("balanceOf", output)
	if err != nil {
		return nil, err
	}

	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf output for account %s", account)
	}

	return balance, nil
}

func (f *EthFeeToken) Approve(ctx context.Context, spender common.Address, amount *big.Int) (bool, error) {
	data, err := feeTokenAbi.Pack("approve", spender, amount)
	if err != nil {
		return false, err
	}

	if err := f.transactor.execute(ctx, f.contract, data); err != nil {
		return false, err
	}

	return true, nil
}
