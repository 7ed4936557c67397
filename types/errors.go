package types

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var ErrRelayUnavailable = errors.New("relay is unavailable")

type MalformedPayloadError struct {
	Reason string
}

func NewMalformedPayloadError(reason string) error {
	return &MalformedPayloadError{Reason: reason}
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload: %s", e.Reason)
}

type NotTokenOwnerError struct {
	TokenId   *big.Int
	Requester common.Address
	Owner     common.Address
}

func (e *NotTokenOwnerError) Error() string {
	return fmt.Sprintf("requester %s does not own token %s, owner = %s",
		e.Requester, e.TokenId, e.Owner)
}

// CustodyTransitionError means the token collaborator rejected one of the custody
// sub-steps (transfer-in or burn). The host transaction rolls back the whole
// transition, so no partial custody state survives this error.
type CustodyTransitionError struct {
	TokenId *big.Int
	Step    string
	Err     error
}

func (e *CustodyTransitionError) Error() string {
	return fmt.Sprintf("custody transition failed for token %s at step %s: %v",
		e.TokenId, e.Step, e.Err)
}

func (e *CustodyTransitionError) Unwrap() error {
	return e.Err
}

// InsufficientFeeError carries both sides of the failed balance check so that
// off-chain tooling can top up the exact shortfall.
type InsufficientFeeError struct {
	Current  *big.Int
	Required *big.Int
}

func (e *InsufficientFeeError) Error() string {
	return fmt.Sprintf("insufficient fee token balance, current = %s, required = %s",
		e.Current, e.Required)
}

type UnsupportedDestinationError struct {
	Selector uint64
}

func (e *UnsupportedDestinationError) Error() string {
	return fmt.Sprintf("relay does not support destination selector %d", e.Selector)
}

type UnauthorizedSenderError struct {
	Sender common.Address
}

func (e *UnauthorizedSenderError) Error() string {
	return fmt.Sprintf("inbound message from unauthorized sender %s", e.Sender)
}

type DuplicateTokenIdError struct {
	TokenId *big.Int
}

func (e *DuplicateTokenIdError) Error() string {
	return fmt.Sprintf("token %s already exists on this chain", e.TokenId)
}

type AlreadyProcessedError struct {
	MessageId common.Hash
}

func (e *AlreadyProcessedError) Error() string {
	return fmt.Sprintf("message %s has already been processed", e.MessageId)
}
