package channel

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/cryptography"
	"github.com/tcfw/didpay/pkg/subrav"
)

type Status uint8

const (
	StatusPending Status = iota + 1
	StatusOpen
	StatusClosing
	StatusClosed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusOpen:
		return "open"
	case StatusClosing:
		return "closing"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "pending":
		*s = StatusPending
	case "open":
		*s = StatusOpen
	case "closing":
		*s = StatusClosing
	case "closed":
		*s = StatusClosed
	default:
		return errors.Errorf("unknown channel status %q", b)
	}

	return nil
}

// CanTransition reports whether a channel may move from s to next.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusOpen || next == StatusClosed
	case StatusOpen:
		return next == StatusClosing || next == StatusClosed
	case StatusClosing:
		return next == StatusClosed
	default:
		return false
	}
}

// Channel is an escrow relationship between a payer and payee for one asset.
type Channel struct {
	ID       string        `json:"channelId" msgpack:"id"`
	PayerDID string        `json:"payerDid" msgpack:"payer"`
	PayeeDID string        `json:"payeeDid" msgpack:"payee"`
	AssetID  string        `json:"assetId" msgpack:"asset"`
	Epoch    subrav.BigInt `json:"epoch" msgpack:"epoch"`
	Status   Status        `json:"status" msgpack:"status"`
}

// SubChannel binds one payer key to a channel.
type SubChannel struct {
	ChannelID          string                              `json:"channelId" msgpack:"ch"`
	Epoch              subrav.BigInt                       `json:"epoch" msgpack:"epoch"`
	VMIDFragment       string                              `json:"vmIdFragment" msgpack:"frag"`
	MethodType         cryptography.VerificationMethodType `json:"methodType,omitempty" msgpack:"type,omitempty"`
	PublicKeyMultibase string                              `json:"publicKeyMultibase,omitempty" msgpack:"mb,omitempty"`
	PublicKeyJwk       map[string]interface{}              `json:"publicKeyJwk,omitempty" msgpack:"jwk,omitempty"`
	Authorized         bool                                `json:"authorized" msgpack:"auth"`
	LastAcceptedNonce  subrav.BigInt                       `json:"lastAcceptedNonce" msgpack:"n"`
	LastAcceptedAmount subrav.BigInt                       `json:"lastAcceptedAmount" msgpack:"amt"`
}

// VerificationMethod returns the authorized key of the sub-channel owned by
// payerDID.
func (s *SubChannel) VerificationMethod(payerDID string) cryptography.VerificationMethod {
	return cryptography.VerificationMethod{
		ID:                 payerDID + "#" + s.VMIDFragment,
		Type:               s.MethodType,
		Controller:         payerDID,
		PublicKeyMultibase: s.PublicKeyMultibase,
		PublicKeyJwk:       s.PublicKeyJwk,
	}
}

// Ledger is the on-chain side of a payment channel.
type Ledger interface {
	OpenChannel(ctx context.Context, payerDID, payeeDID, assetID string) (*Channel, error)
	AuthorizeSubChannel(ctx context.Context, channelID string, vm cryptography.VerificationMethod) (*SubChannel, error)
	GetChannelStatus(ctx context.Context, channelID string) (*Channel, error)
	GetSubChannel(ctx context.Context, channelID, vmIDFragment string) (*SubChannel, error)
	Claim(ctx context.Context, voucher *subrav.SignedSubRAV) (*ClaimReceipt, error)
	CloseChannel(ctx context.Context, channelID string) (*Channel, error)
}

type ClaimReceipt struct {
	ChannelID    string        `json:"channelId"`
	VMIDFragment string        `json:"vmIdFragment"`
	Nonce        subrav.BigInt `json:"nonce"`
	Claimed      subrav.BigInt `json:"claimed"`
	Total        subrav.BigInt `json:"total"`
}

var (
	ErrChannelNotFound    = errors.New("channel not found")
	ErrSubChannelNotFound = errors.New("sub-channel not found")
)

type StateErrorKind uint8

const (
	StateChannelMissing StateErrorKind = iota + 1
	StateChannelClosed
	StateSubChannelMissing
	StateSubChannelUnauthorized
	StateEpochMismatch
)

func (k StateErrorKind) String() string {
	switch k {
	case StateChannelMissing:
		return "channel missing"
	case StateChannelClosed:
		return "channel closed"
	case StateSubChannelMissing:
		return "sub-channel missing"
	case StateSubChannelUnauthorized:
		return "sub-channel unauthorized"
	case StateEpochMismatch:
		return "epoch mismatch"
	default:
		return "unknown"
	}
}

// StateError reports a channel or sub-channel that cannot take payments in
// its current state. Callers recover by re-establishing the channel.
type StateError struct {
	Kind      StateErrorKind
	ChannelID string
}

func NewStateError(kind StateErrorKind, channelID string) *StateError {
	return &StateError{Kind: kind, ChannelID: channelID}
}

func (e *StateError) Error() string {
	return fmt.Sprintf("channel %s: %s", e.ChannelID, e.Kind)
}

func (e *StateError) Is(target error) bool {
	t, ok := target.(*StateError)
	return ok && (t.Kind == 0 || t.Kind == e.Kind)
}

// ErrState matches any StateError under errors.Is.
var ErrState = &StateError{}
