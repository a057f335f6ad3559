package memledger

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/internal/utils/logging"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/cryptography"
	"github.com/tcfw/didpay/pkg/did/w3cdid"
	"github.com/tcfw/didpay/pkg/subrav"
)

var _ channel.Ledger = (*Ledger)(nil)

// Calls counts ledger mutations.
type Calls struct {
	Open      int
	Authorize int
	Claim     int
	Close     int
}

type entry struct {
	channel channel.Channel
	subs    map[string]*channel.SubChannel
	claimed subrav.BigInt
}

// Ledger is an in-process channel ledger. Vouchers are checked the same way
// an on-chain contract would check them before releasing escrow.
type Ledger struct {
	mu       sync.Mutex
	channels map[string]*entry
	calls    Calls
}

func New() *Ledger {
	return &Ledger{channels: make(map[string]*entry)}
}

func (l *Ledger) Calls() Calls {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.calls
}

func (l *Ledger) OpenChannel(_ context.Context, payerDID, payeeDID, assetID string) (*channel.Channel, error) {
	if payerDID == "" || payeeDID == "" || assetID == "" {
		return nil, errors.New("payer, payee and asset are required")
	}

	id := subrav.DeriveChannelID(payerDID, payeeDID, assetID)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls.Open++

	e, ok := l.channels[id]
	switch {
	case !ok:
		e = &entry{
			channel: channel.Channel{
				ID:       id,
				PayerDID: payerDID,
				PayeeDID: payeeDID,
				AssetID:  assetID,
				Status:   channel.StatusOpen,
			},
			subs: make(map[string]*channel.SubChannel),
		}
		l.channels[id] = e
	case e.channel.Status == channel.StatusClosed:
		e.channel.Epoch = e.channel.Epoch.Inc()
		e.channel.Status = channel.StatusOpen
		e.subs = make(map[string]*channel.SubChannel)
	}

	logging.Entry().WithField("channel", id).WithField("epoch", e.channel.Epoch).Debug("channel open")

	c := e.channel
	return &c, nil
}

func (l *Ledger) AuthorizeSubChannel(_ context.Context, channelID string, vm cryptography.VerificationMethod) (*channel.SubChannel, error) {
	frag := w3cdid.URL(vm.ID).Fragment()
	if frag == "" {
		return nil, errors.Errorf("verification method %q has no fragment", vm.ID)
	}
	if !cryptography.Supported(vm.Type) {
		return nil, errors.Wrapf(cryptography.ErrUnsupportedPublicKeyType, "%s", vm.Type)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls.Authorize++

	e, err := l.openEntry(channelID)
	if err != nil {
		return nil, err
	}

	if vm.Controller != e.channel.PayerDID {
		return nil, errors.Errorf("verification method controlled by %s, not the payer", vm.Controller)
	}

	if sub, ok := e.subs[frag]; ok {
		if sub.PublicKeyMultibase != vm.PublicKeyMultibase || sub.MethodType != vm.Type {
			return nil, errors.Errorf("sub-channel %s already authorized with another key", frag)
		}
		s := *sub
		return &s, nil
	}

	sub := &channel.SubChannel{
		ChannelID:          channelID,
		Epoch:              e.channel.Epoch,
		VMIDFragment:       frag,
		MethodType:         vm.Type,
		PublicKeyMultibase: vm.PublicKeyMultibase,
		PublicKeyJwk:       vm.PublicKeyJwk,
		Authorized:         true,
	}
	e.subs[frag] = sub

	s := *sub
	return &s, nil
}

func (l *Ledger) GetChannelStatus(_ context.Context, channelID string) (*channel.Channel, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.channels[channelID]
	if !ok {
		return nil, errors.Wrapf(channel.ErrChannelNotFound, "%s", channelID)
	}

	c := e.channel
	return &c, nil
}

func (l *Ledger) GetSubChannel(_ context.Context, channelID, vmIDFragment string) (*channel.SubChannel, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.channels[channelID]
	if !ok {
		return nil, errors.Wrapf(channel.ErrChannelNotFound, "%s", channelID)
	}

	sub, ok := e.subs[vmIDFragment]
	if !ok {
		return nil, errors.Wrapf(channel.ErrSubChannelNotFound, "%s/%s", channelID, vmIDFragment)
	}

	s := *sub
	return &s, nil
}

// Claim settles the amount a voucher adds over the last claimed voucher.
func (l *Ledger) Claim(_ context.Context, voucher *subrav.SignedSubRAV) (*channel.ClaimReceipt, error) {
	rav := voucher.SubRAV

	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls.Claim++

	e, ok := l.channels[rav.ChannelID]
	if !ok {
		return nil, channel.NewStateError(channel.StateChannelMissing, rav.ChannelID)
	}
	if e.channel.Status == channel.StatusClosed {
		return nil, channel.NewStateError(channel.StateChannelClosed, rav.ChannelID)
	}
	if e.channel.Epoch.Cmp(rav.ChannelEpoch) != 0 {
		return nil, channel.NewStateError(channel.StateEpochMismatch, rav.ChannelID)
	}

	sub, ok := e.subs[rav.VMIDFragment]
	if !ok || !sub.Authorized {
		return nil, channel.NewStateError(channel.StateSubChannelUnauthorized, rav.ChannelID)
	}

	if err := subrav.Verify(voucher, sub.VerificationMethod(e.channel.PayerDID)); err != nil {
		return nil, err
	}

	last := subrav.SubRAV{
		Version:           rav.Version,
		ChainID:           rav.ChainID,
		ChannelID:         sub.ChannelID,
		ChannelEpoch:      sub.Epoch,
		VMIDFragment:      sub.VMIDFragment,
		AccumulatedAmount: sub.LastAcceptedAmount,
		Nonce:             sub.LastAcceptedNonce,
	}

	//the ledger holds no price information, so any increase is accepted
	if err := subrav.CheckNext(last, rav, rav.AccumulatedAmount); err != nil {
		return nil, err
	}

	claimed, _ := rav.AccumulatedAmount.Sub(sub.LastAcceptedAmount)
	sub.LastAcceptedNonce = rav.Nonce
	sub.LastAcceptedAmount = rav.AccumulatedAmount
	e.claimed = e.claimed.Add(claimed)

	return &channel.ClaimReceipt{
		ChannelID:    rav.ChannelID,
		VMIDFragment: rav.VMIDFragment,
		Nonce:        rav.Nonce,
		Claimed:      claimed,
		Total:        e.claimed,
	}, nil
}

func (l *Ledger) CloseChannel(_ context.Context, channelID string) (*channel.Channel, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls.Close++

	e, ok := l.channels[channelID]
	if !ok {
		return nil, errors.Wrapf(channel.ErrChannelNotFound, "%s", channelID)
	}

	if !e.channel.Status.CanTransition(channel.StatusClosed) {
		return nil, channel.NewStateError(channel.StateChannelClosed, channelID)
	}
	e.channel.Status = channel.StatusClosed

	c := e.channel
	return &c, nil
}

func (l *Ledger) openEntry(channelID string) (*entry, error) {
	e, ok := l.channels[channelID]
	if !ok {
		return nil, channel.NewStateError(channel.StateChannelMissing, channelID)
	}
	if e.channel.Status != channel.StatusOpen {
		return nil, channel.NewStateError(channel.StateChannelClosed, channelID)
	}

	return e, nil
}
