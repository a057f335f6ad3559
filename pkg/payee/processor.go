package payee

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/didpay/internal/utils/logging"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/didauth"
	"github.com/tcfw/didpay/pkg/payment"
	"github.com/tcfw/didpay/pkg/subrav"
)

const (
	DefaultIdempotencySize = 10000
	DefaultIdempotencyTTL  = 10 * time.Minute
)

type Config struct {
	ServiceID      string
	ServiceDID     string
	DefaultAssetID string
	ChainID        subrav.BigInt
	BasePath       string
}

// Info is the discovery document of the service.
func (c Config) Info() *payment.ServiceInfo {
	info := &payment.ServiceInfo{
		ServiceID:         c.ServiceID,
		ServiceDID:        c.ServiceDID,
		DefaultAssetID:    c.DefaultAssetID,
		BasePath:          c.BasePath,
		SupportedFeatures: []string{"deferred-billing", "recovery", "commit"},
		ProtocolVersion:   payment.ProtocolVersion,
	}
	info.BasePath = info.PaymentBasePath()

	return info
}

type completed struct {
	payload *payment.ResponsePayload
	result  interface{}
}

// Processor verifies and settles paid calls on the payee side.
type Processor struct {
	cfg      Config
	ledger   channel.Ledger
	verifier *didauth.Verifier
	store    Store
	locks    *keyedMutex
	done     *expirable.LRU[string, *completed]
	logger   *logrus.Entry

	idemSize int
	idemTTL  time.Duration
}

type Option func(*Processor) error

func WithStore(s Store) Option {
	return func(p *Processor) error {
		p.store = s
		return nil
	}
}

// WithIdempotencyCache sizes the cache of completed calls replayed by
// clientTxRef.
func WithIdempotencyCache(size int, ttl time.Duration) Option {
	return func(p *Processor) error {
		if size <= 0 || ttl <= 0 {
			return errors.New("idempotency cache size and ttl must be positive")
		}
		p.idemSize, p.idemTTL = size, ttl
		return nil
	}
}

func WithLogger(l *logrus.Entry) Option {
	return func(p *Processor) error {
		p.logger = l
		return nil
	}
}

func NewProcessor(cfg Config, ledger channel.Ledger, verifier *didauth.Verifier, opts ...Option) (*Processor, error) {
	if cfg.ServiceDID == "" || cfg.DefaultAssetID == "" {
		return nil, errors.New("service did and default asset are required")
	}

	p := &Processor{
		cfg:      cfg,
		ledger:   ledger,
		verifier: verifier,
		store:    NewMemStore(),
		locks:    newKeyedMutex(),
		logger:   logging.Entry().WithField("component", "payee"),
		idemSize: DefaultIdempotencySize,
		idemTTL:  DefaultIdempotencyTTL,
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, errors.Wrap(err, "applying option")
		}
	}

	p.done = expirable.NewLRU[string, *completed](p.idemSize, nil, p.idemTTL)

	return p, nil
}

func (p *Processor) Config() Config {
	return p.cfg
}

// Incoming is the payment relevant part of a received call.
type Incoming struct {
	Operation     string
	Authorization string
	Payment       *payment.RequestPayload
	// BodyHash is the digest of a non-empty received body. It must match the
	// digest the signature covers.
	BodyHash string
	// Params are compared with the signed params when set, in place of
	// BodyHash.
	Params map[string]interface{}
}

// Session holds a sub-channel for the duration of one paid call. Exactly one
// of Complete or Abort must be called.
type Session struct {
	p       *Processor
	release func()

	payerDID string
	txRef    string
	state    *SubChannelState
	replay   *completed
	cost     *costHolder
}

func (s *Session) PayerDID() string {
	return s.payerDID
}

// Replayed returns the stored outcome when the call was already completed
// under the same clientTxRef.
func (s *Session) Replayed() (*payment.ResponsePayload, interface{}, bool) {
	if s.replay == nil {
		return nil, nil, false
	}

	return s.replay.payload, s.replay.result, true
}

// Begin authenticates the call and accepts the voucher it carries.
func (p *Processor) Begin(ctx context.Context, in *Incoming) (*Session, error) {
	so, err := p.verifier.VerifyOperation(ctx, in.Authorization, in.Operation)
	if err != nil {
		return nil, err
	}

	if err := checkBinding(so, in); err != nil {
		return nil, err
	}

	if in.Payment == nil {
		return nil, payment.NewServiceError(http.StatusBadRequest, payment.CodeBadRequest, "payment block required")
	}
	if err := in.Payment.Validate(); err != nil {
		return nil, payment.NewServiceError(http.StatusBadRequest, payment.CodeBadRequest, err.Error())
	}

	payerDID := so.Signature.SignerDID
	frag := so.Signature.KeyID.Fragment()

	channelID := p.channelFor(payerDID, in.Payment.ChannelID)
	if v := in.Payment.SignedSubRAV; v != nil {
		channelID = v.SubRAV.ChannelID
	}

	release, err := p.locks.Lock(ctx, subChannelKey(channelID, frag))
	if err != nil {
		return nil, err
	}

	s := &Session{p: p, release: release, payerDID: payerDID, txRef: in.Payment.ClientTxRef, cost: &costHolder{}}

	if c, ok := p.done.Get(idempotencyKey(payerDID, s.txRef)); ok {
		s.replay = c
		return s, nil
	}

	st, err := p.loadSubChannel(ctx, payerDID, channelID, frag)
	if err != nil {
		release()
		return nil, err
	}
	s.state = st

	if v := in.Payment.SignedSubRAV; v != nil {
		if err := p.accept(ctx, st, v); err != nil {
			release()
			return nil, err
		}
	}

	if unpaid := st.unpaid(); unpaid != nil {
		release()
		return nil, &payment.PaymentRequiredError{SubRAV: *unpaid}
	}

	return s, nil
}

func checkBinding(so *didauth.SignedObject, in *Incoming) error {
	if in.Params == nil {
		h, _ := so.SignedData.Params[payment.ParamBodyHash].(string)
		if h != in.BodyHash {
			return &didauth.AuthError{Kind: didauth.KindOperationMismatch, Err: errors.New("body does not match signed digest")}
		}
	} else if len(in.Params) > 0 || len(so.SignedData.Params) > 0 {
		signed, err := didauth.CanonicalBytes(so.SignedData.Params)
		if err != nil {
			return &didauth.AuthError{Kind: didauth.KindMalformedHeader, Err: err}
		}
		got, err := didauth.CanonicalBytes(in.Params)
		if err != nil {
			return &didauth.AuthError{Kind: didauth.KindMalformedHeader, Err: err}
		}
		if !bytes.Equal(signed, got) {
			return &didauth.AuthError{Kind: didauth.KindOperationMismatch, Err: errors.New("arguments do not match signed params")}
		}
	}

	return nil
}

var errForeignChannel = payment.NewServiceError(http.StatusForbidden, payment.CodeForbidden, "channel belongs to another payer or payee")

// channelFor returns requested, or the payer's channel for the default asset.
func (p *Processor) channelFor(payerDID, requested string) string {
	if requested != "" {
		return requested
	}

	return subrav.DeriveChannelID(payerDID, p.cfg.ServiceDID, p.cfg.DefaultAssetID)
}

func idempotencyKey(payerDID, txRef string) string {
	return payerDID + "|" + txRef
}

// loadSubChannel checks the ledger and returns the local bookkeeping for the
// sub-channel, resetting it when the channel was re-opened.
func (p *Processor) loadSubChannel(ctx context.Context, payerDID, channelID, frag string) (*SubChannelState, error) {
	ch, err := p.ledger.GetChannelStatus(ctx, channelID)
	if errors.Is(err, channel.ErrChannelNotFound) {
		return nil, channel.NewStateError(channel.StateChannelMissing, channelID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "querying channel")
	}

	if ch.Status != channel.StatusOpen {
		return nil, channel.NewStateError(channel.StateChannelClosed, channelID)
	}
	if ch.PayerDID != payerDID || ch.PayeeDID != p.cfg.ServiceDID {
		return nil, errForeignChannel
	}

	sub, err := p.ledger.GetSubChannel(ctx, channelID, frag)
	if errors.Is(err, channel.ErrSubChannelNotFound) || (err == nil && !sub.Authorized) {
		return nil, channel.NewStateError(channel.StateSubChannelUnauthorized, channelID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "querying sub-channel")
	}

	st, err := p.store.Get(ctx, channelID, frag)
	if err != nil && !errors.Is(err, ErrStateNotFound) {
		return nil, errors.Wrap(err, "loading sub-channel state")
	}

	if st == nil || st.Epoch.Cmp(ch.Epoch) != 0 {
		st = &SubChannelState{
			ChannelID:    channelID,
			VMIDFragment: frag,
			PayerDID:     payerDID,
			Epoch:        ch.Epoch,
			LastNonce:    sub.LastAcceptedNonce,
			LastAmount:   sub.LastAcceptedAmount,
			Claimed:      sub.LastAcceptedAmount,
		}
	}

	return st, nil
}

func (p *Processor) baseline(st *SubChannelState) subrav.SubRAV {
	return subrav.SubRAV{
		Version:           subrav.Version,
		ChainID:           p.cfg.ChainID,
		ChannelID:         st.ChannelID,
		ChannelEpoch:      st.Epoch,
		VMIDFragment:      st.VMIDFragment,
		AccumulatedAmount: st.LastAmount,
		Nonce:             st.LastNonce,
	}
}

// accept applies the acceptance rule to v and records it.
func (p *Processor) accept(ctx context.Context, st *SubChannelState, v *subrav.SignedSubRAV) error {
	if la := st.LastAccepted; la != nil && la.SubRAV.Equal(v.SubRAV) && bytes.Equal(la.Signature, v.Signature) {
		return nil
	}

	sub, err := p.ledger.GetSubChannel(ctx, st.ChannelID, st.VMIDFragment)
	if err != nil {
		return errors.Wrap(err, "querying sub-channel")
	}

	if err := subrav.Verify(v, sub.VerificationMethod(st.PayerDID)); err != nil {
		return err
	}

	if v.SubRAV.ChannelEpoch.Cmp(st.Epoch) != 0 {
		return channel.NewStateError(channel.StateEpochMismatch, st.ChannelID)
	}

	var owed subrav.BigInt
	if st.Pending != nil {
		owed, _ = st.Pending.AccumulatedAmount.Sub(st.LastAmount)
	}

	if err := subrav.CheckNext(p.baseline(st), v.SubRAV, owed); err != nil {
		p.logger.WithError(err).WithField("channel", st.ChannelID).WithField("payer", st.PayerDID).Warn("rejected voucher")
		return err
	}

	st.LastNonce = v.SubRAV.Nonce
	st.LastAmount = v.SubRAV.AccumulatedAmount
	st.LastAccepted = v
	if st.Pending != nil && st.Pending.Nonce.Cmp(v.SubRAV.Nonce) <= 0 {
		if st.Pending.AccumulatedAmount.Cmp(v.SubRAV.AccumulatedAmount) > 0 {
			// the shortfall stays owed under the next nonce
			rest := *st.Pending
			rest.Nonce = v.SubRAV.Nonce.Inc()
			st.Pending = &rest
		} else {
			st.Pending = nil
		}
	}

	if err := p.store.Put(ctx, st); err != nil {
		return errors.Wrap(err, "storing accepted voucher")
	}

	p.logger.WithField("channel", st.ChannelID).WithField("nonce", v.SubRAV.Nonce).WithField("amount", v.SubRAV.AccumulatedAmount).Debug("voucher accepted")

	return nil
}

// Complete prices the call, proposes the next voucher and records the
// outcome for replays. result is returned to later replays of the call.
func (s *Session) Complete(ctx context.Context, cost subrav.BigInt, result interface{}) (*payment.ResponsePayload, error) {
	defer s.release()

	if s.replay != nil {
		return s.replay.payload, nil
	}

	st := s.state
	if unpaid := st.unpaid(); unpaid != nil {
		return nil, &payment.PaymentRequiredError{SubRAV: *unpaid}
	}

	resp := &payment.ResponsePayload{
		Version:      payment.ProtocolVersion,
		ClientTxRef:  s.txRef,
		ServiceTxRef: uuid.NewString(),
	}

	if !cost.IsZero() {
		rav := s.p.baseline(st)
		rav.Nonce = st.LastNonce.Inc()
		rav.AccumulatedAmount = st.LastAmount.Add(cost)

		st.Pending = &rav
		if err := s.p.store.Put(ctx, st); err != nil {
			return nil, errors.Wrap(err, "storing proposal")
		}

		proposal := rav
		c := cost
		resp.SubRAV = &proposal
		resp.Cost = &c
	}

	s.p.done.Add(idempotencyKey(s.payerDID, s.txRef), &completed{payload: resp, result: result})

	return resp, nil
}

// Abort releases the sub-channel without charging for the call.
func (s *Session) Abort() {
	s.release()
}

// Recovery returns the payee's view of the caller's channel and any unpaid
// proposal so a payer can resume after losing local state.
func (p *Processor) Recovery(ctx context.Context, authorization, op string, req *payment.RecoveryRequest) (*payment.RecoveryResponse, error) {
	so, err := p.verifier.VerifyOperation(ctx, authorization, op)
	if err != nil {
		return nil, err
	}

	var requested string
	if req != nil {
		requested = req.ChannelID
	}

	payerDID := so.Signature.SignerDID
	frag := so.Signature.KeyID.Fragment()
	channelID := p.channelFor(payerDID, requested)

	res := &payment.RecoveryResponse{}

	ch, err := p.ledger.GetChannelStatus(ctx, channelID)
	if errors.Is(err, channel.ErrChannelNotFound) {
		return res, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "querying channel")
	}
	if ch.PayerDID != payerDID || ch.PayeeDID != p.cfg.ServiceDID {
		return nil, errForeignChannel
	}
	res.Channel = ch

	sub, err := p.ledger.GetSubChannel(ctx, channelID, frag)
	if errors.Is(err, channel.ErrSubChannelNotFound) {
		return res, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "querying sub-channel")
	}
	res.SubChannel = sub

	release, err := p.locks.Lock(ctx, subChannelKey(channelID, frag))
	if err != nil {
		return nil, err
	}
	defer release()

	st, err := p.store.Get(ctx, channelID, frag)
	if errors.Is(err, ErrStateNotFound) {
		return res, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading sub-channel state")
	}

	if unpaid := st.unpaid(); unpaid != nil && st.Epoch.Cmp(ch.Epoch) == 0 {
		pending := *unpaid
		res.PendingSubRAV = &pending
	}

	return res, nil
}

// Commit accepts a voucher outside of a paid call, settling the pending
// proposal.
func (p *Processor) Commit(ctx context.Context, authorization, op string, req *payment.CommitRequest) (*payment.CommitResponse, error) {
	so, err := p.verifier.VerifyOperation(ctx, authorization, op)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, payment.NewServiceError(http.StatusBadRequest, payment.CodeBadRequest, "signed voucher required")
	}

	payerDID := so.Signature.SignerDID
	frag := so.Signature.KeyID.Fragment()
	channelID := req.SignedSubRAV.SubRAV.ChannelID

	release, err := p.locks.Lock(ctx, subChannelKey(channelID, frag))
	if err != nil {
		return nil, err
	}
	defer release()

	st, err := p.loadSubChannel(ctx, payerDID, channelID, frag)
	if err != nil {
		return nil, err
	}

	v := req.SignedSubRAV
	if err := p.accept(ctx, st, &v); err != nil {
		return nil, err
	}

	return &payment.CommitResponse{Success: true}, nil
}

// SubChannels lists the local bookkeeping of every sub-channel seen.
func (p *Processor) SubChannels(ctx context.Context) ([]*SubChannelState, error) {
	return p.store.List(ctx)
}
