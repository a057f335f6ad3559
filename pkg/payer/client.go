package payer

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/jpillora/backoff"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/didpay/internal/utils/logging"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/tcfw/didpay/pkg/payment"
	"github.com/tcfw/didpay/pkg/subrav"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultRecoveryInterval = time.Second

	// flightTimeout bounds shared ledger and service work that outlives the
	// caller that started it.
	flightTimeout = time.Minute
)

// Authorize produces a DIDAuth header value for operation.
type Authorize func(ctx context.Context, operation string) (string, error)

// Service is the payee's out-of-band payment surface.
type Service interface {
	// Endpoint identifies the service for session keys.
	Endpoint() string
	Discover(ctx context.Context) (*payment.ServiceInfo, error)
	Recover(ctx context.Context, auth Authorize, req *payment.RecoveryRequest) (*payment.RecoveryResponse, error)
	Commit(ctx context.Context, auth Authorize, req *payment.CommitRequest) (*payment.CommitResponse, error)
}

// Client pays a single service on behalf of one payer identity.
type Client struct {
	identity did.Identity
	keyID    did.KeyID
	ledger   channel.Ledger
	service  Service
	store    payment.StateStore

	assetID   string
	maxAmount *subrav.BigInt

	clock   clock.Clock
	retry   *backoff.Backoff
	logger  *logrus.Entry
	sched   chan struct{}
	flights singleflight.Group

	mu         sync.Mutex
	key        string
	account    *did.Account
	state      *payment.State
	info       *payment.ServiceInfo
	phase      Phase
	failure    error
	verified   bool
	recovered  bool
	recoverAt  time.Time
	recoverRes *payment.RecoveryResponse
	recoverErr error

	recoveryInterval time.Duration
}

type Option func(*Client) error

func WithStore(s payment.StateStore) Option {
	return func(c *Client) error {
		c.store = s
		return nil
	}
}

// WithKeyID selects the signing key. The first listed key is used otherwise.
func WithKeyID(k did.KeyID) Option {
	return func(c *Client) error {
		if err := k.Validate(); err != nil {
			return err
		}
		c.keyID = k
		return nil
	}
}

// WithMaxAmount refuses to sign proposals adding more than limit per call.
func WithMaxAmount(limit subrav.BigInt) Option {
	return func(c *Client) error {
		c.maxAmount = &limit
		return nil
	}
}

// WithAssetID opens the channel in asset a instead of the service's default
// asset. Calls and recovery name the channel explicitly.
func WithAssetID(a string) Option {
	return func(c *Client) error {
		c.assetID = a
		return nil
	}
}

func WithClock(cl clock.Clock) Option {
	return func(c *Client) error {
		c.clock = cl
		return nil
	}
}

func WithRecoveryInterval(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return errors.New("recovery interval must not be negative")
		}
		c.recoveryInterval = d
		return nil
	}
}

// WithRetryBackoff bounds the delay before a transport retry.
func WithRetryBackoff(lo, hi time.Duration) Option {
	return func(c *Client) error {
		c.retry = &backoff.Backoff{Min: lo, Max: hi, Factor: 2, Jitter: true}
		return nil
	}
}

func WithLogger(l *logrus.Entry) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

// New creates a client and loads any persisted session state.
func New(ctx context.Context, identity did.Identity, ledger channel.Ledger, service Service, opts ...Option) (*Client, error) {
	c := &Client{
		identity:         identity,
		ledger:           ledger,
		service:          service,
		store:            payment.NewMemStore(),
		clock:            clock.New(),
		retry:            &backoff.Backoff{Min: 100 * time.Millisecond, Max: 2 * time.Second, Factor: 2, Jitter: true},
		logger:           logging.Entry().WithField("component", "payer"),
		sched:            make(chan struct{}, 1),
		recoveryInterval: DefaultRecoveryInterval,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, errors.Wrap(err, "applying option")
		}
	}

	acct, err := identity.Account(ctx, c.keyID)
	if err != nil {
		return nil, errors.Wrap(err, "binding payer account")
	}
	c.account = acct
	c.key = payment.SessionKey(service.Endpoint(), acct.Address())
	c.logger = c.logger.WithField("payer", acct.Address())

	st, err := c.store.Load(ctx, c.key)
	switch {
	case errors.Is(err, payment.ErrStateNotFound):
		st = &payment.State{}
	case err != nil:
		return nil, errors.Wrap(err, "loading payment state")
	}
	c.state = st

	return c, nil
}

// PayerDID returns the DID the client pays as.
func (c *Client) PayerDID() string {
	return c.account.Address()
}

// State returns a consistent snapshot of the session.
func (c *Client) State() *payment.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Clone()
}

// PendingSubRAV returns the unsigned proposal owed on the next call.
func (c *Client) PendingSubRAV() *subrav.SubRAV {
	return c.State().Pending
}

// ClearPending drops the local proposal. The payee will ask for it again
// with PAYMENT_REQUIRED.
func (c *Client) ClearPending(ctx context.Context) error {
	return c.update(ctx, func(s *payment.State) {
		s.Pending = nil
	})
}

// update mutates and persists the state atomically.
func (c *Client) update(ctx context.Context, f func(s *payment.State)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	f(c.state)

	if err := c.store.Save(ctx, c.key, c.state); err != nil {
		c.logger.WithError(err).Warn("persisting payment state")
		return errors.Wrap(err, "persisting payment state")
	}

	return nil
}

// detached keeps the values of a context but not its cancellation.
type detached struct{ context.Context }

func (detached) Deadline() (time.Time, bool) { return time.Time{}, false }
func (detached) Done() <-chan struct{}       { return nil }
func (detached) Err() error                  { return nil }

// share runs fn once for all concurrent callers of key. fn runs on a context
// detached from the first caller, so one caller giving up does not fail the
// others; each caller waits on its own ctx.
func (c *Client) share(ctx context.Context, key string, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	ch := c.flights.DoChan(key, func() (interface{}, error) {
		fctx, cancel := context.WithTimeout(detached{ctx}, flightTimeout)
		defer cancel()

		return fn(fctx)
	})

	select {
	case r := <-ch:
		return r.Val, r.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// acquire serializes paid calls of the session so each pending voucher is
// signed and sent by exactly one call.
func (c *Client) acquire(ctx context.Context) (func(), error) {
	select {
	case c.sched <- struct{}{}:
		return func() { <-c.sched }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// authorize signs a DIDAuth header for an out-of-band call.
func (c *Client) authorize(ctx context.Context, operation string) (string, error) {
	return c.authHeader(ctx, operation, nil)
}
