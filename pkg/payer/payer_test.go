package payer

import (
	"context"
	"crypto/rand"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/channel/memledger"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/tcfw/didpay/pkg/did/resolver"
	"github.com/tcfw/didpay/pkg/didauth"
	"github.com/tcfw/didpay/pkg/payee"
	"github.com/tcfw/didpay/pkg/payment"
	"github.com/tcfw/didpay/pkg/subrav"
)

const (
	testPayee = "did:example:payee"
	testAsset = "0x3::gas::GAS"
)

type env struct {
	ledger *memledger.Ledger
	proc   *payee.Processor
	srv    *httptest.Server
	signer *did.LocalSigner
}

func newEnv(t *testing.T) *env {
	s, err := did.GenerateEd25519Signer(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	r, err := resolver.New()
	if err != nil {
		t.Fatal(err)
	}
	v, err := didauth.NewVerifier(r)
	if err != nil {
		t.Fatal(err)
	}

	l := memledger.New()

	p, err := payee.NewProcessor(payee.Config{
		ServiceID:      "echo",
		ServiceDID:     testPayee,
		DefaultAssetID: testAsset,
		ChainID:        subrav.FromUint64(4),
	}, l, v)
	if err != nil {
		t.Fatal(err)
	}

	h := payee.NewHandler(p)
	h.Route(http.MethodPost, "/v1/echo", subrav.FromUint64(7), func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		w.Write(b)
	})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return &env{ledger: l, proc: p, srv: srv, signer: s}
}

func (e *env) client(t *testing.T, opts ...Option) *Client {
	svc := NewHTTPService(e.srv.URL, e.srv.Client())

	c, err := New(context.Background(), did.Raw(e.signer), e.ledger, svc, opts...)
	require.NoError(t, err)

	return c
}

func (e *env) payeeState(t *testing.T, c *Client) *payee.SubChannelState {
	states, err := e.proc.SubChannels(context.Background())
	require.NoError(t, err)

	for _, s := range states {
		if s.PayerDID == c.PayerDID() {
			return s
		}
	}

	t.Fatal("no payee state for payer")
	return nil
}

func echo(t *testing.T, h *HTTP, body string) *Response {
	resp, err := h.Do(context.Background(), http.MethodPost, "/v1/echo", []byte(body), nil)
	require.NoError(t, err)
	assert.Equal(t, body, string(resp.Body))

	return resp
}

func TestColdStart(t *testing.T) {
	e := newEnv(t)
	c := e.client(t)
	h := NewHTTP(c, e.srv.Client(), e.srv.URL)

	phase, _ := c.Phase()
	assert.Equal(t, PhaseUninitialized, phase)

	resp := echo(t, h, "one")
	require.NotNil(t, resp.Payment)
	assert.Equal(t, "7", resp.Payment.Cost.String())

	phase, err := c.Phase()
	assert.Equal(t, PhaseReady, phase)
	assert.NoError(t, err)

	calls := e.ledger.Calls()
	assert.Equal(t, 1, calls.Open)
	assert.Equal(t, 1, calls.Authorize)

	pending := c.PendingSubRAV()
	require.NotNil(t, pending)
	assert.Equal(t, "1", pending.Nonce.String())
	assert.Equal(t, "7", pending.AccumulatedAmount.String())

	echo(t, h, "two")

	pending = c.PendingSubRAV()
	assert.Equal(t, "2", pending.Nonce.String())
	assert.Equal(t, "14", pending.AccumulatedAmount.String())

	st := e.payeeState(t, c)
	assert.Equal(t, "1", st.LastNonce.String())
	assert.Equal(t, "7", st.LastAmount.String())

	assert.Equal(t, 1, e.ledger.Calls().Open)
}

func TestPaymentRequiredRecovery(t *testing.T) {
	e := newEnv(t)
	c := e.client(t)
	h := NewHTTP(c, e.srv.Client(), e.srv.URL)

	echo(t, h, "one")
	echo(t, h, "two")

	// forget what is owed, the payee asks for it again
	require.NoError(t, c.ClearPending(context.Background()))

	echo(t, h, "three")

	st := e.payeeState(t, c)
	assert.Equal(t, "2", st.LastNonce.String())
	assert.Equal(t, "14", st.LastAmount.String())

	pending := c.PendingSubRAV()
	assert.Equal(t, "3", pending.Nonce.String())
	assert.Equal(t, "21", pending.AccumulatedAmount.String())
}

func TestCommit(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	c := e.client(t)
	h := NewHTTP(c, e.srv.Client(), e.srv.URL)

	_, err := c.Commit(ctx)
	assert.ErrorIs(t, err, ErrNothingToCommit)

	echo(t, h, "one")

	res, err := c.Commit(ctx)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Nil(t, c.PendingSubRAV())

	st := e.payeeState(t, c)
	assert.Equal(t, "7", st.LastAmount.String())
	assert.Nil(t, st.Pending)

	// nothing owed after the checkpoint
	echo(t, h, "two")
	assert.Equal(t, "14", c.PendingSubRAV().AccumulatedAmount.String())
}

func TestLostStateIsRecovered(t *testing.T) {
	e := newEnv(t)

	first := e.client(t)
	echo(t, NewHTTP(first, e.srv.Client(), e.srv.URL), "one")

	// a fresh client for the same payer knows nothing locally
	second := e.client(t)
	require.NoError(t, second.EnsureReady(context.Background()))

	pending := second.PendingSubRAV()
	require.NotNil(t, pending)
	assert.Equal(t, *first.PendingSubRAV(), *pending)

	echo(t, NewHTTP(second, e.srv.Client(), e.srv.URL), "two")

	calls := e.ledger.Calls()
	assert.Equal(t, 1, calls.Open)
	assert.Equal(t, 1, calls.Authorize)
	assert.Equal(t, "7", e.payeeState(t, second).LastAmount.String())
}

func TestAssetOverride(t *testing.T) {
	const usdc = "0x3::usdc::USDC"

	e := newEnv(t)
	c := e.client(t, WithAssetID(usdc))
	h := NewHTTP(c, e.srv.Client(), e.srv.URL)

	echo(t, h, "one")
	echo(t, h, "two")

	channelID := subrav.DeriveChannelID(c.PayerDID(), testPayee, usdc)
	assert.Equal(t, channelID, c.State().ChannelID)
	assert.Equal(t, usdc, c.State().Channel.AssetID)

	st := e.payeeState(t, c)
	assert.Equal(t, channelID, st.ChannelID)
	assert.Equal(t, "7", st.LastAmount.String())

	// a fresh client finds the same channel through recovery
	second := e.client(t, WithAssetID(usdc))
	require.NoError(t, second.EnsureReady(context.Background()))
	require.NotNil(t, second.PendingSubRAV())
	assert.Equal(t, *c.PendingSubRAV(), *second.PendingSubRAV())

	calls := e.ledger.Calls()
	assert.Equal(t, 1, calls.Open)
	assert.Equal(t, 1, calls.Authorize)
}

// failingStore refuses saves while fail is set.
type failingStore struct {
	*payment.MemStore

	mu   sync.Mutex
	fail bool
}

func (f *failingStore) setFail(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fail = v
}

func (f *failingStore) Save(ctx context.Context, key string, s *payment.State) error {
	f.mu.Lock()
	fail := f.fail
	f.mu.Unlock()

	if fail {
		return errors.New("disk full")
	}

	return f.MemStore.Save(ctx, key, s)
}

func TestUnsavedProposalFailsCall(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	store := &failingStore{MemStore: payment.NewMemStore()}
	c := e.client(t, WithStore(store))
	h := NewHTTP(c, e.srv.Client(), e.srv.URL)

	require.NoError(t, c.EnsureReady(ctx))

	store.setFail(true)
	_, err := h.Do(ctx, http.MethodPost, "/v1/echo", []byte("one"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storing proposal")

	// still owed in memory and paid on the next call
	require.NotNil(t, c.PendingSubRAV())

	store.setFail(false)
	echo(t, h, "two")
	assert.Equal(t, "7", e.payeeState(t, c).LastAmount.String())
}

func TestMaxAmountGuard(t *testing.T) {
	e := newEnv(t)
	c := e.client(t, WithMaxAmount(subrav.FromUint64(5)))
	h := NewHTTP(c, e.srv.Client(), e.srv.URL)

	echo(t, h, "one")

	_, err := h.Do(context.Background(), http.MethodPost, "/v1/echo", []byte("two"), nil)
	assert.ErrorIs(t, err, payment.ErrMaxAmountExceeded)
}

func TestMCPCall(t *testing.T) {
	e := newEnv(t)
	c := e.client(t)

	tool := e.proc.MCPTool("echo", subrav.FromUint64(2), func(ctx context.Context, args map[string]interface{}) (map[string]interface{}, error) {
		return map[string]interface{}{"content": args["text"]}, nil
	})

	m := NewMCP(c, func(ctx context.Context, name string, args map[string]interface{}) (map[string]interface{}, error) {
		assert.Equal(t, "echo", name)
		return tool(ctx, args)
	})

	for i, text := range []string{"a", "b", "c"} {
		out, err := m.CallTool(context.Background(), "echo", map[string]interface{}{"text": text})
		require.NoError(t, err)
		assert.Equal(t, text, out["content"])
		assert.NotContains(t, out, payment.MCPPaymentArg)

		assert.Equal(t, subrav.FromUint64(uint64(2*(i+1))).String(), c.PendingSubRAV().AccumulatedAmount.String())
	}

	assert.Equal(t, "4", e.payeeState(t, c).LastAmount.String())
}

type fakeService struct {
	mu         sync.Mutex
	discovers  int
	recovers   int
	recoverErr error
}

func (f *fakeService) Endpoint() string {
	return "fake://payee"
}

func (f *fakeService) Discover(context.Context) (*payment.ServiceInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.discovers++
	return &payment.ServiceInfo{ServiceID: "fake", ServiceDID: testPayee, DefaultAssetID: testAsset}, nil
}

func (f *fakeService) Recover(ctx context.Context, auth Authorize, _ *payment.RecoveryRequest) (*payment.RecoveryResponse, error) {
	if _, err := auth(ctx, "GET:/payment-channel/recovery"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.recovers++
	if f.recoverErr != nil {
		return nil, f.recoverErr
	}

	return &payment.RecoveryResponse{}, nil
}

func (f *fakeService) Commit(context.Context, Authorize, *payment.CommitRequest) (*payment.CommitResponse, error) {
	return &payment.CommitResponse{Success: true}, nil
}

func (f *fakeService) recoverCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.recovers
}

// slowLedger holds OpenChannel until released.
type slowLedger struct {
	channel.Ledger

	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *slowLedger) OpenChannel(ctx context.Context, payerDID, payeeDID, assetID string) (*channel.Channel, error) {
	s.once.Do(func() { close(s.entered) })
	<-s.release

	return s.Ledger.OpenChannel(ctx, payerDID, payeeDID, assetID)
}

func testSigner(t *testing.T) *did.LocalSigner {
	s, err := did.GenerateEd25519Signer(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	return s
}

func TestEnsureReadySingleFlight(t *testing.T) {
	ml := memledger.New()
	l := &slowLedger{Ledger: ml, entered: make(chan struct{}), release: make(chan struct{})}
	svc := &fakeService{}

	c, err := New(context.Background(), did.Raw(testSigner(t)), l, svc)
	require.NoError(t, err)

	const n = 16

	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- c.EnsureReady(context.Background())
		}()
	}

	<-l.entered
	time.Sleep(20 * time.Millisecond)
	close(l.release)

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	calls := ml.Calls()
	assert.Equal(t, 1, calls.Open)
	assert.Equal(t, 1, calls.Authorize)
	assert.Equal(t, 1, svc.recoverCount())
	assert.True(t, c.State().Ready())
}

func TestEnsureReadyOutlivesFirstCaller(t *testing.T) {
	ml := memledger.New()
	l := &slowLedger{Ledger: ml, entered: make(chan struct{}), release: make(chan struct{})}

	c, err := New(context.Background(), did.Raw(testSigner(t)), l, &fakeService{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() { first <- c.EnsureReady(ctx) }()

	<-l.entered

	second := make(chan error, 1)
	go func() { second <- c.EnsureReady(context.Background()) }()
	time.Sleep(20 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)

	close(l.release)
	assert.NoError(t, <-second)
	assert.Equal(t, 1, ml.Calls().Open)
	assert.True(t, c.State().Ready())
}

func TestRecoveryThrottled(t *testing.T) {
	ctx := context.Background()
	mock := clock.NewMock()
	mock.Set(time.Now())
	svc := &fakeService{}

	c, err := New(ctx, did.Raw(testSigner(t)), memledger.New(), svc, WithClock(mock), WithRecoveryInterval(time.Second))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := c.Recover(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, svc.recoverCount())

	mock.Add(999 * time.Millisecond)
	_, err = c.Recover(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.recoverCount())

	mock.Add(time.Millisecond)
	_, err = c.Recover(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, svc.recoverCount())

	// failures are throttled too
	svc.mu.Lock()
	svc.recoverErr = errors.New("down")
	svc.mu.Unlock()

	mock.Add(time.Second)
	_, err = c.Recover(ctx)
	assert.Error(t, err)
	_, err = c.Recover(ctx)
	assert.Error(t, err)
	assert.Equal(t, 3, svc.recoverCount())
}

func readyClient(t *testing.T, opts ...Option) (*Client, *memledger.Ledger) {
	l := memledger.New()

	c, err := New(context.Background(), did.Raw(testSigner(t)), l, &fakeService{}, opts...)
	require.NoError(t, err)
	require.NoError(t, c.EnsureReady(context.Background()))

	return c, l
}

func proposal(c *Client, nonce, amount uint64) *subrav.SubRAV {
	st := c.State()

	return &subrav.SubRAV{
		Version:           subrav.Version,
		ChannelID:         st.ChannelID,
		ChannelEpoch:      st.Channel.Epoch,
		VMIDFragment:      st.VMIDFragment,
		AccumulatedAmount: subrav.FromUint64(amount),
		Nonce:             subrav.FromUint64(nonce),
	}
}

func TestPaymentRequiredRetriedOnce(t *testing.T) {
	c, _ := readyClient(t)
	expected := proposal(c, 1, 10)

	var (
		refs     []string
		vouchers []*subrav.SignedSubRAV
	)

	_, err := c.Do(context.Background(), didauth.Operation{Operation: "POST:/x"}, func(ctx context.Context, r *Request) (*payment.ResponsePayload, error) {
		refs = append(refs, r.Payment.ClientTxRef)
		vouchers = append(vouchers, r.Payment.SignedSubRAV)
		return nil, &payment.PaymentRequiredError{SubRAV: *expected}
	})

	assert.ErrorIs(t, err, payment.ErrPaymentRetryExhausted)
	require.Len(t, refs, 2)
	assert.Equal(t, refs[0], refs[1])
	assert.Nil(t, vouchers[0])
	require.NotNil(t, vouchers[1])
	assert.True(t, vouchers[1].SubRAV.Equal(*expected))
}

func TestTransportRetry(t *testing.T) {
	c, _ := readyClient(t, WithRetryBackoff(time.Millisecond, time.Millisecond))

	var (
		refs  []string
		auths []string
	)

	resp, err := c.Do(context.Background(), didauth.Operation{Operation: "POST:/x"}, func(ctx context.Context, r *Request) (*payment.ResponsePayload, error) {
		refs = append(refs, r.Payment.ClientTxRef)
		auths = append(auths, r.Authorization)
		if len(refs) == 1 {
			return nil, &payment.TransportError{Op: "call", Err: errors.New("connection reset")}
		}
		return &payment.ResponsePayload{Version: payment.ProtocolVersion, ClientTxRef: r.Payment.ClientTxRef}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, refs[0], resp.ClientTxRef)

	require.Len(t, refs, 2)
	assert.Equal(t, refs[0], refs[1])
	assert.NotEqual(t, auths[0], auths[1], "each attempt carries a fresh signature")

	attempts := 0
	_, err = c.Do(context.Background(), didauth.Operation{Operation: "POST:/x"}, func(ctx context.Context, r *Request) (*payment.ResponsePayload, error) {
		attempts++
		return nil, &payment.TransportError{Op: "call", Err: errors.New("connection reset")}
	})
	var te *payment.TransportError
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, 2, attempts)
}

func TestStateErrorReestablishes(t *testing.T) {
	c, l := readyClient(t)
	ctx := context.Background()

	attempts := 0
	_, err := c.Do(ctx, didauth.Operation{Operation: "POST:/x"}, func(ctx context.Context, r *Request) (*payment.ResponsePayload, error) {
		attempts++
		if attempts == 1 {
			_, cerr := l.CloseChannel(ctx, c.State().ChannelID)
			require.NoError(t, cerr)
			return nil, channel.NewStateError(channel.StateChannelClosed, c.State().ChannelID)
		}
		return &payment.ResponsePayload{Version: payment.ProtocolVersion}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)

	st := c.State()
	require.True(t, st.Ready())
	assert.Equal(t, "1", st.Channel.Epoch.String())
	assert.Equal(t, 2, l.Calls().Authorize)
}

func TestProposalAppliedAfterResponse(t *testing.T) {
	c, _ := readyClient(t)
	ctx := context.Background()

	next := proposal(c, 1, 5)

	_, err := c.Do(ctx, didauth.Operation{Operation: "POST:/x"}, func(ctx context.Context, r *Request) (*payment.ResponsePayload, error) {
		return nil, errors.New("handler exploded")
	})
	assert.Error(t, err)
	assert.Nil(t, c.PendingSubRAV())

	_, err = c.Do(ctx, didauth.Operation{Operation: "POST:/x"}, func(ctx context.Context, r *Request) (*payment.ResponsePayload, error) {
		return &payment.ResponsePayload{Version: payment.ProtocolVersion, SubRAV: next}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, *next, *c.PendingSubRAV())

	var sent *subrav.SignedSubRAV
	_, err = c.Do(ctx, didauth.Operation{Operation: "POST:/x"}, func(ctx context.Context, r *Request) (*payment.ResponsePayload, error) {
		sent = r.Payment.SignedSubRAV
		return &payment.ResponsePayload{Version: payment.ProtocolVersion}, nil
	})
	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.True(t, sent.SubRAV.Equal(*next))
	assert.Nil(t, c.PendingSubRAV())
}

func TestSignVoucherRefusesRegression(t *testing.T) {
	c, _ := readyClient(t)
	ctx := context.Background()

	first, err := c.signVoucher(ctx, c.State(), *proposal(c, 2, 10))
	require.NoError(t, err)

	again, err := c.signVoucher(ctx, c.State(), *proposal(c, 2, 10))
	require.NoError(t, err)
	assert.Equal(t, first.Signature, again.Signature)

	tests := map[string]struct {
		rav *subrav.SubRAV
		err error
	}{
		"older nonce":             {rav: proposal(c, 1, 10), err: subrav.ErrStaleNonce},
		"same nonce other amount": {rav: proposal(c, 2, 11), err: subrav.ErrStaleNonce},
		"lower amount":            {rav: proposal(c, 3, 9), err: subrav.ErrAmountDecreased},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := c.signVoucher(ctx, c.State(), *test.rav)
			assert.ErrorIs(t, err, test.err)
		})
	}

	other := proposal(c, 3, 12)
	other.ChannelID = "0xother"
	_, err = c.signVoucher(ctx, c.State(), *other)
	assert.ErrorIs(t, err, subrav.ErrChannelMismatch)
}
