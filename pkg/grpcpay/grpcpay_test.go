package grpcpay

import (
	"context"
	"crypto/rand"
	"net"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apipb "github.com/tcfw/didpay/api"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/channel/memledger"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/tcfw/didpay/pkg/did/resolver"
	"github.com/tcfw/didpay/pkg/didauth"
	"github.com/tcfw/didpay/pkg/payee"
	"github.com/tcfw/didpay/pkg/payer"
	"github.com/tcfw/didpay/pkg/payment"
	"github.com/tcfw/didpay/pkg/subrav"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	testPayee = "did:example:payee"
	testAsset = "0x3::gas::GAS"

	methodSay = "/didpay.test.Echo/Say"
)

type echoServer interface {
	Say(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

type echo struct{}

func (echo) Say(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	if req.GetValue() == "free" {
		payee.SetCost(ctx, subrav.BigInt{})
	}
	return wrapperspb.String(req.GetValue()), nil
}

var echoDesc = grpc.ServiceDesc{
	ServiceName: "didpay.test.Echo",
	HandlerType: (*echoServer)(nil),
	Methods: []grpc.MethodDesc{{
		MethodName: "Say",
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(wrapperspb.StringValue)
			if err := dec(in); err != nil {
				return nil, err
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodSay}
			return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
				return srv.(echoServer).Say(ctx, req.(*wrapperspb.StringValue))
			})
		},
	}},
}

type grpcEnv struct {
	ledger *memledger.Ledger
	proc   *payee.Processor
	cc     *grpc.ClientConn
	signer *did.LocalSigner
}

func newGRPCEnv(t *testing.T) *grpcEnv {
	ctx := context.Background()

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
	proc, err := payee.NewProcessor(payee.Config{
		ServiceID:      "echo",
		ServiceDID:     testPayee,
		DefaultAssetID: testAsset,
		ChainID:        subrav.FromUint64(4),
	}, l, v)
	if err != nil {
		t.Fatal(err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	srv := NewServer(proc, Prices(map[string]subrav.BigInt{methodSay: subrav.FromUint64(5)}), logrus.NewEntry(logger))
	srv.RegisterService(&echoDesc, echo{})

	lis := bufconn.Listen(1 << 20)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	cc, err := grpc.DialContext(ctx, "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { cc.Close() })

	return &grpcEnv{ledger: l, proc: proc, cc: cc, signer: s}
}

func (e *grpcEnv) payer(t *testing.T) *payer.Client {
	c, err := payer.New(context.Background(), did.Raw(e.signer), e.ledger, NewService(e.cc, "bufnet"))
	require.NoError(t, err)

	return c
}

func say(t *testing.T, conn grpc.ClientConnInterface, text string) {
	out := &wrapperspb.StringValue{}
	require.NoError(t, conn.Invoke(context.Background(), methodSay, wrapperspb.String(text), out))
	assert.Equal(t, text, out.GetValue())
}

func TestPaidUnaryCalls(t *testing.T) {
	e := newGRPCEnv(t)
	c := e.payer(t)
	conn := NewPaidConn(e.cc, c, func(method string) bool { return method == methodSay })

	say(t, conn, "one")
	say(t, conn, "two")

	pending := c.PendingSubRAV()
	require.NotNil(t, pending)
	assert.Equal(t, "2", pending.Nonce.String())
	assert.Equal(t, "10", pending.AccumulatedAmount.String())

	states, err := e.proc.SubChannels(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "5", states[0].LastAmount.String())

	res, err := c.Commit(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Nil(t, c.PendingSubRAV())

	// a zero cost call leaves nothing owed
	say(t, conn, "free")
	assert.Nil(t, c.PendingSubRAV())

	states, err = e.proc.SubChannels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10", states[0].LastAmount.String())
}

func TestUnpaidCallRejected(t *testing.T) {
	e := newGRPCEnv(t)

	err := e.cc.Invoke(context.Background(), methodSay, wrapperspb.String("x"), &wrapperspb.StringValue{})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	var ae *didauth.AuthError
	assert.True(t, errors.As(fromStatus(methodSay, err), &ae))
}

func TestRecoveryOverGRPC(t *testing.T) {
	e := newGRPCEnv(t)

	first := e.payer(t)
	say(t, NewPaidConn(e.cc, first, nil), "one")

	second := e.payer(t)
	require.NoError(t, second.EnsureReady(context.Background()))
	require.NotNil(t, second.PendingSubRAV())
	assert.Equal(t, "5", second.PendingSubRAV().AccumulatedAmount.String())

	info, err := NewService(e.cc, "bufnet").Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testPayee, info.ServiceDID)
}

func TestAssetChannelOverGRPC(t *testing.T) {
	const usdc = "0x3::usdc::USDC"

	ctx := context.Background()
	e := newGRPCEnv(t)

	first, err := payer.New(ctx, did.Raw(e.signer), e.ledger, NewService(e.cc, "bufnet"), payer.WithAssetID(usdc))
	require.NoError(t, err)
	say(t, NewPaidConn(e.cc, first, nil), "one")

	channelID := subrav.DeriveChannelID(first.PayerDID(), testPayee, usdc)
	assert.Equal(t, channelID, first.State().ChannelID)

	second, err := payer.New(ctx, did.Raw(e.signer), e.ledger, NewService(e.cc, "bufnet"), payer.WithAssetID(usdc))
	require.NoError(t, err)
	require.NoError(t, second.EnsureReady(ctx))
	require.NotNil(t, second.PendingSubRAV())
	assert.Equal(t, channelID, second.PendingSubRAV().ChannelID)
	assert.Equal(t, "5", second.PendingSubRAV().AccumulatedAmount.String())
	assert.Equal(t, 1, e.ledger.Calls().Open)
}

func TestForeignChannelRecovery(t *testing.T) {
	ctx := context.Background()
	e := newGRPCEnv(t)

	owner := e.payer(t)
	require.NoError(t, owner.EnsureReady(ctx))

	other, err := did.GenerateEd25519Signer(rand.Reader)
	require.NoError(t, err)
	ids, err := other.ListKeyIDs(ctx)
	require.NoError(t, err)

	auth := func(ctx context.Context, op string) (string, error) {
		so, err := didauth.CreateSignature(ctx, didauth.Operation{Operation: op}, other, ids[0])
		if err != nil {
			return "", err
		}
		return didauth.ToAuthorizationHeader(so)
	}

	_, err = NewService(e.cc, "bufnet").Recover(ctx, auth, &payment.RecoveryRequest{ChannelID: owner.State().ChannelID})
	var se *payment.ServiceError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, payment.CodeForbidden, se.Code)
	assert.Equal(t, http.StatusForbidden, se.Status)
}

func TestCommitRequiresVoucher(t *testing.T) {
	e := newGRPCEnv(t)

	_, err := apipb.NewPaymentClient(e.cc).Commit(context.Background(), &apipb.CommitRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestInterceptorOnDial(t *testing.T) {
	e := newGRPCEnv(t)

	c, err := payer.New(context.Background(), did.Raw(e.signer), e.ledger, NewService(e.cc, "bufnet"))
	require.NoError(t, err)

	inv := UnaryClientInterceptor(c, func(method string) bool { return method == methodSay })

	out := &wrapperspb.StringValue{}
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return cc.Invoke(ctx, method, req, reply, opts...)
	}

	err = inv(context.Background(), methodSay, wrapperspb.String("hi"), out, e.cc, invoker)
	require.NoError(t, err)
	assert.Equal(t, "hi", out.GetValue())
	assert.Equal(t, "5", c.PendingSubRAV().AccumulatedAmount.String())
}

func TestStatusMapping(t *testing.T) {
	tests := map[string]struct {
		err  error
		code codes.Code
		is   error
	}{
		"payment required": {
			err:  &payment.PaymentRequiredError{SubRAV: subrav.SubRAV{Version: subrav.Version, ChannelID: "0x1", VMIDFragment: "k"}},
			code: codes.FailedPrecondition,
		},
		"voucher": {err: subrav.ErrStaleNonce, code: codes.InvalidArgument, is: subrav.ErrStaleNonce},
		"auth":    {err: didauth.ErrReplayed, code: codes.Unauthenticated, is: didauth.ErrReplayed},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			st := toStatus(test.err)
			assert.Equal(t, test.code, status.Code(st))

			back := fromStatus("x", st)
			if test.is != nil {
				assert.ErrorIs(t, back, test.is)
			} else {
				var pr *payment.PaymentRequiredError
				require.True(t, errors.As(back, &pr))
				assert.Equal(t, "0x1", pr.SubRAV.ChannelID)
			}
		})
	}

	var se *channel.StateError
	back := fromStatus("x", toStatus(channel.NewStateError(channel.StateEpochMismatch, "0xabc")))
	require.True(t, errors.As(back, &se))
	assert.Equal(t, "0xabc", se.ChannelID)
	assert.Equal(t, channel.StateEpochMismatch, se.Kind)

	var te *payment.TransportError
	assert.True(t, errors.As(fromStatus("x", status.Error(codes.Unavailable, "gone")), &te))
}
