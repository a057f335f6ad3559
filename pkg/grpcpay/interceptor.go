package grpcpay

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/didauth"
	"github.com/tcfw/didpay/pkg/payee"
	"github.com/tcfw/didpay/pkg/payer"
	"github.com/tcfw/didpay/pkg/payment"
	"github.com/tcfw/didpay/pkg/subrav"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/proto"
)

// PriceFunc returns the price of a method, or false when it is free and
// unauthenticated.
type PriceFunc func(fullMethod string) (subrav.BigInt, bool)

// Prices is a fixed price list keyed by full method name.
func Prices(m map[string]subrav.BigInt) PriceFunc {
	return func(method string) (subrav.BigInt, bool) {
		p, ok := m[method]
		return p, ok
	}
}

// requestDigest binds a call signature to the deterministic wire form of
// the request message.
func requestDigest(req interface{}) (string, error) {
	m, ok := req.(proto.Message)
	if !ok {
		return "", errors.Errorf("request %T is not a protobuf message", req)
	}

	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(m)
	if err != nil {
		return "", errors.Wrap(err, "encoding request")
	}

	return payment.BodyHash(b), nil
}

// UnaryServerInterceptor charges for the methods prices names. The payment
// response is returned in the header metadata.
func UnaryServerInterceptor(proc *payee.Processor, prices PriceFunc) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		price, ok := prices(info.FullMethod)
		if !ok {
			return handler(ctx, req)
		}

		digest, err := requestDigest(req)
		if err != nil {
			return nil, toStatus(err)
		}

		in := &payee.Incoming{
			Operation:     info.FullMethod,
			Authorization: incomingValue(ctx, payment.MetadataAuth),
			BodyHash:      digest,
		}

		if v := incomingValue(ctx, payment.MetadataPaymentData); v != "" {
			in.Payment, err = payment.DecodeRequestHeader(v)
			if err != nil {
				return nil, toStatus(payment.NewServiceError(http.StatusBadRequest, payment.CodeBadRequest, err.Error()))
			}
		}

		s, err := proc.Begin(ctx, in)
		if err != nil {
			return nil, toStatus(err)
		}

		if pr, res, ok := s.Replayed(); ok {
			s.Abort()
			if err := sendPaymentHeader(ctx, pr); err != nil {
				return nil, err
			}
			return res, nil
		}

		resp, err := handler(s.Context(ctx), req)
		if err != nil {
			s.Abort()
			return nil, err
		}

		pr, err := s.Complete(ctx, s.Cost(price), resp)
		if err != nil {
			return nil, toStatus(err)
		}

		if err := sendPaymentHeader(ctx, pr); err != nil {
			return nil, err
		}

		return resp, nil
	}
}

func sendPaymentHeader(ctx context.Context, pr *payment.ResponsePayload) error {
	ph, err := payment.EncodeHeader(pr)
	if err != nil {
		return toStatus(errors.Wrap(err, "encoding payment header"))
	}

	return grpc.SetHeader(ctx, metadata.Pairs(payment.MetadataPaymentData, ph))
}

type invokeFunc func(ctx context.Context, method string, req, reply interface{}, opts ...grpc.CallOption) error

func invokePaid(ctx context.Context, c *payer.Client, method string, req, reply interface{}, invoke invokeFunc, opts []grpc.CallOption) error {
	digest, err := requestDigest(req)
	if err != nil {
		return err
	}

	op := didauth.Operation{Operation: method, Params: map[string]interface{}{payment.ParamBodyHash: digest}}

	_, err = c.Do(ctx, op, func(ctx context.Context, r *payer.Request) (*payment.ResponsePayload, error) {
		ph, err := payment.EncodeHeader(r.Payment)
		if err != nil {
			return nil, errors.Wrap(err, "encoding payment header")
		}

		ctx = metadata.AppendToOutgoingContext(ctx, payment.MetadataAuth, r.Authorization, payment.MetadataPaymentData, ph)

		var header metadata.MD
		callOpts := append(append([]grpc.CallOption{}, opts...), grpc.Header(&header))

		if err := invoke(ctx, method, req, reply, callOpts...); err != nil {
			if cerr := ctx.Err(); cerr != nil {
				return nil, cerr
			}
			return nil, fromStatus(method, err)
		}

		v := header.Get(payment.MetadataPaymentData)
		if len(v) == 0 {
			return nil, nil
		}

		p, err := payment.DecodeResponseHeader(v[0])
		if err != nil {
			return nil, &payment.TransportError{Op: method, Err: err}
		}

		return p, nil
	})

	return err
}

// UnaryClientInterceptor pays for every unary call paid selects, or every
// call when paid is nil.
func UnaryClientInterceptor(c *payer.Client, paid func(method string) bool) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if paid != nil && !paid(method) {
			return invoker(ctx, method, req, reply, cc, opts...)
		}

		invoke := func(ctx context.Context, method string, req, reply interface{}, opts ...grpc.CallOption) error {
			return invoker(ctx, method, req, reply, cc, opts...)
		}

		return invokePaid(ctx, c, method, req, reply, invoke, opts)
	}
}

var _ grpc.ClientConnInterface = (*PaidConn)(nil)

// PaidConn pays for unary calls made over an existing connection. Streams
// pass through unpaid.
type PaidConn struct {
	cc     grpc.ClientConnInterface
	client *payer.Client
	paid   func(method string) bool
}

func NewPaidConn(cc grpc.ClientConnInterface, c *payer.Client, paid func(method string) bool) *PaidConn {
	return &PaidConn{cc: cc, client: c, paid: paid}
}

func (p *PaidConn) Invoke(ctx context.Context, method string, args, reply interface{}, opts ...grpc.CallOption) error {
	if p.paid != nil && !p.paid(method) {
		return p.cc.Invoke(ctx, method, args, reply, opts...)
	}

	return invokePaid(ctx, p.client, method, args, reply, p.cc.Invoke, opts)
}

func (p *PaidConn) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	return p.cc.NewStream(ctx, desc, method, opts...)
}
