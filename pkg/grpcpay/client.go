package grpcpay

import (
	"context"

	apipb "github.com/tcfw/didpay/api"
	"github.com/tcfw/didpay/pkg/payer"
	"github.com/tcfw/didpay/pkg/payment"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

var _ payer.Service = (*Service)(nil)

// Service reaches didpay.v1.Payment over a gRPC connection.
type Service struct {
	pc       apipb.PaymentClient
	endpoint string
}

// NewService uses cc for the payment calls. endpoint names the service in
// session keys.
func NewService(cc grpc.ClientConnInterface, endpoint string) *Service {
	return &Service{pc: apipb.NewPaymentClient(cc), endpoint: endpoint}
}

func (s *Service) Endpoint() string {
	return s.endpoint
}

func (s *Service) Discover(ctx context.Context) (*payment.ServiceInfo, error) {
	info, err := s.pc.Info(ctx, &apipb.InfoRequest{})
	if err != nil {
		return nil, fromStatus("discover", err)
	}

	return infoFromProto(info), nil
}

func (s *Service) Recover(ctx context.Context, auth payer.Authorize, req *payment.RecoveryRequest) (*payment.RecoveryResponse, error) {
	ctx, err := s.authorized(ctx, auth, MethodRecover)
	if err != nil {
		return nil, err
	}

	in := &apipb.RecoverRequest{}
	if req != nil {
		in.ChannelId = req.ChannelID
	}

	res, err := s.pc.Recover(ctx, in)
	if err != nil {
		return nil, fromStatus("recover", err)
	}

	out, err := recoveryFromProto(res)
	if err != nil {
		return nil, &payment.TransportError{Op: "recover", Err: err}
	}

	return out, nil
}

func (s *Service) Commit(ctx context.Context, auth payer.Authorize, req *payment.CommitRequest) (*payment.CommitResponse, error) {
	ctx, err := s.authorized(ctx, auth, MethodCommit)
	if err != nil {
		return nil, err
	}

	res, err := s.pc.Commit(ctx, &apipb.CommitRequest{SignedSubRav: SignedToProto(&req.SignedSubRAV)})
	if err != nil {
		return nil, fromStatus("commit", err)
	}

	return &payment.CommitResponse{Success: res.GetSuccess()}, nil
}

func (s *Service) authorized(ctx context.Context, auth payer.Authorize, method string) (context.Context, error) {
	h, err := auth(ctx, method)
	if err != nil {
		return nil, err
	}

	return metadata.AppendToOutgoingContext(ctx, payment.MetadataAuth, h), nil
}
