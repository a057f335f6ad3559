package grpcpay

import (
	"context"
	"net/http"

	apipb "github.com/tcfw/didpay/api"
	"github.com/tcfw/didpay/pkg/payee"
	"github.com/tcfw/didpay/pkg/payment"
	"google.golang.org/grpc/metadata"
)

const (
	ServiceName = "didpay.v1.Payment"

	MethodInfo    = "/" + ServiceName + "/Info"
	MethodRecover = "/" + ServiceName + "/Recover"
	MethodCommit  = "/" + ServiceName + "/Commit"
)

var _ apipb.PaymentServer = (*Server)(nil)

// Server serves didpay.v1.Payment from a payee processor.
type Server struct {
	apipb.UnimplementedPaymentServer

	proc *payee.Processor
}

func NewPaymentServer(proc *payee.Processor) *Server {
	return &Server{proc: proc}
}

func (s *Server) Info(context.Context, *apipb.InfoRequest) (*apipb.ServiceInfo, error) {
	return infoToProto(s.proc.Config().Info()), nil
}

func (s *Server) Recover(ctx context.Context, req *apipb.RecoverRequest) (*apipb.RecoverResponse, error) {
	res, err := s.proc.Recovery(ctx, incomingValue(ctx, payment.MetadataAuth), MethodRecover, &payment.RecoveryRequest{ChannelID: req.GetChannelId()})
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := recoveryToProto(res)
	if err != nil {
		return nil, toStatus(err)
	}

	return out, nil
}

func (s *Server) Commit(ctx context.Context, req *apipb.CommitRequest) (*apipb.CommitResponse, error) {
	signed, err := SignedFromProto(req.GetSignedSubRav())
	if err != nil {
		return nil, toStatus(payment.NewServiceError(http.StatusBadRequest, payment.CodeBadRequest, err.Error()))
	}
	if signed == nil {
		return nil, toStatus(payment.NewServiceError(http.StatusBadRequest, payment.CodeBadRequest, "signedSubRav is required"))
	}

	res, err := s.proc.Commit(ctx, incomingValue(ctx, payment.MetadataAuth), MethodCommit, &payment.CommitRequest{SignedSubRAV: *signed})
	if err != nil {
		return nil, toStatus(err)
	}

	return &apipb.CommitResponse{Success: res.Success}, nil
}

func incomingValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	if v := md.Get(key); len(v) > 0 {
		return v[0]
	}

	return ""
}
