package grpcpay

import (
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpc_logrus "github.com/grpc-ecosystem/go-grpc-middleware/logging/logrus"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"github.com/sirupsen/logrus"
	apipb "github.com/tcfw/didpay/api"
	"github.com/tcfw/didpay/pkg/payee"
	"google.golang.org/grpc"
)

// NewServer builds a gRPC server exposing didpay.v1.Payment and charging
// for the methods prices names. Register paid services on the result.
func NewServer(proc *payee.Processor, prices PriceFunc, logger *logrus.Entry, opts ...grpc.ServerOption) *grpc.Server {
	streamInterceptors := []grpc.StreamServerInterceptor{
		grpc_ctxtags.StreamServerInterceptor(),
		grpc_logrus.StreamServerInterceptor(logger),
		grpc_recovery.StreamServerInterceptor(),
	}
	unaryInterceptors := []grpc.UnaryServerInterceptor{
		grpc_ctxtags.UnaryServerInterceptor(),
		grpc_logrus.UnaryServerInterceptor(logger),
		grpc_recovery.UnaryServerInterceptor(),
		UnaryServerInterceptor(proc, prices),
	}

	opts = append(opts,
		grpc.ChainStreamInterceptor(streamInterceptors...),
		grpc.ChainUnaryInterceptor(unaryInterceptors...),
	)

	s := grpc.NewServer(opts...)
	apipb.RegisterPaymentServer(s, NewPaymentServer(proc))

	return s
}
