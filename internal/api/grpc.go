package api

import (
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_logrus "github.com/grpc-ecosystem/go-grpc-middleware/logging/logrus"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"github.com/tcfw/didpay/internal/utils/logging"
	"google.golang.org/grpc"
)

func newGRPCServer() *grpc.Server {
	logger := logging.Entry().WithField("component", "api")

	streamInterceptors := []grpc.StreamServerInterceptor{
		grpc_logrus.StreamServerInterceptor(logger),
		grpc_recovery.StreamServerInterceptor(),
	}
	unaryInterceptors := []grpc.UnaryServerInterceptor{
		grpc_logrus.UnaryServerInterceptor(logger),
		grpc_recovery.UnaryServerInterceptor(),
	}

	return grpc.NewServer(
		grpc.StreamInterceptor(grpc_middleware.ChainStreamServer(streamInterceptors...)),
		grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(unaryInterceptors...)),
	)
}
