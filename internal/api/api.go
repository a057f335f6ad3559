package api

import (
	"context"
	"net"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/payee"
	"google.golang.org/grpc"
)

type APIHandler interface {
	Setup(*Api) error
	Desc() *grpc.ServiceDesc
}

var (
	reg = []APIHandler{}
)

type BaseHandler struct {
	a *Api
}

func (b *BaseHandler) Setup(a *Api) error {
	b.a = a
	return nil
}

// Api is the operator API of a running payee.
type Api struct {
	proc *payee.Processor
	g    *grpc.Server
}

func NewAPI(proc *payee.Processor) (*Api, error) {
	a := &Api{
		proc: proc,
		g:    newGRPCServer(),
	}

	for _, s := range reg {
		a.g.RegisterService(s.Desc(), s)
		if err := s.Setup(a); err != nil {
			return nil, errors.Wrap(err, "registering service")
		}
	}

	return a, nil
}

func (a *Api) ListenAndServe(l net.Addr) error {
	lis, err := net.Listen("tcp", l.String())
	if err != nil {
		return err
	}

	return a.Serve(lis)
}

func (a *Api) Serve(lis net.Listener) error {
	return a.g.Serve(lis)
}

func (a *Api) Shutdown(ctx context.Context) error {
	a.g.GracefulStop()
	return nil
}
