package api

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	apipb "github.com/tcfw/didpay/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const Cfg_daemonAddr = "daemon_addr"

func init() {
	viper.SetDefault(Cfg_daemonAddr, "127.0.0.1:8090")
}

type Client struct {
	cc grpc.ClientConnInterface

	closer func() error
}

func (a *Client) Close() error {
	if a.closer == nil {
		return nil
	}

	return a.closer()
}

func (a *Client) Channels() apipb.ChannelsClient {
	return apipb.NewChannelsClient(a.cc)
}

func NewClient() (*Client, error) {
	cc, err := grpc.Dial(viper.GetString(Cfg_daemonAddr),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to daemon")
	}

	return &Client{cc: cc, closer: cc.Close}, nil
}
