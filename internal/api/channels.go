package api

import (
	"context"

	"github.com/pkg/errors"
	apipb "github.com/tcfw/didpay/api"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/grpcpay"
	"github.com/tcfw/didpay/pkg/payee"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func init() {
	reg = append(reg, &channelsApi{})
}

type channelsApi struct {
	apipb.UnimplementedChannelsServer
	BaseHandler
}

func (c *channelsApi) Desc() *grpc.ServiceDesc {
	return &apipb.Channels_ServiceDesc
}

func (c *channelsApi) List(ctx context.Context, _ *apipb.ListRequest) (*apipb.ListResponse, error) {
	subs, err := c.a.proc.SubChannels(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	res := &apipb.ListResponse{}
	for _, s := range subs {
		res.SubChannels = append(res.SubChannels, stateToProto(s))
	}

	return res, nil
}

// Claim claims one sub-channel, or every sub-channel holding at least
// min_amount when no channel is named.
func (c *channelsApi) Claim(ctx context.Context, req *apipb.ClaimRequest) (*apipb.ClaimResponse, error) {
	if req.ChannelId == "" {
		minAmount, err := grpcpay.BigIntFromProto("minAmount", req.MinAmount)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		receipts, err := c.a.proc.ClaimAll(ctx, minAmount)
		if err != nil && len(receipts) == 0 {
			return nil, status.Error(codes.Internal, err.Error())
		}

		res := &apipb.ClaimResponse{}
		for _, r := range receipts {
			res.Receipts = append(res.Receipts, receiptToProto(r))
		}

		return res, nil
	}

	if req.VmIdFragment == "" {
		return nil, status.Error(codes.InvalidArgument, "vm_id_fragment is required with channel_id")
	}

	r, err := c.a.proc.Claim(ctx, req.ChannelId, req.VmIdFragment)
	switch {
	case errors.Is(err, payee.ErrStateNotFound):
		return nil, status.Error(codes.NotFound, err.Error())
	case err != nil:
		return nil, status.Error(codes.Internal, err.Error())
	}

	res := &apipb.ClaimResponse{}
	if r != nil {
		res.Receipts = append(res.Receipts, receiptToProto(r))
	}

	return res, nil
}

func stateToProto(s *payee.SubChannelState) *apipb.SubChannelState {
	return &apipb.SubChannelState{
		ChannelId:     s.ChannelID,
		VmIdFragment:  s.VMIDFragment,
		PayerDid:      s.PayerDID,
		Epoch:         s.Epoch.String(),
		LastNonce:     s.LastNonce.String(),
		LastAmount:    s.LastAmount.String(),
		LastAccepted:  grpcpay.SignedToProto(s.LastAccepted),
		PendingSubRav: grpcpay.SubRAVToProto(s.Pending),
		Claimed:       s.Claimed.String(),
	}
}

func receiptToProto(r *channel.ClaimReceipt) *apipb.ClaimReceipt {
	return &apipb.ClaimReceipt{
		ChannelId:    r.ChannelID,
		VmIdFragment: r.VMIDFragment,
		Nonce:        r.Nonce.String(),
		Claimed:      r.Claimed.String(),
		Total:        r.Total.String(),
	}
}
