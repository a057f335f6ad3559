package grpcpay

import (
	"encoding/json"

	"github.com/pkg/errors"
	apipb "github.com/tcfw/didpay/api"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/cryptography"
	"github.com/tcfw/didpay/pkg/payment"
	"github.com/tcfw/didpay/pkg/subrav"
)

// SubRAVToProto renders r in its decimal transport form.
func SubRAVToProto(r *subrav.SubRAV) *apipb.SubRAV {
	if r == nil {
		return nil
	}

	e := subrav.Encode(*r)

	return &apipb.SubRAV{
		Version:           e.Version,
		ChainId:           e.ChainID,
		ChannelId:         e.ChannelID,
		ChannelEpoch:      e.ChannelEpoch,
		VmIdFragment:      e.VMIDFragment,
		AccumulatedAmount: e.AccumulatedAmount,
		Nonce:             e.Nonce,
	}
}

// SubRAVFromProto validates p the same way the JSON form is validated.
func SubRAVFromProto(p *apipb.SubRAV) (*subrav.SubRAV, error) {
	if p == nil {
		return nil, nil
	}

	r, err := subrav.Decode(subrav.EncodedSubRAV{
		Version:           p.GetVersion(),
		ChainID:           p.GetChainId(),
		ChannelID:         p.GetChannelId(),
		ChannelEpoch:      p.GetChannelEpoch(),
		VMIDFragment:      p.GetVmIdFragment(),
		AccumulatedAmount: p.GetAccumulatedAmount(),
		Nonce:             p.GetNonce(),
	})
	if err != nil {
		return nil, err
	}

	return &r, nil
}

func SignedToProto(s *subrav.SignedSubRAV) *apipb.SignedSubRAV {
	if s == nil {
		return nil
	}

	return &apipb.SignedSubRAV{SubRav: SubRAVToProto(&s.SubRAV), Signature: s.Signature}
}

func SignedFromProto(p *apipb.SignedSubRAV) (*subrav.SignedSubRAV, error) {
	if p == nil {
		return nil, nil
	}
	if p.GetSubRav() == nil {
		return nil, errors.Wrap(subrav.ErrMissingField, "subRav")
	}
	if len(p.GetSignature()) == 0 {
		return nil, errors.Wrap(subrav.ErrMissingField, "signature")
	}

	r, err := SubRAVFromProto(p.GetSubRav())
	if err != nil {
		return nil, err
	}

	return &subrav.SignedSubRAV{SubRAV: *r, Signature: p.GetSignature()}, nil
}

// BigIntFromProto reads a decimal field. Unset fields are zero.
func BigIntFromProto(name, s string) (subrav.BigInt, error) {
	if s == "" {
		return subrav.BigInt{}, nil
	}

	v, err := subrav.ParseBigInt(s)
	if err != nil {
		return subrav.BigInt{}, errors.Wrap(err, name)
	}

	return v, nil
}

func channelToProto(c *channel.Channel) *apipb.Channel {
	if c == nil {
		return nil
	}

	return &apipb.Channel{
		ChannelId: c.ID,
		PayerDid:  c.PayerDID,
		PayeeDid:  c.PayeeDID,
		AssetId:   c.AssetID,
		Epoch:     c.Epoch.String(),
		Status:    c.Status.String(),
	}
}

func channelFromProto(p *apipb.Channel) (*channel.Channel, error) {
	if p == nil {
		return nil, nil
	}

	c := &channel.Channel{
		ID:       p.GetChannelId(),
		PayerDID: p.GetPayerDid(),
		PayeeDID: p.GetPayeeDid(),
		AssetID:  p.GetAssetId(),
	}

	var err error
	if c.Epoch, err = BigIntFromProto("epoch", p.GetEpoch()); err != nil {
		return nil, err
	}
	if err := c.Status.UnmarshalText([]byte(p.GetStatus())); err != nil {
		return nil, err
	}

	return c, nil
}

func subChannelToProto(s *channel.SubChannel) (*apipb.SubChannel, error) {
	if s == nil {
		return nil, nil
	}

	p := &apipb.SubChannel{
		ChannelId:          s.ChannelID,
		Epoch:              s.Epoch.String(),
		VmIdFragment:       s.VMIDFragment,
		MethodType:         string(s.MethodType),
		PublicKeyMultibase: s.PublicKeyMultibase,
		Authorized:         s.Authorized,
		LastAcceptedNonce:  s.LastAcceptedNonce.String(),
		LastAcceptedAmount: s.LastAcceptedAmount.String(),
	}

	if len(s.PublicKeyJwk) > 0 {
		b, err := json.Marshal(s.PublicKeyJwk)
		if err != nil {
			return nil, errors.Wrap(err, "encoding jwk")
		}
		p.PublicKeyJwk = b
	}

	return p, nil
}

func subChannelFromProto(p *apipb.SubChannel) (*channel.SubChannel, error) {
	if p == nil {
		return nil, nil
	}

	s := &channel.SubChannel{
		ChannelID:          p.GetChannelId(),
		VMIDFragment:       p.GetVmIdFragment(),
		MethodType:         cryptography.VerificationMethodType(p.GetMethodType()),
		PublicKeyMultibase: p.GetPublicKeyMultibase(),
		Authorized:         p.GetAuthorized(),
	}

	var err error
	if s.Epoch, err = BigIntFromProto("epoch", p.GetEpoch()); err != nil {
		return nil, err
	}
	if s.LastAcceptedNonce, err = BigIntFromProto("lastAcceptedNonce", p.GetLastAcceptedNonce()); err != nil {
		return nil, err
	}
	if s.LastAcceptedAmount, err = BigIntFromProto("lastAcceptedAmount", p.GetLastAcceptedAmount()); err != nil {
		return nil, err
	}

	if len(p.GetPublicKeyJwk()) > 0 {
		if err := json.Unmarshal(p.GetPublicKeyJwk(), &s.PublicKeyJwk); err != nil {
			return nil, errors.Wrap(err, "decoding jwk")
		}
	}

	return s, nil
}

func infoToProto(i *payment.ServiceInfo) *apipb.ServiceInfo {
	return &apipb.ServiceInfo{
		ServiceId:         i.ServiceID,
		ServiceDid:        i.ServiceDID,
		DefaultAssetId:    i.DefaultAssetID,
		BasePath:          i.BasePath,
		SupportedFeatures: i.SupportedFeatures,
		ProtocolVersion:   int32(i.ProtocolVersion),
	}
}

func infoFromProto(p *apipb.ServiceInfo) *payment.ServiceInfo {
	return &payment.ServiceInfo{
		ServiceID:         p.GetServiceId(),
		ServiceDID:        p.GetServiceDid(),
		DefaultAssetID:    p.GetDefaultAssetId(),
		BasePath:          p.GetBasePath(),
		SupportedFeatures: p.GetSupportedFeatures(),
		ProtocolVersion:   int(p.GetProtocolVersion()),
	}
}

func recoveryToProto(r *payment.RecoveryResponse) (*apipb.RecoverResponse, error) {
	sub, err := subChannelToProto(r.SubChannel)
	if err != nil {
		return nil, err
	}

	return &apipb.RecoverResponse{
		Channel:       channelToProto(r.Channel),
		SubChannel:    sub,
		PendingSubRav: SubRAVToProto(r.PendingSubRAV),
	}, nil
}

func recoveryFromProto(p *apipb.RecoverResponse) (*payment.RecoveryResponse, error) {
	ch, err := channelFromProto(p.GetChannel())
	if err != nil {
		return nil, errors.Wrap(err, "channel")
	}

	sub, err := subChannelFromProto(p.GetSubChannel())
	if err != nil {
		return nil, errors.Wrap(err, "subChannel")
	}

	pending, err := SubRAVFromProto(p.GetPendingSubRav())
	if err != nil {
		return nil, errors.Wrap(err, "pendingSubRav")
	}

	return &payment.RecoveryResponse{Channel: ch, SubChannel: sub, PendingSubRAV: pending}, nil
}
