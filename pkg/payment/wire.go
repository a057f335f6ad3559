package payment

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/subrav"
	"golang.org/x/crypto/sha3"
)

const (
	ProtocolVersion = 1

	HeaderAuthorization = "Authorization"
	HeaderPaymentData   = "X-Payment-Channel-Data"
	MetadataPaymentData = "x-payment-channel-data"
	MetadataAuth        = "authorization"

	MCPAuthArg    = "__nuwa_auth"
	MCPPaymentArg = "__nuwa_payment"

	WellKnownPath   = "/.well-known/nuwa-payment/info"
	DefaultBasePath = "/payment-channel"
	RecoveryPath    = "/recovery"
	CommitPath      = "/commit"

	// ParamBodyHash binds a signed call to its request body.
	ParamBodyHash = "bodyHash"

	// QueryChannelID selects the channel of a recovery request.
	QueryChannelID = "channelId"
)

// Operation names an HTTP call for DIDAuth.
func Operation(method, path string) string {
	return strings.ToUpper(method) + ":" + path
}

// BodyHash is the sha3-256 digest of a request body.
func BodyHash(body []byte) string {
	sum := sha3.Sum256(body)
	return "0x" + hex.EncodeToString(sum[:])
}

// RequestPayload is the payment block attached to every paid call.
// ChannelID names the payer's channel; the payee falls back to the channel
// of its default asset when it is empty.
type RequestPayload struct {
	Version      int                  `json:"version"`
	ClientTxRef  string               `json:"clientTxRef"`
	ChannelID    string               `json:"channelId,omitempty"`
	SignedSubRAV *subrav.SignedSubRAV `json:"signedSubRav,omitempty"`
	MaxAmount    *subrav.BigInt       `json:"maxAmount,omitempty"`
}

// ResponsePayload is returned with every paid call the payee executed.
type ResponsePayload struct {
	Version      int            `json:"version"`
	ClientTxRef  string         `json:"clientTxRef"`
	SubRAV       *subrav.SubRAV `json:"subRav,omitempty"`
	Cost         *subrav.BigInt `json:"cost,omitempty"`
	ServiceTxRef string         `json:"serviceTxRef,omitempty"`
}

type ServiceInfo struct {
	ServiceID         string   `json:"serviceId"`
	ServiceDID        string   `json:"serviceDid"`
	DefaultAssetID    string   `json:"defaultAssetId"`
	BasePath          string   `json:"basePath,omitempty"`
	SupportedFeatures []string `json:"supportedFeatures,omitempty"`
	ProtocolVersion   int      `json:"protocolVersion,omitempty"`
}

// PaymentBasePath returns BasePath or the default.
func (s *ServiceInfo) PaymentBasePath() string {
	if s.BasePath == "" {
		return DefaultBasePath
	}

	return "/" + strings.Trim(s.BasePath, "/")
}

// RecoveryRequest asks for the state of ChannelID, or of the default asset
// channel when it is empty.
type RecoveryRequest struct {
	ChannelID string `json:"channelId,omitempty"`
}

type RecoveryResponse struct {
	Channel       *channel.Channel    `json:"channel,omitempty"`
	SubChannel    *channel.SubChannel `json:"subChannel,omitempty"`
	PendingSubRAV *subrav.SubRAV      `json:"pendingSubRav,omitempty"`
}

type CommitRequest struct {
	SignedSubRAV subrav.SignedSubRAV `json:"signedSubRav"`
}

type CommitResponse struct {
	Success bool `json:"success"`
}

// EncodeHeader renders v as base64url JSON.
func EncodeHeader(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

func decodeHeader(h string, v interface{}) error {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(strings.TrimSpace(h), "="))
	if err != nil {
		return errors.Wrap(err, "decoding payment header")
	}

	return errors.Wrap(json.Unmarshal(raw, v), "decoding payment payload")
}

func DecodeRequestHeader(h string) (*RequestPayload, error) {
	p := &RequestPayload{}
	if err := decodeHeader(h, p); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func DecodeResponseHeader(h string) (*ResponsePayload, error) {
	p := &ResponsePayload{}
	if err := decodeHeader(h, p); err != nil {
		return nil, err
	}

	if p.Version != ProtocolVersion {
		return nil, errors.Errorf("unsupported payment protocol version %d", p.Version)
	}

	return p, nil
}

func (p *RequestPayload) Validate() error {
	if p.Version != ProtocolVersion {
		return errors.Errorf("unsupported payment protocol version %d", p.Version)
	}
	if p.ClientTxRef == "" {
		return errors.New("clientTxRef is required")
	}
	if v := p.SignedSubRAV; v != nil && p.ChannelID != "" && v.SubRAV.ChannelID != p.ChannelID {
		return errors.Errorf("voucher for %s sent on channel %s", v.SubRAV.ChannelID, p.ChannelID)
	}

	return nil
}
