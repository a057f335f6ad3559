package didauth

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/did"
)

// HeaderScheme prefixes every authorization value.
const HeaderScheme = "DIDAuthV1"

// Operation describes the call being authorized.
type Operation struct {
	Operation string
	Params    map[string]interface{}
}

type SignedData struct {
	Operation string                 `json:"operation"`
	Params    map[string]interface{} `json:"params"`
	Nonce     string                 `json:"nonce"`
	Timestamp uint64                 `json:"timestamp"`
}

type Signature struct {
	SignerDID string    `json:"signer_did"`
	KeyID     did.KeyID `json:"key_id"`
	Value     []byte    `json:"value"`
}

type SignedObject struct {
	SignedData SignedData `json:"signed_data"`
	Signature  Signature  `json:"signature"`
}

// Time returns the signing timestamp.
func (s *SignedObject) Time() time.Time {
	return time.Unix(int64(s.SignedData.Timestamp), 0)
}

type createOptions struct {
	nonce string
	clock clock.Clock
}

type CreateOption func(*createOptions)

// WithNonce overrides the generated nonce.
func WithNonce(n string) CreateOption {
	return func(o *createOptions) {
		o.nonce = n
	}
}

// WithClock sets the clock the timestamp is read from.
func WithClock(c clock.Clock) CreateOption {
	return func(o *createOptions) {
		o.clock = c
	}
}

// CreateSignature signs op with keyID of signer.
func CreateSignature(ctx context.Context, op Operation, signer did.Signer, keyID did.KeyID, opts ...CreateOption) (*SignedObject, error) {
	o := &createOptions{clock: clock.New()}
	for _, opt := range opts {
		opt(o)
	}
	if o.nonce == "" {
		o.nonce = uuid.NewString()
	}

	signerDID, err := signer.DID(ctx)
	if err != nil {
		return nil, &SignerError{KeyID: keyID, Err: errors.Wrap(err, "getting signer did")}
	}

	if err := keyID.Validate(); err != nil {
		return nil, &SignerError{KeyID: keyID, Err: err}
	}
	if keyID.DID() != signerDID {
		return nil, &SignerError{KeyID: keyID, Err: errors.Errorf("key does not belong to %s", signerDID)}
	}

	params := op.Params
	if params == nil {
		params = map[string]interface{}{}
	}

	data := SignedData{
		Operation: op.Operation,
		Params:    params,
		Nonce:     o.nonce,
		Timestamp: uint64(o.clock.Now().Unix()),
	}

	msg, err := CanonicalBytes(&data)
	if err != nil {
		return nil, errors.Wrap(err, "encoding signed data")
	}

	sig, err := signer.SignWithKeyID(ctx, msg, keyID)
	if err != nil {
		return nil, &SignerError{KeyID: keyID, Err: err}
	}

	return &SignedObject{
		SignedData: data,
		Signature: Signature{
			SignerDID: signerDID,
			KeyID:     keyID,
			Value:     sig,
		},
	}, nil
}

// CanonicalBytes encodes v as JSON with object keys sorted, numbers kept as
// written and no HTML escaping.
func CanonicalBytes(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic interface{}
	if err := dec.Decode(&generic); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(generic); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ToAuthorizationHeader renders the transport value of so.
func ToAuthorizationHeader(so *SignedObject) (string, error) {
	b, err := CanonicalBytes(so)
	if err != nil {
		return "", errors.Wrap(err, "encoding signed object")
	}

	return HeaderScheme + " " + base64.RawURLEncoding.EncodeToString(b), nil
}

// ParseAuthorizationHeader is the inverse of ToAuthorizationHeader.
func ParseAuthorizationHeader(header string) (*SignedObject, error) {
	scheme, payload, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || scheme != HeaderScheme {
		return nil, newAuthError(KindMalformedHeader, errors.New("unknown authorization scheme"))
	}

	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(strings.TrimSpace(payload), "="))
	if err != nil {
		return nil, newAuthError(KindMalformedHeader, errors.Wrap(err, "decoding payload"))
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	so := &SignedObject{}
	if err := dec.Decode(so); err != nil {
		return nil, newAuthError(KindMalformedHeader, errors.Wrap(err, "decoding signed object"))
	}

	if so.SignedData.Params == nil {
		so.SignedData.Params = map[string]interface{}{}
	}

	if so.SignedData.Operation == "" || so.SignedData.Nonce == "" || so.Signature.SignerDID == "" || len(so.Signature.Value) == 0 {
		return nil, newAuthError(KindMalformedHeader, errors.New("missing required fields"))
	}

	if err := so.Signature.KeyID.Validate(); err != nil {
		return nil, newAuthError(KindMalformedHeader, err)
	}

	return so, nil
}
