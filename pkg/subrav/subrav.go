package subrav

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/cryptography"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/sha3"
)

// Version is the only voucher layout currently defined.
const Version uint32 = 1

const signingDomain = "didpay/subrav/v1"

var (
	ErrUnsupportedVersion = errors.New("unsupported subrav version")
	ErrMissingField       = errors.New("subrav field missing")
)

// SubRAV is a payer's accumulated debt claim against one sub-channel.
type SubRAV struct {
	Version           uint32 `msgpack:"v"`
	ChainID           BigInt `msgpack:"chain"`
	ChannelID         string `msgpack:"ch"`
	ChannelEpoch      BigInt `msgpack:"ep"`
	VMIDFragment      string `msgpack:"frag"`
	AccumulatedAmount BigInt `msgpack:"amt"`
	Nonce             BigInt `msgpack:"n"`
}

type SignedSubRAV struct {
	SubRAV    SubRAV `msgpack:"rav"`
	Signature []byte `msgpack:"sig"`
}

// EncodedSubRAV is the transport form of a SubRAV.
type EncodedSubRAV struct {
	Version           uint32 `json:"version"`
	ChainID           string `json:"chainId"`
	ChannelID         string `json:"channelId"`
	ChannelEpoch      string `json:"channelEpoch"`
	VMIDFragment      string `json:"vmIdFragment"`
	AccumulatedAmount string `json:"accumulatedAmount"`
	Nonce             string `json:"nonce"`
}

type EncodedSignedSubRAV struct {
	SubRAV    EncodedSubRAV `json:"subRav"`
	Signature string        `json:"signature"`
}

func Encode(r SubRAV) EncodedSubRAV {
	return EncodedSubRAV{
		Version:           r.Version,
		ChainID:           r.ChainID.String(),
		ChannelID:         r.ChannelID,
		ChannelEpoch:      r.ChannelEpoch.String(),
		VMIDFragment:      r.VMIDFragment,
		AccumulatedAmount: r.AccumulatedAmount.String(),
		Nonce:             r.Nonce.String(),
	}
}

func Decode(e EncodedSubRAV) (SubRAV, error) {
	if e.Version != Version {
		return SubRAV{}, errors.Wrapf(ErrUnsupportedVersion, "%d", e.Version)
	}
	if e.ChannelID == "" {
		return SubRAV{}, errors.Wrap(ErrMissingField, "channelId")
	}
	if e.VMIDFragment == "" {
		return SubRAV{}, errors.Wrap(ErrMissingField, "vmIdFragment")
	}

	r := SubRAV{
		Version:      e.Version,
		ChannelID:    e.ChannelID,
		VMIDFragment: e.VMIDFragment,
	}

	fields := map[string]struct {
		in  string
		out *BigInt
	}{
		"chainId":           {e.ChainID, &r.ChainID},
		"channelEpoch":      {e.ChannelEpoch, &r.ChannelEpoch},
		"accumulatedAmount": {e.AccumulatedAmount, &r.AccumulatedAmount},
		"nonce":             {e.Nonce, &r.Nonce},
	}

	for name, f := range fields {
		v, err := ParseBigInt(f.in)
		if err != nil {
			return SubRAV{}, errors.Wrap(err, name)
		}
		*f.out = v
	}

	return r, nil
}

func EncodeSigned(s SignedSubRAV) EncodedSignedSubRAV {
	return EncodedSignedSubRAV{
		SubRAV:    Encode(s.SubRAV),
		Signature: "0x" + hex.EncodeToString(s.Signature),
	}
}

func DecodeSigned(e EncodedSignedSubRAV) (SignedSubRAV, error) {
	r, err := Decode(e.SubRAV)
	if err != nil {
		return SignedSubRAV{}, err
	}

	sig, err := hex.DecodeString(strings.TrimPrefix(e.Signature, "0x"))
	if err != nil {
		return SignedSubRAV{}, errors.Wrap(err, "decoding signature")
	}
	if len(sig) == 0 {
		return SignedSubRAV{}, errors.Wrap(ErrMissingField, "signature")
	}

	return SignedSubRAV{SubRAV: r, Signature: sig}, nil
}

func (r SubRAV) MarshalJSON() ([]byte, error) {
	return json.Marshal(Encode(r))
}

func (r *SubRAV) UnmarshalJSON(b []byte) error {
	e := EncodedSubRAV{}
	if err := json.Unmarshal(b, &e); err != nil {
		return err
	}

	v, err := Decode(e)
	if err != nil {
		return err
	}

	*r = v
	return nil
}

func (s SignedSubRAV) MarshalJSON() ([]byte, error) {
	return json.Marshal(EncodeSigned(s))
}

func (s *SignedSubRAV) UnmarshalJSON(b []byte) error {
	e := EncodedSignedSubRAV{}
	if err := json.Unmarshal(b, &e); err != nil {
		return err
	}

	v, err := DecodeSigned(e)
	if err != nil {
		return err
	}

	*s = v
	return nil
}

// SigningBytes is the deterministic encoding a voucher signature covers.
func (r SubRAV) SigningBytes() ([]byte, error) {
	return msgpack.Marshal([]interface{}{
		signingDomain,
		r.Version,
		r.ChainID.String(),
		r.ChannelID,
		r.ChannelEpoch.String(),
		r.VMIDFragment,
		r.AccumulatedAmount.String(),
		r.Nonce.String(),
	})
}

// SameSubChannel reports whether both vouchers address the same
// channel, epoch and sub-channel key.
func (r SubRAV) SameSubChannel(o SubRAV) bool {
	return r.Version == o.Version &&
		r.ChainID.Cmp(o.ChainID) == 0 &&
		r.ChannelID == o.ChannelID &&
		r.ChannelEpoch.Cmp(o.ChannelEpoch) == 0 &&
		r.VMIDFragment == o.VMIDFragment
}

// Equal reports whether both vouchers carry the same values.
func (r SubRAV) Equal(o SubRAV) bool {
	return r.SameSubChannel(o) &&
		r.Nonce.Cmp(o.Nonce) == 0 &&
		r.AccumulatedAmount.Cmp(o.AccumulatedAmount) == 0
}

// Sign signs r with keyID, which must be the sub-channel key r names.
func Sign(ctx context.Context, r SubRAV, signer did.Signer, keyID did.KeyID) (*SignedSubRAV, error) {
	if keyID.Fragment() != r.VMIDFragment {
		return nil, errors.Errorf("key %s does not match sub-channel %s", keyID, r.VMIDFragment)
	}

	msg, err := r.SigningBytes()
	if err != nil {
		return nil, errors.Wrap(err, "encoding subrav")
	}

	sig, err := signer.SignWithKeyID(ctx, msg, keyID)
	if err != nil {
		return nil, errors.Wrap(err, "signing subrav")
	}

	return &SignedSubRAV{SubRAV: r, Signature: sig}, nil
}

// Verify checks s was signed by the key published in vm.
func Verify(s *SignedSubRAV, vm cryptography.VerificationMethod) error {
	msg, err := s.SubRAV.SigningBytes()
	if err != nil {
		return newVoucherError(KindBadSignature, err)
	}

	ok, err := cryptography.Validate(vm, s.Signature, msg)
	if err != nil {
		return newVoucherError(KindBadSignature, err)
	}
	if !ok {
		return newVoucherError(KindBadSignature, nil)
	}

	return nil
}

// DeriveChannelID computes the channel id for a payer, payee and asset.
func DeriveChannelID(payerDID, payeeDID, assetID string) string {
	h := sha3.New256()

	for _, part := range []string{payerDID, payeeDID, assetID} {
		var l [8]byte
		binary.BigEndian.PutUint64(l[:], uint64(len(part)))
		h.Write(l[:])
		h.Write([]byte(part))
	}

	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// CheckNext applies the acceptance rule for next following last on the
// same sub-channel. owed bounds how much the amount may grow.
func CheckNext(last, next SubRAV, owed BigInt) error {
	if !last.SameSubChannel(next) {
		return newVoucherError(KindChannelMismatch, errors.Errorf("expected %s/%s epoch %s", last.ChannelID, last.VMIDFragment, last.ChannelEpoch))
	}

	if next.Nonce.Cmp(last.Nonce) <= 0 {
		return newVoucherError(KindStaleNonce, errors.Errorf("nonce %s after %s", next.Nonce, last.Nonce))
	}

	delta, err := next.AccumulatedAmount.Sub(last.AccumulatedAmount)
	if err != nil {
		return newVoucherError(KindAmountDecreased, err)
	}

	if delta.Cmp(owed) > 0 {
		return newVoucherError(KindAmountUnjustified, errors.Errorf("delta %s exceeds owed %s", delta, owed))
	}

	return nil
}
