package cryptography

import (
	"crypto"
	"io"

	"github.com/drand/kyber"
	bls "github.com/drand/kyber-bls12381"
	sig "github.com/drand/kyber/sign/bls"
	"github.com/drand/kyber/util/random"
	"github.com/pkg/errors"
)

var (
	_ crypto.PrivateKey = (*Bls12381PrivateKey)(nil)
	_ crypto.PublicKey  = (*Bls12381PublicKey)(nil)

	pairing = bls.NewBLS12381Suite()
)

func NewBls12381PrivateKey() *Bls12381PrivateKey {
	return &Bls12381PrivateKey{
		pairing.G1().Scalar().Pick(random.New()),
	}
}

func NewBls12381PrivateKeyFromBytes(b []byte) (*Bls12381PrivateKey, error) {
	sk := pairing.G1().Scalar()
	if err := sk.UnmarshalBinary(b); err != nil {
		return nil, errors.Wrap(err, "decoding bls12381 scalar")
	}

	return &Bls12381PrivateKey{sk}, nil
}

type Bls12381PrivateKey struct {
	sk kyber.Scalar
}

func (b *Bls12381PrivateKey) Bytes() ([]byte, error) {
	return b.sk.MarshalBinary()
}

// Sign produces a signature on G2; msg is hashed to the curve by the scheme.
func (b *Bls12381PrivateKey) Sign(_ io.Reader, msg []byte, _ crypto.SignerOpts) (signature []byte, err error) {
	scheme := sig.NewSchemeOnG2(pairing)
	return scheme.Sign(b.sk, msg)
}

func (b *Bls12381PrivateKey) Public() crypto.PublicKey {
	pk := pairing.G2().Point().Mul(b.sk, nil)
	return &Bls12381PublicKey{pk}
}

func (b *Bls12381PrivateKey) Equal(obls crypto.PrivateKey) bool {
	o, ok := obls.(*Bls12381PrivateKey)
	return ok && b.sk.Equal(o.sk)
}

type Bls12381PublicKey struct {
	kyber.Point
}

func NewBls12381PublicKey(d []byte) (*Bls12381PublicKey, error) {
	pk := &Bls12381PublicKey{pairing.G2().Point()}
	if err := pk.UnmarshalBinary(d); err != nil {
		return nil, errors.Wrap(err, "unmarshalling bls12381 point")
	}

	return pk, nil
}

func (b *Bls12381PublicKey) Bytes() ([]byte, error) {
	return b.Point.MarshalBinary()
}

func (b *Bls12381PublicKey) Verify(signature, msg []byte) (bool, error) {
	scheme := sig.NewSchemeOnG2(pairing)
	if err := scheme.Verify(b.Point, msg, signature); err != nil {
		return false, nil
	}

	return true, nil
}

func ValidateBls12381(vm VerificationMethod, signature []byte, msg []byte) (bool, error) {
	pkbytes, err := decodeMultibase(vm.PublicKeyMultibase)
	if err != nil {
		return false, errors.Wrap(err, "decoding multibase")
	}

	pk, err := NewBls12381PublicKey(pkbytes)
	if err != nil {
		return false, err
	}

	return pk.Verify(signature, msg)
}
