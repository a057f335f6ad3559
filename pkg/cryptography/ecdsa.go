package cryptography

import (
	"crypto"
	"crypto/ecdsa"
	"io"

	ethCrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

const secp256k1SigLen = 64

type Secp256k1PrivateKey struct {
	*ecdsa.PrivateKey
}

func NewEcdsaSecp256k1PrivateKey() (*Secp256k1PrivateKey, error) {
	pk, err := ethCrypto.GenerateKey()
	if err != nil {
		return nil, errors.Wrap(err, "generating ecdsa key")
	}

	return &Secp256k1PrivateKey{pk}, nil
}

func NewSecp256k1PrivateKeyFromBytes(b []byte) (*Secp256k1PrivateKey, error) {
	pk, err := ethCrypto.ToECDSA(b)
	if err != nil {
		return nil, errors.Wrap(err, "decoding secp256k1 key")
	}

	return &Secp256k1PrivateKey{pk}, nil
}

func (p *Secp256k1PrivateKey) Bytes() ([]byte, error) {
	return ethCrypto.FromECDSA(p.PrivateKey), nil
}

// Sign signs the keccak-256 digest of msg. The result is [R || S || V].
func (p *Secp256k1PrivateKey) Sign(_ io.Reader, msg []byte, _ crypto.SignerOpts) ([]byte, error) {
	return ethCrypto.Sign(ethCrypto.Keccak256(msg), p.PrivateKey)
}

func (p *Secp256k1PrivateKey) Public() crypto.PublicKey {
	return &Secp256k1PublicKey{p.PublicKey}
}

// NewSecp256k1PublicKey accepts compressed (33 byte) or uncompressed (65 byte) keys.
func NewSecp256k1PublicKey(d []byte) (*Secp256k1PublicKey, error) {
	var (
		pub *ecdsa.PublicKey
		err error
	)

	switch len(d) {
	case 33:
		pub, err = ethCrypto.DecompressPubkey(d)
	case 65:
		pub, err = ethCrypto.UnmarshalPubkey(d)
	default:
		return nil, ErrInvalidPublicKeyLength
	}
	if err != nil {
		return nil, errors.Wrap(err, "unmarshalling ecdsa pub key")
	}

	return &Secp256k1PublicKey{*pub}, nil
}

type Secp256k1PublicKey struct {
	ecdsa.PublicKey
}

func (p *Secp256k1PublicKey) Bytes() ([]byte, error) {
	return ethCrypto.CompressPubkey(&p.PublicKey), nil
}

func (p *Secp256k1PublicKey) Verify(sig, msg []byte) (bool, error) {
	if len(sig) == secp256k1SigLen+1 {
		sig = sig[:secp256k1SigLen]
	}

	if len(sig) != secp256k1SigLen {
		return false, errors.New("invalid secp256k1 signature length")
	}

	return ethCrypto.VerifySignature(
		ethCrypto.FromECDSAPub(&p.PublicKey),
		ethCrypto.Keccak256(msg),
		sig,
	), nil
}

func ValidateEcdsaSecp256k1(vm VerificationMethod, signature []byte, msg []byte) (bool, error) {
	pkbytes, err := decodeMultibase(vm.PublicKeyMultibase)
	if err != nil {
		return false, errors.Wrap(err, "decoding multibase")
	}

	pub, err := NewSecp256k1PublicKey(pkbytes)
	if err != nil {
		return false, errors.Wrap(err, "unmarshalling public key")
	}

	return pub.Verify(signature, msg)
}
