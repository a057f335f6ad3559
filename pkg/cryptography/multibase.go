package cryptography

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"
	"github.com/pkg/errors"
)

// multicodec table entries for the public key types used by did:key
const (
	codecSecp256k1Pub  uint64 = 0xe7
	codecBls12381G2Pub uint64 = 0xeb
	codecEd25519Pub    uint64 = 0xed
	codecP256Pub       uint64 = 0x1200
)

func decodeMultibase(mb string) ([]byte, error) {
	_, d, err := multibase.Decode(mb)
	return d, err
}

// PublicKeyBytes returns the raw (compressed where applicable) key encoding.
func PublicKeyBytes(publicKey crypto.PublicKey) ([]byte, error) {
	switch t := publicKey.(type) {
	case ed25519.PublicKey:
		return []byte(t), nil
	case *Secp256k1PublicKey:
		return t.Bytes()
	case *Bls12381PublicKey:
		return t.Bytes()
	case *ecdsa.PublicKey:
		if t.Curve != elliptic.P256() {
			return nil, errors.Wrap(ErrUnsupportedPublicKeyType, "ecdsa curve")
		}
		return elliptic.MarshalCompressed(elliptic.P256(), t.X, t.Y), nil
	default:
		return nil, errors.Errorf("unsupported pk type: %T", t)
	}
}

func EncodeMultibase(publicKey crypto.PublicKey) (string, error) {
	raw, err := PublicKeyBytes(publicKey)
	if err != nil {
		return "", err
	}

	return multibase.Encode(multibase.Base58BTC, raw)
}

// EncodeMulticodec encodes a public key the way did:key identifiers carry it.
func EncodeMulticodec(publicKey crypto.PublicKey) (string, error) {
	var code uint64

	switch publicKey.(type) {
	case ed25519.PublicKey:
		code = codecEd25519Pub
	case *Secp256k1PublicKey:
		code = codecSecp256k1Pub
	case *Bls12381PublicKey:
		code = codecBls12381G2Pub
	case *ecdsa.PublicKey:
		code = codecP256Pub
	default:
		return "", errors.Errorf("unsupported pk type: %T", publicKey)
	}

	raw, err := PublicKeyBytes(publicKey)
	if err != nil {
		return "", err
	}

	buf := append(varint.ToUvarint(code), raw...)

	return multibase.Encode(multibase.Base58BTC, buf)
}

// DecodeMulticodec reverses EncodeMulticodec.
func DecodeMulticodec(mb string) (crypto.PublicKey, error) {
	d, err := decodeMultibase(mb)
	if err != nil {
		return nil, errors.Wrap(err, "decoding multibase")
	}

	code, n, err := varint.FromUvarint(d)
	if err != nil {
		return nil, errors.Wrap(err, "reading multicodec prefix")
	}
	raw := d[n:]

	switch code {
	case codecEd25519Pub:
		if len(raw) != ed25519.PublicKeySize {
			return nil, ErrInvalidPublicKeyLength
		}
		return ed25519.PublicKey(raw), nil
	case codecSecp256k1Pub:
		return NewSecp256k1PublicKey(raw)
	case codecBls12381G2Pub:
		return NewBls12381PublicKey(raw)
	case codecP256Pub:
		x, y := elliptic.UnmarshalCompressed(elliptic.P256(), raw)
		if x == nil {
			return nil, ErrInvalidPublicKey
		}
		return &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedPublicKeyType, "multicodec 0x%x", code)
	}
}
