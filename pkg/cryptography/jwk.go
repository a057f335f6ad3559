package cryptography

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"math/big"

	"github.com/pkg/errors"
	jose "gopkg.in/square/go-jose.v2"
)

const p256SigLen = 64

func NewP256PrivateKey() (*ecdsa.PrivateKey, error) {
	return ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
}

func encodeJWK(pk crypto.PublicKey) (map[string]interface{}, error) {
	b, err := json.Marshal(jose.JSONWebKey{Key: pk})
	if err != nil {
		return nil, errors.Wrap(err, "marshalling jwk")
	}

	m := map[string]interface{}{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}

	return m, nil
}

func decodeJWK(m map[string]interface{}) (crypto.PublicKey, error) {
	if len(m) == 0 {
		return nil, ErrInvalidPublicKey
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}

	var jwk jose.JSONWebKey
	if err := jwk.UnmarshalJSON(b); err != nil {
		return nil, errors.Wrap(err, "unmarshalling jwk")
	}

	if !jwk.IsPublic() {
		return nil, errors.Wrap(ErrInvalidPublicKeyType, "jwk holds private material")
	}

	return jwk.Key, nil
}

// ValidateJWK supports Ed25519 (OKP) and P-256 (EC) keys.
func ValidateJWK(vm VerificationMethod, sig []byte, msg []byte) (bool, error) {
	pk, err := decodeJWK(vm.PublicKeyJwk)
	if err != nil {
		return false, err
	}

	switch t := pk.(type) {
	case ed25519.PublicKey:
		return ed25519.Verify(t, msg, sig), nil
	case *ecdsa.PublicKey:
		if t.Curve != elliptic.P256() {
			return false, errors.Wrap(ErrUnsupportedPublicKeyType, "jwk curve")
		}
		return verifyP256(t, msg, sig), nil
	default:
		return false, errors.Wrapf(ErrUnsupportedPublicKeyType, "jwk key %T", t)
	}
}

// signP256 returns the fixed size r || s encoding used by JWS ES256.
func signP256(sk *ecdsa.PrivateKey, msg []byte) ([]byte, error) {
	h := sha256.Sum256(msg)

	r, s, err := ecdsa.Sign(rand.Reader, sk, h[:])
	if err != nil {
		return nil, errors.Wrap(err, "signing p256")
	}

	out := make([]byte, p256SigLen)
	r.FillBytes(out[:p256SigLen/2])
	s.FillBytes(out[p256SigLen/2:])

	return out, nil
}

func verifyP256(pk *ecdsa.PublicKey, msg []byte, sig []byte) bool {
	if len(sig) != p256SigLen {
		return false
	}

	h := sha256.Sum256(msg)
	r := new(big.Int).SetBytes(sig[:p256SigLen/2])
	s := new(big.Int).SetBytes(sig[p256SigLen/2:])

	return ecdsa.Verify(pk, h[:], r, s)
}
