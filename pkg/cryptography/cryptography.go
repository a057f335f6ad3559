package cryptography

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"

	"github.com/pkg/errors"
)

type VerificationMethodType string

var (
	ErrInvalidPublicKey         = errors.New("invalid public key")
	ErrInvalidPublicKeyLength   = errors.New("invalid public key length")
	ErrInvalidPublicKeyType     = errors.New("invalid public key type")
	ErrUnsupportedPublicKeyType = errors.New("unsupported public key type")
)

const (
	Bls12381G1Key2020                 VerificationMethodType = "Bls12381G1Key2020"
	Bls12381G2Key2020                 VerificationMethodType = "Bls12381G2Key2020"
	EcdsaSecp256k1RecoveryMethod2020  VerificationMethodType = "EcdsaSecp256k1RecoveryMethod2020"
	EcdsaSecp256k1VerificationKey2019 VerificationMethodType = "EcdsaSecp256k1VerificationKey2019"
	Ed25519VerificationKey2018        VerificationMethodType = "Ed25519VerificationKey2018"
	Ed25519VerificationKey2020        VerificationMethodType = "Ed25519VerificationKey2020"
	JsonWebKey2020                    VerificationMethodType = "JsonWebKey2020"
	PgpVerificationkey2021            VerificationMethodType = "PgpVerificationkey2021"
	RsaVerificationKey2018            VerificationMethodType = "RsaVerificationKey2018"
	Verificationcondition2021         VerificationMethodType = "Verificationcondition2021"
	X25519KeyAgreementKey2019         VerificationMethodType = "X25519KeyAgreementKey2019"
)

type VerificationMethod struct {
	ID                 string                 `json:"id" msgpack:"id"`
	Type               VerificationMethodType `json:"type" msgpack:"type"`
	Controller         string                 `json:"controller" msgpack:"controller"`
	PublicKeyJwk       map[string]interface{} `json:"publicKeyJwk,omitempty" msgpack:"jwk,omitempty"`
	PublicKeyMultibase string                 `json:"publicKeyMultibase,omitempty" msgpack:"mb,omitempty"`
}

type SignatureValidator func(vm VerificationMethod, sig []byte, msg []byte) (bool, error)

var (
	validators = map[VerificationMethodType]SignatureValidator{
		Ed25519VerificationKey2018:        ValidateEd25519,
		Ed25519VerificationKey2020:        ValidateEd25519,
		EcdsaSecp256k1VerificationKey2019: ValidateEcdsaSecp256k1,
		Bls12381G2Key2020:                 ValidateBls12381,
		JsonWebKey2020:                    ValidateJWK,
	}
)

// Supported reports whether signatures from methods of type t can be checked.
func Supported(t VerificationMethodType) bool {
	_, ok := validators[t]
	return ok
}

// Validate checks sig over msg against the key published in vm.
func Validate(vm VerificationMethod, sig []byte, msg []byte) (bool, error) {
	validator, ok := validators[vm.Type]
	if !ok {
		return false, errors.Wrapf(ErrUnsupportedPublicKeyType, "verification method type %s", vm.Type)
	}

	return validator(vm, sig, msg)
}

// Sign signs msg with any of the supported private key types. The digest
// applied (if any) is implied by the key type and mirrored by Validate.
func Sign(sk crypto.PrivateKey, msg []byte) ([]byte, error) {
	switch t := sk.(type) {
	case ed25519.PrivateKey:
		return ed25519.Sign(t, msg), nil
	case *Secp256k1PrivateKey:
		return t.Sign(rand.Reader, msg, nil)
	case *Bls12381PrivateKey:
		return t.Sign(nil, msg, nil)
	case *ecdsa.PrivateKey:
		return signP256(t, msg)
	default:
		return nil, errors.Errorf("unknown private key type: %T", t)
	}
}

// PublicKey returns the public half of a supported private key.
func PublicKey(sk crypto.PrivateKey) (crypto.PublicKey, error) {
	switch t := sk.(type) {
	case ed25519.PrivateKey:
		return t.Public(), nil
	case *Secp256k1PrivateKey:
		return t.Public(), nil
	case *Bls12381PrivateKey:
		return t.Public(), nil
	case *ecdsa.PrivateKey:
		return &t.PublicKey, nil
	default:
		return nil, errors.Errorf("unknown private key type: %T", t)
	}
}

// MethodType maps a public key to the verification method type it is published as.
func MethodType(pk crypto.PublicKey) (VerificationMethodType, error) {
	switch t := pk.(type) {
	case ed25519.PublicKey:
		return Ed25519VerificationKey2018, nil
	case *Secp256k1PublicKey:
		return EcdsaSecp256k1VerificationKey2019, nil
	case *Bls12381PublicKey:
		return Bls12381G2Key2020, nil
	case *ecdsa.PublicKey:
		if t.Curve != elliptic.P256() {
			return "", errors.Wrap(ErrUnsupportedPublicKeyType, "ecdsa curve")
		}
		return JsonWebKey2020, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedPublicKeyType, "%T", t)
	}
}

// NewVerificationMethod builds the DID document entry publishing pk.
func NewVerificationMethod(id, controller string, pk crypto.PublicKey) (VerificationMethod, error) {
	t, err := MethodType(pk)
	if err != nil {
		return VerificationMethod{}, err
	}

	vm := VerificationMethod{ID: id, Type: t, Controller: controller}

	if t == JsonWebKey2020 {
		vm.PublicKeyJwk, err = encodeJWK(pk)
	} else {
		vm.PublicKeyMultibase, err = EncodeMultibase(pk)
	}
	if err != nil {
		return VerificationMethod{}, errors.Wrap(err, "encoding public key")
	}

	return vm, nil
}
