package did

import (
	"context"
	"crypto"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/cryptography"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrNoKeys      = errors.New("signer has no usable keys")
)

// Signer is the signing capability of a DID holder. Software keys, hardware
// tokens and remote custodians all implement this interface.
type Signer interface {
	// ListKeyIDs returns the key ids the signer can sign with.
	ListKeyIDs(ctx context.Context) ([]KeyID, error)

	// SignWithKeyID signs data with the given key.
	SignWithKeyID(ctx context.Context, data []byte, keyID KeyID) ([]byte, error)

	// KeyInfo reports the algorithm and public key of a key.
	KeyInfo(ctx context.Context, keyID KeyID) (*KeyInfo, error)

	// DID returns the DID owning the signer's keys.
	DID(ctx context.Context) (string, error)
}

type KeyInfo struct {
	Type      cryptography.VerificationMethodType
	PublicKey crypto.PublicKey
}

// VerificationMethod renders the key as the DID document entry id.
func (k *KeyInfo) VerificationMethod(id KeyID) (cryptography.VerificationMethod, error) {
	return cryptography.NewVerificationMethod(id.String(), id.DID(), k.PublicKey)
}

// Account binds a Signer to its DID and a default key.
type Account struct {
	Signer

	did   string
	keyID KeyID
}

// NewAccount binds s to keyID. An empty keyID selects the first key s lists.
func NewAccount(ctx context.Context, s Signer, keyID KeyID) (*Account, error) {
	d, err := s.DID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting signer did")
	}

	if keyID == "" {
		ids, err := s.ListKeyIDs(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "listing signer keys")
		}
		if len(ids) == 0 {
			return nil, ErrNoKeys
		}
		keyID = ids[0]
	}

	if err := keyID.Validate(); err != nil {
		return nil, err
	}

	if keyID.DID() != d {
		return nil, errors.Errorf("key %s does not belong to %s", keyID, d)
	}

	return &Account{Signer: s, did: d, keyID: keyID}, nil
}

func (a *Account) DID(_ context.Context) (string, error) {
	return a.did, nil
}

// Address returns the bound DID without a context round trip.
func (a *Account) Address() string {
	return a.did
}

func (a *Account) KeyID() KeyID {
	return a.keyID
}

// Sign signs data with the account's default key.
func (a *Account) Sign(ctx context.Context, data []byte) ([]byte, error) {
	return a.Signer.SignWithKeyID(ctx, data, a.keyID)
}

type identityKind uint8

const (
	identityRaw identityKind = iota + 1
	identityWrapped
)

// Identity is either a raw Signer or an already bound Account. The variant is
// fixed at construction.
type Identity struct {
	kind    identityKind
	raw     Signer
	account *Account
}

func Raw(s Signer) Identity {
	return Identity{kind: identityRaw, raw: s}
}

func Wrapped(a *Account) Identity {
	return Identity{kind: identityWrapped, account: a}
}

// Account returns the bound account. A raw signer is bound to keyID; a
// wrapped account is returned as-is unless a different key is requested.
func (i Identity) Account(ctx context.Context, keyID KeyID) (*Account, error) {
	switch i.kind {
	case identityWrapped:
		if keyID == "" || keyID == i.account.keyID {
			return i.account, nil
		}
		return NewAccount(ctx, i.account.Signer, keyID)
	case identityRaw:
		return NewAccount(ctx, i.raw, keyID)
	default:
		return nil, errors.New("empty identity")
	}
}
