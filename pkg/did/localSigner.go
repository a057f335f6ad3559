package did

import (
	"context"
	"crypto"
	"crypto/ed25519"
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/cryptography"
	"github.com/tcfw/didpay/pkg/did/w3cdid"
)

var _ Signer = (*LocalSigner)(nil)

// LocalSigner holds software private keys for a single DID.
type LocalSigner struct {
	did string

	mu    sync.RWMutex
	keys  map[KeyID]crypto.PrivateKey
	order []KeyID
}

func NewLocalSigner(did string) *LocalSigner {
	return &LocalSigner{did: did, keys: make(map[KeyID]crypto.PrivateKey)}
}

// NewDIDKeySigner creates a did:key signer whose DID is derived from sk.
func NewDIDKeySigner(sk crypto.PrivateKey) (*LocalSigner, error) {
	pk, err := cryptography.PublicKey(sk)
	if err != nil {
		return nil, err
	}

	mc, err := cryptography.EncodeMulticodec(pk)
	if err != nil {
		return nil, errors.Wrap(err, "encoding did:key")
	}

	s := NewLocalSigner("did:key:" + mc)
	if _, err := s.AddKey(mc, sk); err != nil {
		return nil, err
	}

	return s, nil
}

func GenerateEd25519Signer(rand io.Reader) (*LocalSigner, error) {
	_, sk, err := ed25519.GenerateKey(rand)
	if err != nil {
		return nil, err
	}

	return NewDIDKeySigner(sk)
}

// AddKey registers sk under did#fragment.
func (s *LocalSigner) AddKey(fragment string, sk crypto.PrivateKey) (KeyID, error) {
	if _, err := cryptography.PublicKey(sk); err != nil {
		return "", err
	}

	id := NewKeyID(s.did, fragment)
	if err := id.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.keys[id]; !ok {
		s.order = append(s.order, id)
	}
	s.keys[id] = sk

	return id, nil
}

func (s *LocalSigner) PrivateKey(keyID KeyID) (crypto.PrivateKey, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sk, ok := s.keys[keyID]
	return sk, ok
}

func (s *LocalSigner) ListKeyIDs(_ context.Context) ([]KeyID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]KeyID, len(s.order))
	copy(ids, s.order)

	return ids, nil
}

func (s *LocalSigner) SignWithKeyID(_ context.Context, data []byte, keyID KeyID) ([]byte, error) {
	sk, ok := s.PrivateKey(keyID)
	if !ok {
		return nil, errors.Wrapf(ErrKeyNotFound, "%s", keyID)
	}

	return cryptography.Sign(sk, data)
}

func (s *LocalSigner) KeyInfo(_ context.Context, keyID KeyID) (*KeyInfo, error) {
	sk, ok := s.PrivateKey(keyID)
	if !ok {
		return nil, errors.Wrapf(ErrKeyNotFound, "%s", keyID)
	}

	pk, err := cryptography.PublicKey(sk)
	if err != nil {
		return nil, err
	}

	t, err := cryptography.MethodType(pk)
	if err != nil {
		return nil, err
	}

	return &KeyInfo{Type: t, PublicKey: pk}, nil
}

func (s *LocalSigner) DID(_ context.Context) (string, error) {
	return s.did, nil
}

// Document renders the DID document publishing every key for authentication
// and capability invocation.
func (s *LocalSigner) Document(ctx context.Context) (*w3cdid.Document, error) {
	ids, _ := s.ListKeyIDs(ctx)

	doc := &w3cdid.Document{
		Context: []string{w3cdid.ContextV1},
		ID:      s.did,
	}

	for _, id := range ids {
		info, err := s.KeyInfo(ctx, id)
		if err != nil {
			return nil, err
		}

		vm, err := info.VerificationMethod(id)
		if err != nil {
			return nil, errors.Wrapf(err, "building verification method %s", id)
		}

		doc.VerificationMethod = append(doc.VerificationMethod, vm)
		doc.Authentication = append(doc.Authentication, w3cdid.RefTo(vm.ID))
		doc.CapabilityInvocation = append(doc.CapabilityInvocation, w3cdid.RefTo(vm.ID))
	}

	return doc, nil
}
