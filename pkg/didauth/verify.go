package didauth

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"github.com/tcfw/didpay/internal/utils/logging"
	"github.com/tcfw/didpay/pkg/cryptography"
	"github.com/tcfw/didpay/pkg/did"
)

// VerifyAuthHeader checks header against the signer's resolved DID document.
// It applies no replay protection: nonce and timestamp are returned to the
// caller untouched. Endpoints wanting replay protection use a Verifier.
func VerifyAuthHeader(ctx context.Context, header string, resolver did.Resolver) (*SignedObject, error) {
	so, err := ParseAuthorizationHeader(header)
	if err != nil {
		return nil, err
	}

	if err := verifySignedObject(ctx, so, resolver); err != nil {
		return nil, err
	}

	return so, nil
}

func verifySignedObject(ctx context.Context, so *SignedObject, resolver did.Resolver) error {
	keyID := so.Signature.KeyID

	doc, err := resolver.ResolveDID(ctx, so.Signature.SignerDID)
	if err != nil {
		return newAuthError(KindDIDUnresolved, err)
	}

	vm, ok := doc.FindVerificationMethod(string(keyID))
	if !ok {
		return newAuthError(KindUnknownKey, errors.Errorf("%s not in document", keyID))
	}

	if !doc.IsAuthentication(string(keyID)) {
		return newAuthError(KindKeyNotAuthorized, errors.Errorf("%s not listed under authentication", keyID))
	}

	if vm.Controller != so.Signature.SignerDID {
		return newAuthError(KindKeyNotAuthorized, errors.Errorf("%s is controlled by %s", keyID, vm.Controller))
	}

	if !cryptography.Supported(vm.Type) {
		return newAuthError(KindUnknownKey, errors.Errorf("unsupported verification method type %s", vm.Type))
	}

	msg, err := CanonicalBytes(&so.SignedData)
	if err != nil {
		return newAuthError(KindMalformedHeader, err)
	}

	valid, err := cryptography.Validate(*vm, so.Signature.Value, msg)
	if err != nil {
		logging.Entry().WithField("type", vm.Type).WithError(err).Debug("validating signature")
		return newAuthError(KindSignatureMismatch, err)
	}
	if !valid {
		return newAuthError(KindSignatureMismatch, nil)
	}

	return nil
}

const (
	DefaultReplayWindow    = 5 * time.Minute
	DefaultReplayCacheSize = 100000
)

// Verifier verifies authorization headers and accepts each (signer, nonce)
// pair once. Timestamps further than the window from now, in either
// direction, are rejected, so a nonce only has to be remembered for twice
// the window.
type Verifier struct {
	resolver did.Resolver
	window   time.Duration
	clock    clock.Clock
	size     int

	mu   sync.Mutex
	seen *expirable.LRU[string, struct{}]
}

type VerifierOption func(*Verifier) error

func WithReplayWindow(w time.Duration) VerifierOption {
	return func(v *Verifier) error {
		if w <= 0 {
			return errors.New("replay window must be positive")
		}
		v.window = w
		return nil
	}
}

func WithReplayCacheSize(n int) VerifierOption {
	return func(v *Verifier) error {
		if n <= 0 {
			return errors.New("replay cache size must be positive")
		}
		v.size = n
		return nil
	}
}

func WithVerifierClock(c clock.Clock) VerifierOption {
	return func(v *Verifier) error {
		v.clock = c
		return nil
	}
}

func NewVerifier(resolver did.Resolver, opts ...VerifierOption) (*Verifier, error) {
	v := &Verifier{
		resolver: resolver,
		window:   DefaultReplayWindow,
		clock:    clock.New(),
		size:     DefaultReplayCacheSize,
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, errors.Wrap(err, "applying option")
		}
	}

	v.seen = expirable.NewLRU[string, struct{}](v.size, nil, 2*v.window)

	return v, nil
}

// Verify is VerifyAuthHeader plus the replay window check.
func (v *Verifier) Verify(ctx context.Context, header string) (*SignedObject, error) {
	so, err := ParseAuthorizationHeader(header)
	if err != nil {
		return nil, err
	}

	if err := verifySignedObject(ctx, so, v.resolver); err != nil {
		return nil, err
	}

	skew := v.clock.Now().Sub(so.Time())
	if skew > v.window || skew < -v.window {
		return nil, newAuthError(KindReplayed, errors.Errorf("timestamp outside %s window", v.window))
	}

	key := so.Signature.SignerDID + "|" + so.SignedData.Nonce

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.seen.Contains(key) {
		return nil, newAuthError(KindReplayed, errors.New("nonce already used"))
	}
	v.seen.Add(key, struct{}{})

	return so, nil
}

// VerifyOperation is Verify with the signed operation pinned to op.
func (v *Verifier) VerifyOperation(ctx context.Context, header string, op string) (*SignedObject, error) {
	so, err := v.Verify(ctx, header)
	if err != nil {
		return nil, err
	}

	if so.SignedData.Operation != op {
		return nil, newAuthError(KindOperationMismatch, errors.Errorf("signed %q, called %q", so.SignedData.Operation, op))
	}

	return so, nil
}
