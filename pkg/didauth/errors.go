package didauth

import (
	"fmt"

	"github.com/tcfw/didpay/pkg/did"
)

type AuthErrorKind uint8

const (
	KindMalformedHeader AuthErrorKind = iota + 1
	KindUnknownKey
	KindKeyNotAuthorized
	KindSignatureMismatch
	KindDIDUnresolved
	KindReplayed
	KindOperationMismatch
)

func (k AuthErrorKind) String() string {
	switch k {
	case KindMalformedHeader:
		return "malformed header"
	case KindUnknownKey:
		return "unknown key"
	case KindKeyNotAuthorized:
		return "key not authorized"
	case KindSignatureMismatch:
		return "signature mismatch"
	case KindDIDUnresolved:
		return "did unresolved"
	case KindReplayed:
		return "replayed"
	case KindOperationMismatch:
		return "operation mismatch"
	default:
		return "unknown"
	}
}

// AuthError is returned for every rejected authorization. Errors compare
// equal under errors.Is when their kinds match.
type AuthError struct {
	Kind AuthErrorKind
	Err  error
}

var (
	ErrMalformedHeader   = &AuthError{Kind: KindMalformedHeader}
	ErrUnknownKey        = &AuthError{Kind: KindUnknownKey}
	ErrKeyNotAuthorized  = &AuthError{Kind: KindKeyNotAuthorized}
	ErrSignatureMismatch = &AuthError{Kind: KindSignatureMismatch}
	ErrDIDUnresolved     = &AuthError{Kind: KindDIDUnresolved}
	ErrReplayed          = &AuthError{Kind: KindReplayed}
	ErrOperationMismatch = &AuthError{Kind: KindOperationMismatch}
)

func newAuthError(kind AuthErrorKind, err error) *AuthError {
	return &AuthError{Kind: kind, Err: err}
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return "didauth: " + e.Kind.String()
	}

	return fmt.Sprintf("didauth: %s: %s", e.Kind, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Kind == e.Kind
}

// SignerError reports a key that could not produce a signature.
type SignerError struct {
	KeyID did.KeyID
	Err   error
}

func (e *SignerError) Error() string {
	return fmt.Sprintf("didauth: signing with %s: %s", e.KeyID, e.Err)
}

func (e *SignerError) Unwrap() error {
	return e.Err
}
