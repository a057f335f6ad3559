package subrav

import "fmt"

type VoucherErrorKind uint8

const (
	KindStaleNonce VoucherErrorKind = iota + 1
	KindAmountDecreased
	KindAmountUnjustified
	KindBadSignature
	KindChannelMismatch
)

func (k VoucherErrorKind) String() string {
	switch k {
	case KindStaleNonce:
		return "stale nonce"
	case KindAmountDecreased:
		return "amount decreased"
	case KindAmountUnjustified:
		return "amount unjustified"
	case KindBadSignature:
		return "bad signature"
	case KindChannelMismatch:
		return "channel mismatch"
	default:
		return "unknown"
	}
}

// VoucherError rejects a voucher. Errors compare equal under errors.Is when
// their kinds match.
type VoucherError struct {
	Kind VoucherErrorKind
	Err  error
}

var (
	ErrStaleNonce        = &VoucherError{Kind: KindStaleNonce}
	ErrAmountDecreased   = &VoucherError{Kind: KindAmountDecreased}
	ErrAmountUnjustified = &VoucherError{Kind: KindAmountUnjustified}
	ErrBadSignature      = &VoucherError{Kind: KindBadSignature}
	ErrChannelMismatch   = &VoucherError{Kind: KindChannelMismatch}
)

func newVoucherError(kind VoucherErrorKind, err error) *VoucherError {
	return &VoucherError{Kind: kind, Err: err}
}

func (e *VoucherError) Error() string {
	if e.Err == nil {
		return "subrav: " + e.Kind.String()
	}

	return fmt.Sprintf("subrav: %s: %s", e.Kind, e.Err)
}

func (e *VoucherError) Unwrap() error {
	return e.Err
}

func (e *VoucherError) Is(target error) bool {
	t, ok := target.(*VoucherError)
	return ok && t.Kind == e.Kind
}
