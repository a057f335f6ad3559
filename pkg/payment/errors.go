package payment

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/didauth"
	"github.com/tcfw/didpay/pkg/subrav"
)

// Wire error codes.
const (
	CodePaymentRequired = "PAYMENT_REQUIRED"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeInvalidPayment  = "INVALID_PAYMENT"
	CodeChannelState    = "CHANNEL_STATE"
	CodeBadRequest      = "BAD_REQUEST"
	CodeNotFound        = "NOT_FOUND"
	CodeInternal        = "INTERNAL_ERROR"
)

var (
	ErrPaymentRetryExhausted = errors.New("payment required after signing the expected voucher")
	ErrMaxAmountExceeded     = errors.New("proposal exceeds the per call maximum")
)

// ErrorBody is the structured rejection every transport carries.
type ErrorBody struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Reason    string         `json:"reason,omitempty"`
	ChannelID string         `json:"channelId,omitempty"`
	SubRAV    *subrav.SubRAV `json:"subRav,omitempty"`
}

// PaymentRequiredError asks the payer to sign SubRAV and retry.
type PaymentRequiredError struct {
	SubRAV  subrav.SubRAV
	Message string
}

func (e *PaymentRequiredError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("payment required: nonce %s amount %s", e.SubRAV.Nonce, e.SubRAV.AccumulatedAmount)
	}

	return "payment required: " + e.Message
}

// TransportError wraps network failures and unreadable responses.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError is any other coded failure returned by a payee.
type ServiceError struct {
	Code    string
	Message string
	Status  int
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewServiceError(status int, code, message string) *ServiceError {
	return &ServiceError{Status: status, Code: code, Message: message}
}

// BodyFromError maps an error to its wire body and HTTP status.
func BodyFromError(err error) (*ErrorBody, int) {
	var (
		pr  *PaymentRequiredError
		ae  *didauth.AuthError
		ve  *subrav.VoucherError
		se  *channel.StateError
		sve *ServiceError
	)

	switch {
	case errors.As(err, &pr):
		rav := pr.SubRAV
		return &ErrorBody{Code: CodePaymentRequired, Message: pr.Error(), SubRAV: &rav}, http.StatusPaymentRequired
	case errors.As(err, &ae):
		return &ErrorBody{Code: CodeUnauthorized, Message: ae.Error(), Reason: ae.Kind.String()}, http.StatusUnauthorized
	case errors.As(err, &ve):
		return &ErrorBody{Code: CodeInvalidPayment, Message: ve.Error(), Reason: ve.Kind.String()}, http.StatusBadRequest
	case errors.As(err, &se):
		return &ErrorBody{Code: CodeChannelState, Message: se.Error(), Reason: se.Kind.String(), ChannelID: se.ChannelID}, http.StatusConflict
	case errors.As(err, &sve):
		status := sve.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return &ErrorBody{Code: sve.Code, Message: sve.Message}, status
	default:
		return &ErrorBody{Code: CodeInternal, Message: "internal error"}, http.StatusInternalServerError
	}
}

// ErrorFromBody reconstructs the typed error a payee reported.
func ErrorFromBody(b *ErrorBody, status int) error {
	switch b.Code {
	case CodePaymentRequired:
		if b.SubRAV == nil {
			return &ServiceError{Code: b.Code, Message: "payment required without a voucher", Status: status}
		}
		return &PaymentRequiredError{SubRAV: *b.SubRAV, Message: b.Message}
	case CodeUnauthorized:
		return &didauth.AuthError{Kind: authKind(b.Reason), Err: errors.New(b.Message)}
	case CodeInvalidPayment:
		return &subrav.VoucherError{Kind: voucherKind(b.Reason), Err: errors.New(b.Message)}
	case CodeChannelState:
		return channel.NewStateError(stateKind(b.Reason), b.ChannelID)
	default:
		return &ServiceError{Code: b.Code, Message: b.Message, Status: status}
	}
}

func authKind(reason string) didauth.AuthErrorKind {
	for k := didauth.KindMalformedHeader; k <= didauth.KindOperationMismatch; k++ {
		if k.String() == reason {
			return k
		}
	}

	return didauth.KindMalformedHeader
}

func voucherKind(reason string) subrav.VoucherErrorKind {
	for k := subrav.KindStaleNonce; k <= subrav.KindChannelMismatch; k++ {
		if k.String() == reason {
			return k
		}
	}

	return subrav.KindBadSignature
}

func stateKind(reason string) channel.StateErrorKind {
	for k := channel.StateChannelMissing; k <= channel.StateEpochMismatch; k++ {
		if k.String() == reason {
			return k
		}
	}

	return channel.StateChannelMissing
}

// IsRetryable reports whether the payer protocol recovers from err on its own.
func IsRetryable(err error) bool {
	var (
		pr *PaymentRequiredError
		se *channel.StateError
		te *TransportError
	)

	return errors.As(err, &pr) || errors.As(err, &se) || errors.As(err, &te)
}
