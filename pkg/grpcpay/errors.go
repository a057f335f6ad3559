package grpcpay

import (
	"encoding/json"
	"net/http"

	"github.com/tcfw/didpay/pkg/payment"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus renders err as a status whose message is the JSON error body.
func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	body, httpStatus := payment.BodyFromError(err)

	b, merr := json.Marshal(body)
	if merr != nil {
		return status.Error(codes.Internal, body.Message)
	}

	return status.Error(grpcCode(httpStatus), string(b))
}

func grpcCode(httpStatus int) codes.Code {
	switch httpStatus {
	case http.StatusPaymentRequired:
		return codes.FailedPrecondition
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusConflict:
		return codes.Aborted
	case http.StatusNotFound:
		return codes.NotFound
	default:
		return codes.Internal
	}
}

func httpStatus(c codes.Code) int {
	switch c {
	case codes.FailedPrecondition:
		return http.StatusPaymentRequired
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Aborted:
		return http.StatusConflict
	case codes.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fromStatus maps a call error back onto the payment error taxonomy.
func fromStatus(op string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return &payment.TransportError{Op: op, Err: err}
	case codes.Canceled:
		return err
	}

	body := &payment.ErrorBody{}
	if jerr := json.Unmarshal([]byte(st.Message()), body); jerr == nil && body.Code != "" {
		return payment.ErrorFromBody(body, httpStatus(st.Code()))
	}

	return payment.NewServiceError(httpStatus(st.Code()), payment.CodeInternal, st.Message())
}
