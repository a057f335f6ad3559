package payer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/didauth"
	"github.com/tcfw/didpay/pkg/payment"
	"github.com/tcfw/didpay/pkg/subrav"
	"go.uber.org/multierr"
)

// Request is what a transport binding puts on the wire for one attempt.
type Request struct {
	Authorization string
	Payment       *payment.RequestPayload
}

// SendFunc performs one attempt of a paid call. It returns the parsed
// payment response, or a typed error: *payment.PaymentRequiredError,
// *channel.StateError, *payment.TransportError or any other failure.
type SendFunc func(ctx context.Context, req *Request) (*payment.ResponsePayload, error)

// Do runs a paid call. The voucher owed from the previous call is signed and
// attached, and the proposal returned is kept for the next call.
func (c *Client) Do(ctx context.Context, op didauth.Operation, send SendFunc) (*payment.ResponsePayload, error) {
	release, err := c.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := c.EnsureReady(ctx); err != nil {
		return nil, err
	}

	txRef := uuid.NewString()
	logger := c.logger.WithField("clientTxRef", txRef).WithField("operation", op.Operation)

	var (
		expected         *subrav.SubRAV
		paymentRetried   bool
		stateRetried     bool
		transportRetried bool
		paymentRequired  *payment.PaymentRequiredError
		stateErr         *channel.StateError
		transportErr     *payment.TransportError
	)

	for {
		resp, err := c.attempt(ctx, op, txRef, expected, send)
		if err == nil {
			return resp, nil
		}

		switch {
		case errors.As(err, &paymentRequired):
			if paymentRetried {
				return nil, multierr.Append(payment.ErrPaymentRetryExhausted, err)
			}
			paymentRetried = true

			rav := paymentRequired.SubRAV
			expected = &rav
			logger.WithField("nonce", rav.Nonce).Debug("payment required, signing expected voucher")

		case errors.As(err, &stateErr):
			if stateRetried {
				return nil, err
			}
			stateRetried = true

			logger.WithError(err).Info("channel state changed, re-establishing")

			if ierr := c.invalidate(ctx); ierr != nil {
				return nil, ierr
			}
			if rerr := c.EnsureReady(ctx); rerr != nil {
				return nil, multierr.Append(err, rerr)
			}
			expected = nil

		case errors.As(err, &transportErr):
			if transportRetried {
				return nil, err
			}
			transportRetried = true

			delay := c.retry.ForAttempt(0)
			logger.WithError(err).WithField("delay", delay).Debug("transport failure, retrying")

			if werr := c.sleep(ctx, delay); werr != nil {
				return nil, multierr.Append(err, werr)
			}

		default:
			return nil, err
		}
	}
}

func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	t := c.clock.Timer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) attempt(ctx context.Context, op didauth.Operation, txRef string, expected *subrav.SubRAV, send SendFunc) (*payment.ResponsePayload, error) {
	st := c.State()

	owed := expected
	if owed == nil {
		owed = st.Pending
	}

	var signed *subrav.SignedSubRAV
	if owed != nil {
		var err error
		signed, err = c.signVoucher(ctx, st, *owed)
		if err != nil {
			return nil, err
		}
	}

	auth, err := c.authHeader(ctx, op.Operation, op.Params)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Authorization: auth,
		Payment: &payment.RequestPayload{
			Version:      payment.ProtocolVersion,
			ClientTxRef:  txRef,
			ChannelID:    st.ChannelID,
			SignedSubRAV: signed,
			MaxAmount:    c.maxAmount,
		},
	}

	resp, err := send(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp != nil && resp.ClientTxRef != "" && resp.ClientTxRef != txRef {
		return nil, &payment.TransportError{Op: "call", Err: errors.Errorf("response for %s, sent %s", resp.ClientTxRef, txRef)}
	}

	if err := c.applyResponse(ctx, signed, resp); err != nil {
		return nil, errors.Wrap(err, "storing proposal")
	}

	return resp, nil
}

func (c *Client) authHeader(ctx context.Context, operation string, params map[string]interface{}) (string, error) {
	so, err := didauth.CreateSignature(ctx, didauth.Operation{Operation: operation, Params: params}, c.account, c.account.KeyID(), didauth.WithClock(c.clock))
	if err != nil {
		return "", err
	}

	return didauth.ToAuthorizationHeader(so)
}

// signVoucher signs rav unless that would regress the newest voucher already
// signed for the sub-channel. Re-signing the same voucher returns the
// earlier signature.
func (c *Client) signVoucher(ctx context.Context, st *payment.State, rav subrav.SubRAV) (*subrav.SignedSubRAV, error) {
	if st.Channel == nil || rav.ChannelID != st.ChannelID || rav.VMIDFragment != st.VMIDFragment ||
		rav.ChannelEpoch.Cmp(st.Channel.Epoch) != 0 {
		return nil, &subrav.VoucherError{Kind: subrav.KindChannelMismatch, Err: errors.Errorf("proposal for %s/%s", rav.ChannelID, rav.VMIDFragment)}
	}

	var base subrav.BigInt
	if st.SubChannel != nil {
		base = st.SubChannel.LastAcceptedAmount
	}

	if last := st.LastSigned; last != nil && last.SubRAV.SameSubChannel(rav) {
		switch last.SubRAV.Nonce.Cmp(rav.Nonce) {
		case 0:
			if last.SubRAV.Equal(rav) {
				return last, nil
			}
			return nil, &subrav.VoucherError{Kind: subrav.KindStaleNonce, Err: errors.Errorf("nonce %s already signed for another amount", rav.Nonce)}
		case 1:
			return nil, &subrav.VoucherError{Kind: subrav.KindStaleNonce, Err: errors.Errorf("nonce %s after signed %s", rav.Nonce, last.SubRAV.Nonce)}
		}

		if rav.AccumulatedAmount.Cmp(last.SubRAV.AccumulatedAmount) < 0 {
			return nil, &subrav.VoucherError{Kind: subrav.KindAmountDecreased, Err: errors.Errorf("amount %s below signed %s", rav.AccumulatedAmount, last.SubRAV.AccumulatedAmount)}
		}
		base = last.SubRAV.AccumulatedAmount
	}

	if c.maxAmount != nil {
		if delta, err := rav.AccumulatedAmount.Sub(base); err == nil && delta.Cmp(*c.maxAmount) > 0 {
			return nil, errors.Wrapf(payment.ErrMaxAmountExceeded, "delta %s over %s", delta, c.maxAmount)
		}
	}

	signed, err := subrav.Sign(ctx, rav, c.account, c.account.KeyID())
	if err != nil {
		return nil, err
	}

	if err := c.update(ctx, func(s *payment.State) {
		s.LastSigned = signed
	}); err != nil {
		return nil, err
	}

	return signed, nil
}

// applyResponse commits the outcome of a successful attempt. The proposal is
// kept in memory even when persisting it fails.
func (c *Client) applyResponse(ctx context.Context, signed *subrav.SignedSubRAV, resp *payment.ResponsePayload) error {
	return c.update(ctx, func(s *payment.State) {
		if signed != nil && s.Pending != nil && s.Pending.Nonce.Cmp(signed.SubRAV.Nonce) <= 0 {
			s.Pending = nil
		}

		if resp == nil || resp.SubRAV == nil {
			return
		}

		p := *resp.SubRAV
		if s.Channel == nil || p.ChannelID != s.ChannelID || p.VMIDFragment != s.VMIDFragment {
			c.logger.WithField("channel", p.ChannelID).Warn("ignoring proposal for another sub-channel")
			return
		}
		if signed != nil && p.Nonce.Cmp(signed.SubRAV.Nonce) <= 0 {
			c.logger.WithField("nonce", p.Nonce).Warn("ignoring proposal not newer than the signed voucher")
			return
		}

		s.Pending = &p
	})
}
