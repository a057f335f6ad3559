package payer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/payment"
	"github.com/tcfw/didpay/pkg/subrav"
)

var ErrNothingToCommit = errors.New("no pending voucher to commit")

// Recover fetches the payee's view of the session and adopts it. Concurrent
// callers share one request and results are reused for the recovery
// interval, so at most one request is made per interval.
func (c *Client) Recover(ctx context.Context) (*payment.RecoveryResponse, error) {
	if ok, res, err := c.recentRecovery(); ok {
		return res, err
	}

	v, err := c.share(ctx, "recover", func(ctx context.Context) (interface{}, error) {
		if ok, res, err := c.recentRecovery(); ok {
			return res, err
		}

		res, err := c.service.Recover(ctx, c.authorize, c.recoveryRequest(ctx))

		c.mu.Lock()
		c.recoverAt = c.clock.Now()
		c.recoverRes, c.recoverErr = res, err
		c.mu.Unlock()

		if err != nil {
			return nil, err
		}

		return res, c.applyRecovery(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	return v.(*payment.RecoveryResponse), nil
}

// recoveryRequest names the known channel, or the channel the asset
// override would open.
func (c *Client) recoveryRequest(ctx context.Context) *payment.RecoveryRequest {
	if id := c.State().ChannelID; id != "" {
		return &payment.RecoveryRequest{ChannelID: id}
	}
	if c.assetID == "" {
		return &payment.RecoveryRequest{}
	}

	info, err := c.Discover(ctx)
	if err != nil {
		c.logger.WithError(err).Debug("recovering without discovery")
		return &payment.RecoveryRequest{}
	}

	return &payment.RecoveryRequest{ChannelID: subrav.DeriveChannelID(c.account.Address(), info.ServiceDID, c.assetID)}
}

func (c *Client) recentRecovery() (bool, *payment.RecoveryResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.recoverAt.IsZero() || c.clock.Since(c.recoverAt) >= c.recoveryInterval {
		return false, nil, nil
	}

	return true, c.recoverRes, c.recoverErr
}

func (c *Client) applyRecovery(ctx context.Context, res *payment.RecoveryResponse) error {
	if res == nil {
		return errors.New("empty recovery response")
	}

	c.mu.Lock()
	c.recovered = true
	c.mu.Unlock()

	return c.update(ctx, func(s *payment.State) {
		if res.Channel == nil {
			return
		}

		if s.ChannelID != res.Channel.ID {
			s.SubChannel = nil
		}
		ch := *res.Channel
		s.ChannelID = ch.ID
		s.Channel = &ch

		frag := c.account.KeyID().Fragment()
		s.KeyID = c.account.KeyID()
		s.VMIDFragment = frag
		if res.SubChannel != nil && res.SubChannel.VMIDFragment == frag {
			sub := *res.SubChannel
			s.SubChannel = &sub
		}

		s.Pending = nil
		if p := res.PendingSubRAV; p != nil && p.ChannelID == ch.ID && p.VMIDFragment == frag {
			pending := *p
			s.Pending = &pending
		}

		s.DropStalePending()
	})
}

// Commit signs the pending proposal and submits it as a settlement
// checkpoint. The pending slot is cleared once the payee accepts it.
func (c *Client) Commit(ctx context.Context) (*payment.CommitResponse, error) {
	release, err := c.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	st := c.State()
	if st.Pending == nil {
		return nil, ErrNothingToCommit
	}

	signed, err := c.signVoucher(ctx, st, *st.Pending)
	if err != nil {
		return nil, err
	}

	resp, err := c.service.Commit(ctx, c.authorize, &payment.CommitRequest{SignedSubRAV: *signed})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, errors.New("commit rejected")
	}

	c.logger.WithField("nonce", signed.SubRAV.Nonce).WithField("amount", signed.SubRAV.AccumulatedAmount).Info("voucher committed")

	err = c.update(ctx, func(s *payment.State) {
		if s.Pending != nil && s.Pending.Nonce.Cmp(signed.SubRAV.Nonce) <= 0 {
			s.Pending = nil
		}
	})

	return resp, err
}
