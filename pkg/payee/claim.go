package payee

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/subrav"
	"go.uber.org/multierr"
)

// Claim redeems the last accepted voucher of a sub-channel on the ledger.
// A nil receipt means nothing was owed.
func (p *Processor) Claim(ctx context.Context, channelID, vmIDFragment string) (*channel.ClaimReceipt, error) {
	release, err := p.locks.Lock(ctx, subChannelKey(channelID, vmIDFragment))
	if err != nil {
		return nil, err
	}
	defer release()

	st, err := p.store.Get(ctx, channelID, vmIDFragment)
	if err != nil {
		return nil, err
	}

	return p.claim(ctx, st)
}

func (p *Processor) claim(ctx context.Context, st *SubChannelState) (*channel.ClaimReceipt, error) {
	if st.LastAccepted == nil || st.Unclaimed().IsZero() {
		return nil, nil
	}

	receipt, err := p.ledger.Claim(ctx, st.LastAccepted)
	if err != nil {
		return nil, errors.Wrapf(err, "claiming %s#%s", st.ChannelID, st.VMIDFragment)
	}

	st.Claimed = st.LastAccepted.SubRAV.AccumulatedAmount
	if err := p.store.Put(ctx, st); err != nil {
		return receipt, errors.Wrap(err, "storing claim")
	}

	p.logger.
		WithField("channel", st.ChannelID).
		WithField("fragment", st.VMIDFragment).
		WithField("claimed", receipt.Claimed).
		Info("claimed voucher")

	return receipt, nil
}

// ClaimAll claims every sub-channel with at least minAmount unclaimed.
// Failures do not stop the remaining claims.
func (p *Processor) ClaimAll(ctx context.Context, minAmount subrav.BigInt) ([]*channel.ClaimReceipt, error) {
	states, err := p.store.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing sub-channels")
	}

	var (
		receipts []*channel.ClaimReceipt
		errs     error
	)

	for _, st := range states {
		if st.LastAccepted == nil || st.Unclaimed().IsZero() || st.Unclaimed().Cmp(minAmount) < 0 {
			continue
		}

		r, err := p.Claim(ctx, st.ChannelID, st.VMIDFragment)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if r != nil {
			receipts = append(receipts, r)
		}
	}

	return receipts, errs
}

// ClaimScheduler periodically claims sub-channels whose unclaimed amount
// reached a threshold.
type ClaimScheduler struct {
	p         *Processor
	interval  time.Duration
	minAmount subrav.BigInt
	clock     clock.Clock
}

type SchedulerOption func(*ClaimScheduler)

func WithSchedulerClock(c clock.Clock) SchedulerOption {
	return func(s *ClaimScheduler) {
		s.clock = c
	}
}

func NewClaimScheduler(p *Processor, interval time.Duration, minAmount subrav.BigInt, opts ...SchedulerOption) *ClaimScheduler {
	s := &ClaimScheduler{p: p, interval: interval, minAmount: minAmount, clock: clock.New()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run claims on every tick until ctx is done.
func (s *ClaimScheduler) Run(ctx context.Context) error {
	t := s.clock.Ticker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			receipts, err := s.p.ClaimAll(ctx, s.minAmount)
			if err != nil {
				s.p.logger.WithError(err).Warn("claiming sub-channels")
			}
			if len(receipts) > 0 {
				s.p.logger.WithField("count", len(receipts)).Debug("claim round finished")
			}
		}
	}
}
