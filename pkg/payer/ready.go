package payer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/payment"
)

type Phase uint8

const (
	PhaseUninitialized Phase = iota
	PhaseDiscovering
	PhaseChannelMissing
	PhaseChannelOpening
	PhaseSubChannelUnauthorized
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseDiscovering:
		return "discovering"
	case PhaseChannelMissing:
		return "channel missing"
	case PhaseChannelOpening:
		return "channel opening"
	case PhaseSubChannelUnauthorized:
		return "sub-channel unauthorized"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Phase reports where the session is in the ensure-ready sequence and the
// reason of the last failure, if any.
func (c *Client) Phase() (Phase, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.phase, c.failure
}

func (c *Client) setPhase(p Phase) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.phase = p
	if p != PhaseFailed {
		c.failure = nil
	}
}

func (c *Client) fail(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.phase = PhaseFailed
	c.failure = err
	c.logger.WithError(err).Warn("channel not ready")

	return err
}

// EnsureReady makes sure an open channel with an authorized sub-channel for
// the payer's key exists. Concurrent callers share one in-flight attempt.
func (c *Client) EnsureReady(ctx context.Context) error {
	c.mu.Lock()
	ready := c.verified && c.state.Ready()
	c.mu.Unlock()

	if ready {
		return nil
	}

	_, err := c.share(ctx, "ready", func(ctx context.Context) (interface{}, error) {
		return nil, c.ensureReady(ctx)
	})

	return err
}

// invalidate forces the next EnsureReady to check the ledger again.
func (c *Client) invalidate(ctx context.Context) error {
	c.mu.Lock()
	c.verified = false
	c.mu.Unlock()

	return c.update(ctx, func(s *payment.State) {
		s.ClearChannel()
	})
}

func (c *Client) ensureReady(ctx context.Context) error {
	c.setPhase(PhaseDiscovering)

	acct := c.account
	keyID := acct.KeyID()

	info, err := acct.KeyInfo(ctx, keyID)
	if err != nil {
		return c.fail(errors.Wrap(err, "payer key is not usable"))
	}

	st := c.State()
	if st.KeyID != keyID {
		st.KeyID = keyID
		st.VMIDFragment = keyID.Fragment()
		st.SubChannel = nil
	}

	c.mu.Lock()
	recovered := c.recovered
	c.mu.Unlock()

	if st.ChannelID == "" && !recovered {
		if _, err := c.Recover(ctx); err != nil {
			c.logger.WithError(err).Debug("recovery before first call")
		}
		rec := c.State()
		st.ChannelID, st.Channel, st.SubChannel, st.Pending = rec.ChannelID, rec.Channel, rec.SubChannel, rec.Pending
	}

	if st.ChannelID != "" {
		ch, err := c.ledger.GetChannelStatus(ctx, st.ChannelID)
		switch {
		case errors.Is(err, channel.ErrChannelNotFound):
			st.ClearChannel()
		case err != nil:
			return c.fail(errors.Wrap(err, "querying channel status"))
		case ch.Status != channel.StatusOpen:
			st.ClearChannel()
		default:
			if st.Channel != nil && st.Channel.Epoch.Cmp(ch.Epoch) != 0 {
				st.SubChannel = nil
			}
			st.Channel = ch
		}
	}

	if st.ChannelID == "" {
		c.setPhase(PhaseChannelMissing)

		svc, err := c.Discover(ctx)
		if err != nil {
			return c.fail(errors.Wrap(err, "discovering service"))
		}

		asset := c.assetID
		if asset == "" {
			asset = svc.DefaultAssetID
		}

		c.setPhase(PhaseChannelOpening)

		ch, err := c.ledger.OpenChannel(ctx, acct.Address(), svc.ServiceDID, asset)
		if err != nil {
			return c.fail(errors.Wrap(err, "opening channel"))
		}

		c.logger.WithField("channel", ch.ID).WithField("epoch", ch.Epoch).Info("channel opened")

		st.ChannelID = ch.ID
		st.Channel = ch
		st.SubChannel = nil
	}

	if st.SubChannel == nil || !st.SubChannel.Authorized || st.SubChannel.VMIDFragment != st.VMIDFragment ||
		st.SubChannel.Epoch.Cmp(st.Channel.Epoch) != 0 {
		c.setPhase(PhaseSubChannelUnauthorized)

		sub, err := c.ledger.GetSubChannel(ctx, st.ChannelID, st.VMIDFragment)
		if errors.Is(err, channel.ErrSubChannelNotFound) || (err == nil && !sub.Authorized) {
			vm, verr := info.VerificationMethod(keyID)
			if verr != nil {
				return c.fail(errors.Wrap(verr, "building verification method"))
			}

			sub, err = c.ledger.AuthorizeSubChannel(ctx, st.ChannelID, vm)
			if err == nil {
				c.logger.WithField("channel", st.ChannelID).WithField("fragment", st.VMIDFragment).Info("sub-channel authorized")
			}
		}
		if err != nil {
			return c.fail(errors.Wrap(err, "authorizing sub-channel"))
		}

		st.SubChannel = sub
	}

	err = c.update(ctx, func(s *payment.State) {
		s.KeyID = st.KeyID
		s.VMIDFragment = st.VMIDFragment
		s.ChannelID = st.ChannelID
		s.Channel = st.Channel
		s.SubChannel = st.SubChannel
		s.DropStalePending()
	})
	if err != nil {
		return c.fail(err)
	}

	c.mu.Lock()
	c.verified = true
	c.recovered = true
	c.mu.Unlock()

	c.setPhase(PhaseReady)

	return nil
}

// Discover returns the cached service metadata, fetching it once.
func (c *Client) Discover(ctx context.Context) (*payment.ServiceInfo, error) {
	c.mu.Lock()
	info := c.info
	c.mu.Unlock()

	if info != nil {
		return info, nil
	}

	return c.RefreshDiscovery(ctx)
}

// RefreshDiscovery fetches the service metadata again.
func (c *Client) RefreshDiscovery(ctx context.Context) (*payment.ServiceInfo, error) {
	v, err := c.share(ctx, "discover", func(ctx context.Context) (interface{}, error) {
		info, err := c.service.Discover(ctx)
		if err != nil {
			return nil, err
		}
		if info.ServiceDID == "" {
			return nil, errors.New("service did missing from discovery")
		}

		c.mu.Lock()
		c.info = info
		c.mu.Unlock()

		return info, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*payment.ServiceInfo), nil
}
