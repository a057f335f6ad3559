package payee

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/subrav"
)

var ErrStateNotFound = errors.New("sub-channel state not found")

// SubChannelState is the payee's bookkeeping for one sub-channel.
type SubChannelState struct {
	ChannelID    string               `json:"channelId" msgpack:"ch"`
	VMIDFragment string               `json:"vmIdFragment" msgpack:"frag"`
	PayerDID     string               `json:"payerDid" msgpack:"payer"`
	Epoch        subrav.BigInt        `json:"epoch" msgpack:"epoch"`
	LastNonce    subrav.BigInt        `json:"lastNonce" msgpack:"n"`
	LastAmount   subrav.BigInt        `json:"lastAmount" msgpack:"amt"`
	LastAccepted *subrav.SignedSubRAV `json:"lastAccepted,omitempty" msgpack:"last,omitempty"`
	Pending      *subrav.SubRAV       `json:"pendingSubRav,omitempty" msgpack:"pending,omitempty"`
	Claimed      subrav.BigInt        `json:"claimed" msgpack:"claimed"`
}

// Unclaimed is the accepted amount not yet redeemed on the ledger.
func (s *SubChannelState) Unclaimed() subrav.BigInt {
	d, err := s.LastAmount.Sub(s.Claimed)
	if err != nil {
		return subrav.BigInt{}
	}

	return d
}

// unpaid returns the proposal the payer still owes a voucher for.
func (s *SubChannelState) unpaid() *subrav.SubRAV {
	if s.Pending == nil || s.Pending.Nonce.Cmp(s.LastNonce) <= 0 {
		return nil
	}

	return s.Pending
}

func (s *SubChannelState) clone() *SubChannelState {
	c := *s
	if s.LastAccepted != nil {
		la := *s.LastAccepted
		la.Signature = append([]byte(nil), s.LastAccepted.Signature...)
		c.LastAccepted = &la
	}
	if s.Pending != nil {
		p := *s.Pending
		c.Pending = &p
	}

	return &c
}

// Store persists sub-channel bookkeeping.
type Store interface {
	Get(ctx context.Context, channelID, vmIDFragment string) (*SubChannelState, error)
	Put(ctx context.Context, s *SubChannelState) error
	List(ctx context.Context) ([]*SubChannelState, error)
}

var _ Store = (*MemStore)(nil)

type MemStore struct {
	mu     sync.RWMutex
	states map[string]*SubChannelState
}

func NewMemStore() *MemStore {
	return &MemStore{states: make(map[string]*SubChannelState)}
}

func subChannelKey(channelID, vmIDFragment string) string {
	return channelID + "#" + vmIDFragment
}

func (m *MemStore) Get(_ context.Context, channelID, vmIDFragment string) (*SubChannelState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.states[subChannelKey(channelID, vmIDFragment)]
	if !ok {
		return nil, ErrStateNotFound
	}

	return s.clone(), nil
}

func (m *MemStore) Put(_ context.Context, s *SubChannelState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[subChannelKey(s.ChannelID, s.VMIDFragment)] = s.clone()
	return nil
}

func (m *MemStore) List(_ context.Context) ([]*SubChannelState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*SubChannelState, 0, len(m.states))
	for _, s := range m.states {
		out = append(out, s.clone())
	}

	sort.Slice(out, func(i, j int) bool {
		return subChannelKey(out[i].ChannelID, out[i].VMIDFragment) < subChannelKey(out[j].ChannelID, out[j].VMIDFragment)
	})

	return out, nil
}
