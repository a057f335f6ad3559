package payment

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/tcfw/didpay/pkg/subrav"
)

var ErrStateNotFound = errors.New("payment state not found")

// State is the payer's view of one session.
type State struct {
	ChannelID    string               `json:"channelId,omitempty" msgpack:"ch,omitempty"`
	Channel      *channel.Channel     `json:"channel,omitempty" msgpack:"channel,omitempty"`
	SubChannel   *channel.SubChannel  `json:"subChannel,omitempty" msgpack:"sub,omitempty"`
	KeyID        did.KeyID            `json:"keyId,omitempty" msgpack:"key,omitempty"`
	VMIDFragment string               `json:"vmIdFragment,omitempty" msgpack:"frag,omitempty"`
	Pending      *subrav.SubRAV       `json:"pendingSubRav,omitempty" msgpack:"pending,omitempty"`
	LastSigned   *subrav.SignedSubRAV `json:"lastSigned,omitempty" msgpack:"last,omitempty"`
}

// Clone deep copies the state so snapshots never share mutable pointers.
func (s *State) Clone() *State {
	if s == nil {
		return &State{}
	}

	c := *s

	if s.Channel != nil {
		ch := *s.Channel
		c.Channel = &ch
	}
	if s.SubChannel != nil {
		sub := *s.SubChannel
		c.SubChannel = &sub
	}
	if s.Pending != nil {
		p := *s.Pending
		c.Pending = &p
	}
	if s.LastSigned != nil {
		ls := *s.LastSigned
		ls.Signature = append([]byte(nil), s.LastSigned.Signature...)
		c.LastSigned = &ls
	}

	return &c
}

// ClearChannel forgets the cached channel and sub-channel. The pending
// proposal is kept until a channel is known again; see DropStalePending.
func (s *State) ClearChannel() {
	s.ChannelID = ""
	s.Channel = nil
	s.SubChannel = nil
}

// DropStalePending discards a pending proposal that does not address the
// current channel epoch and sub-channel.
func (s *State) DropStalePending() {
	if s.Pending == nil || s.Channel == nil {
		return
	}

	if s.Pending.ChannelID != s.Channel.ID ||
		s.Pending.ChannelEpoch.Cmp(s.Channel.Epoch) != 0 ||
		s.Pending.VMIDFragment != s.VMIDFragment {
		s.Pending = nil
	}
}

// Ready reports whether the state holds an open channel with an authorized
// sub-channel for the bound key.
func (s *State) Ready() bool {
	return s.Channel != nil && s.Channel.Status == channel.StatusOpen &&
		s.SubChannel != nil && s.SubChannel.Authorized &&
		s.SubChannel.VMIDFragment == s.VMIDFragment
}

// SessionKey names a payer session with one service.
func SessionKey(baseURL, payerDID string) string {
	return baseURL + "|" + payerDID
}

// StateStore persists payer sessions.
type StateStore interface {
	Load(ctx context.Context, key string) (*State, error)
	Save(ctx context.Context, key string, s *State) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

var _ StateStore = (*MemStore)(nil)

type MemStore struct {
	mu     sync.RWMutex
	states map[string]*State
}

func NewMemStore() *MemStore {
	return &MemStore{states: make(map[string]*State)}
}

func (m *MemStore) Load(_ context.Context, key string) (*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.states[key]
	if !ok {
		return nil, ErrStateNotFound
	}

	return s.Clone(), nil
}

func (m *MemStore) Save(_ context.Context, key string, s *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[key] = s.Clone()
	return nil
}

func (m *MemStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, key)
	return nil
}

func (m *MemStore) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.states))
	for k := range m.states {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys, nil
}
