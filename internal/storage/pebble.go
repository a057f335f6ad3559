package storage

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/pkg/errors"
	"github.com/tcfw/didpay/internal/utils/logging"
	"github.com/tcfw/didpay/pkg/payee"
	"github.com/tcfw/didpay/pkg/payment"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/multierr"
)

var (
	_ io.Closer         = (*Storage)(nil)
	_ payment.StateStore = (*PayerStore)(nil)
	_ payee.Store        = (*PayeeStore)(nil)
)

const (
	cacheSize = 1 << 20 * 16

	tableSep byte = ':'
)

type metadataKeyType byte

const (
	payerStateTPrefix metadataKeyType = iota + 1
	payeeStateTPrefix
)

// Storage keeps payer and payee state in a pebble database.
type Storage struct {
	db *pebble.DB

	mu     sync.Mutex
	closed bool
}

// Open opens or creates the database in dir.
func Open(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrap(err, "creating storage dir")
	}

	c := pebble.NewCache(cacheSize)
	defer c.Unref()

	return open(dir, &pebble.Options{Cache: c})
}

// OpenMem opens a database held in memory.
func OpenMem() (*Storage, error) {
	return open("", &pebble.Options{FS: vfs.NewMem()})
}

func open(dir string, opts *pebble.Options) (*Storage, error) {
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening pebble")
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	return multierr.Combine(s.db.Flush(), s.db.Close())
}

// Payer returns the payer session store.
func (s *Storage) Payer() *PayerStore {
	return &PayerStore{s: s}
}

// Payee returns the payee sub-channel store.
func (s *Storage) Payee() *PayeeStore {
	return &PayeeStore{s: s}
}

func (s *Storage) get(key []byte, v interface{}) error {
	d, done, err := s.db.Get(key)
	if err != nil {
		return err
	}
	defer done.Close()

	return errors.Wrap(msgpack.Unmarshal(d, v), "decoding record")
}

func (s *Storage) put(key []byte, v interface{}) error {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encoding record")
	}

	return s.db.Set(key, b, pebble.Sync)
}

// scan calls fn with every record of a key type.
func (s *Storage) scan(kType metadataKeyType, fn func(key []byte, value []byte) error) error {
	iter := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte{byte(kType)},
		UpperBound: []byte{byte(kType) + 1},
	})

	var err error
	for iter.First(); iter.Valid() && err == nil; iter.Next() {
		err = fn(iter.Key(), iter.Value())
	}

	return multierr.Append(err, iter.Close())
}

type PayerStore struct {
	s *Storage
}

func (p *PayerStore) Load(_ context.Context, key string) (*payment.State, error) {
	st := &payment.State{}
	if err := p.s.get(typedKey(payerStateTPrefix, key), st); err != nil {
		if err == pebble.ErrNotFound {
			return nil, payment.ErrStateNotFound
		}
		return nil, errors.Wrap(err, "loading payer state")
	}

	return st, nil
}

func (p *PayerStore) Save(_ context.Context, key string, st *payment.State) error {
	return errors.Wrap(p.s.put(typedKey(payerStateTPrefix, key), st), "storing payer state")
}

func (p *PayerStore) Delete(_ context.Context, key string) error {
	return errors.Wrap(p.s.db.Delete(typedKey(payerStateTPrefix, key), pebble.Sync), "deleting payer state")
}

func (p *PayerStore) Keys(_ context.Context) ([]string, error) {
	keys := []string{}

	err := p.s.scan(payerStateTPrefix, func(k, _ []byte) error {
		keys = append(keys, string(k[1:]))
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing payer sessions")
	}

	return keys, nil
}

type PayeeStore struct {
	s *Storage
}

func (p *PayeeStore) Get(_ context.Context, channelID, vmIDFragment string) (*payee.SubChannelState, error) {
	st := &payee.SubChannelState{}
	if err := p.s.get(typedKey(payeeStateTPrefix, channelID, vmIDFragment), st); err != nil {
		if err == pebble.ErrNotFound {
			return nil, payee.ErrStateNotFound
		}
		return nil, errors.Wrap(err, "loading sub-channel state")
	}

	return st, nil
}

func (p *PayeeStore) Put(_ context.Context, st *payee.SubChannelState) error {
	return errors.Wrap(p.s.put(typedKey(payeeStateTPrefix, st.ChannelID, st.VMIDFragment), st), "storing sub-channel state")
}

func (p *PayeeStore) List(_ context.Context) ([]*payee.SubChannelState, error) {
	out := []*payee.SubChannelState{}

	err := p.s.scan(payeeStateTPrefix, func(k, v []byte) error {
		st := &payee.SubChannelState{}
		if err := msgpack.Unmarshal(v, st); err != nil {
			logging.WithError(err).WithField("key", string(k[1:])).Warn("skipping unreadable sub-channel state")
			return nil
		}
		out = append(out, st)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing sub-channel states")
	}

	return out, nil
}

func typedKey(kType metadataKeyType, parts ...string) []byte {
	n := 1
	for _, p := range parts {
		n += len(p) + 1 //add sep as well
	}

	k := make([]byte, 0, n)
	k = append(k, byte(kType))
	for i, p := range parts {
		if i > 0 {
			k = append(k, tableSep)
		}
		k = append(k, []byte(p)...)
	}

	return k
}
