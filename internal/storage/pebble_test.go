package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/didpay/pkg/payee"
	"github.com/tcfw/didpay/pkg/payment"
	"github.com/tcfw/didpay/pkg/subrav"
)

func TestTypedKey(t *testing.T) {
	assert.Equal(t, []byte{byte(payerStateTPrefix)}, typedKey(payerStateTPrefix))
	assert.Equal(t, append([]byte{byte(payeeStateTPrefix)}, []byte("ch:key-1")...), typedKey(payeeStateTPrefix, "ch", "key-1"))
}

func TestPayerStore(t *testing.T) {
	s, err := OpenMem()
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	ps := s.Payer()

	_, err = ps.Load(ctx, "svc|did:key:z1")
	assert.ErrorIs(t, err, payment.ErrStateNotFound)

	st := &payment.State{
		ChannelID:    "0xabc",
		VMIDFragment: "key-1",
		Pending: &subrav.SubRAV{
			Version:           subrav.Version,
			ChannelID:         "0xabc",
			VMIDFragment:      "key-1",
			AccumulatedAmount: subrav.FromUint64(21),
			Nonce:             subrav.FromUint64(3),
		},
	}
	require.NoError(t, ps.Save(ctx, "svc|did:key:z1", st))
	require.NoError(t, ps.Save(ctx, "svc|did:key:z2", &payment.State{ChannelID: "0xdef"}))

	got, err := ps.Load(ctx, "svc|did:key:z1")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", got.ChannelID)
	require.NotNil(t, got.Pending)
	assert.Equal(t, "21", got.Pending.AccumulatedAmount.String())
	assert.Equal(t, "3", got.Pending.Nonce.String())

	keys, err := ps.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"svc|did:key:z1", "svc|did:key:z2"}, keys)

	require.NoError(t, ps.Delete(ctx, "svc|did:key:z1"))
	_, err = ps.Load(ctx, "svc|did:key:z1")
	assert.ErrorIs(t, err, payment.ErrStateNotFound)
}

func TestPayeeStore(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	ps := s.Payee()

	_, err = ps.Get(ctx, "0xabc", "key-1")
	assert.ErrorIs(t, err, payee.ErrStateNotFound)

	require.NoError(t, ps.Put(ctx, &payee.SubChannelState{
		ChannelID:    "0xabc",
		VMIDFragment: "key-1",
		PayerDID:     "did:key:z1",
		LastNonce:    subrav.FromUint64(2),
		LastAmount:   subrav.FromUint64(14),
		Claimed:      subrav.FromUint64(7),
	}))

	got, err := ps.Get(ctx, "0xabc", "key-1")
	require.NoError(t, err)
	assert.Equal(t, "did:key:z1", got.PayerDID)
	assert.Equal(t, "7", got.Unclaimed().String())

	//payer state must not leak into payee listings
	require.NoError(t, s.Payer().Save(ctx, "x", &payment.State{}))

	all, err := ps.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "0xabc", all[0].ChannelID)

	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}
