package subrav

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/vmihailenco/msgpack/v5"
)

var max128 = NewBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))

func testRAV() SubRAV {
	return SubRAV{
		Version:           Version,
		ChainID:           FromUint64(4),
		ChannelID:         DeriveChannelID("did:example:payer", "did:example:payee", "0x3::gas::GAS"),
		ChannelEpoch:      FromUint64(0),
		VMIDFragment:      "key-1",
		AccumulatedAmount: FromUint64(100),
		Nonce:             FromUint64(1),
	}
}

func TestBigIntParse(t *testing.T) {
	tests := map[string]bool{
		"0":                                       true,
		"18446744073709551616":                    true,
		"340282366920938463463374607431768211455": true,
		"":                                        false,
		"-1":                                      false,
		"+1":                                      false,
		"1.5":                                     false,
		"0x10":                                    false,
		" 1":                                      false,
	}

	for in, valid := range tests {
		t.Run(in, func(t *testing.T) {
			v, err := ParseBigInt(in)
			if !valid {
				assert.ErrorIs(t, err, ErrInvalidBigInt)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, in, v.String())
		})
	}
}

func TestBigIntJSONRejectsNumbers(t *testing.T) {
	var v BigInt
	assert.Error(t, json.Unmarshal([]byte(`12`), &v))

	require.NoError(t, json.Unmarshal([]byte(`"12"`), &v))
	assert.Equal(t, FromUint64(12), v)

	b, err := json.Marshal(max128)
	require.NoError(t, err)
	assert.Equal(t, `"340282366920938463463374607431768211455"`, string(b))
}

func TestBigIntArithmetic(t *testing.T) {
	a := FromUint64(10)
	b := FromUint64(3)

	assert.Equal(t, FromUint64(13), a.Add(b))

	d, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, FromUint64(7), d)

	_, err = b.Sub(a)
	assert.Error(t, err)

	z, err := a.Sub(a)
	require.NoError(t, err)
	assert.True(t, z.IsZero())
	assert.Equal(t, BigInt{}, z)

	assert.Equal(t, FromUint64(11), a.Inc())
}

func TestSignedRoundTrip(t *testing.T) {
	tests := map[string]SignedSubRAV{
		"typical": {SubRAV: testRAV(), Signature: []byte{1, 2, 3}},
		"zero": {SubRAV: SubRAV{
			Version:      Version,
			ChannelID:    "0x00",
			VMIDFragment: "k",
		}, Signature: []byte{0}},
		"max": {SubRAV: SubRAV{
			Version:           Version,
			ChainID:           FromUint64(^uint64(0)),
			ChannelID:         "0xff",
			ChannelEpoch:      FromUint64(^uint64(0)),
			VMIDFragment:      "k",
			AccumulatedAmount: max128,
			Nonce:             max128,
		}, Signature: make([]byte, 65)},
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := DecodeSigned(EncodeSigned(in))
			require.NoError(t, err)
			assert.Equal(t, in, out)

			b, err := json.Marshal(in)
			require.NoError(t, err)

			var viaJSON SignedSubRAV
			require.NoError(t, json.Unmarshal(b, &viaJSON))
			assert.Equal(t, in, viaJSON)

			mp, err := msgpack.Marshal(&in)
			require.NoError(t, err)

			var viaMsgpack SignedSubRAV
			require.NoError(t, msgpack.Unmarshal(mp, &viaMsgpack))
			assert.Equal(t, in, viaMsgpack)
		})
	}
}

func TestWireIntegersAreStrings(t *testing.T) {
	b, err := json.Marshal(testRAV())
	require.NoError(t, err)

	m := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(b, &m))

	for _, k := range []string{"chainId", "channelEpoch", "accumulatedAmount", "nonce"} {
		assert.IsType(t, "", m[k], k)
	}
}

func TestDecodeRejects(t *testing.T) {
	good := Encode(testRAV())

	tests := map[string]func(e *EncodedSubRAV){
		"version":  func(e *EncodedSubRAV) { e.Version = 2 },
		"channel":  func(e *EncodedSubRAV) { e.ChannelID = "" },
		"fragment": func(e *EncodedSubRAV) { e.VMIDFragment = "" },
		"nonce":    func(e *EncodedSubRAV) { e.Nonce = "-1" },
		"amount":   func(e *EncodedSubRAV) { e.AccumulatedAmount = "1e3" },
		"chain":    func(e *EncodedSubRAV) { e.ChainID = "" },
		"epoch":    func(e *EncodedSubRAV) { e.ChannelEpoch = "x" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			e := good
			mutate(&e)

			_, err := Decode(e)
			assert.Error(t, err)
		})
	}
}

func TestSignVerify(t *testing.T) {
	ctx := context.Background()

	s, err := did.GenerateEd25519Signer(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	ids, _ := s.ListKeyIDs(ctx)
	info, _ := s.KeyInfo(ctx, ids[0])
	vm, err := info.VerificationMethod(ids[0])
	require.NoError(t, err)

	rav := testRAV()
	rav.VMIDFragment = ids[0].Fragment()

	signed, err := Sign(ctx, rav, s, ids[0])
	require.NoError(t, err)
	assert.NoError(t, Verify(signed, vm))

	signed.SubRAV.AccumulatedAmount = FromUint64(1000)
	assert.ErrorIs(t, Verify(signed, vm), ErrBadSignature)

	rav.VMIDFragment = "other"
	_, err = Sign(ctx, rav, s, ids[0])
	assert.Error(t, err)
}

func TestSigningBytesDeterministic(t *testing.T) {
	a, err := testRAV().SigningBytes()
	require.NoError(t, err)
	b, err := testRAV().SigningBytes()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other := testRAV()
	other.Nonce = FromUint64(2)
	c, err := other.SigningBytes()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestDeriveChannelID(t *testing.T) {
	a := DeriveChannelID("did:example:payer", "did:example:payee", "asset")
	assert.Equal(t, a, DeriveChannelID("did:example:payer", "did:example:payee", "asset"))
	assert.Len(t, a, 66)

	//length prefixing keeps boundaries unambiguous
	assert.NotEqual(t, DeriveChannelID("ab", "c", "d"), DeriveChannelID("a", "bc", "d"))
	assert.NotEqual(t, a, DeriveChannelID("did:example:payee", "did:example:payer", "asset"))
}

func TestCheckNext(t *testing.T) {
	last := testRAV()

	with := func(f func(r *SubRAV)) SubRAV {
		r := testRAV()
		f(&r)
		return r
	}

	tests := map[string]struct {
		next     SubRAV
		owed     BigInt
		expected error
	}{
		"exact": {
			next: with(func(r *SubRAV) { r.Nonce = FromUint64(2); r.AccumulatedAmount = FromUint64(150) }),
			owed: FromUint64(50),
		},
		"generous client pays less": {
			next: with(func(r *SubRAV) { r.Nonce = FromUint64(2); r.AccumulatedAmount = FromUint64(120) }),
			owed: FromUint64(50),
		},
		"nonce gap": {
			next: with(func(r *SubRAV) { r.Nonce = FromUint64(9); r.AccumulatedAmount = FromUint64(100) }),
		},
		"same nonce": {
			next:     with(func(r *SubRAV) { r.AccumulatedAmount = FromUint64(150) }),
			owed:     FromUint64(50),
			expected: ErrStaleNonce,
		},
		"older nonce": {
			next:     with(func(r *SubRAV) { r.Nonce = FromUint64(0) }),
			expected: ErrStaleNonce,
		},
		"amount decreased": {
			next:     with(func(r *SubRAV) { r.Nonce = FromUint64(2); r.AccumulatedAmount = FromUint64(99) }),
			expected: ErrAmountDecreased,
		},
		"over owed": {
			next:     with(func(r *SubRAV) { r.Nonce = FromUint64(2); r.AccumulatedAmount = FromUint64(151) }),
			owed:     FromUint64(50),
			expected: ErrAmountUnjustified,
		},
		"other fragment": {
			next:     with(func(r *SubRAV) { r.Nonce = FromUint64(2); r.VMIDFragment = "key-2" }),
			expected: ErrChannelMismatch,
		},
		"other epoch": {
			next:     with(func(r *SubRAV) { r.Nonce = FromUint64(2); r.ChannelEpoch = FromUint64(1) }),
			expected: ErrChannelMismatch,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := CheckNext(last, test.next, test.owed)
			if test.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.expected)
			}
		})
	}
}
