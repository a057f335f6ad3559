package payment

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/didauth"
	"github.com/tcfw/didpay/pkg/subrav"
)

func testRAV() subrav.SubRAV {
	return subrav.SubRAV{
		Version:           subrav.Version,
		ChainID:           subrav.FromUint64(4),
		ChannelID:         "0xabc",
		ChannelEpoch:      subrav.FromUint64(0),
		VMIDFragment:      "key-1",
		AccumulatedAmount: subrav.MustParseBigInt("340282366920938463463374607431768211455"),
		Nonce:             subrav.FromUint64(7),
	}
}

func TestRequestHeaderRoundTrip(t *testing.T) {
	limit := subrav.FromUint64(0)

	tests := map[string]*RequestPayload{
		"bare": {Version: ProtocolVersion, ClientTxRef: "tx-1"},
		"voucher": {
			Version:      ProtocolVersion,
			ClientTxRef:  "tx-2",
			SignedSubRAV: &subrav.SignedSubRAV{SubRAV: testRAV(), Signature: []byte{9, 9}},
			MaxAmount:    &limit,
		},
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			h, err := EncodeHeader(in)
			require.NoError(t, err)

			out, err := DecodeRequestHeader(h)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestRequestHeaderRejects(t *testing.T) {
	h, _ := EncodeHeader(&RequestPayload{Version: 2, ClientTxRef: "x"})
	_, err := DecodeRequestHeader(h)
	assert.Error(t, err)

	h, _ = EncodeHeader(&RequestPayload{Version: ProtocolVersion})
	_, err = DecodeRequestHeader(h)
	assert.Error(t, err)

	h, _ = EncodeHeader(&RequestPayload{
		Version:      ProtocolVersion,
		ClientTxRef:  "x",
		ChannelID:    "0xdef",
		SignedSubRAV: &subrav.SignedSubRAV{SubRAV: testRAV(), Signature: []byte{1}},
	})
	_, err = DecodeRequestHeader(h)
	assert.Error(t, err)

	_, err = DecodeRequestHeader("!!")
	assert.Error(t, err)
}

func TestResponseHeaderRoundTrip(t *testing.T) {
	rav := testRAV()
	cost := subrav.FromUint64(10)

	in := &ResponsePayload{Version: ProtocolVersion, ClientTxRef: "tx", SubRAV: &rav, Cost: &cost, ServiceTxRef: "svc"}

	h, err := EncodeHeader(in)
	require.NoError(t, err)

	out, err := DecodeResponseHeader(h)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestErrorMapping(t *testing.T) {
	tests := map[string]struct {
		err    error
		status int
		match  error
	}{
		"payment required": {
			err:    &PaymentRequiredError{SubRAV: testRAV()},
			status: http.StatusPaymentRequired,
		},
		"auth": {
			err:    errors.Wrap(&didauth.AuthError{Kind: didauth.KindSignatureMismatch}, "verifying"),
			status: http.StatusUnauthorized,
			match:  didauth.ErrSignatureMismatch,
		},
		"voucher": {
			err:    &subrav.VoucherError{Kind: subrav.KindStaleNonce},
			status: http.StatusBadRequest,
			match:  subrav.ErrStaleNonce,
		},
		"state": {
			err:    channel.NewStateError(channel.StateChannelClosed, "0x1"),
			status: http.StatusConflict,
			match:  &channel.StateError{Kind: channel.StateChannelClosed},
		},
		"service": {
			err:    NewServiceError(http.StatusNotFound, CodeNotFound, "no such route"),
			status: http.StatusNotFound,
		},
		"unknown": {
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			body, status := BodyFromError(test.err)
			assert.Equal(t, test.status, status)

			back := ErrorFromBody(body, status)
			if test.match != nil {
				assert.ErrorIs(t, back, test.match)
			}
		})
	}

	body, _ := BodyFromError(&PaymentRequiredError{SubRAV: testRAV()})
	var pr *PaymentRequiredError
	require.ErrorAs(t, ErrorFromBody(body, http.StatusPaymentRequired), &pr)
	assert.Equal(t, testRAV(), pr.SubRAV)

	body, status := BodyFromError(errors.Wrap(channel.NewStateError(channel.StateChannelMissing, "0xabc"), "loading"))
	var se *channel.StateError
	require.ErrorAs(t, ErrorFromBody(body, status), &se)
	assert.Equal(t, "0xabc", se.ChannelID)
	assert.Equal(t, "channel 0xabc: channel missing", se.Error())

	assert.True(t, IsRetryable(pr))
	assert.True(t, IsRetryable(&TransportError{Op: "call", Err: errors.New("reset")}))
	assert.False(t, IsRetryable(didauth.ErrUnknownKey))
}

func TestMCPArgs(t *testing.T) {
	p := &RequestPayload{Version: ProtocolVersion, ClientTxRef: "tx", SignedSubRAV: &subrav.SignedSubRAV{SubRAV: testRAV(), Signature: []byte{1}}}

	args, err := AttachMCP(map[string]interface{}{"query": "weather"}, "DIDAuthV1 abc", p)
	require.NoError(t, err)

	auth, out, rest, err := ExtractMCP(args)
	require.NoError(t, err)
	assert.Equal(t, "DIDAuthV1 abc", auth)
	assert.Equal(t, p, out)
	assert.Equal(t, map[string]interface{}{"query": "weather"}, rest)

	rav := testRAV()
	res, err := AttachMCPResult(map[string]interface{}{"content": "sunny"}, &ResponsePayload{Version: ProtocolVersion, ClientTxRef: "tx", SubRAV: &rav})
	require.NoError(t, err)

	resp, err := ExtractMCPResult(res)
	require.NoError(t, err)
	assert.Equal(t, &rav, resp.SubRAV)
}

func TestMemStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemStore()

	_, err := m.Load(ctx, "k")
	assert.ErrorIs(t, err, ErrStateNotFound)

	rav := testRAV()
	s := &State{ChannelID: "0xabc", Pending: &rav}
	require.NoError(t, m.Save(ctx, "k", s))

	//stored copies are isolated from the caller
	s.Pending.Nonce = subrav.FromUint64(99)

	loaded, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, subrav.FromUint64(7), loaded.Pending.Nonce)

	keys, _ := m.Keys(ctx)
	assert.Equal(t, []string{"k"}, keys)

	require.NoError(t, m.Delete(ctx, "k"))
	keys, _ = m.Keys(ctx)
	assert.Empty(t, keys)
}

func TestDropStalePending(t *testing.T) {
	rav := testRAV()
	s := &State{
		ChannelID:    "0xabc",
		Channel:      &channel.Channel{ID: "0xabc", Epoch: subrav.FromUint64(0), Status: channel.StatusOpen},
		VMIDFragment: "key-1",
		Pending:      &rav,
	}

	s.DropStalePending()
	assert.NotNil(t, s.Pending)

	s.Channel.Epoch = subrav.FromUint64(1)
	s.DropStalePending()
	assert.Nil(t, s.Pending)
}
