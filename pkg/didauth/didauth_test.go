package didauth

import (
	"context"
	"crypto/rand"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/didpay/pkg/cryptography"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/tcfw/didpay/pkg/did/resolver"
	"github.com/tcfw/didpay/pkg/did/w3cdid"
)

func testSigner(t *testing.T) (*did.LocalSigner, did.KeyID) {
	s, err := did.GenerateEd25519Signer(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	ids, _ := s.ListKeyIDs(context.Background())
	return s, ids[0]
}

func testOperation() Operation {
	return Operation{
		Operation: "POST:/v1/chat",
		Params:    map[string]interface{}{"b": 2, "a": "<x>", "nested": map[string]interface{}{"z": 1.5, "y": []interface{}{1, "two"}}},
	}
}

func TestCanonicalBytesSortsKeys(t *testing.T) {
	a, err := CanonicalBytes(map[string]interface{}{"b": 1, "a": map[string]interface{}{"d": 1, "c": 2}})
	require.NoError(t, err)

	b, err := CanonicalBytes(map[string]interface{}{"a": map[string]interface{}{"c": 2, "d": 1}, "b": 1})
	require.NoError(t, err)

	assert.Equal(t, `{"a":{"c":2,"d":1},"b":1}`, string(a))
	assert.Equal(t, a, b)

	html, err := CanonicalBytes(map[string]string{"x": "<&>"})
	require.NoError(t, err)
	assert.Equal(t, `{"x":"<&>"}`, string(html))
}

func TestHeaderRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, keyID := testSigner(t)

	so, err := CreateSignature(ctx, testOperation(), s, keyID)
	require.NoError(t, err)

	h, err := ToAuthorizationHeader(so)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, HeaderScheme+" "))

	parsed, err := ParseAuthorizationHeader(h)
	require.NoError(t, err)

	h2, err := ToAuthorizationHeader(parsed)
	require.NoError(t, err)
	assert.Equal(t, h, h2)

	assert.Equal(t, so.Signature, parsed.Signature)
	assert.Equal(t, so.SignedData.Nonce, parsed.SignedData.Nonce)
	assert.Equal(t, so.SignedData.Timestamp, parsed.SignedData.Timestamp)
}

func TestParseMalformed(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"wrong scheme":   "Bearer abc",
		"bad base64":     HeaderScheme + " ***",
		"not json":       HeaderScheme + " bm90IGpzb24",
		"missing fields": HeaderScheme + " e30",
	}

	for name, h := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAuthorizationHeader(h)
			assert.ErrorIs(t, err, ErrMalformedHeader)
		})
	}
}

func TestVerifyAuthHeader(t *testing.T) {
	ctx := context.Background()
	s, keyID := testSigner(t)

	r, _ := resolver.New()

	so, err := CreateSignature(ctx, testOperation(), s, keyID)
	require.NoError(t, err)

	h, _ := ToAuthorizationHeader(so)

	verified, err := VerifyAuthHeader(ctx, h, r)
	require.NoError(t, err)
	assert.Equal(t, "POST:/v1/chat", verified.SignedData.Operation)

	//no replay protection on the bare verifier
	_, err = VerifyAuthHeader(ctx, h, r)
	assert.NoError(t, err)
}

func TestVerifyAuthBinding(t *testing.T) {
	ctx := context.Background()

	s := did.NewLocalSigner("did:example:alice")

	authKey, err := cryptography.NewEcdsaSecp256k1PrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	authID, _ := s.AddKey("auth", authKey)
	embeddedID, _ := s.AddKey("embedded", cryptography.NewBls12381PrivateKey())
	outOfBandID, _ := s.AddKey("oob", cryptography.NewBls12381PrivateKey())
	strangerID, _ := s.AddKey("stranger", cryptography.NewBls12381PrivateKey())

	full, err := s.Document(ctx)
	require.NoError(t, err)

	vm := func(id did.KeyID) cryptography.VerificationMethod {
		m, ok := full.FindVerificationMethod(string(id))
		require.True(t, ok)
		return *m
	}

	foreign := vm(strangerID)
	foreign.Controller = "did:example:mallory"

	doc := &w3cdid.Document{
		Context:            []string{w3cdid.ContextV1},
		ID:                 "did:example:alice",
		VerificationMethod: []cryptography.VerificationMethod{vm(authID), vm(outOfBandID), foreign},
		Authentication: []w3cdid.Relationship{
			w3cdid.RefTo("#auth"),
			w3cdid.Embed(vm(embeddedID)),
			w3cdid.RefTo(string(strangerID)),
		},
	}

	r := resolver.NewStatic(doc)

	tests := map[did.KeyID]error{
		authID:                          nil,
		embeddedID:                      nil,
		outOfBandID:                     ErrKeyNotAuthorized,
		strangerID:                      ErrKeyNotAuthorized,
		did.NewKeyID(doc.ID, "missing"): ErrUnknownKey,
	}

	for keyID, expected := range tests {
		t.Run(string(keyID), func(t *testing.T) {
			so := &SignedObject{
				SignedData: SignedData{Operation: "GET:/x", Params: map[string]interface{}{}, Nonce: "n", Timestamp: 1},
				Signature:  Signature{SignerDID: doc.ID, KeyID: keyID},
			}

			msg, err := CanonicalBytes(&so.SignedData)
			require.NoError(t, err)

			if keyID.Fragment() != "missing" {
				so.Signature.Value, err = s.SignWithKeyID(ctx, msg, keyID)
				require.NoError(t, err)
			} else {
				so.Signature.Value = []byte{1}
			}

			h, _ := ToAuthorizationHeader(so)
			_, err = VerifyAuthHeader(ctx, h, r)
			if expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, expected)
			}
		})
	}
}

func TestVerifyTampered(t *testing.T) {
	ctx := context.Background()
	s, keyID := testSigner(t)
	r, _ := resolver.New()

	so, err := CreateSignature(ctx, testOperation(), s, keyID)
	require.NoError(t, err)

	so.SignedData.Operation = "POST:/v1/admin"
	h, _ := ToAuthorizationHeader(so)

	_, err = VerifyAuthHeader(ctx, h, r)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestVerifyUnresolved(t *testing.T) {
	ctx := context.Background()
	s, keyID := testSigner(t)

	so, err := CreateSignature(ctx, testOperation(), s, keyID)
	require.NoError(t, err)
	h, _ := ToAuthorizationHeader(so)

	_, err = VerifyAuthHeader(ctx, h, resolver.NewStatic())
	assert.ErrorIs(t, err, ErrDIDUnresolved)
	assert.ErrorIs(t, err, did.ErrDIDNotFound)
}

func TestCreateSignatureSignerError(t *testing.T) {
	ctx := context.Background()
	s, _ := testSigner(t)
	d, _ := s.DID(ctx)

	_, err := CreateSignature(ctx, testOperation(), s, did.NewKeyID(d, "missing"))

	var serr *SignerError
	require.ErrorAs(t, err, &serr)
	assert.ErrorIs(t, err, did.ErrKeyNotFound)

	_, err = CreateSignature(ctx, testOperation(), s, "did:example:other#key")
	assert.ErrorAs(t, err, &serr)
}

func TestVerifierReplayWindow(t *testing.T) {
	ctx := context.Background()
	s, keyID := testSigner(t)
	r, _ := resolver.New()

	mock := clock.NewMock()
	mock.Set(time.Unix(1700000000, 0))

	v, err := NewVerifier(r, WithVerifierClock(mock), WithReplayWindow(time.Minute))
	require.NoError(t, err)

	so, err := CreateSignature(ctx, testOperation(), s, keyID, WithClock(mock))
	require.NoError(t, err)
	h, _ := ToAuthorizationHeader(so)

	_, err = v.Verify(ctx, h)
	require.NoError(t, err)

	_, err = v.Verify(ctx, h)
	assert.ErrorIs(t, err, ErrReplayed)

	fresh, err := CreateSignature(ctx, testOperation(), s, keyID, WithClock(mock))
	require.NoError(t, err)
	h, _ = ToAuthorizationHeader(fresh)

	mock.Add(2 * time.Minute)
	_, err = v.Verify(ctx, h)
	assert.ErrorIs(t, err, ErrReplayed)

	future, err := CreateSignature(ctx, testOperation(), s, keyID, WithClock(mock), WithNonce("fixed"))
	require.NoError(t, err)
	h, _ = ToAuthorizationHeader(future)

	mock.Set(time.Unix(1700000000, 0))
	_, err = v.Verify(ctx, h)
	assert.ErrorIs(t, err, ErrReplayed)
}

func TestVerifyOperation(t *testing.T) {
	ctx := context.Background()
	s, keyID := testSigner(t)
	r, _ := resolver.New()

	v, err := NewVerifier(r)
	require.NoError(t, err)

	so, _ := CreateSignature(ctx, testOperation(), s, keyID)
	h, _ := ToAuthorizationHeader(so)

	_, err = v.VerifyOperation(ctx, h, "GET:/v1/other")
	assert.ErrorIs(t, err, ErrOperationMismatch)

	so, _ = CreateSignature(ctx, testOperation(), s, keyID)
	h, _ = ToAuthorizationHeader(so)

	_, err = v.VerifyOperation(ctx, h, "POST:/v1/chat")
	assert.NoError(t, err)
}
