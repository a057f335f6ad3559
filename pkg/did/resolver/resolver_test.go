package resolver

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/didpay/pkg/cryptography"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/tcfw/didpay/pkg/did/w3cdid"
)

func TestResolveKey(t *testing.T) {
	ctx := context.Background()

	s, err := did.GenerateEd25519Signer(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	id, _ := s.DID(ctx)
	ids, _ := s.ListKeyIDs(ctx)

	r, err := New()
	require.NoError(t, err)

	doc, err := r.ResolveDID(ctx, string(ids[0]))
	require.NoError(t, err)
	assert.Equal(t, id, doc.ID)

	expected, err := s.Document(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected.VerificationMethod, doc.VerificationMethod)
	assert.True(t, doc.IsAuthentication(string(ids[0])))
}

func TestResolveKeyRejectsGarbage(t *testing.T) {
	r, _ := New()

	_, err := r.ResolveDID(context.Background(), "did:key:zNotAKey")
	assert.Error(t, err)
}

func TestUnknownMethod(t *testing.T) {
	r, _ := New()

	_, err := r.ResolveDID(context.Background(), "did:example:123")
	assert.ErrorIs(t, err, ErrUnknownMethod)

	static := NewStatic(&w3cdid.Document{ID: "did:example:123"})
	r, _ = New(WithFallback(static))

	doc, err := r.ResolveDID(context.Background(), "did:example:123#key-1")
	require.NoError(t, err)
	assert.Equal(t, "did:example:123", doc.ID)
}

func TestWebDocumentURL(t *testing.T) {
	tests := map[string]string{
		"did:web:example.com":                "https://example.com/.well-known/did.json",
		"did:web:example.com%3A8443":         "https://example.com:8443/.well-known/did.json",
		"did:web:example.com:user:alice":     "https://example.com/user/alice/did.json",
		"did:web:example.com%3A8443:service": "https://example.com:8443/service/did.json",
	}

	for in, expected := range tests {
		t.Run(in, func(t *testing.T) {
			loc, err := webDocumentURL(w3cdid.URL(in), false)
			require.NoError(t, err)
			assert.Equal(t, expected, loc)
		})
	}
}

func TestResolveWeb(t *testing.T) {
	var id string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/did.json" {
			http.NotFound(w, r)
			return
		}

		json.NewEncoder(w).Encode(&w3cdid.Document{Context: []string{w3cdid.ContextV1}, ID: id})
	}))
	defer srv.Close()

	host := strings.TrimPrefix(srv.URL, "http://")
	id = "did:web:" + strings.ReplaceAll(host, ":", "%3A")

	r, err := New(WithInsecureWeb(), WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	doc, err := r.ResolveDID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, doc.ID)

	_, err = r.ResolveDID(context.Background(), id+":missing")
	assert.ErrorIs(t, err, did.ErrDIDNotFound)
}

type countingResolver struct {
	calls int32
	doc   *w3cdid.Document
}

func (c *countingResolver) ResolveDID(_ context.Context, id string) (*w3cdid.Document, error) {
	atomic.AddInt32(&c.calls, 1)
	if id != c.doc.ID {
		return nil, did.ErrDIDNotFound
	}
	return c.doc, nil
}

func TestCached(t *testing.T) {
	up := &countingResolver{doc: &w3cdid.Document{ID: "did:example:123"}}
	c := NewCached(up, 10, time.Minute)

	for i := 0; i < 3; i++ {
		doc, err := c.ResolveDID(context.Background(), "did:example:123#key-1")
		require.NoError(t, err)
		assert.Equal(t, up.doc, doc)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&up.calls))

	_, err := c.ResolveDID(context.Background(), "did:example:missing")
	assert.ErrorIs(t, err, did.ErrDIDNotFound)
	_, err = c.ResolveDID(context.Background(), "did:example:missing")
	assert.ErrorIs(t, err, did.ErrDIDNotFound)
	assert.Equal(t, int32(3), atomic.LoadInt32(&up.calls))

	c.Purge("did:example:123")
	_, err = c.ResolveDID(context.Background(), "did:example:123")
	require.NoError(t, err)
	assert.Equal(t, int32(4), atomic.LoadInt32(&up.calls))
}

func TestResolveKeyTypes(t *testing.T) {
	secp, err := cryptography.NewEcdsaSecp256k1PrivateKey()
	if err != nil {
		t.Fatal(err)
	}

	p256, err := cryptography.NewP256PrivateKey()
	if err != nil {
		t.Fatal(err)
	}

	r, _ := New()

	for name, sk := range map[string]interface{}{"secp256k1": secp, "p256": p256, "bls": cryptography.NewBls12381PrivateKey()} {
		t.Run(name, func(t *testing.T) {
			s, err := did.NewDIDKeySigner(sk)
			require.NoError(t, err)

			id, _ := s.DID(context.Background())
			doc, err := r.ResolveDID(context.Background(), id)
			require.NoError(t, err)
			require.Len(t, doc.VerificationMethod, 1)

			sig, err := cryptography.Sign(sk, []byte("msg"))
			require.NoError(t, err)

			ok, err := cryptography.Validate(doc.VerificationMethod[0], sig, []byte("msg"))
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}
