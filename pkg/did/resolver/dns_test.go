package resolver

import (
	"context"
	"crypto/rand"
	"net"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/didpay/pkg/cryptography"
	"github.com/tcfw/didpay/pkg/did"
)

// startDNS serves the given TXT records and returns the server address.
func startDNS(t *testing.T, records map[string][]string) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := dns.HandlerFunc(func(w dns.ResponseWriter, req *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(req)

		q := req.Question[0]
		txts, ok := records[q.Name]
		if !ok {
			m.SetRcode(req, dns.RcodeNameError)
			w.WriteMsg(m)
			return
		}

		for _, txt := range txts {
			m.Answer = append(m.Answer, &dns.TXT{
				Hdr: dns.RR_Header{Name: q.Name, Rrtype: dns.TypeTXT, Class: dns.ClassINET, Ttl: 60},
				Txt: []string{txt},
			})
		}
		w.WriteMsg(m)
	})

	started := make(chan struct{})
	srv := &dns.Server{
		PacketConn:        pc,
		Handler:           handler,
		NotifyStartedFunc: func() { close(started) },
	}

	go srv.ActivateAndServe()
	<-started
	t.Cleanup(func() { srv.Shutdown() })

	return pc.LocalAddr().String()
}

func TestResolveDNS(t *testing.T) {
	ctx := context.Background()

	s, err := did.GenerateEd25519Signer(rand.Reader)
	require.NoError(t, err)

	ids, _ := s.ListKeyIDs(ctx)
	info, err := s.KeyInfo(ctx, ids[0])
	require.NoError(t, err)

	mc, err := cryptography.EncodeMulticodec(info.PublicKey)
	require.NoError(t, err)

	addr := startDNS(t, map[string][]string{
		"_did.pay.example.": {
			"v=spf1 -all",
			"id=key-1 k=" + mc,
		},
	})

	r, err := New(WithNameServer(addr))
	require.NoError(t, err)

	doc, err := r.ResolveDID(ctx, "did:dns:pay.example#key-1")
	require.NoError(t, err)
	assert.Equal(t, "did:dns:pay.example", doc.ID)
	require.Len(t, doc.VerificationMethod, 1)
	assert.Equal(t, "did:dns:pay.example#key-1", doc.VerificationMethod[0].ID)
	assert.True(t, doc.IsAuthentication("did:dns:pay.example#key-1"))
	assert.True(t, doc.IsCapabilityInvocation("#key-1"))

	vm, ok := doc.FindVerificationMethod("#key-1")
	require.True(t, ok)
	sig, err := s.SignWithKeyID(ctx, []byte("hello"), ids[0])
	require.NoError(t, err)
	valid, err := cryptography.Validate(*vm, sig, []byte("hello"))
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestEmptyLookup(t *testing.T) {
	addr := startDNS(t, map[string][]string{
		"_did.empty.example.": {"v=spf1 -all"},
	})

	r, err := New(WithNameServer(addr))
	require.NoError(t, err)

	tests := []string{
		"did:dns:missing.example",
		"did:dns:empty.example",
	}

	for _, id := range tests {
		t.Run(id, func(t *testing.T) {
			_, err := r.ResolveDID(context.Background(), id)
			assert.ErrorIs(t, err, did.ErrDIDNotFound)
		})
	}
}

func TestParseKeyRecord(t *testing.T) {
	frag, key, ok := parseKeyRecord("id=a k=z6Mk extra")
	assert.True(t, ok)
	assert.Equal(t, "a", frag)
	assert.Equal(t, "z6Mk", key)

	_, _, ok = parseKeyRecord("id=a")
	assert.False(t, ok)
}

func TestWithNameServerValidates(t *testing.T) {
	_, err := New(WithNameServer("no-port"))
	assert.Error(t, err)
}
