package did

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/didpay/pkg/cryptography"
	"github.com/tcfw/didpay/pkg/did"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "identity.yaml")

	f, err := NewFileStore(path)
	require.NoError(t, err)

	ctx := context.Background()
	msg := []byte("GET:/v1/echo")

	signers := map[string]*did.LocalSigner{}
	for _, kt := range []string{KeyTypeEd25519, KeyTypeSecp256k1, KeyTypeBls12381, KeyTypeP256} {
		s, err := f.Generate(kt)
		require.NoError(t, err, kt)

		d, _ := s.DID(ctx)
		signers[d] = s
	}

	f2, err := NewFileStore(path)
	require.NoError(t, err)

	ids, err := f2.List()
	require.NoError(t, err)
	assert.Len(t, ids, 4)

	for d := range signers {
		t.Run(d, func(t *testing.T) {
			s, err := f2.Find(d)
			require.NoError(t, err)

			keys, err := s.ListKeyIDs(ctx)
			require.NoError(t, err)
			require.Len(t, keys, 1)

			sig, err := s.SignWithKeyID(ctx, msg, keys[0])
			require.NoError(t, err)

			doc, err := signers[d].Document(ctx)
			require.NoError(t, err)
			vm, ok := doc.FindVerificationMethod(keys[0].String())
			require.True(t, ok)

			valid, err := cryptography.Validate(*vm, sig, msg)
			require.NoError(t, err)
			assert.True(t, valid)
		})
	}
}

func TestFileStoreAddIsIdempotent(t *testing.T) {
	f, err := NewFileStore(filepath.Join(t.TempDir(), "identity.yaml"))
	require.NoError(t, err)

	s, err := f.Generate(KeyTypeEd25519)
	require.NoError(t, err)

	require.NoError(t, f.Add(s))
	assert.Len(t, f.ids.Ids, 1)

	_, err = f.Find("did:key:missing")
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestUnknownKeyType(t *testing.T) {
	_, err := GenerateKey("rsa")
	assert.Error(t, err)

	_, err = decodeKey("rsa", "")
	assert.Error(t, err)
}
