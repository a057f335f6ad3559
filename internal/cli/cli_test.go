package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tcfw/didpay/internal/config"
	"github.com/tcfw/didpay/pkg/channel/memledger"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/tcfw/didpay/pkg/payer"
)

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()

	viper.Set(config.Cfg_storage_identityFile, filepath.Join(dir, "identity.yaml"))
	viper.Set(config.Cfg_storage_dataDir, filepath.Join(dir, "data"))
	viper.Set(config.Cfg_payee_price, "9")
	t.Cleanup(func() {
		viper.Set(config.Cfg_storage_identityFile, nil)
		viper.Set(config.Cfg_storage_dataDir, nil)
		viper.Set(config.Cfg_payee_price, nil)
	})

	cfg, err := config.GetConfig()
	require.NoError(t, err)

	return cfg
}

func TestLoadIdentityGeneratesOnce(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	s1, err := loadIdentity(cfg, "")
	require.NoError(t, err)
	d1, _ := s1.DID(ctx)

	s2, err := loadIdentity(cfg, "")
	require.NoError(t, err)
	d2, _ := s2.DID(ctx)

	assert.Equal(t, d1, d2)

	_, err = loadIdentity(cfg, "did:key:unknown")
	assert.Error(t, err)
}

func TestEchoRoundTripPersists(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	store, err := openStorage(cfg, true)
	require.NoError(t, err)
	defer store.Close()

	signer, err := loadIdentity(cfg, "")
	require.NoError(t, err)

	ledger := memledger.New()

	ps, err := newPayee(cfg, ledger, store.Payee(), "did:web:payee.example")
	require.NoError(t, err)

	srv := httptest.NewServer(ps.handler)
	defer srv.Close()

	client, err := payer.New(ctx, did.Raw(signer), ledger, payer.NewHTTPService(srv.URL, srv.Client()), payer.WithStore(store.Payer()))
	require.NoError(t, err)

	h := payer.NewHTTP(client, srv.Client(), srv.URL)

	for i := 0; i < 3; i++ {
		res, err := h.Do(ctx, http.MethodPost, echoPath, []byte("hello"), nil)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(res.Body))
		assert.Equal(t, client.PayerDID(), res.Header.Get("X-Payer"))
	}

	dump, err := collectState(ctx, store)
	require.NoError(t, err)

	require.Len(t, dump.Payer, 1)
	require.Len(t, dump.Payee, 1)

	//first call opens the session, the next two settle 9 each
	assert.Equal(t, "18", dump.Payee[0].LastAmount.String())
	for _, st := range dump.Payer {
		require.NotNil(t, st.Pending)
		assert.Equal(t, "27", st.Pending.AccumulatedAmount.String())
	}
}
