package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tcfw/didpay/internal/config"
	"github.com/tcfw/didpay/internal/utils/logging"
	"github.com/tcfw/didpay/pkg/channel/memledger"
	"github.com/tcfw/didpay/pkg/did"
	"github.com/tcfw/didpay/pkg/payer"
	"github.com/tcfw/didpay/pkg/subrav"
)

var (
	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Run a payer against an in-process payee and claim the result",
		RunE:  runDemo,
	}
)

func init() {
	demoCmd.Flags().IntP("calls", "n", 5, "number of paid calls")
	demoCmd.Flags().Bool("persist", false, "keep payer and payee state in the data dir")
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	calls, _ := cmd.Flags().GetInt("calls")
	persist, _ := cmd.Flags().GetBool("persist")

	store, err := openStorage(cfg, persist)
	if err != nil {
		return errors.Wrap(err, "opening storage")
	}
	defer store.Close()

	payerSigner, err := loadIdentity(cfg, cfg.Payer().DID)
	if err != nil {
		return errors.Wrap(err, "loading payer identity")
	}

	payeeDID := cfg.Payee().DID
	if payeeDID == "" {
		payeeDID = "did:web:localhost"
	}

	ledger := memledger.New()

	ps, err := newPayee(cfg, ledger, store.Payee(), payeeDID)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return errors.Wrap(err, "listening")
	}

	srv := &http.Server{Handler: ps.handler, ReadHeaderTimeout: 10 * time.Second}
	go srv.Serve(lis)
	defer srv.Shutdown(context.Background())

	baseURL := "http://" + lis.Addr().String()

	opts := []payer.Option{
		payer.WithStore(store.Payer()),
		payer.WithRecoveryInterval(cfg.Payer().RecoveryInterval),
		payer.WithRetryBackoff(cfg.Payer().Retry.Min, cfg.Payer().Retry.Max),
	}
	if cfg.Payer().MaxAmount != nil {
		opts = append(opts, payer.WithMaxAmount(*cfg.Payer().MaxAmount))
	}
	if cfg.Payer().KeyID != "" {
		opts = append(opts, payer.WithKeyID(did.KeyID(cfg.Payer().KeyID)))
	}

	client, err := payer.New(ctx, did.Raw(payerSigner), ledger, payer.NewHTTPService(baseURL, nil), opts...)
	if err != nil {
		return errors.Wrap(err, "building payer")
	}

	h := payer.NewHTTP(client, nil, baseURL)

	for i := 0; i < calls; i++ {
		res, err := h.Do(ctx, http.MethodPost, echoPath, []byte(fmt.Sprintf("call %d", i)), nil)
		if err != nil {
			return errors.Wrapf(err, "call %d", i)
		}

		ent := logging.Entry().WithField("call", i).WithField("body", string(res.Body))
		if res.Payment != nil && res.Payment.SubRAV != nil {
			ent = ent.WithField("nextNonce", res.Payment.SubRAV.Nonce).WithField("nextAmount", res.Payment.SubRAV.AccumulatedAmount)
		}
		ent.Info("paid call")
	}

	if _, err := client.Commit(ctx); err != nil && !errors.Is(err, payer.ErrNothingToCommit) {
		return errors.Wrap(err, "committing")
	}

	receipts, err := ps.proc.ClaimAll(ctx, subrav.BigInt{})
	if err != nil {
		return errors.Wrap(err, "claiming")
	}

	for _, r := range receipts {
		fmt.Printf("claimed %s on %s#%s (nonce %s, total %s)\n", r.Claimed, r.ChannelID, r.VMIDFragment, r.Nonce, r.Total)
	}

	return nil
}
