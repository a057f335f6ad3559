package cli

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcfw/didpay/internal/api"
	"github.com/tcfw/didpay/internal/config"
	"github.com/tcfw/didpay/internal/utils/logging"
	"github.com/tcfw/didpay/pkg/channel"
	"github.com/tcfw/didpay/pkg/channel/memledger"
	"github.com/tcfw/didpay/pkg/did/resolver"
	"github.com/tcfw/didpay/pkg/didauth"
	"github.com/tcfw/didpay/pkg/grpcpay"
	"github.com/tcfw/didpay/pkg/payee"
	"github.com/tcfw/didpay/pkg/subrav"
	"go.uber.org/multierr"
)

const (
	echoPath = "/v1/echo"

	resolverCacheSize = 1000
	resolverCacheTTL  = 5 * time.Minute
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run a payee serving a paid echo endpoint over HTTP and the payment service over gRPC",
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().String("http", ":8080", "http listen address")
	serveCmd.Flags().String("grpc", ":8081", "grpc listen address")
	serveCmd.Flags().String("api-addr", "127.0.0.1:8090", "operator api listen address")
	serveCmd.Flags().Bool("persist", false, "keep sub-channel state in the data dir")
	viper.BindPFlag(config.Cfg_payee_httpListen, serveCmd.Flags().Lookup("http"))
	viper.BindPFlag(config.Cfg_payee_grpcListen, serveCmd.Flags().Lookup("grpc"))
	viper.BindPFlag(api.Cfg_daemonAddr, serveCmd.Flags().Lookup("api-addr"))
}

// payeeStack is a processor with its HTTP surface.
type payeeStack struct {
	proc    *payee.Processor
	handler *payee.Handler
}

func newPayee(cfg *config.Config, ledger channel.Ledger, store payee.Store, payeeDID string) (*payeeStack, error) {
	var resOpts []resolver.Option
	if ns := cfg.Payee().NameServer; ns != "" {
		resOpts = append(resOpts, resolver.WithNameServer(ns))
	}

	res, err := resolver.New(resOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "building resolver")
	}

	verifier, err := didauth.NewVerifier(
		resolver.NewCached(res, resolverCacheSize, resolverCacheTTL),
		didauth.WithReplayWindow(cfg.Payee().ReplayWindow),
	)
	if err != nil {
		return nil, errors.Wrap(err, "building verifier")
	}

	pcfg := cfg.Payee()

	proc, err := payee.NewProcessor(payee.Config{
		ServiceID:      pcfg.ServiceID,
		ServiceDID:     payeeDID,
		DefaultAssetID: pcfg.AssetID,
		ChainID:        pcfg.ChainID,
		BasePath:       pcfg.BasePath,
	}, ledger, verifier,
		payee.WithStore(store),
		payee.WithIdempotencyCache(pcfg.Idempotency.Size, pcfg.Idempotency.TTL),
		payee.WithLogger(logging.Entry().WithField("component", "payee")),
	)
	if err != nil {
		return nil, errors.Wrap(err, "building processor")
	}

	h := payee.NewHandler(proc)
	h.Route(http.MethodPost, echoPath, pcfg.Price, echo)

	return &payeeStack{proc: proc, handler: h}, nil
}

// echo returns the request body. An empty body is not billed.
func echo(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if len(b) == 0 {
		payee.SetCost(r.Context(), subrav.BigInt{})
	}

	if d, ok := payee.PayerDID(r.Context()); ok {
		w.Header().Set("X-Payer", d)
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(b)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	persist, _ := cmd.Flags().GetBool("persist")

	store, err := openStorage(cfg, persist)
	if err != nil {
		return errors.Wrap(err, "opening storage")
	}
	defer store.Close()

	payeeDID := cfg.Payee().DID
	if payeeDID == "" {
		s, err := loadIdentity(cfg, "")
		if err != nil {
			return err
		}
		payeeDID, _ = s.DID(ctx)
	}

	ledger := memledger.New()

	ps, err := newPayee(cfg, ledger, store.Payee(), payeeDID)
	if err != nil {
		return err
	}

	grpcSrv := grpcpay.NewServer(ps.proc, grpcpay.Prices(nil), logging.Entry().WithField("component", "grpc"))

	lis, err := net.Listen("tcp", cfg.Payee().GRPCListen)
	if err != nil {
		return errors.Wrap(err, "listening for grpc")
	}

	httpSrv := &http.Server{
		Addr:              cfg.Payee().HTTPListen,
		Handler:           ps.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	adminAPI, err := api.NewAPI(ps.proc)
	if err != nil {
		return err
	}

	adminLis, err := net.Listen("tcp", viper.GetString(api.Cfg_daemonAddr))
	if err != nil {
		return errors.Wrap(err, "listening for api")
	}

	errCh := make(chan error, 4)

	go func() {
		logging.Entry().WithField("addr", adminLis.Addr().String()).Info("serving operator api")
		if err := adminAPI.Serve(adminLis); err != nil {
			errCh <- err
		}
	}()

	go func() {
		logging.Entry().WithField("addr", httpSrv.Addr).Info("serving http")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	go func() {
		logging.Entry().WithField("addr", lis.Addr().String()).Info("serving grpc")
		if err := grpcSrv.Serve(lis); err != nil {
			errCh <- err
		}
	}()

	claims := payee.NewClaimScheduler(ps.proc, cfg.Payee().Claims.Interval, cfg.Payee().Claims.MinAmount)
	go func() {
		if err := claims.Run(ctx); err != nil && err != context.Canceled {
			errCh <- err
		}
	}()

	logging.Entry().WithField("did", payeeDID).Info("payee ready")

	select {
	case err = <-errCh:
	case <-waitExit(ctx):
	}

	cancel()

	sctx, scancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer scancel()

	grpcSrv.GracefulStop()

	return multierr.Combine(err, adminAPI.Shutdown(sctx), httpSrv.Shutdown(sctx))
}
