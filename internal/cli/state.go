package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tcfw/didpay/internal/config"
	"github.com/tcfw/didpay/internal/storage"
	"github.com/tcfw/didpay/pkg/payee"
	"github.com/tcfw/didpay/pkg/payment"
)

var (
	stateCmd = &cobra.Command{
		Use:   "state",
		Short: "Persisted payment state",
	}

	state_showCmd = &cobra.Command{
		Use:   "show",
		Short: "Print payer sessions and payee sub-channels",
		RunE:  runStateShow,
	}
)

type stateDump struct {
	Payer map[string]*payment.State `json:"payer"`
	Payee []*payee.SubChannelState  `json:"payee"`
}

func runStateShow(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	s, err := storage.Open(cfg.Storage().DataDir)
	if err != nil {
		return err
	}
	defer s.Close()

	dump, err := collectState(ctx, s)
	if err != nil {
		return err
	}

	b, _ := json.MarshalIndent(dump, "", "  ")
	fmt.Printf("%s\n", b)

	return nil
}

func collectState(ctx context.Context, s *storage.Storage) (*stateDump, error) {
	dump := &stateDump{Payer: map[string]*payment.State{}}

	keys, err := s.Payer().Keys(ctx)
	if err != nil {
		return nil, err
	}

	for _, k := range keys {
		st, err := s.Payer().Load(ctx, k)
		if err != nil {
			return nil, err
		}
		dump.Payer[k] = st
	}

	dump.Payee, err = s.Payee().List(ctx)
	if err != nil {
		return nil, err
	}

	return dump, nil
}
