package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcfw/didpay/internal/config"
	internalDid "github.com/tcfw/didpay/internal/did"
	"github.com/tcfw/didpay/internal/storage"
	"github.com/tcfw/didpay/pkg/did"
)

var (
	rootCmd = &cobra.Command{
		Use:   "didpay",
		Short: "DID authenticated payment channels",
	}
)

func Execute() error {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase verbosity")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	regCommands()

	return rootCmd.Execute()
}

func waitExit(ctx context.Context) <-chan os.Signal {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	return sigs
}

// openStorage opens the on-disk store when persist is set and an in-memory
// one otherwise.
func openStorage(cfg *config.Config, persist bool) (*storage.Storage, error) {
	if persist {
		return storage.Open(cfg.Storage().DataDir)
	}

	return storage.OpenMem()
}

// loadIdentity finds id in the identity file. An empty id selects the first
// stored identity, generating an ed25519 one when the file is empty.
func loadIdentity(cfg *config.Config, id string) (*did.LocalSigner, error) {
	fs, err := internalDid.NewFileStore(cfg.Storage().IdentityFile)
	if err != nil {
		return nil, errors.Wrap(err, "opening identity file")
	}

	if id != "" {
		return fs.Find(id)
	}

	ids, err := fs.List()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return fs.Generate(internalDid.KeyTypeEd25519)
	}

	return fs.Find(ids[0])
}
