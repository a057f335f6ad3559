package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tcfw/didpay/internal/config"
	internalDid "github.com/tcfw/didpay/internal/did"
)

var (
	keysCmd = &cobra.Command{
		Use:   "keys",
		Short: "Local identity commands",
	}

	keys_generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a did:key identity",
		RunE:  runKeysGenerate,
	}

	keys_listCmd = &cobra.Command{
		Use:   "list",
		Short: "List local identities",
		RunE:  runKeysList,
	}
)

func init() {
	keys_generateCmd.Flags().StringP("type", "t", internalDid.KeyTypeEd25519, "key type: ed25519, secp256k1, bls12381 or p256")
}

func runKeysGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	fs, err := internalDid.NewFileStore(cfg.Storage().IdentityFile)
	if err != nil {
		return errors.Wrap(err, "opening identity file")
	}

	kt, _ := cmd.Flags().GetString("type")

	s, err := fs.Generate(kt)
	if err != nil {
		return errors.Wrap(err, "generating identity")
	}

	d, _ := s.DID(cmd.Context())
	fmt.Println(d)

	return nil
}

func runKeysList(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	fs, err := internalDid.NewFileStore(cfg.Storage().IdentityFile)
	if err != nil {
		return errors.Wrap(err, "opening identity file")
	}

	ids, err := fs.List()
	if err != nil {
		return err
	}

	ctx := context.Background()

	for _, id := range ids {
		s, err := fs.Find(id)
		if err != nil {
			return err
		}

		doc, err := s.Document(ctx)
		if err != nil {
			return err
		}

		b, _ := json.MarshalIndent(doc, "", "  ")
		fmt.Printf("%s\n", b)
	}

	return nil
}
