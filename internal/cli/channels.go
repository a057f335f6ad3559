package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	apipb "github.com/tcfw/didpay/api"
	"github.com/tcfw/didpay/internal/api"
	"github.com/tcfw/didpay/internal/utils/logging"
	"github.com/tcfw/didpay/pkg/subrav"
)

var (
	channelsCmd = &cobra.Command{
		Use:   "channels",
		Short: "Sub-channels of a running payee",
	}

	channels_listCmd = &cobra.Command{
		Use:   "list",
		Short: "list sub-channels",
		Run:   runChannelsList,
	}

	channels_claimCmd = &cobra.Command{
		Use:   "claim",
		Short: "claim accepted vouchers on the ledger",
		Run:   runChannelsClaim,
	}
)

func init() {
	channels_claimCmd.Flags().String("channel", "", "channel id. blank claims every sub-channel over --min")
	channels_claimCmd.Flags().String("fragment", "", "verification method fragment of the sub-channel")
	channels_claimCmd.Flags().String("min", "0", "minimum unclaimed amount when claiming all")
}

func runChannelsList(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := api.NewClient()
	if err != nil {
		logging.WithError(err).Error("constructing client")
		return
	}
	defer c.Close()

	res, err := c.Channels().List(ctx, &apipb.ListRequest{})
	if err != nil {
		logging.WithError(err).Error("listing sub-channels")
		return
	}

	s, _ := json.MarshalIndent(res.SubChannels, "", "  ")

	fmt.Printf("%s\n", s)
}

func runChannelsClaim(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	req := &apipb.ClaimRequest{}
	req.ChannelId, _ = cmd.Flags().GetString("channel")
	req.VmIdFragment, _ = cmd.Flags().GetString("fragment")

	minAmount, _ := cmd.Flags().GetString("min")
	if _, err := subrav.ParseBigInt(minAmount); err != nil {
		logging.WithError(err).Error("failed to understand flag 'min'")
		return
	}
	req.MinAmount = minAmount

	c, err := api.NewClient()
	if err != nil {
		logging.WithError(err).Error("constructing client")
		return
	}
	defer c.Close()

	res, err := c.Channels().Claim(ctx, req)
	if err != nil {
		logging.WithError(err).Error("claiming")
		return
	}

	for _, r := range res.Receipts {
		fmt.Printf("claimed %s on %s#%s (nonce %s, total %s)\n", r.Claimed, r.ChannelId, r.VmIdFragment, r.Nonce, r.Total)
	}
}
