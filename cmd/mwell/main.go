// Command mwell is a terminal client for the mwell-store API: it books
// appointments through the four-step wizard, prices baskets and shows the
// edit-window countdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mwell-store/internal/apiclient"
	"mwell-store/internal/booking"
	"mwell-store/internal/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg    *config.ClientConfig
	logger zerolog.Logger
	client *apiclient.Client
	local  *booking.LocalStore
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		baseURL   string
		token     string
		localFile string
	)

	root := &cobra.Command{
		Use:           "mwell",
		Short:         "Book appointments and price orders against the mwell-store API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadClient()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("api-url") {
				cfg.BaseURL = baseURL
			}
			if cmd.Flags().Changed("token") {
				cfg.Token = token
			}
			if cmd.Flags().Changed("local-file") {
				cfg.LocalFile = localFile
			}
			a.init(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&baseURL, "api-url", "", "API base URL (default $MWELL_API_URL)")
	root.PersistentFlags().StringVar(&token, "token", "", "bearer token (default $MWELL_TOKEN)")
	root.PersistentFlags().StringVar(&localFile, "local-file", "", "device appointment file (default $MWELL_LOCAL_FILE)")

	root.AddCommand(
		newBookCmd(a),
		newQuoteCmd(a),
		newCountdownCmd(a),
		newAppointmentsCmd(a),
		newLoginCmd(a),
	)
	return root
}

func (a *app) init(cfg *config.ClientConfig) {
	a.cfg = cfg
	a.logger = config.NewLogger(cfg.Logger)
	a.client = apiclient.New(cfg.BaseURL, cfg.Token, cfg.Timeout, a.logger)
	a.local = booking.NewLocalStore(cfg.LocalFile)
}
