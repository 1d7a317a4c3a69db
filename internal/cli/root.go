// Package cli implements the interactive command surface. It is a thin
// wrapper: it collects strings and amounts, prompts for passwords, and
// calls the ledger core, which owns every invariant.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kwacha-bank/kwacha/internal/config"
	"github.com/kwacha-bank/kwacha/internal/ledger"
	"github.com/kwacha-bank/kwacha/internal/logging"
	"github.com/kwacha-bank/kwacha/internal/notification"
	"github.com/kwacha-bank/kwacha/internal/store"
)

type app struct {
	cfg    config.Config
	logger *slog.Logger
	ledger *ledger.Ledger
}

// NewRootCmd builds the command tree. The ledger is opened once in the
// persistent pre-run so every subcommand shares the same instance and
// snapshot file.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "kwacha",
		Short:         "Single-ledger account management",
		Long:          "kwacha keeps a single ledger of accounts with password-protected balances,\nan append-only transaction history and a durable JSON snapshot.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.New(cfg.LogLevel)

			st := store.NewFileStore(cfg.StorePath)
			led, err := ledger.Open(cmd.Context(), st, a.logger, notification.NewLoggerNotifier(a.logger))
			if err != nil {
				return err
			}
			a.ledger = led
			return nil
		},
	}

	root.AddCommand(
		newCreateCmd(a),
		newDepositCmd(a),
		newWithdrawCmd(a),
		newTransferCmd(a),
		newBalanceCmd(a),
		newHistoryCmd(a),
		newListCmd(a),
	)
	return root
}
