package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kwacha-bank/kwacha/internal/money"
)

func newCreateCmd(a *app) *cobra.Command {
	var opening string

	cmd := &cobra.Command{
		Use:   "create <account-id> <holder-name>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var balance int64
			if opening != "" {
				var err error
				balance, err = money.Parse(opening, a.cfg.Currency)
				if err != nil {
					return err
				}
			}

			password, err := readNewPassword()
			if err != nil {
				return err
			}

			if err := a.ledger.CreateAccount(cmd.Context(), args[0], args[1], password, balance); err != nil {
				return err
			}
			fmt.Printf("Account %s created with balance %s\n", args[0], money.Format(balance, a.cfg.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&opening, "balance", "", "opening balance, e.g. 100.50")
	return cmd
}

func newDepositCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <account-id> <amount>",
		Short: "Deposit into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := money.Parse(args[1], a.cfg.Currency)
			if err != nil {
				return err
			}
			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}

			acct, err := a.ledger.Authenticate(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			if err := acct.Deposit(amount, ""); err != nil {
				return err
			}
			// Direct account mutations do not self-persist; the caller
			// owns the save.
			if err := a.ledger.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("New balance: %s\n", money.Format(acct.Balance(), a.cfg.Currency))
			return nil
		},
	}
}

func newWithdrawCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <account-id> <amount>",
		Short: "Withdraw from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := money.Parse(args[1], a.cfg.Currency)
			if err != nil {
				return err
			}
			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}

			acct, err := a.ledger.Authenticate(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			if err := acct.Withdraw(amount, ""); err != nil {
				return err
			}
			if err := a.ledger.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("New balance: %s\n", money.Format(acct.Balance(), a.cfg.Currency))
			return nil
		},
	}
}

func newTransferCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <from-id> <to-id> <amount>",
		Short: "Transfer between accounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := money.Parse(args[2], a.cfg.Currency)
			if err != nil {
				return err
			}
			password, err := readPassword("Password for " + args[0] + ": ")
			if err != nil {
				return err
			}

			if err := a.ledger.Transfer(cmd.Context(), args[0], args[1], amount, password); err != nil {
				return err
			}
			fmt.Printf("Transferred %s from %s to %s\n", money.Format(amount, a.cfg.Currency), args[0], args[1])
			return nil
		},
	}
}

func newBalanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show an account balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}
			acct, err := a.ledger.Authenticate(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s): %s\n", acct.ID(), acct.HolderName(), money.Format(acct.Balance(), a.cfg.Currency))
			return nil
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <account-id>",
		Short: "Show recent transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}
			acct, err := a.ledger.Authenticate(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.HistoryLimit
			}

			entries := acct.History(limit)
			if len(entries) == 0 {
				fmt.Println("No transactions")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tKIND\tAMOUNT\tBALANCE\tDESCRIPTION")
			for _, tx := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					tx.Timestamp.Format("2006-01-02 15:04:05"),
					tx.Kind,
					money.Format(tx.Amount, a.cfg.Currency),
					money.Format(tx.BalanceAfter, a.cfg.Currency),
					tx.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of recent entries to show (0 for all)")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			summaries := a.ledger.List()
			if len(summaries) == 0 {
				fmt.Println("No accounts")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tHOLDER\tBALANCE")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.HolderName, money.Format(s.Balance, a.cfg.Currency))
			}
			return w.Flush()
		},
	}
}
