package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	tomlexport "github.com/bnema/account-keeper/internal/adapters/export/toml"
	accountsrender "github.com/bnema/account-keeper/internal/adapters/render/accounts"
	"github.com/bnema/account-keeper/internal/domain"
	"github.com/spf13/cobra"
)

var errNoFieldsToUpdate = errors.New("no fields to update")

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
		newAccountShowCmd(app),
		newAccountAddCmd(app),
		newAccountUpdateCmd(app),
		newAccountDeleteCmd(app),
		newAccountValidateCmd(app),
		newAccountExportCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	var asJSON bool
	var showPasswords bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts := app.store.Accounts()
			if asJSON {
				return writeJSON(cmd, accounts)
			}

			return writeAccountsOutput(cmd, app, accounts, showPasswords)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print accounts as JSON")
	cmd.Flags().BoolVar(&showPasswords, "show-passwords", false, "print stored passwords instead of a mask")

	return cmd
}

func newAccountShowCmd(app *app) *cobra.Command {
	var asJSON bool
	var showPasswords bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := lookupAccount(app, args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, account)
			}

			return writeAccountsOutput(cmd, app, []domain.Account{account}, showPasswords)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the account as JSON")
	cmd.Flags().BoolVar(&showPasswords, "show-passwords", false, "print the stored password instead of a mask")

	return cmd
}

func newAccountAddCmd(app *app) *cobra.Command {
	fields := &accountFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an account",
		Long:  "Create an account. Fields start empty with type Local; the given flags are applied and the result must pass validation before anything is stored.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			updates, err := fields.update(cmd.Flags())
			if err != nil {
				return err
			}

			if err := checkValid(cmd, app, domain.NewAccount("").Apply(updates)); err != nil {
				return err
			}

			account, err := app.store.AddAccount(cmd.Context())
			if err != nil {
				return fmt.Errorf("add account: %w", err)
			}
			if err := app.store.UpdateAccount(cmd.Context(), account.ID, updates); err != nil {
				return fmt.Errorf("fill account %s: %w", account.ID, err)
			}
			app.logger.Debug("account added", "id", account.ID)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), account.ID)
			return err
		},
	}

	fields.register(cmd)

	return cmd
}

func newAccountUpdateCmd(app *app) *cobra.Command {
	fields := &accountFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an account",
		Long:  "Change only the fields given as flags. Switching the type to LDAP clears the password.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := lookupAccount(app, args[0])
			if err != nil {
				return err
			}

			updates, err := fields.update(cmd.Flags())
			if err != nil {
				return err
			}
			if updates.IsEmpty() {
				return errNoFieldsToUpdate
			}

			if err := checkValid(cmd, app, account.Apply(updates)); err != nil {
				return err
			}

			if err := app.store.UpdateAccount(cmd.Context(), account.ID, updates); err != nil {
				return fmt.Errorf("update account %s: %w", account.ID, err)
			}
			app.logger.Debug("account updated", "id", account.ID)

			return nil
		},
	}

	fields.register(cmd)

	return cmd
}

func newAccountDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := lookupAccount(app, args[0])
			if err != nil {
				return err
			}

			if err := app.store.DeleteAccount(cmd.Context(), account.ID); err != nil {
				return fmt.Errorf("delete account %s: %w", account.ID, err)
			}
			app.logger.Debug("account deleted", "id", account.ID)

			return nil
		},
	}
}

func newAccountValidateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <id>",
		Short: "Check an account's login and password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := lookupAccount(app, args[0])
			if err != nil {
				return err
			}

			errs := app.store.ValidateAccount(account)
			rendered, err := app.validationRenderer(errs)
			if err != nil {
				return fmt.Errorf("render validation: %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
				return err
			}

			if errs.HasErrors() {
				return errs
			}

			return nil
		},
	}
}

func newAccountExportCmd(app *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all accounts to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts := app.store.Accounts()

			switch format {
			case "json":
				return writeJSON(cmd, accounts)
			case "toml":
				return tomlexport.Encode(cmd.OutOrStdout(), accounts)
			default:
				return fmt.Errorf("unsupported export format %q (use json or toml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "export format: json or toml")

	return cmd
}

func lookupAccount(app *app, rawID string) (domain.Account, error) {
	account, ok := app.store.GetAccountByID(domain.AccountID(rawID))
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, rawID)
	}

	return account, nil
}

// checkValid prints the validation result to stderr and returns it as an
// error when the account would not pass.
func checkValid(cmd *cobra.Command, app *app, account domain.Account) error {
	errs := app.store.ValidateAccount(account)
	if !errs.HasErrors() {
		return nil
	}

	rendered, err := app.validationRenderer(errs)
	if err != nil {
		return fmt.Errorf("render validation: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), rendered)

	return errs
}

func writeAccountsOutput(cmd *cobra.Command, app *app, accounts []domain.Account, showPasswords bool) error {
	rendered, err := app.accountsRenderer(accounts, accountsrender.RenderOptions{ShowPasswords: showPasswords})
	if err != nil {
		return fmt.Errorf("render accounts: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
