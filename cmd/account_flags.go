package cmd

import (
	"github.com/bnema/account-keeper/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagType       = "type"
	flagLogin      = "login"
	flagPassword   = "password"
	flagNoPassword = "no-password"
	flagTags       = "tags"
)

// accountFlags turns the flags a user actually set into a partial update.
type accountFlags struct {
	accountType string
	login       string
	password    string
	noPassword  bool
	tags        string
}

func (f *accountFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.accountType, flagType, "", "account type: Local or LDAP")
	flags.StringVar(&f.login, flagLogin, "", "login (max 100 characters)")
	flags.StringVar(&f.password, flagPassword, "", "password for Local accounts (max 100 characters, stored in clear text)")
	flags.BoolVar(&f.noPassword, flagNoPassword, false, "clear the stored password")
	flags.StringVar(&f.tags, flagTags, "", "tags separated by ';', e.g. \"dev; ops\"")

	cmd.MarkFlagsMutuallyExclusive(flagPassword, flagNoPassword)
}

func (f *accountFlags) update(flags *pflag.FlagSet) (domain.AccountUpdate, error) {
	var update domain.AccountUpdate

	if flags.Changed(flagType) {
		accountType, err := domain.ParseAccountType(f.accountType)
		if err != nil {
			return domain.AccountUpdate{}, err
		}
		update.Type = domain.Some(accountType)
	}
	if flags.Changed(flagLogin) {
		update.Login = domain.Some(f.login)
	}
	if flags.Changed(flagPassword) {
		update.Password = domain.Some(domain.StringPtr(f.password))
	}
	if flags.Changed(flagNoPassword) && f.noPassword {
		update.Password = domain.Some[*string](nil)
	}
	if flags.Changed(flagTags) {
		update.Tags = domain.Some(domain.ParseTags(f.tags))
	}

	return update, nil
}
