package cmd

import (
	"github.com/bnema/account-keeper/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfg := viper.New()
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "ak",
		Short:         "Account keeper (ak): manage Local and LDAP account records",
		Long:          "ak keeps a list of Local and LDAP accounts with tags in local storage, validates them and lets you add, update, delete and export them from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindRootFlags(cmd, cfg); err != nil {
				return err
			}

			wired, err := wireApp(cmd.Context(), cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*app = *wired

			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return app.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default ~/.account-keeper/config.toml)")
	flags.String("storage", "", "storage backend: file, sqlite or memory")
	flags.String("storage-path", "", "storage directory (file) or database file (sqlite)")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(app),
		newTagsCmd(app),
	)

	return rootCmd
}

func bindRootFlags(cmd *cobra.Command, cfg *viper.Viper) error {
	bindings := map[string]string{
		config.KeyConfigFile:     "config",
		config.KeyStorageBackend: "storage",
		config.KeyStoragePath:    "storage-path",
		config.KeyVerbose:        "verbose",
	}

	for key, name := range bindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := cfg.BindPFlag(key, flag); err != nil {
			return err
		}
	}

	return nil
}
