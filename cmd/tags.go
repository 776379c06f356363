package cmd

import (
	"fmt"

	"github.com/bnema/account-keeper/internal/domain"
	"github.com/spf13/cobra"
)

func newTagsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Work with the ';'-separated tag format",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "parse <text>",
			Short: "Split a tag string and print the tags as JSON",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return writeJSON(cmd, app.store.ParseTags(args[0]))
			},
		},
		&cobra.Command{
			Use:   "format <tag>...",
			Short: "Join tags into a single ';'-separated string",
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				tags := make([]domain.Tag, 0, len(args))
				for _, text := range args {
					tags = append(tags, domain.Tag{Text: text})
				}

				_, err := fmt.Fprintln(cmd.OutOrStdout(), app.store.TagsToString(tags))
				return err
			},
		},
	)

	return cmd
}
