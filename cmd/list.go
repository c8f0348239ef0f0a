package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"classwalk.dev/pkg/classwalk/internal/domain"
)

var listClasspathFlag string
var listScopeFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List search-path entries and their owning scopes",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.ListEntries(context.Background(), domain.ListArgs{
				ScopesFile: viper.GetString(scopesFlagName),
				Classpath:  listClasspathFlag,
				ScopeName:  listScopeFlag,
			})
		},
	}

	cmd.Flags().StringVar(&listClasspathFlag, "classpath", "", "search path entries joined by the platform list separator")
	cmd.Flags().StringVar(&listScopeFlag, "scope", "", "starting scope name (default: the leaf scope)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
