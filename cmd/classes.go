package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"classwalk.dev/pkg/classwalk/internal/domain"
)

var classesPackageFlag string
var classesRecursiveFlag bool
var classesTopLevelFlag bool

// classesCmd represents the classes command.
var classesCmd = newClassesCmd()

func newClassesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Query class records from a saved scan",
		Long: `Query the class records of a previously saved scan inventory (see the
scan command's --output flag). Without flags every class resource is
listed; --package narrows to one package, --recursive includes its
subpackages and --top-level drops nested and anonymous classes.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Classes(context.Background(), domain.ClassesArgs{
				Output:    viper.GetString(outputFlagName),
				Package:   classesPackageFlag,
				Recursive: classesRecursiveFlag,
				TopLevel:  classesTopLevelFlag,
			})
		},
	}

	cmd.Flags().StringVar(&classesPackageFlag, "package", "", "restrict to classes in this package")
	cmd.Flags().BoolVar(&classesRecursiveFlag, "recursive", false, "include subpackages of --package")
	cmd.Flags().BoolVar(&classesTopLevelFlag, "top-level", false, "only top-level classes")

	return cmd
}

func init() {
	rootCmd.AddCommand(classesCmd)
}
