// Package cmd provides the root command and CLI setup for classwalk.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"classwalk.dev/pkg/classwalk/internal/adapter"
	"classwalk.dev/pkg/classwalk/internal/controller"
	"classwalk.dev/pkg/classwalk/internal/domain"
)

var fsAdapter adapter.ClasspathFSAdapter
var archiveAdapter adapter.ArchiveAdapter
var inventoryStore adapter.InventoryStore
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that read/write
// saved inventories.
var outputDirFlag string

// scopesFileFlag points at a YAML loader-hierarchy definition.
var scopesFileFlag string

// excludePatterns filters resources by name for applicable commands.
var excludePatterns []string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalClasspathFSAdapter()
	archiveAdapter = adapter.NewLocalArchiveAdapter()
	inventoryStore = adapter.NewLocalInventoryStore()
	workflow = domain.NewWorkflow(fsAdapter, archiveAdapter, inventoryStore, ui)
}

const classpathHelp = `The search path is taken from, in order of precedence:
  --scopes FILE    a YAML loader-hierarchy definition
  --classpath LIST a ` + "`os.PathListSeparator`" + `-joined entry list
  $CLASSPATH       the conventional environment variable`

const rootLongDescription = `Classwalk inventories every loadable resource (classes and plain files)
reachable from a Java-style search path: directories, jar/zip archives and
the companion references their manifests declare, across a hierarchy of
loader scopes.

` + classpathHelp

const scanLongDescription = `Scan the search path and report every reachable resource, attributed to
the loader scope that owns its entry. Archive manifests' Class-Path
references are followed, each entry scanned at most once.

` + classpathHelp

const listLongDescription = `Flatten the loader hierarchy into the ordered entry-to-scope ownership
table without scanning anything. Ancestor scopes win duplicated entries.

` + classpathHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classwalk",
		Short: "Classpath resource inventory tool",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for saved scan inventories",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&scopesFileFlag, scopesFlagName, viper.GetString(scopesFlagName), "YAML loader-hierarchy definition file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(scopesFlagName), scopesFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude resources matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	configureLogger("", viper.GetBool(logVerboseKey))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
