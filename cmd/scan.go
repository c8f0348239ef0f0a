package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"classwalk.dev/pkg/classwalk/internal/domain"
)

var scanParallelFlag int
var scanClasspathFlag string
var scanScopeFlag string

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the search path and inventory its resources",
		Long:  scanLongDescription,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Interrupt stops in-flight reads and keeps the partial result.
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			return workflow.Scan(ctx, domain.ScanArgs{
				ScopesFile: viper.GetString(scopesFlagName),
				Classpath:  scanClasspathFlag,
				ScopeName:  scanScopeFlag,
				Workers:    viper.GetInt(scanParallelConfigKey),
				Exclude:    viper.GetStringSlice(excludeConfigKey),
				Output:     viper.GetString(outputFlagName),
			})
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&scanParallelFlag, parallelFlagName, "p", viper.GetInt(scanParallelConfigKey), "number of parallel workers for top-level entries")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), scanParallelConfigKey)
	cmd.Flags().StringVar(&scanClasspathFlag, "classpath", "", "search path entries joined by the platform list separator")
	cmd.Flags().StringVar(&scanScopeFlag, "scope", "", "starting scope name (default: the leaf scope)")
}
