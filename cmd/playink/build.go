package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/threechain/playink"
)

func newBuildCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the static site",
		Long: `build renders every page into the output directory. Files whose content
did not change since the last build are left alone, and pages that no longer
exist are removed, using the manifest database. Pass --manifest "" to write
everything unconditionally.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := newApp(v,
				playink.WithOutputDir(v.GetString("out")),
				playink.WithManifest(v.GetString("manifest")),
			)
			if err != nil {
				return err
			}
			report, err := app.Build(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Built %d pages into %s (%d written, %d unchanged, %d removed, %d warnings)\n",
				report.Pages, v.GetString("out"), report.Written, report.Unchanged, report.Removed, len(report.Warnings))
			return nil
		},
	}
	cmd.Flags().String("out", "build", "output directory")
	cmd.Flags().String("manifest", ".playink/manifest.db", "build manifest database, empty to disable")
	return cmd
}
