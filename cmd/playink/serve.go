package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/threechain/playink"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site locally, re-reading docs as they change",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := newApp(v,
				playink.WithAddr(v.GetString("addr")),
				playink.WithDocCacheTTL(v.GetDuration("reload")),
				playink.WithWatch(v.GetString("content"), v.GetString("static")),
			)
			if err != nil {
				return err
			}
			return app.Serve(ctx)
		},
	}
	cmd.Flags().String("addr", ":3000", "listen address")
	cmd.Flags().Duration("reload", 2*time.Second, "how long loaded docs are reused before re-reading")
	return cmd
}
