package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/threechain/playink"
	"github.com/threechain/playink/views"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("PLAYINK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "playink",
		Short: "playink - the Play ink! course documentation site",
		Long: `playink reads playink.yaml, renders the markdown docs under ./docs and the
homepage feature cards, checks links and writes a static site. It can also
serve the site locally while you edit.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			_, err := playink.ConfigureLogging(v.GetString("log-level"), v.GetString("log-config"))
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "playink.yaml", "site configuration file")
	pf.String("content", "docs", "docs content directory")
	pf.String("static", "static", "static asset directory")
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.String("log-config", "", "zeroconfig YAML file, overrides --log-level")

	root.AddCommand(
		newBuildCmd(v),
		newServeCmd(v),
		newNewCmd(),
		newVersionCmd(),
	)
	return root
}

// newApp loads the site configuration and builds an App from the flags
// and PLAYINK_* environment variables. Without --config or PLAYINK_CONFIG
// a missing playink.yaml selects the built-in course configuration.
func newApp(v *viper.Viper, extra ...playink.Option) (*playink.App, error) {
	cfg, err := loadSiteConfig(v)
	if err != nil {
		return nil, err
	}
	opts := []playink.Option{
		playink.WithContent(os.DirFS(v.GetString("content"))),
		playink.WithStatic(os.DirFS(v.GetString("static"))),
	}
	opts = append(opts, extra...)
	return playink.New(cfg, views.Views(), opts...)
}

func loadSiteConfig(v *viper.Viper) (playink.SiteConfig, error) {
	path := v.GetString("config")
	cfg, err := playink.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) && !v.IsSet("config") {
		log.Info().Str("config", path).Msg("no site configuration found, using the built-in defaults")
		return playink.DefaultConfig(), nil
	}
	return cfg, err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the playink version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "playink %s\n", version)
		},
	}
}
