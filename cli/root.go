package cli

import (
	"github.com/spf13/cobra"
	"github.com/yeremiapane/order-api/config"
	"github.com/yeremiapane/order-api/utils"
)

// RootOptions holds flags shared by every command. Empty values leave the
// environment configuration untouched.
type RootOptions struct {
	Port     string
	DBDriver string
	DBDSN    string
	LogLevel string

	cfg *config.Config
}

// Config returns the configuration resolved in PersistentPreRunE.
func (o *RootOptions) Config() *config.Config {
	return o.cfg
}

func (o *RootOptions) resolve() {
	cfg := config.Load()
	if o.Port != "" {
		cfg.Port = o.Port
	}
	if o.DBDriver != "" {
		cfg.DBDriver = o.DBDriver
	}
	if o.DBDSN != "" {
		cfg.DBDSN = o.DBDSN
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	o.cfg = cfg
}

// NewRootCommand creates the root command. Running it without a subcommand
// starts the HTTP server.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	serve := NewServeCommand(opts)

	cmd := &cobra.Command{
		Use:           "order-api",
		Short:         "Order API - customers, items and orders over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.resolve()
			utils.InitLogger(opts.cfg.LogLevel, opts.cfg.LogFormat)
			return nil
		},
		RunE: serve.RunE,
	}

	cmd.PersistentFlags().StringVar(&opts.Port, "port", "", "HTTP port (env PORT)")
	cmd.PersistentFlags().StringVar(&opts.DBDriver, "db-driver", "", "database driver: sqlite|mysql (env DB_DRIVER)")
	cmd.PersistentFlags().StringVar(&opts.DBDSN, "db-dsn", "", "database DSN or sqlite file (env DB_DSN)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (env LOG_LEVEL)")

	cmd.AddCommand(serve)
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}
