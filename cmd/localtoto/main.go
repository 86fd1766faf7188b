// Command localtoto runs the LocalToto rider app.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/localtoto/localtoto/pkg/localtoto"
	"github.com/localtoto/localtoto/pkg/localtoto/catalog"
	"github.com/localtoto/localtoto/pkg/localtoto/config"
	"github.com/localtoto/localtoto/pkg/localtoto/locale"
	"github.com/localtoto/localtoto/pkg/localtoto/root"
	"github.com/localtoto/localtoto/pkg/localtoto/screens"
	"github.com/localtoto/localtoto/pkg/localtoto/session"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		color.Red("localtoto: %v", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		envPath    string
		scheme     string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:           "localtoto",
		Short:         "LocalToto e-rickshaw booking app",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadEnvFile(envPath); err != nil {
				return err
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("scheme") {
				cfg.UI.ColorScheme = scheme
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "localtoto.toml", "path to the TOML configuration file")
	cmd.Flags().StringVar(&envPath, "env-file", ".env", "dotenv file loaded before the configuration")
	cmd.Flags().StringVar(&scheme, "scheme", "", "color scheme: light, dark or system")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	if err := localtoto.Init(cfg); err != nil {
		return err
	}
	defer localtoto.Close()

	logger := localtoto.GetLogger()

	text, err := locale.New(logger, cfg.UI.Language)
	if err != nil {
		logger.Error("failed to load messages", "error", err)
		return err
	}

	sess := session.New(logger)
	sw := root.New(sess, logger)
	defer sw.Close()

	app := localtoto.NewApp(sw, screens.Deps{
		Session: sess,
		Catalog: catalog.Default(),
		Text:    text,
		Logger:  logger,
	}, cfg.Scheme())

	logger.Info("starting", "scheme", string(cfg.Scheme()), "language", cfg.UI.Language)

	err = localtoto.Run(ctx, app, localtoto.RunOptions{HardwareDevice: cfg.Input.HardwareDevice})
	switch {
	case err == nil, localtoto.IsCancelled(err):
		logger.Info("exiting")
		return nil
	case localtoto.IsInfrastructureError(err):
		logger.Error("shell failure", "error", err)
	default:
		logger.Error("stopped", "error", err)
	}
	return err
}
