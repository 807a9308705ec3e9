package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/notemark/internal/config"
	"github.com/tsawler/notemark/internal/logger"
	"github.com/tsawler/notemark/speaker"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	cfg        *config.Config
	configFile string
	envFile    string
	log        *log.Logger
	palettes   *speaker.Assigner
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "notemark",
		Short: "notemark - render plain-text note markup",
		Long: `notemark renders note blocks written in a small plain-text markup
(tables with merged rows, examples, headers, dialogue) to HTML fragments,
plain text or Markdown.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default: ./notemark.yaml)")
	flags.StringVar(&a.envFile, "env-file", ".env", "Load NOTEMARK_* variables from this file if it exists")
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: warn]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")

	for _, key := range []string{config.KeyLogLevel, config.KeyLogFile} {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(fmt.Sprintf("binding %s flag: %v", key, err))
		}
	}

	rootCmd.AddCommand(
		a.newRenderCmd(),
		a.newInspectCmd(),
		newLinksCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// initConfig resolves settings and configures logging before any command
// runs.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}

	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	a.log = logger.NewStyledLogger("notemark")
	a.palettes = speaker.NewAssigner(cfg.SpeakerCacheTTL)

	a.log.Debug("Configuration loaded", "command", cmd.Name(), "output", cfg.Output, "workers", cfg.Workers)
	return nil
}

// bindFlags binds command-local flags to their config keys.
func (a *app) bindFlags(cmd *cobra.Command, keys ...string) {
	for _, key := range keys {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			panic(fmt.Sprintf("binding %s flag: %v", key, err))
		}
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "notemark v%s\n", version)
		},
	}
}
