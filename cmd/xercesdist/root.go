package main

import (
	"context"
	"io"

	"github.com/ochairo/xercesdist/internal/config"
	"github.com/ochairo/xercesdist/internal/domain/entities"
	"github.com/ochairo/xercesdist/internal/domain/interfaces"
	"github.com/ochairo/xercesdist/internal/domain/interfaces/repositories"
	"github.com/ochairo/xercesdist/internal/domain/services"
	"github.com/ochairo/xercesdist/internal/external-adapters/logrus"
	"github.com/ochairo/xercesdist/internal/external-adapters/yaml"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds what every subcommand needs, built once before the subcommand runs
type app struct {
	v        *viper.Viper
	cfg      *config.Config
	logger   interfaces.Logger
	repo     repositories.TableRepository
	table    *entities.DistributionTable
	resolver *services.Resolver
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "xercesdist",
		Short: "Name the Xerces-C distribution for this platform",
		Long: `xercesdist resolves which prebuilt Xerces-C distribution matches a host.

Build and install scripts call it instead of matching platforms themselves:

  XERCES=$(xercesdist name)
  eval "$(xercesdist env)"`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context(), stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String("os", "", "Resolve for this OS family instead of the host (Darwin, Linux, Windows) [$"+config.EnvName(config.KeyOS)+"]")
	flags.String("arch", "", "Resolve for this pointer width or GOARCH (32, 64, 386, amd64, ...) [$"+config.EnvName(config.KeyArch)+"]")
	flags.String("table", "", "YAML distribution table to use instead of the built-in one [$"+config.EnvName(config.KeyTable)+"]")
	flags.String("log-level", config.Defaults[config.KeyLogLevel], "Log level (error, warn, info, debug) [$"+config.EnvName(config.KeyLogLevel)+"]")
	flags.String("log-format", config.Defaults[config.KeyLogFormat], "Log format (text, json) [$"+config.EnvName(config.KeyLogFormat)+"]")

	lo.Must0(a.v.BindPFlag(config.KeyOS, flags.Lookup("os")))
	lo.Must0(a.v.BindPFlag(config.KeyArch, flags.Lookup("arch")))
	lo.Must0(a.v.BindPFlag(config.KeyTable, flags.Lookup("table")))
	lo.Must0(a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level")))
	lo.Must0(a.v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format")))

	lo.Must0(root.RegisterFlagCompletionFunc("os", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return familyNames(), cobra.ShellCompDirectiveNoFileComp
	}))

	root.AddCommand(
		newNameCmd(a),
		newShowCmd(a),
		newTableCmd(a),
		newEnvCmd(a),
		newVersionCmd(),
	)

	return root
}

func (a *app) init(ctx context.Context, stderr io.Writer) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logrus.NewLogger(logrus.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: stderr,
	})
	if err != nil {
		return err
	}
	a.logger = logger

	a.repo = yaml.NewTableRepository(cfg.TableFile)
	table, err := a.repo.LoadTable(ctx)
	if err != nil {
		return err
	}
	a.table = table
	a.logger.Info("Loaded distribution table", interfaces.F("source", a.repo.Source()))

	a.resolver = services.NewResolver(table, logger)
	return nil
}

// selection resolves for the host, honoring --os and --arch
func (a *app) selection() (entities.Selection, error) {
	return a.resolver.ResolveOverride(a.cfg.OS, a.cfg.Arch)
}

func familyNames() []string {
	return lo.Map(entities.Families(), func(f entities.Family, _ int) string {
		return f.String()
	})
}
