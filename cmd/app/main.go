package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bagdasarian/org-tree/internal/config"
	"github.com/bagdasarian/org-tree/internal/handler"
	"github.com/bagdasarian/org-tree/internal/logger"
	"github.com/bagdasarian/org-tree/internal/repository/memory"
	"github.com/bagdasarian/org-tree/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:          "orgtree",
		Short:        "Build a team hierarchy where every manager has at most two subordinates",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			hierarchyRepo := memory.NewHierarchyRepository()
			hierarchyService := service.NewHierarchyService(hierarchyRepo, log)

			h := handler.NewHandler(hierarchyService, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Console.Indent)

			log.WithFields(logrus.Fields{"level": cfg.Log.Level, "format": cfg.Log.Format}).Debug("starting menu")
			return h.Run()
		},
	}

	bindFlags(cmd.Flags(), cfg)

	return cmd
}

// bindFlags позволяет переопределить значения из окружения флагами
func bindFlags(flags *pflag.FlagSet, cfg *config.Config) {
	flags.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "log format (text, json)")
	flags.StringVar(&cfg.Console.Indent, "indent", cfg.Console.Indent, "indentation used per hierarchy level")
}
