package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/goliatone/go-aemgen/internal/config"
	"github.com/goliatone/go-aemgen/pkg/orchestrator"
	"github.com/goliatone/go-aemgen/pkg/output"
	"github.com/goliatone/go-aemgen/pkg/prompt"
	"github.com/goliatone/go-aemgen/pkg/report"
	"github.com/goliatone/go-aemgen/pkg/template"
)

// app carries the collaborators shared by every command. Tests replace the
// filesystem, logger, and chooser.
type app struct {
	out    io.Writer
	errOut io.Writer
	fs     afero.Fs

	logger  *zap.Logger
	chooser func(config.Config) prompt.UserChoice
	loader  *config.Loader

	configPath string
	cfg        config.Config
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut, fs: afero.NewOsFs()}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "aemgen",
		Short: "Scaffold AEM components from a custom-elements manifest",
		Long: `aemgen reads a custom-elements manifest and writes, for each selected element,
an AEM component: its content descriptor, HTL markup, and authoring dialog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./aemgen.yaml when present)")
	root.PersistentFlags().BoolP(config.KeyVerbose, "v", false, "enable debug logging")

	root.AddCommand(newGenerateCmd(a), newListCmd(a), newVersionCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.loader == nil {
		a.loader = config.New(config.WithFs(a.fs))
	}
	if err := a.loader.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	cfg, err := a.loader.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		zcfg := zap.NewProductionConfig()
		if cfg.Verbose {
			zcfg = zap.NewDevelopmentConfig()
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}
	if cfg.File != "" {
		a.logger.Debug("loaded config", zap.String("file", cfg.File))
	}
	return nil
}

func (a *app) orchestrator() *orchestrator.Orchestrator {
	opts := []orchestrator.Option{
		orchestrator.WithLogger(a.logger),
		orchestrator.WithWriter(output.NewWriter(a.fs)),
	}
	if a.cfg.Templates != "" {
		opts = append(opts, orchestrator.WithTemplateStore(template.NewDirStore(a.fs, a.cfg.Templates)))
	}
	return orchestrator.New(opts...)
}

func (a *app) userChoice() prompt.UserChoice {
	if a.chooser != nil {
		return a.chooser(a.cfg)
	}
	if a.cfg.Interactive {
		return prompt.NewInteractive(prompt.WithDefaults(a.cfg.Choices()))
	}
	return prompt.Scripted{Choices: a.cfg.Choices()}
}

func (a *app) reporter() *report.Reporter {
	return report.New(language.English)
}
