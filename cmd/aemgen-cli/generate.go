package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-aemgen/internal/config"
	"github.com/goliatone/go-aemgen/pkg/manifest"
	"github.com/goliatone/go-aemgen/pkg/prompt"
)

const noElementsMessage = "No custom elements found."

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <manifest>",
		Short: "Generate AEM components for the selected elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args[0])
		},
	}
	flags := cmd.Flags()
	flags.StringP(config.KeyElement, "e", "", `element to generate, or "All"`)
	flags.StringP(config.KeyGroup, "g", "", "component group label")
	flags.Bool(config.KeyVersioned, false, "nest artifacts under a v1 directory")
	flags.StringP(config.KeyNamespace, "n", "", "AEM app directory; empty writes directly into the output directory")
	flags.StringP(config.FlagOutput, "o", config.DefaultOutput, "output directory")
	flags.String(config.KeyTemplates, "", "directory overriding the bundled templates")
	flags.BoolP(config.KeyInteractive, "i", false, "ask for the choices interactively")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	src := manifest.SourceFromFile(path)
	gen := a.orchestrator()

	m, err := gen.LoadManifest(ctx, src)
	if err != nil {
		return err
	}
	if m.Empty() {
		fmt.Fprintln(a.out, noElementsMessage)
		return nil
	}

	choices, err := a.userChoice().Choose(ctx, m.Names)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(a.errOut, "Aborted.")
		}
		return err
	}

	req := a.cfg.Request(src, choices)
	req.Manifest = &m
	summary, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}
	if err := a.reporter().WriteSummary(a.out, summary); err != nil {
		return err
	}
	if failed := len(summary.Failures()); failed > 0 {
		return fmt.Errorf("%d of %d elements failed", failed, summary.Total())
	}
	return nil
}
