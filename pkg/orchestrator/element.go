package orchestrator

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/goliatone/go-aemgen/pkg/artifact"
	"github.com/goliatone/go-aemgen/pkg/template"
)

// generateElement runs the per-element state machine and stops at the first
// error.
func (o *Orchestrator) generateElement(b *Batch, name string) Result {
	result := Result{Element: name}
	err := o.scaffold(b, name, &result)
	if err != nil {
		result.Err = &ElementError{Element: name, Err: err}
		o.logger.Warn("element generation failed", zap.String("element", name), zap.Error(err))
		return result
	}
	o.logger.Info("element generated", zap.String("element", name), zap.Int("files", len(result.Files)))
	return result
}

func (o *Orchestrator) scaffold(b *Batch, name string, result *Result) error {
	if !b.Manifest.Has(name) {
		return fmt.Errorf("%w: %q is not a custom element definition", ErrElementNotFound, name)
	}
	el, ok := b.Manifest.Element(name)
	if !ok {
		return fmt.Errorf("%w: no declaration for %q", ErrElementNotFound, name)
	}

	req := b.Request
	if req.Versioned && b.versionErr != nil {
		return b.versionErr
	}
	root := RootDir(req.OutputDir, req.Namespace, name)
	o.logger.Debug("generating element",
		zap.String("element", name),
		zap.String("root", root),
		zap.Bool("versioned", req.Versioned),
	)

	if err := o.writer.EnsureDir(root); err != nil {
		return err
	}
	rootDescriptor, err := o.resolver.Raw(template.KeyRootDescriptor, nil)
	if err != nil {
		return err
	}
	if err := o.write(result, filepath.Join(root, ".content.xml"), rootDescriptor); err != nil {
		return err
	}

	working := filepath.Join(root, name)
	if err := o.writer.EnsureDir(working); err != nil {
		return err
	}

	if req.Versioned {
		if err := o.write(result, filepath.Join(working, ".content.xml"), b.versionContainer); err != nil {
			return err
		}
		versionDir := filepath.Join(working, "v1")
		if err := o.writer.EnsureDir(versionDir); err != nil {
			return err
		}
		pointer := template.Substitute(b.versionPointer, template.Values{template.Component: name})
		if err := o.write(result, filepath.Join(versionDir, ".content.xml"), pointer); err != nil {
			return err
		}
		working = filepath.Join(versionDir, name)
		if err := o.writer.EnsureDir(working); err != nil {
			return err
		}
	}

	in := artifact.NewInput(el, req.Group)
	for _, spec := range o.registry.Specs() {
		rendered, err := o.resolver.Render(spec.TemplateKey, spec.Values(in), spec.Normalize)
		if err != nil {
			return fmt.Errorf("%s: %w", spec.Name, err)
		}
		target := filepath.Join(working, filepath.FromSlash(spec.OutputPath(name)))
		if err := o.writer.EnsureDir(filepath.Dir(target)); err != nil {
			return err
		}
		if err := o.write(result, target, rendered); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) write(result *Result, path, content string) error {
	if err := o.writer.Write(path, content); err != nil {
		return err
	}
	result.Files = append(result.Files, path)
	o.logger.Debug("wrote file", zap.String("path", path))
	return nil
}
