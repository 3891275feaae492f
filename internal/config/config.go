// Package config resolves generator settings from flags, environment, an
// optional aemgen.yaml file, and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-aemgen/pkg/manifest"
	"github.com/goliatone/go-aemgen/pkg/orchestrator"
	"github.com/goliatone/go-aemgen/pkg/prompt"
)

const (
	fileName  = "aemgen"
	fileType  = "yaml"
	envPrefix = "AEMGEN"
)

// Keys shared by the config file, environment (AEMGEN_<KEY>), and flags.
const (
	KeyOutput      = "output"
	KeyGroup       = "group"
	KeyVersioned   = "versioned"
	KeyNamespace   = "namespace"
	KeyTemplates   = "templates"
	KeyElement     = "element"
	KeyInteractive = "interactive"
	KeyVerbose     = "verbose"
)

// DefaultOutput is the output directory used when none is configured.
const DefaultOutput = "dist"

// Config is the resolved settings snapshot.
type Config struct {
	Output      string
	Group       string
	Versioned   bool
	Namespace   string
	Templates   string
	Element     string
	Interactive bool
	Verbose     bool
	// File is the config file that was read, empty when none was found.
	File string
}

// Loader wraps a dedicated viper instance so callers never share global state.
type Loader struct {
	v *viper.Viper
}

// Option customises a Loader.
type Option func(*Loader)

// WithFs reads config files from filesystem instead of the OS.
func WithFs(filesystem afero.Fs) Option {
	return func(l *Loader) {
		if filesystem != nil {
			l.v.SetFs(filesystem)
		}
	}
}

// New returns a Loader with defaults and environment binding applied.
func New(options ...Option) *Loader {
	v := viper.New()
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyGroup, "")
	v.SetDefault(KeyVersioned, false)
	v.SetDefault(KeyNamespace, "")
	v.SetDefault(KeyTemplates, "")
	v.SetDefault(KeyElement, "")
	v.SetDefault(KeyInteractive, false)
	v.SetDefault(KeyVerbose, false)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	l := &Loader{v: v}
	for _, opt := range options {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// FlagOutput is the command-line spelling of KeyOutput. Every other key is
// bound to the flag of the same name.
const FlagOutput = "out"

// BindFlags binds every known key to its flag, when present.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range []string{KeyOutput, KeyGroup, KeyVersioned, KeyNamespace, KeyTemplates, KeyElement, KeyInteractive, KeyVerbose} {
		name := key
		if key == KeyOutput {
			name = FlagOutput
		}
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("config: bind flag %s: %w", key, err)
		}
	}
	return nil
}

// Load reads path when given; otherwise ./aemgen.yaml is read if it exists.
// An explicit path that cannot be read is an error.
func (l *Loader) Load(path string) (Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		l.v.SetConfigName(fileName)
		l.v.SetConfigType(fileType)
		l.v.AddConfigPath(".")
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: read %s.%s: %w", fileName, fileType, err)
			}
		}
	}

	cfg := Config{
		Output:      strings.TrimSpace(l.v.GetString(KeyOutput)),
		Group:       l.v.GetString(KeyGroup),
		Versioned:   l.v.GetBool(KeyVersioned),
		Namespace:   strings.TrimSpace(l.v.GetString(KeyNamespace)),
		Templates:   strings.TrimSpace(l.v.GetString(KeyTemplates)),
		Element:     strings.TrimSpace(l.v.GetString(KeyElement)),
		Interactive: l.v.GetBool(KeyInteractive),
		Verbose:     l.v.GetBool(KeyVerbose),
		File:        l.v.ConfigFileUsed(),
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return cfg, nil
}

// Choices returns the configured answers in prompt form.
func (c Config) Choices() prompt.Choices {
	return prompt.Choices{
		Selection: c.Element,
		Group:     c.Group,
		Versioned: c.Versioned,
		Namespace: c.Namespace,
	}
}

// Request combines resolved choices with the configured output directory.
func (c Config) Request(src manifest.Source, choices prompt.Choices) orchestrator.Request {
	return orchestrator.Request{
		Source:    src,
		Selection: choices.Selection,
		Group:     choices.Group,
		Versioned: choices.Versioned,
		Namespace: choices.Namespace,
		OutputDir: c.Output,
	}
}
