package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/comalice/actionx"
	"github.com/comalice/actionx/internal/config"
	"github.com/comalice/actionx/internal/logger"
	"github.com/comalice/actionx/manifest"
)

type app struct {
	out    io.Writer
	errOut io.Writer

	logLevel  string
	logJSON   bool
	namespace string

	cfg *config.Config
	log *log.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "actionx",
		Short:         "Build action creators from declarative manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON")
	flags.StringVar(&a.namespace, "namespace", "", "override the manifest namespace separator")

	root.AddCommand(
		a.inspectCmd(),
		a.dispatchCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]any{
		"log_level": a.logLevel,
		"namespace": a.namespace,
	}
	if cmd.Flags().Changed("log-json") {
		overrides["log_json"] = a.logJSON
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		overrides["format"] = f.Value.String()
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return a.fail(err)
	}
	a.cfg = cfg
	a.log = logger.New(logger.Config{Level: cfg.LogLevel, JSON: cfg.LogJSON, Output: a.errOut})
	return nil
}

// build loads the manifest at path and creates its action creators.
func (a *app) build(path string) (*manifest.Manifest, actionx.CreatorMap, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, nil, err
	}
	opts := []actionx.Option{actionx.WithLogger(a.log)}
	if a.cfg.Namespace != "" {
		opts = append(opts, actionx.WithNamespace(a.cfg.Namespace))
	}
	creators, err := m.Build(newRegistry(), opts...)
	if err != nil {
		return nil, nil, err
	}
	digest, err := m.Digest()
	if err != nil {
		return nil, nil, err
	}
	a.log.Info("manifest loaded", "path", path, "name", m.Name, "digest", digest, "creators", len(creators.Types()))
	return m, creators, nil
}

// newRegistry extends the builtin transforms with the ones the command offers.
//
//	stamp  meta holding the creation time and argument count
func newRegistry() *manifest.Registry {
	reg := manifest.NewRegistry()
	_ = reg.Register("stamp", func(args ...any) any {
		return map[string]any{
			"at":   time.Now().UTC().Format(time.RFC3339),
			"args": len(args),
		}
	})
	return reg
}

func (a *app) fail(err error) error {
	fmt.Fprintln(a.errOut, "Error:", err)
	return err
}
