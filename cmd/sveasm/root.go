package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xyproto/env/v2"

	"github.com/tetratelabs/sveasm/internal/features"
)

// verboseEnvVarName enables --verbose when set to a true value.
const verboseEnvVarName = "SVEASM_VERBOSE"

// globalState is the process environment the commands run against.
type globalState struct {
	fs     afero.Fs
	stdIn  io.Reader
	stdOut io.Writer
	stdErr io.Writer
}

type rootCommand struct {
	gs     *globalState
	cmd    *cobra.Command
	logger *logrus.Logger

	verbose  bool
	features string
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{
		gs: gs,
		logger: &logrus.Logger{
			Out:       gs.stdErr,
			Formatter: &logrus.TextFormatter{DisableTimestamp: true},
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.InfoLevel,
		},
	}
	c.cmd = &cobra.Command{
		Use:               "sveasm",
		Short:             "ARM SVE and SVE2 instruction encoder",
		Long:              "sveasm encodes listings of SVE and SVE2 instructions into machine words.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.SetOut(gs.stdOut)
	c.cmd.SetErr(gs.stdErr)
	c.cmd.PersistentFlags().AddFlagSet(c.rootCmdPersistentFlagSet())
	c.cmd.AddCommand(getCmdEncode(c), getCmdVersion(gs))
	return c
}

func (c *rootCommand) rootCmdPersistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.BoolVarP(&c.verbose, "verbose", "v", env.Bool(verboseEnvVarName), "log every encoded instruction")
	flags.StringVar(&c.features, "features", "",
		"comma separated ISA extensions to allow: sve2, bitperm, i8mm, all or none (default $"+features.EnvVarName+", else all)")
	return flags
}

func (c *rootCommand) persistentPreRunE(*cobra.Command, []string) error {
	if c.verbose {
		c.logger.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// featureSet returns the extensions selected by --features, falling back to
// the environment.
func (c *rootCommand) featureSet() (features.Set, error) {
	if c.cmd.PersistentFlags().Changed("features") {
		return features.Parse(c.features)
	}
	return features.FromEnvironment()
}
