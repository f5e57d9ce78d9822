// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"motifmask/internal/clibase"
	"motifmask/internal/config"
	"motifmask/internal/logging"
	"motifmask/internal/motif"
	"motifmask/internal/version"
)

// exitCode carries a non-zero exit status out of cobra.
type exitCode int

func (c exitCode) Error() string { return fmt.Sprintf("exit status %d", int(c)) }

// usageError marks failures that exit 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usage(err error) error { return usageError{err: err} }

// env is what every subcommand needs after flags are parsed.
type env struct {
	cfg    config.Config
	log    *logrus.Logger
	stdout io.Writer
	stderr io.Writer
}

func setup(cmd *cobra.Command, stdout, stderr io.Writer) (*env, error) {
	configFile, _ := cmd.Flags().GetString("config")
	v, err := config.New(cmd.Flags(), configFile)
	if err != nil {
		return nil, usage(err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, usage(err)
	}
	log, err := logging.New(stderr, cfg.LogLevel, cfg.Quiet)
	if err != nil {
		return nil, usage(err)
	}
	return &env{cfg: cfg, log: log, stdout: stdout, stderr: stderr}, nil
}

// library loads and narrows the motif library.
func (e *env) library() (*motif.Library, error) {
	lib, err := motif.Load(e.cfg.Classes, e.cfg.Instances, e.log)
	if err != nil {
		return nil, usage(err)
	}
	lc := e.cfg.Library
	lib = lib.WithoutCategories(lc.ExcludeCategories...).OnlyCategories(lc.IncludeCategories...)
	if lc.LibraryMaxProbability > 0 {
		lib = lib.MaxProbability(lc.LibraryMaxProbability)
	}
	if lib.Len() == 0 {
		return nil, usage(fmt.Errorf("no motif class left after library filters"))
	}
	e.log.WithField("classes", lib.Len()).Debug("library filtered")
	return lib, nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "motifmask",
		Short:         "Annotate and mask short linear motifs in protein sequences",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("motifmask version {{.Version}}\n")
	clibase.RegisterRoot(root.PersistentFlags())

	root.AddCommand(
		newAssignCmd(stdout, stderr),
		newMaskCmd(stdout, stderr),
		newLibraryCmd(stdout, stderr),
		newVersionCmd(stdout),
	)
	return root
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	root.SetArgs(argv)

	err := root.ExecuteContext(parent)
	var code exitCode
	var uerr usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &code):
		return int(code)
	case errors.As(err, &uerr):
		fmt.Fprintln(stderr, "error:", uerr.err)
		return 2
	default:
		// flag and argument errors from cobra
		fmt.Fprintln(stderr, "error:", err)
		fmt.Fprintln(stderr, "Run 'motifmask --help' for usage.")
		return 2
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
