package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"motifmask/internal/annotate"
	"motifmask/internal/appcore"
	"motifmask/internal/clibase"
	"motifmask/internal/cliutil"
	"motifmask/internal/config"
	"motifmask/internal/disorder"
	"motifmask/internal/engine"
	"motifmask/internal/motif"
	"motifmask/internal/output"
	"motifmask/internal/runutil"
	"motifmask/internal/summary"
	"motifmask/internal/version"
	"motifmask/internal/visitors"
	"motifmask/internal/writers"
)

func newAssignCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assign [FASTA...]",
		Short:   "Report motif occurrences that survive the enabled filters",
		Example: clibase.AssignExamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssign(cmd, args, stdout, stderr)
		},
	}
	fs := cmd.Flags()
	clibase.RegisterInput(fs)
	clibase.RegisterFilters(fs)
	clibase.RegisterPredictor(fs)
	clibase.RegisterAssignOutput(fs)
	return cmd
}

func newMaskCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mask [FASTA...]",
		Short:   "Collapse motif coverage into regions and mask them",
		Example: clibase.MaskExamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMask(cmd, args, stdout, stderr)
		},
	}
	fs := cmd.Flags()
	clibase.RegisterInput(fs)
	clibase.RegisterFilters(fs)
	clibase.RegisterPredictor(fs)
	clibase.RegisterMaskOutput(fs)
	return cmd
}

func newLibraryCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:     "library",
		Short:   "Dump the loaded (and filtered) motif library",
		Example: clibase.LibraryExamples,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd, stdout, stderr)
			if err != nil {
				return err
			}
			if err := e.cfg.Validate(); err != nil {
				return usage(err)
			}
			lib, err := e.library()
			if err != nil {
				return err
			}
			outw := bufio.NewWriter(stdout)
			werr := motif.Dump(outw, lib)
			if werr == nil {
				werr = outw.Flush()
			}
			if writers.IsBrokenPipe(werr) {
				return nil
			} else if werr != nil {
				fmt.Fprintln(stderr, werr)
				return exitCode(3)
			}
			return nil
		},
	}
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			_, _ = fmt.Fprintf(stdout, "motifmask version %s\n", version.Version)
		},
	}
}

// predictor builds the configured predictor and checks it can run, or
// returns nil when no filter needs one.
func (e *env) predictor() (disorder.Predictor, error) {
	pc := e.cfg.Predictor
	if !e.cfg.NeedPredictor() {
		if pc.Predictor != "" || pc.PredictorGFF != "" {
			e.log.Warn("a predictor is configured but neither --morf nor --disorder is set; ignoring it")
		}
		return nil, nil
	}
	var p disorder.Predictor
	if pc.PredictorGFF != "" {
		g, err := disorder.LoadGFF(pc.PredictorGFF, e.log)
		if err != nil {
			return nil, usage(err)
		}
		p = g
	} else {
		p = &disorder.Command{
			Path:             pc.Predictor,
			Args:             pc.PredictorArgs,
			Timeout:          pc.PredictorTimeout,
			BindingThreshold: pc.BindingThreshold,
			Log:              e.log,
		}
	}
	if err := disorder.Check(p); err != nil {
		return nil, usage(err)
	}
	return p, nil
}

func (e *env) annotator(lib *motif.Library, masking bool) (*annotate.Annotator, error) {
	label, err := e.cfg.LogicLabel()
	if err != nil {
		return nil, usage(err)
	}
	f := e.cfg.Filter
	eng := engine.New(engine.Config{
		Logic:          f.Logic,
		LogicLabel:     label,
		MaxProbability: f.MaxProbability,
		MinEntropyRate: f.MinEntropyRate,
		MoRF:           f.MoRF,
		Disorder:       f.Disorder,
		Log:            e.log,
	})
	pred, err := e.predictor()
	if err != nil {
		return nil, err
	}
	ann, err := annotate.New(annotate.Config{
		Library:           lib,
		Engine:            eng,
		Predictor:         pred,
		DisorderThreshold: e.cfg.Predictor.DisorderThreshold,
		Mask:              masking,
		Background:        e.cfg.Mask.MaskMode == output.ModeBackground,
		NumElms:           e.cfg.Mask.NumElms,
		Hard:              e.cfg.Mask.Hard,
		MinComplexity:     f.MinComplexity,
		Log:               e.log,
	})
	if err != nil {
		return nil, usage(err)
	}
	return ann, nil
}

// prepare does the work shared by assign and mask up to the library.
func prepare(cmd *cobra.Command, args []string, stdout, stderr io.Writer, validate func(config.Config) error) (*env, *motif.Library, []string, error) {
	e, err := setup(cmd, stdout, stderr)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := validate(e.cfg); err != nil {
		return nil, nil, nil, usage(err)
	}
	seqFiles, err := cliutil.SequenceInputs(e.cfg.Sequences, args)
	if err != nil {
		return nil, nil, nil, usage(err)
	}
	lib, err := e.library()
	if err != nil {
		return nil, nil, nil, err
	}
	return e, lib, seqFiles, nil
}

// finish writes the run summary, if one was requested, once the run did
// not fail.
func (e *env) finish(code int, sum *summary.Summary) error {
	if sum != nil && code != 3 && code != 130 {
		rep := sum.Report(summary.NewRunID(), version.Version)
		if err := summary.WriteFile(e.cfg.Summary, rep); err != nil {
			fmt.Fprintln(e.stderr, err)
			return exitCode(3)
		}
		e.log.WithField("file", e.cfg.Summary).Info("summary written")
	}
	if code != 0 {
		return exitCode(code)
	}
	return nil
}

func runAssign(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	e, lib, seqFiles, err := prepare(cmd, args, stdout, stderr, config.Config.ValidateAssign)
	if err != nil {
		return err
	}
	wf := appcore.NewOccurrenceWriterFactory(e.cfg.Output, e.cfg.Sort, e.cfg.Rank, !e.cfg.NoHeader)
	ann, err := e.annotator(lib, wf.NeedMask())
	if err != nil {
		return err
	}
	var sum *summary.Summary
	if e.cfg.Summary != "" {
		sum = summary.New(lib)
	}
	visit := visitors.Occurrences{Summary: sum}.Visit
	code := appcore.Run[engine.Occurrence](cmd.Context(), stdout, stderr, appcore.Options{
		SeqFiles:        seqFiles,
		Threads:         e.cfg.Threads,
		NoMatchExitCode: e.cfg.NoMatchExitCode,
	}, ann, visit, wf)
	return e.finish(code, sum)
}

func runMask(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	e, lib, seqFiles, err := prepare(cmd, args, stdout, stderr, config.Config.ValidateMask)
	if err != nil {
		return err
	}
	wf := appcore.NewMaskedWriterFactory(e.cfg.Output, !e.cfg.NoHeader)
	ann, err := e.annotator(lib, wf.NeedMask())
	if err != nil {
		return err
	}
	for _, w := range runutil.ValidateMasking(e.cfg.Mask.MaskMode, e.cfg.Mask.NumElms) {
		e.log.Warn(w)
	}
	var sum *summary.Summary
	if e.cfg.Summary != "" {
		sum = summary.New(lib)
	}
	visit := visitors.Masked{Mode: e.cfg.Mask.MaskMode, Summary: sum}.Visit
	code := appcore.Run[output.MaskedSequence](cmd.Context(), stdout, stderr, appcore.Options{
		SeqFiles: seqFiles,
		Threads:  e.cfg.Threads,
	}, ann, visit, wf)
	return e.finish(code, sum)
}
