// internal/clibase/flags.go
package clibase

import (
	"github.com/spf13/pflag"

	"motifmask/internal/disorder"
	"motifmask/internal/logging"
)

// RegisterRoot wires the flags every command inherits.
func RegisterRoot(fs *pflag.FlagSet) {
	fs.String("config", "", "YAML config file (flags and MOTIFMASK_* env override it)")
	fs.String("classes", "", "motif class table (TSV, optionally .gz)")
	fs.String("instances", "", "motif instance table (TSV, optionally .gz)")
	fs.StringSlice("exclude-categories", nil, "drop motif categories, e.g. LIG,MOD")
	fs.StringSlice("include-categories", nil, "keep only these motif categories")
	fs.Float64("library-max-probability", 0, "drop classes with a larger annotated probability (0=off)")
	fs.IntP("threads", "t", 0, "worker threads (0=all CPUs)")
	fs.String("log-level", logging.DefaultLevel, "debug | info | warn | error")
	fs.BoolP("quiet", "q", false, "log errors only")
}

// RegisterInput wires sequence input flags.
func RegisterInput(fs *pflag.FlagSet) {
	fs.StringSliceP("sequences", "s", nil, "FASTA file(s) (repeatable) or '-' for STDIN")
	fs.Float64("min-complexity", 0, "pass through sequences below this Wootton-Federhen complexity (0=off)")
	fs.String("summary", "", "write a JSON run summary with per-motif enrichment to this file")
}

// RegisterFilters wires the per-occurrence filter flags.
func RegisterFilters(fs *pflag.FlagSet) {
	fs.Bool("logic", false, "drop matches equal to a known instance with --logic-label")
	fs.String("logic-label", "false positive", "instance logic dropped by --logic")
	fs.Float64("max-probability", 0, "drop matches more probable than this (0=off)")
	fs.Float64("min-entropy-rate", 0, "drop matches with a lower entropy rate (0=off)")
	fs.Bool("morf", false, "keep only matches overlapping a predicted binding region")
	fs.Bool("disorder", false, "keep only matches overlapping a predicted disordered region")
}

// RegisterPredictor wires the disorder predictor flags.
func RegisterPredictor(fs *pflag.FlagSet) {
	fs.String("predictor", "", "disorder predictor executable, run as <exe> [args...] <fasta>")
	fs.StringSlice("predictor-args", nil, "arguments passed to the predictor before the FASTA path")
	fs.String("predictor-gff", "", "precomputed disorder/binding predictions (GFF)")
	fs.Duration("predictor-timeout", disorder.DefaultTimeout, "per-sequence predictor timeout")
	fs.Float64("disorder-threshold", 0.5, "per-residue disorder probability for a disordered region")
	fs.Float64("binding-threshold", disorder.DefaultBindingThreshold, "per-residue binding score for a binding region")
}

// RegisterAssignOutput wires the occurrence report flags.
func RegisterAssignOutput(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "text", "output: text | json | jsonl | gff")
	fs.Bool("no-header", false, "suppress header line")
	fs.Bool("sort", false, "sort occurrences by sequence and position")
	fs.Bool("rank", false, "sort occurrences by probability, rarest first")
	fs.Int("no-match-exit-code", 1, "exit code when no occurrence is reported")
}

// RegisterMaskOutput wires the masking flags.
func RegisterMaskOutput(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "fasta", "output: fasta | text | json | jsonl")
	fs.Bool("no-header", false, "suppress header line (text)")
	fs.String("mask-mode", "background", "mask motif-free regions (background) or motif-dense regions (motifs)")
	fs.Int("num-elms", 1, "minimum overlapping motifs for a motif-dense residue")
	fs.Bool("hard", false, "replace masked residues with 'x' instead of lower-casing")
}
