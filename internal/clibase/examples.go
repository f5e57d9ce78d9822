// internal/clibase/examples.go
package clibase

const AssignExamples = `  # report every motif match
  motifmask assign --classes elm_classes.tsv proteome.fa

  # drop known false positives and keep only disordered matches
  motifmask assign --classes elm_classes.tsv --instances elm_instances.tsv \
    --logic --disorder --predictor-gff iupred.gff -o gff proteome.fa`

const MaskExamples = `  # lower-case everything outside motifs
  motifmask mask --classes elm_classes.tsv proteome.fa > masked.fa

  # hard-mask regions covered by at least two motifs
  motifmask mask --classes elm_classes.tsv --mask-mode motifs --num-elms 2 --hard proteome.fa`

const LibraryExamples = `  motifmask library --classes elm_classes.tsv --include-categories LIG,DOC`
