package output

// TSVHeader is the canonical header row for the occurrence text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "sequence_id\tmotif_id\tstart\tend\tmatched_text\tprobability\tentropy\tentropy_rate"

// RegionsHeader heads the text output of collapsed regions.
const RegionsHeader = "sequence_id\tstart\tend"

// GFFVersionHeader opens every GFF output.
const GFFVersionHeader = "##gff-version 3"

// GFFSource and GFFType fill columns 2 and 3 of GFF rows.
const (
	GFFSource = "motifmask"
	GFFType   = "sequence_motif"
)

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatGFF   = "gff"
	FormatFASTA = "fasta"
)

// Mask modes.
const (
	ModeBackground = "background"
	ModeMotifs     = "motifs"
)
