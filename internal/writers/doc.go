// Package writers turns occurrences and masked sequences into serialized
// outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV/GFF/JSON/JSONL/FASTA).
//   - Engine stays domain-only; Pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
