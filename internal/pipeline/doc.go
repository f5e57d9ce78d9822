// Package pipeline streams FASTA records through an Annotator on a worker
// pool and hands results to a visit callback in input order.
//
// The only contract to implement is Annotator (Annotate).
// This keeps the pipeline swappable and testable.
package pipeline
