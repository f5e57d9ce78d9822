// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads returns the worker count for a --threads value;
// 0 or less means one worker per CPU.
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// ValidateMasking returns warnings for mask settings that are accepted but
// unlikely to be what the user meant. Background mode inverts the coverage
// mask, so only a threshold of 1 can select any residue.
func ValidateMasking(mode string, numElms int) []string {
	var warns []string
	if mode == "background" && numElms > 1 {
		warns = append(warns, "--num-elms > 1 with --mask-mode background selects no residues; nothing will be masked")
	}
	return warns
}

// BufferSize sizes writer channels for the given worker count.
func BufferSize(threads int) int {
	if threads < 1 {
		threads = 1
	}
	return threads * 4
}
