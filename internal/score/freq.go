// internal/score/freq.go
package score

// Background residue frequencies (UniProtKB/Swiss-Prot composition).
// Keys are upper-case one-letter codes.
var AminoProbs = map[byte]float64{
	'A': 0.0825,
	'R': 0.0553,
	'N': 0.0406,
	'D': 0.0545,
	'C': 0.0137,
	'Q': 0.0393,
	'E': 0.0675,
	'G': 0.0707,
	'H': 0.0227,
	'I': 0.0596,
	'L': 0.0966,
	'K': 0.0584,
	'M': 0.0242,
	'F': 0.0386,
	'P': 0.0470,
	'S': 0.0656,
	'T': 0.0534,
	'W': 0.0108,
	'Y': 0.0292,
	'V': 0.0687,
}

// UnknownResidueProbability is substituted for residue codes missing from
// the table. It is the smallest normal float64 and so effectively zero.
// A neutral 1.0 was considered; the near-zero value is kept on purpose.
const UnknownResidueProbability = 2.2250738585072014e-308

// skip codes are dropped from both the product and the entropy sum.
var skip = [256]bool{'U': true, 'O': true}

// probTable is AminoProbs plus the resolved ambiguity codes, indexed by byte.
var (
	probTable [256]float64
	known     [256]bool
)

func init() {
	for c, p := range AminoProbs {
		setProb(c, p)
	}
	setProb('B', AminoProbs['D']+AminoProbs['N'])
	setProb('Z', AminoProbs['E']+AminoProbs['Q'])
	setProb('J', AminoProbs['I']+AminoProbs['L'])
	setProb('X', 1.0)
}

func setProb(c byte, p float64) {
	probTable[c] = p
	known[c] = true
	if c >= 'A' && c <= 'Z' {
		lc := c + ('a' - 'A')
		probTable[lc] = p
		known[lc] = true
	}
}

// Prob returns the background probability of residue c and whether c is a
// known code. Skip codes report (0, true).
func Prob(c byte) (float64, bool) {
	if IsSkip(c) {
		return 0, true
	}
	if !known[c] {
		return UnknownResidueProbability, false
	}
	return probTable[c], true
}

// IsSkip reports whether c is a skip code (U or O, either case).
func IsSkip(c byte) bool {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return skip[c]
}
