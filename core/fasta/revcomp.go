// core/fasta/revcomp.go
package fasta

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	pairs := []string{"AT", "CG", "RY", "KM", "SS", "WW", "BV", "DH", "NN"}
	for _, p := range pairs {
		a, b := p[0], p[1]
		complement[a], complement[b] = b, a
		complement[a|0x20], complement[b|0x20] = b|0x20, a|0x20
	}
	complement['U'], complement['u'] = 'A', 'a'
	complement['-'], complement['*'] = '-', '*'
}

// Complement returns the IUPAC complement of a base, preserving case.
// Unknown bytes become 'N'.
func Complement(b byte) byte { return complement[b] }

// ReverseComplement reverse-complements seq in place.
func ReverseComplement(seq []byte) {
	for i, j := 0, len(seq)-1; i <= j; i, j = i+1, j-1 {
		seq[i], seq[j] = complement[seq[j]], complement[seq[i]]
	}
}
