// SPDX-License-Identifier: MIT

package genotype

// Missingness summarizes Missing calls per sample and per variant.
type Missingness struct {
	// PerSample[i] counts Missing calls of sample i.
	PerSample []int

	// PerVariant[j] counts Missing calls at variant j.
	PerVariant []int

	// Total is the number of Missing calls in the matrix.
	Total int
}

// Missingness counts Missing calls across m.
// Complexity: O(N·V).
func (m *Matrix) Missingness() Missingness {
	out := Missingness{
		PerSample:  make([]int, len(m.ids)),
		PerVariant: make([]int, m.v),
	}
	for i := range m.ids {
		for j, c := range m.Row(i) {
			if c.IsMissing() {
				out.PerSample[i]++
				out.PerVariant[j]++
				out.Total++
			}
		}
	}

	return out
}

// SampleRate returns the fraction of Missing calls for sample i (0 when V == 0).
func (ms Missingness) SampleRate(i int) float64 {
	if len(ms.PerVariant) == 0 {
		return 0
	}

	return float64(ms.PerSample[i]) / float64(len(ms.PerVariant))
}
