// SPDX-License-Identifier: MIT

package genotype

// Dosages returns the N×V alternate-allele dosage view of m in row-major order.
//
// Only biallelic calls (alleles 0 or 1 in both slots) are observed; Missing
// and calls carrying a higher allele index are treated as missing and imputed
// with the mean dosage observed at that variant. A variant with no observed
// dosage imputes 0 for every sample, so the result never contains NaN.
//
// Complexity: O(N·V) time, O(N·V + V) memory.
func (m *Matrix) Dosages() []float64 {
	n, v := len(m.ids), m.v
	out := make([]float64, n*v)
	sum := make([]float64, v)
	seen := make([]int, v)
	observed := make([]bool, n*v)

	// Pass 1: convert calls, accumulate per-variant sums of observed dosages.
	for i := 0; i < n; i++ {
		row := m.Row(i)
		base := i * v
		for j, c := range row {
			d, ok := c.Dosage()
			if !ok {
				continue
			}
			out[base+j] = d
			observed[base+j] = true
			sum[j] += d
			seen[j]++
		}
	}

	// Pass 2: impute the per-variant mean into missing cells.
	mean := make([]float64, v)
	for j := range mean {
		if seen[j] > 0 {
			mean[j] = sum[j] / float64(seen[j])
		}
	}
	for idx := range out {
		if !observed[idx] {
			out[idx] = mean[idx%v]
		}
	}

	return out
}
